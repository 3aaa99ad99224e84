// Package integrity decides whether client assets still match the digests recorded
// when derived data was cached from them.
package integrity

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/mulpath/internal/adapters/fs" //nolint:depguard // Path classification is pure
	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/mulpath/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Verifier compares live asset digests against sidecar records.
type Verifier struct {
	resolver    ports.AssetResolver
	digester    ports.Digester
	sidecars    ports.SidecarStore
	telemetry   ports.Telemetry
	parallelism int
}

// NewVerifier creates a new Verifier.
func NewVerifier(
	resolver ports.AssetResolver,
	digester ports.Digester,
	sidecars ports.SidecarStore,
	telemetry ports.Telemetry,
) *Verifier {
	return &Verifier{
		resolver:    resolver,
		digester:    digester,
		sidecars:    sidecars,
		telemetry:   telemetry,
		parallelism: runtime.NumCPU(),
	}
}

// Verify compares the asset behind kind against its sidecar record in hashDir.
// Any failure to read either side yields CannotVerify with the reason attached.
func (v *Verifier) Verify(kind, hashDir string) domain.Verification {
	res := domain.Verification{Kind: kind}

	if !fs.IsBare(kind) {
		res.Reason = zerr.With(zerr.Wrap(domain.ErrInvalidKind, "kind must be a plain name"), "kind", kind)
		return res
	}

	stored, err := v.sidecars.Read(hashDir, kind)
	if err != nil {
		res.Reason = err
		return res
	}
	res.Stored = domain.EncodeHex(stored)

	asset := domain.AssetFileName(kind)
	path, ok := v.resolver.Resolve(asset)
	if !ok {
		res.Reason = zerr.With(zerr.Wrap(domain.ErrAssetUnresolved, asset), "asset", asset)
		return res
	}
	res.Path = path

	live, err := v.digester.DigestFile(path)
	if err != nil {
		res.Reason = err
		return res
	}
	res.Live = live.Hex()

	if strings.EqualFold(res.Stored, res.Live) {
		res.Outcome = domain.VerifiedMatch
	} else {
		res.Outcome = domain.VerifiedMismatch
	}
	return res
}

// Matches reports whether kind is confirmed unchanged. It fails closed.
func (v *Verifier) Matches(kind, hashDir string) bool {
	return v.Verify(kind, hashDir).Unchanged()
}

// Seal records the current digest of the asset behind kind in hashDir.
func (v *Verifier) Seal(kind, hashDir string) error {
	if !fs.IsBare(kind) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidKind, "kind must be a plain name"), "kind", kind)
	}

	asset := domain.AssetFileName(kind)
	path, ok := v.resolver.Resolve(asset)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrAssetUnresolved, asset), "asset", asset)
	}

	digest, err := v.digester.DigestFile(path)
	if err != nil {
		return err
	}

	if err := v.sidecars.Write(hashDir, kind, digest.Bytes()); err != nil {
		return zerr.With(err, "kind", kind)
	}
	return nil
}

// VerifyKinds verifies kinds concurrently and returns the results in input order.
// Each check is recorded as a telemetry vertex.
func (v *Verifier) VerifyKinds(ctx context.Context, kinds []string, hashDir string) ([]domain.Verification, error) {
	results := make([]domain.Verification, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(v.parallelism, 1))

	for i, kind := range kinds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			_, vertex := v.telemetry.Record(gctx, "verify "+kind)
			res := v.Verify(kind, hashDir)
			report(vertex, res)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "verification interrupted")
	}
	return results, nil
}

// VerifyAll verifies every kind with a sidecar record in hashDir, sorted by kind.
func (v *Verifier) VerifyAll(ctx context.Context, hashDir string) ([]domain.Verification, error) {
	kinds, err := v.sidecars.List(hashDir)
	if err != nil {
		return nil, err
	}

	results, err := v.VerifyKinds(ctx, kinds, hashDir)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b domain.Verification) int {
		return cmp.Compare(a.Kind, b.Kind)
	})
	return results, nil
}

// Describe renders a one-line summary of res.
func Describe(res domain.Verification) string {
	switch res.Outcome {
	case domain.VerifiedMatch:
		return fmt.Sprintf("%s: %s", res.Kind, res.Outcome)
	case domain.VerifiedMismatch:
		return fmt.Sprintf("%s: %s (stored %s, live %s)", res.Kind, res.Outcome, res.Stored, res.Live)
	default:
		if res.Reason == nil {
			return fmt.Sprintf("%s: %s", res.Kind, res.Outcome)
		}
		return fmt.Sprintf("%s: %s: %v", res.Kind, res.Outcome, res.Reason)
	}
}

func report(vertex ports.Vertex, res domain.Verification) {
	vertex.Log(domain.LogLevelForOutcome(res.Outcome), Describe(res))

	switch res.Outcome {
	case domain.VerifiedMatch:
		vertex.Cached()
		vertex.Complete(nil)
	case domain.VerifiedMismatch:
		vertex.Complete(zerr.With(domain.ErrDigestMismatch, "kind", res.Kind))
	default:
		vertex.Complete(res.Reason)
	}
}
