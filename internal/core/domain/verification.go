package domain

// VerifyOutcome is the result class of an integrity check.
// The zero value is CannotVerify so an unset outcome never reads as a match.
type VerifyOutcome uint8

const (
	// CannotVerify means no comparison could be made; callers treat the asset as changed.
	CannotVerify VerifyOutcome = iota
	// VerifiedMatch means the live digest equals the recorded one.
	VerifiedMatch
	// VerifiedMismatch means both digests were available and differ.
	VerifiedMismatch
)

// String returns a short label for the outcome.
func (o VerifyOutcome) String() string {
	switch o {
	case VerifiedMatch:
		return "match"
	case VerifiedMismatch:
		return "mismatch"
	default:
		return "unverified"
	}
}

// Verification reports the comparison of one asset kind against its sidecar record.
type Verification struct {
	// Kind is the asset kind, e.g. "art" for art.mul.
	Kind string
	// Outcome classifies the result.
	Outcome VerifyOutcome
	// Reason explains a CannotVerify outcome. It is nil otherwise.
	Reason error
	// Stored is the hex digest read from the sidecar, if it could be decoded.
	Stored string
	// Live is the hex digest of the asset file, if it could be computed.
	Live string
	// Path is the resolved asset path, if the asset resolved.
	Path string
}

// Unchanged reports whether the asset is confirmed identical to the recorded baseline.
func (v Verification) Unchanged() bool {
	return v.Outcome == VerifiedMatch
}
