// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/vito/progrock/console"
	"go.trai.ch/mulpath/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry by recording vertices through progrock.
// Updates are discarded until a progress output is attached with SetProgress.
type Recorder struct {
	relay *relay
	rec   *progrock.Recorder
}

// New creates a new Recorder that discards updates.
func New() *Recorder {
	return NewRecorder(progrock.Discard{})
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	r := &relay{target: w}
	return &Recorder{
		relay: r,
		rec:   progrock.NewRecorder(r),
	}
}

// SetProgress renders vertices as plain text to w. A nil w discards them again.
func (r *Recorder) SetProgress(w io.Writer) {
	if w == nil {
		r.relay.swap(progrock.Discard{})
		return
	}
	r.relay.swap(console.NewWriter(w, console.WithMessageLevel(progrock.MessageLevel_DEBUG)))
}

// Record starts recording a new vertex. Vertex ids are derived from name,
// so one name maps to one vertex for the lifetime of the recorder.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.rec.Close()
}

// relay forwards status updates to a writer that can be replaced at runtime.
type relay struct {
	mu     sync.RWMutex
	target progrock.Writer
}

func (r *relay) swap(w progrock.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = w
}

func (r *relay) WriteStatus(status *progrock.StatusUpdate) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.target.WriteStatus(status)
}

func (r *relay) Close() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.target.Close()
}
