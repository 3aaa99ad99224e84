package progrock_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mulpath/internal/adapters/telemetry/progrock"
	"go.trai.ch/mulpath/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(t.Context(), "verify art")
	require.NotNil(t, ctx)
	require.NotNil(t, vertex)

	_, err := vertex.Stdout().Write([]byte("stored d41d8cd98f00b204e9800998ecf8427e\n"))
	require.NoError(t, err)

	vertex.Log(domain.LogLevelDebug, "digest matches")
	vertex.Cached()
	vertex.Complete(nil)

	_, failed := recorder.Record(t.Context(), "verify hues")
	failed.Log(domain.LogLevelError, "sidecar missing")
	failed.Complete(errors.New("sidecar digest file not found"))

	assert.NoError(t, recorder.Close())
}

func TestRecorder_SetProgress(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	recorder := progrock.New()
	recorder.SetProgress(&out)

	_, matched := recorder.Record(t.Context(), "verify art")
	matched.Log(domain.LogLevelDebug, "art: match")
	matched.Cached()
	matched.Complete(nil)

	_, failed := recorder.Record(t.Context(), "verify hues")
	failed.Log(domain.LogLevelError, "hues: sidecar missing")
	failed.Complete(errors.New("sidecar digest file not found"))

	require.NoError(t, recorder.Close())

	rendered := out.String()
	assert.Contains(t, rendered, "1: verify art")
	assert.Contains(t, rendered, "[DEBUG] art: match")
	assert.Contains(t, rendered, "1: verify art CACHED")
	assert.Contains(t, rendered, "2: verify hues")
	assert.Contains(t, rendered, "[ERROR] hues: sidecar missing")
	assert.Contains(t, rendered, "2: verify hues ERROR: sidecar digest file not found")
}

func TestRecorder_SetProgressNil(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	recorder := progrock.New()
	recorder.SetProgress(&out)
	recorder.SetProgress(nil)

	_, vertex := recorder.Record(t.Context(), "verify art")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
	assert.Empty(t, out.String())
}

func TestRecorder_DiscardsByDefault(t *testing.T) {
	recorder := progrock.New()

	_, vertex := recorder.Record(t.Context(), "verify art")
	vertex.Log(domain.LogLevelInfo, "art: match")
	vertex.Complete(nil)

	assert.NoError(t, recorder.Close())
}
