package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mulpath/internal/adapters/telemetry"
	"go.trai.ch/mulpath/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, vertex := tel.Record(t.Context(), "verify art")
	assert.Equal(t, t.Context(), ctx)
	require.NotNil(t, vertex)

	n, err := vertex.Stdout().Write([]byte("discarded"))
	require.NoError(t, err)
	assert.Equal(t, len("discarded"), n)

	assert.NotPanics(t, func() {
		vertex.Log(domain.LogLevelWarn, "changed")
		vertex.Cached()
		vertex.Complete(errors.New("boom"))
	})
	assert.NoError(t, tel.Close())
}
