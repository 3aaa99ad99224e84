package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/mulpath/internal/ui/output"
	"go.trai.ch/mulpath/internal/ui/style"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestPaint_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := output.New(&bytes.Buffer{})
	assert.Equal(t, "art.mul", output.Paint(out, "art.mul", style.Green))
}

func TestPaint_TrueColor(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor))

	painted := output.Paint(out, "art.mul", style.Red)
	assert.Contains(t, painted, "art.mul")
	assert.NotEqual(t, "art.mul", painted)
}
