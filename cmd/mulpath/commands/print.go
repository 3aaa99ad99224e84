package commands

import (
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/mulpath/internal/ui/output"
	"go.trai.ch/mulpath/internal/ui/style"
)

// nameWidth fits the longest known asset name.
const nameWidth = 22

type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	return &printer{out: output.New(w)}
}

func (p *printer) icon(icon string) string {
	return output.Paint(p.out, icon, style.ColorFor(icon))
}

func (p *printer) dim(s string) string {
	return output.Paint(p.out, s, style.Slate)
}
