// Package key provides CLI helpers to display the glyph legend.
package key

import (
	"context"
	"io"

	"tableflip.dev/daily/pkg/glyph"
	"tableflip.dev/daily/pkg/printers"
)

// Key prints what each glyph on the list means.
type Key struct {
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(_ context.Context) error {
	pp := printers.PrettyPrint{Out: k.Out}
	pp.NewLine()
	pp.Legend(glyph.DefaultGlyphs()...)
	pp.NewLine()
	return nil
}
