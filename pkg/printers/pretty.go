// Package printers renders the daily list for the command line.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/daily/pkg/glyph"
	"tableflip.dev/daily/pkg/tasklist"
	"tableflip.dev/daily/pkg/view"
)

// PrettyPrint writes colored, human-readable output.
type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Title prints the today banner.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Tasks prints one line per row, numbered from 1. Completed rows are struck
// through when the writer supports it.
func (pp *PrettyPrint) Tasks(rows ...view.Row) {
	w := pp.out()
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	term := termenv.NewOutput(w)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = " "
	for i, r := range rows {
		text := r.Text
		if r.Struck {
			text = term.String(text).CrossOut().String()
		}
		cells := []interface{}{strconv.Itoa(i+1) + "."}
		if pp.ShowID {
			cells = append(cells, y.Sprint(r.ID))
		}
		cells = append(cells, r.Glyph().String(), text)
		tbl.AddRow(cells...)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, "")
}

// Banner prints the completion banner, green once everything is done.
func (pp *PrettyPrint) Banner(b tasklist.Banner) {
	c := color.New(color.Bold)
	if b.Style == tasklist.StyleCelebrate {
		c = color.New(color.Bold, color.FgGreen)
	}
	_, _ = c.Fprintln(pp.out(), b.Text)
}

// Page prints the whole document.
func (pp *PrettyPrint) Page(doc *view.Model) {
	pp.Title(doc.Today())
	pp.NewLine()
	pp.Tasks(doc.Rows()...)
	pp.Banner(doc.Banner())
}

// Legend prints the glyph key.
func (pp *PrettyPrint) Legend(glyphs ...glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Key"), bold.Sprint("Meaning"))
	for _, g := range glyphs {
		tbl.AddRow(g.Symbol, g.Key, g.Meaning)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// JSON writes the document as indented JSON.
func JSON(w io.Writer, doc *view.Model) error {
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc.Snapshot())
}

// Options picks how a runner prints the document.
type Options struct {
	ShowID bool
	JSON   bool
	Out    io.Writer
}

// Print writes doc as JSON or as a pretty page.
func (o Options) Print(doc *view.Model) error {
	if o.JSON {
		out := o.Out
		if out == nil {
			out = os.Stdout
		}
		return JSON(out, doc)
	}
	pp := PrettyPrint{ShowID: o.ShowID, Out: o.Out}
	pp.Page(doc)
	return nil
}
