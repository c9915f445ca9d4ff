package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"marklint/internal/diag"
	"marklint/internal/source"
)

// Pretty renders diagnostics with a source excerpt and caret underline:
//
//	error[NEST3001]: 'td' is not allowed inside 'table'
//	  --> demo.mx:1:8
//	   |
//	 1 | <table><td/></table>
//	   |        ^^^^^
//	   = note: parent element 'table' opened here
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for i, d := range bag.Items() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := p.diagnostic(d); err != nil {
			return err
		}
	}
	return nil
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) paint(attrs ...color.Attribute) func(string) string {
	if !p.opts.Color {
		return func(s string) string { return s }
	}
	c := color.New(attrs...)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}

func (p *prettyPrinter) severityPaint(sev diag.Severity) func(string) string {
	switch sev {
	case diag.SevError:
		return p.paint(color.FgRed, color.Bold)
	case diag.SevWarning:
		return p.paint(color.FgYellow, color.Bold)
	default:
		return p.paint(color.FgCyan, color.Bold)
	}
}

func (p *prettyPrinter) diagnostic(d diag.Diagnostic) error {
	sev := p.severityPaint(d.Severity)
	bold := p.paint(color.Bold)
	dim := p.paint(color.FgHiBlack)
	blue := p.paint(color.FgBlue, color.Bold)

	head := sev(fmt.Sprintf("%s[%s]", d.Severity, d.Code.ID())) + bold(": "+d.Message)
	if _, err := fmt.Fprintln(p.w, head); err != nil {
		return err
	}

	f := p.fs.Get(d.Primary.File)
	if f == nil {
		return nil
	}
	start, end := p.fs.Resolve(d.Primary)
	loc := fmt.Sprintf("%s:%d:%d", formatPath(f, p.fs, p.opts.PathMode), start.Line, start.Col)
	if _, err := fmt.Fprintf(p.w, "  %s %s\n", blue("-->"), loc); err != nil {
		return err
	}

	if err := p.excerpt(f, start, end, sev, blue, dim); err != nil {
		return err
	}

	if p.opts.ShowNotes {
		for _, note := range d.Notes {
			noteLoc := ""
			if nf := p.fs.Get(note.Span.File); nf != nil {
				pos, _ := p.fs.Resolve(note.Span)
				noteLoc = fmt.Sprintf(" (%s:%d:%d)", formatPath(nf, p.fs, p.opts.PathMode), pos.Line, pos.Col)
			}
			if _, err := fmt.Fprintf(p.w, "   %s %s%s\n", blue("= note:"), note.Msg, dim(noteLoc)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *prettyPrinter) excerpt(f *source.File, start, end source.LineCol, sev, blue, dim func(string) string) error {
	firstLine := start.Line
	if p.opts.Context > 0 {
		if ctx := uint32(p.opts.Context); firstLine > ctx {
			firstLine -= ctx
		} else {
			firstLine = 1
		}
	}

	gutter := len(fmt.Sprintf("%d", start.Line))
	pad := strings.Repeat(" ", gutter)
	if _, err := fmt.Fprintf(p.w, " %s %s\n", pad, blue("|")); err != nil {
		return err
	}

	for line := firstLine; line <= start.Line; line++ {
		text := f.GetLine(line)
		numText := fmt.Sprintf("%*d", gutter, line)
		if line != start.Line {
			numText = dim(numText)
		}
		if _, err := fmt.Fprintf(p.w, " %s %s %s\n", numText, blue("|"), text); err != nil {
			return err
		}
	}

	// Caret underline, aligned by display width so wide runes line up.
	lineText := f.GetLine(start.Line)
	startCol := int(start.Col) - 1
	if startCol > len(lineText) {
		startCol = len(lineText)
	}
	lead := runewidth.StringWidth(lineText[:startCol])

	carets := 1
	if end.Line == start.Line && end.Col > start.Col {
		endCol := int(end.Col) - 1
		if endCol > len(lineText) {
			endCol = len(lineText)
		}
		if w := runewidth.StringWidth(lineText[startCol:endCol]); w > 0 {
			carets = w
		}
	}

	underline := strings.Repeat(" ", lead) + sev(strings.Repeat("^", carets))
	_, err := fmt.Fprintf(p.w, " %s %s %s\n", pad, blue("|"), underline)
	return err
}
