package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/syssam/modulegen/compiler/gen"
	"github.com/syssam/modulegen/compiler/load"
)

// Printer formats user-facing lines. Colors are only used when the
// destination is a terminal.
type Printer struct {
	w       io.Writer
	created lipgloss.Style
	skipped lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	faint   lipgloss.Style
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		created: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		skipped: r.NewStyle().Foreground(lipgloss.Color("8")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		faint:   r.NewStyle().Faint(true),
	}
}

// Error formats an error line.
func (p *Printer) Error(msg string) string {
	return p.failure.Render("error:") + " " + msg
}

// Warning formats a warning line.
func (p *Printer) Warning(msg string) string {
	return p.warning.Render("warning:") + " " + msg
}

// Println writes a line.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.w, s)
}

// File writes the outcome of one file write.
func (p *Printer) File(r *gen.WriteResult) {
	label := fmt.Sprintf("%-11s", r.Action.String())
	switch r.Action {
	case gen.ActionCreated, gen.ActionOverwritten:
		label = p.created.Render(label)
	case gen.ActionSkipped:
		label = p.skipped.Render(label)
	default:
		label = p.faint.Render(label)
	}
	fmt.Fprintf(p.w, "  %s %s\n", label, r.Path)
}

// Result writes the summary of a generation run.
func (p *Printer) Result(res *gen.Result) {
	for _, f := range res.Files {
		p.File(f)
	}
	for _, w := range res.Warnings {
		p.Println(p.Warning(w))
	}
	if res.Registered {
		p.Println(p.created.Render("registered") + " module in its aggregator")
	}
}

// Issues writes validation issues, errors first.
func (p *Printer) Issues(issues load.ValidationErrors) {
	for _, e := range issues.Errors() {
		p.Println(p.Error(e.Error()))
	}
	for _, w := range issues.Warnings() {
		p.Println(p.Warning(w.Error()))
	}
}

// ConfirmPrompter asks before existing files are overwritten.
type ConfirmPrompter struct{}

// ConfirmOverwrite implements gen.Prompter.
func (ConfirmPrompter) ConfirmOverwrite(path string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
		Affirmative("Overwrite").
		Negative("Skip").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, GeneralError("aborted", err)
	}
	return ok, err
}

// NewPrompter returns a ConfirmPrompter when f is an interactive terminal,
// nil otherwise. Without a prompter existing files are skipped.
func NewPrompter(f *os.File) gen.Prompter {
	if f == nil || !IsTerminal(f) {
		return nil
	}
	return ConfirmPrompter{}
}

// IsTerminal reports if f is a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
