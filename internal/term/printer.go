// Package term is the output side of gitup: leveled, styled report lines.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// indentWidth is the number of spaces per nesting level.
const indentWidth = 4

// Printer is the output collaborator the update engine emits through.
// Messages are composed from the emphasis roles and emitted at a nesting
// level of 0–2; Raw bypasses the report format entirely (used for
// surfacing subprocess output verbatim).
type Printer interface {
	// Emit writes one report line indented by level.
	Emit(level int, msg string)

	// Raw writes msg followed by a newline, with no indentation or styling.
	Raw(msg string)

	// Emphasis roles. Each returns s rendered in that role.
	Bold(s string) string
	Red(s string) string
	Green(s string) string
	Blue(s string) string
}

// Term implements Printer on top of an io.Writer using lipgloss styles.
// The styles are bound to the destination, so writing to a non-terminal
// (or with NO_COLOR set) degrades to plain text.
type Term struct {
	w     io.Writer
	bold  lipgloss.Style
	red   lipgloss.Style
	green lipgloss.Style
	blue  lipgloss.Style
}

var _ Printer = (*Term)(nil)

// New creates a Term writing to w.
func New(w io.Writer) *Term {
	r := lipgloss.NewRenderer(w)
	return &Term{
		w:     w,
		bold:  r.NewStyle().Bold(true),
		red:   r.NewStyle().Foreground(lipgloss.Color("1")),
		green: r.NewStyle().Foreground(lipgloss.Color("2")),
		blue:  r.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

func (t *Term) Emit(level int, msg string) {
	fmt.Fprintf(t.w, "%s%s\n", strings.Repeat(" ", level*indentWidth), msg)
}

func (t *Term) Raw(msg string) {
	fmt.Fprintln(t.w, msg)
}

func (t *Term) Bold(s string) string { return t.bold.Render(s) }
func (t *Term) Red(s string) string { return t.red.Render(s) }
func (t *Term) Green(s string) string { return t.green.Render(s) }
func (t *Term) Blue(s string) string { return t.blue.Render(s) }
