package assistant

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Styles holds the lipgloss styles used to render replies.
// Styles are bound to a renderer so color support follows the actual output,
// not the process stdout.
type Styles struct {
	Error  lipgloss.Style
	Hint   lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

// NewStyles builds the reply styles for output written to w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Error:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}),
		Hint:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"}),
		Header: r.NewStyle().Bold(true).Padding(0, 1),
		Cell:   r.NewStyle().Padding(0, 1),
		Border: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}),
	}
}

// renderTable lays rows out under headers with a rounded border.
func (s Styles) renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}
