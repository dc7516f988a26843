package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
)

// Palette
var (
	colorAccent  = lipgloss.Color("#FF7043")
	colorMuted   = lipgloss.Color("#8A8F98")
	colorSuccess = lipgloss.Color("#43A047")
	colorWarning = lipgloss.Color("#FFB300")
	colorDanger  = lipgloss.Color("#E53935")
	colorInfo    = lipgloss.Color("#1E88E5")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
	okStyle     = lipgloss.NewStyle().Foreground(colorSuccess)
)

// statusColors maps order and ticket statuses to their badge colour.
var statusColors = map[string]lipgloss.Color{
	"placed":           colorInfo,
	"confirmed":        colorInfo,
	"preparing":        colorWarning,
	"out_for_delivery": colorWarning,
	"delivered":        colorSuccess,
	"cancelled":        colorDanger,
	"rejected":         colorDanger,
	"open":             colorDanger,
	"in_progress":      colorWarning,
	"resolved":         colorSuccess,
	"closed":           colorMuted,
	"high":             colorDanger,
	"medium":           colorWarning,
	"low":              colorMuted,
}

func badge(status string) string {
	c, ok := statusColors[status]
	if !ok {
		return status
	}
	return lipgloss.NewStyle().Foreground(c).Render(status)
}

func rupees(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

// table renders rows under headers with padded, aligned columns.
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder
	for i, h := range t.headers {
		sb.WriteString(headerStyle.Width(widths[i] + 2).Render(h))
	}
	sb.WriteString("\n")
	for i := range t.headers {
		sb.WriteString(labelStyle.Render(" " + strings.Repeat("─", widths[i]) + " "))
	}
	sb.WriteString("\n")
	for _, row := range t.rows {
		for i := range t.headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(cellStyle.Width(widths[i] + 2).Render(cell))
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(w, sb.String())
}

// field prints one "label: value" line.
func field(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s %v\n", labelStyle.Render(label+":"), value)
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

// printFormErrors lists field errors in a stable order.
func printFormErrors(w io.Writer, errs *apperrors.ValidationErrors) {
	fields := make([]string, 0, len(errs.Errors))
	for f := range errs.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		for _, msg := range errs.Errors[f] {
			fmt.Fprintf(w, "  %s %s\n", errorStyle.Render(f+":"), msg)
		}
	}
}
