package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lifeplan-engine/internal/model"
)

var (
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorMuted  = lipgloss.Color("#6F6E69")
	ColorAccent = lipgloss.Color("#3AA99F")
	ColorGreen  = lipgloss.Color("#879A39")
	ColorOrange = lipgloss.Color("#DA702C")
	ColorRed    = lipgloss.Color("#D14D41")
	ColorBlue   = lipgloss.Color("#4385BE")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	dangerStyle = lipgloss.NewStyle().Foreground(ColorRed)
)

var insightStyles = map[model.InsightType]lipgloss.Style{
	model.InsightDanger:  lipgloss.NewStyle().Bold(true).Foreground(ColorRed),
	model.InsightWarning: lipgloss.NewStyle().Bold(true).Foreground(ColorOrange),
	model.InsightSuccess: lipgloss.NewStyle().Bold(true).Foreground(ColorGreen),
	model.InsightInfo:    lipgloss.NewStyle().Bold(true).Foreground(ColorBlue),
}

func RenderTitle(title string) string {
	return titleStyle.Render("  " + title)
}

// Table is a plain column-aligned text table.
type Table struct {
	Headers []string
	Rows    [][]string
	// Highlight marks rows rendered in the danger style.
	Highlight map[int]bool
}

func (t Table) Render() string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(joinCells(t.Headers, widths)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  " + strings.Repeat("─", sum(widths)+2*(len(widths)-1))))
	b.WriteString("\n")
	for r, row := range t.Rows {
		line := joinCells(row, widths)
		if t.Highlight[r] {
			line = dangerStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// joinCells left-aligns the first column and right-aligns the rest.
func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		if i == 0 {
			parts[i] = cell + pad
		} else {
			parts[i] = pad + cell
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// YearlyTable lays out the yearly rollup, highlighting rows from the year
// net worth first reaches zero.
func YearlyTable(res model.ProjectionResult) Table {
	t := Table{
		Headers:   []string{"Year", "Net worth", "Real", "Income", "Expenses", "Saved", "Returns"},
		Highlight: map[int]bool{},
	}

	insolventYear := 0
	if idx := res.FirstMonthWithZeroOrNegativeNetWorth; idx != nil && *idx < len(res.Monthly) {
		insolventYear = res.Monthly[*idx].Date.Year()
	}

	for i, y := range res.Yearly {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(y.Year),
			FormatCompact(y.NetWorth),
			FormatCompact(y.RealNetWorth),
			FormatCompact(y.Income),
			FormatCompact(y.Expenses),
			FormatCompact(y.Contribution),
			FormatCompact(y.Returns),
		})
		if insolventYear != 0 && y.Year >= insolventYear {
			t.Highlight[i] = true
		}
	}
	return t
}

func RenderInsights(list []model.Insight) string {
	var b strings.Builder
	for _, in := range list {
		label := insightStyles[in.Type].Render(fmt.Sprintf("[%s]", in.Type))
		fmt.Fprintf(&b, "  %s %s\n", label, titleStyle.Render(in.Title))
		fmt.Fprintf(&b, "    %s\n", in.Description)
	}
	return b.String()
}

func RenderMessages(msgs []model.CalculationMessage) string {
	var b strings.Builder
	for _, m := range msgs {
		style := mutedStyle
		if m.Level == model.LevelCritical {
			style = dangerStyle
		}
		fmt.Fprintf(&b, "  %s\n", style.Render(fmt.Sprintf("%s %s: %s", m.Level, m.Code, m.Message)))
	}
	return b.String()
}
