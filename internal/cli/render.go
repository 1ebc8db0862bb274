package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// titleWidth 为标题框的固定宽度
const titleWidth = 55

// theme 汇总终端输出用到的样式，颜色取自 Flexoki 深色配色
var theme = struct {
	title, frame, heading lipgloss.Style
	cell, muted           lipgloss.Style
	good, fair, poor      lipgloss.Style
}{
	title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFCF0")),
	frame:   lipgloss.NewStyle().Foreground(lipgloss.Color("#575653")),
	heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3AA99F")),
	cell:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFCF0")),
	muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6F6E69")),
	good:    lipgloss.NewStyle().Foreground(lipgloss.Color("#879A39")),
	fair:    lipgloss.NewStyle().Foreground(lipgloss.Color("#DA702C")),
	poor:    lipgloss.NewStyle().Foreground(lipgloss.Color("#D14D41")),
}

var titleBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#282726")).
	Width(titleWidth).
	Align(lipgloss.Center).
	Padding(0, 1)

// Table 是带边框的终端表格；单元格为 "---" 的行渲染为分隔线
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle 渲染居中的标题框
func RenderTitle(title string) string {
	return titleBox.Render(theme.title.Render(title))
}

// RenderHeading 渲染小节标题
func RenderHeading(s string) string {
	return theme.heading.Render(s)
}

// RenderMuted 渲染次要信息
func RenderMuted(s string) string {
	return theme.muted.Render(s)
}

// RenderScore 按分数高低着色：80 及以上为好，50 及以上为一般
func RenderScore(score int) string {
	text := strconv.Itoa(score)
	switch {
	case score >= 80:
		return theme.good.Render(text)
	case score >= 50:
		return theme.fair.Render(text)
	default:
		return theme.poor.Render(text)
	}
}

// RenderTable 渲染表格，首列左对齐，其余列右对齐。
// 列宽按显示宽度计算，中文字符占两列。
func RenderTable(t Table) string {
	widths := t.columnWidths()
	if len(widths) == 0 {
		return ""
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + RenderHeading(t.Title) + "\n")
	}
	b.WriteString(rule(widths, "╭┬╮"))
	if len(t.Headers) > 0 {
		b.WriteString(row(t.Headers, widths, theme.heading, false))
		b.WriteString(rule(widths, "├┼┤"))
	}
	for _, cells := range t.Rows {
		if isSeparator(cells) {
			b.WriteString(rule(widths, "├┼┤"))
			continue
		}
		b.WriteString(row(cells, widths, theme.cell, true))
	}
	b.WriteString(rule(widths, "╰┴╯"))
	return b.String()
}

func (t Table) columnWidths() []int {
	n := len(t.Headers)
	if n == 0 && len(t.Rows) > 0 {
		n = len(t.Rows[0])
	}
	if n == 0 {
		return nil
	}
	widths := make([]int, n)
	measure := func(cells []string) {
		for i := 0; i < len(cells) && i < n; i++ {
			widths[i] = max(widths[i], lipgloss.Width(cells[i]))
		}
	}
	measure(t.Headers)
	for _, cells := range t.Rows {
		if !isSeparator(cells) {
			measure(cells)
		}
	}
	return widths
}

func isSeparator(cells []string) bool {
	return len(cells) == 1 && cells[0] == "---"
}

// rule 画一条横线，corners 依次为左端、列间、右端字符
func rule(widths []int, corners string) string {
	c := []rune(corners)
	segments := make([]string, len(widths))
	for i, w := range widths {
		segments[i] = strings.Repeat("─", w+2)
	}
	return theme.frame.Render(string(c[0])+strings.Join(segments, string(c[1]))+string(c[2])) + "\n"
}

// row 渲染一行单元格；alignRight 为真时除首列外右对齐
func row(cells []string, widths []int, style lipgloss.Style, alignRight bool) string {
	bar := theme.frame.Render("│")
	var b strings.Builder
	b.WriteString(bar)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		gap := strings.Repeat(" ", max(0, w-lipgloss.Width(cell)))
		if alignRight && i > 0 {
			cell = gap + cell
		} else {
			cell += gap
		}
		b.WriteString(style.Render(" " + cell + " "))
		b.WriteString(bar)
	}
	b.WriteString("\n")
	return b.String()
}
