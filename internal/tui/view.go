package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/swipecell/internal/i18n"
	"github.com/ytget/swipecell/internal/model"
)

// Glyphs
const (
	iconUnread = "●"
	iconFlag   = "⚑"
	iconFlash  = "✦"
	timeLayout = "Jan 2 15:04"
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	lines := m.renderRows()
	viewport := m.viewport()
	for i := 0; i < viewport; i++ {
		if i < len(lines) {
			b.WriteString(lines[i])
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderHeader() string {
	unread := 0
	for _, row := range m.list.rows {
		if row.message.Unread {
			unread++
		}
	}
	header := titleStyle.Render(m.loc.GetText(i18n.KeyAppTitle)) + "  " +
		subtleStyle.Render(m.loc.GetCount(i18n.KeyUnreadCount, unread))
	if m.list.IsEditing() {
		header += "  " + subtleStyle.Render("["+m.loc.GetText(i18n.KeyEdit)+"]")
	}
	if m.flash > 0 {
		header += "  " + flashStyle.Render(iconFlash)
	}
	return header
}

func (m *Model) renderFooter() string {
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return helpStyle.Render("↑↓ select  ←→ swipe  1-3 act  esc hide  e edit  r reset  q quit")
}

// renderRows draws the content lines inside the viewport
func (m *Model) renderRows() []string {
	if len(m.list.rows) == 0 {
		return []string{subtleStyle.Render(m.loc.GetText(i18n.KeyEmptyInbox))}
	}

	var lines []string
	for i, row := range m.list.rows {
		lines = append(lines, m.renderRow(row, i == m.list.Cursor())...)
	}
	start := min(m.list.offset, len(lines))
	return lines[start:]
}

func (m *Model) renderRow(r *rowView, selected bool) []string {
	width := int(r.list.width)
	text := r.contentLines(width)
	styles := [RowLines]lipgloss.Style{senderStyle, senderStyle, previewStyle}
	if r.message.Unread {
		styles[0] = unreadStyle
		styles[1] = unreadStyle
	}

	n := r.lines()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		style := styles[i]
		if selected {
			style = style.Background(selectedColor)
		}
		out = append(out, r.renderLine(text[i], i, width, style))
	}
	return out
}

// contentLines lays out the message text of the row at rest
func (r *rowView) contentLines(width int) [RowLines]string {
	msg := r.message
	marker := " "
	if msg.Unread {
		marker = iconUnread
	}
	flag := " "
	if msg.Flagged {
		flag = iconFlag
	}
	left := " " + marker + " " + msg.Sender
	right := msg.ReceivedAt.Format(timeLayout) + " " + flag + " "
	gap := max(1, width-runeLen(left)-runeLen(right))

	return [RowLines]string{
		fit(left+strings.Repeat(" ", gap)+right, width),
		fit("   "+msg.Subject, width),
		fit("   "+msg.Preview, width),
	}
}

// renderLine shifts the content by the row's displacement and fills the
// uncovered cells with the strip
func (r *rowView) renderLine(text string, line, width int, style lipgloss.Style) string {
	d := r.displacement()
	if d == 0 {
		return style.Render(text)
	}
	runes := []rune(text)
	n := min(abs(d), width)
	if d < 0 {
		return style.Render(string(runes[n:])) + r.renderStrip(n, line)
	}
	return r.renderStrip(n, line) + style.Render(string(runes[:width-n]))
}

// renderStrip draws n uncovered cells. Button 0 sits at the outer edge and
// the expanded action takes all of them.
func (r *rowView) renderStrip(n, line int) string {
	s := r.strip
	if s == nil || s.alpha < 0.5 || len(s.actions) == 0 {
		return strings.Repeat(" ", n)
	}

	type segment struct {
		action *model.Action
		width  int
	}
	var segments []segment
	if s.expanded {
		segments = []segment{{action: s.actions[0], width: n}}
	} else {
		count := len(s.actions)
		for i := range s.actions {
			from, to := n*i/count, n*(i+1)/count
			segments = append(segments, segment{action: s.actions[i], width: to - from})
		}
	}
	// the right strip is drawn from its inner button outwards
	if s.orientation == model.OrientationRight {
		for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
			segments[i], segments[j] = segments[j], segments[i]
		}
	}

	var b strings.Builder
	for _, seg := range segments {
		if seg.width <= 0 {
			continue
		}
		label := ""
		if line == RowLines/2 {
			label = seg.action.Title
		}
		b.WriteString(buttonStyleFor(seg.action, s.orientation).Render(center(label, seg.width)))
	}
	return b.String()
}

func runeLen(s string) int {
	return len([]rune(s))
}

// fit pads or cuts s to exactly width runes
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// center places s in the middle of width cells, cutting it when too long
func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	pad := width - len(runes)
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
