package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shopbook/bookdesk/internal/catalog"
)

// formatVND renders an amount in đồng with dot-grouped thousands, the way
// the storefront prints prices.
func formatVND(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := b.String() + "đ"
	if negative {
		return "-" + out
	}
	return out
}

// pad is the body padding style, tightened in compact mode.
func (m Model) pad() lipgloss.Style {
	if m.opts.Compact {
		return lipgloss.NewStyle().Padding(0, 1)
	}
	return lipgloss.NewStyle().Padding(1, 2)
}

// truncate trims s to at most width runes, ellipsized.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// listPrice is the undiscounted price rounded to whole đồng, matching the
// rounding applied to the effective price.
func listPrice(book catalog.Book) int64 {
	return int64(math.Round(book.Price))
}

// priceCell renders the effective price, striking through the list price
// when a discount applies.
func (m Model) priceCell(book catalog.Book) string {
	price := m.styles.Price.Render(formatVND(book.FinalPrice()))
	if !book.HasDiscount() {
		return price
	}
	old := m.styles.OldPrice.Render(formatVND(listPrice(book)))
	badge := m.styles.Badge.Render("-" + strconv.Itoa(book.Discount) + "%")
	return old + " " + price + " " + badge
}

func (m Model) viewHeader() string {
	left := m.styles.Accent.Render("bookdesk")
	if snap := m.opts.Store.Snapshot(); snap.HasData {
		left += "  " + m.styles.Faint.Render("as of "+snap.LastUpdated.Format("15:04:05"))
	}

	right := m.styles.Muted.Render("anonymous")
	if m.opts.Session.Authenticated() {
		identity := m.opts.Session.Identity()
		right = m.styles.Text.Render(identity.Username)
		if m.opts.Session.IsAdmin() {
			right += " " + m.styles.Badge.Render(identity.Role)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Padding(0, 2).Render(line)
}

func (m Model) viewFooter() string {
	var parts []string
	if m.loading {
		parts = append(parts, m.styles.Warning.Render("loading…"))
	}
	if m.toast != "" {
		style := m.styles.ToastOK
		if m.toastErr {
			style = m.styles.ToastErr
		}
		parts = append(parts, style.Render(m.toast))
	}
	if len(parts) == 0 {
		parts = append(parts, m.helpLine())
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(parts, "  "))
}

func (m Model) helpLine() string {
	pair := func(k, d string) string {
		return m.styles.HelpKey.Render(k) + m.styles.HelpDesc.Render(" "+d)
	}

	switch m.screen {
	case screenHome:
		return pair("↑/↓", "move") + "  " + pair("enter", "open") + "  " + pair("q", "quit")
	case screenLogin:
		return pair("tab", "next") + "  " + pair("enter", "submit") + "  " + pair("esc", "back")
	case screenBrowse:
		return pair("/", "search") + "  " + pair("c", "category") + "  " + pair("a", "author") +
			"  " + pair("s", "sort") + "  " + pair("x", "clear") + "  " + pair("enter", "detail") +
			"  " + pair("esc", "back")
	case screenDetail:
		return pair("↑/↓", "scroll") + "  " + pair("esc", "back")
	case screenAdd:
		return pair("tab", "next field") + "  " + pair("←/→", "category") + "  " + pair("enter", "submit") +
			"  " + pair("esc", "back")
	case screenUpdate:
		if m.form.editing {
			return pair("tab", "next field") + "  " + pair("←/→", "category") + "  " +
				pair("enter", "submit") + "  " + pair("esc", "picker")
		}
		return pair("/", "search") + "  " + pair("n/p", "page") + "  " + pair("enter", "edit") +
			"  " + pair("esc", "back")
	case screenDelete:
		return pair("/", "search") + "  " + pair("n/p", "page") + "  " + pair("enter", "delete") +
			"  " + pair("esc", "back")
	}
	return ""
}
