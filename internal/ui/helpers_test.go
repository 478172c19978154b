package ui

import (
	"testing"

	"github.com/shopbook/bookdesk/internal/catalog"
)

func TestFormatVND(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0đ"},
		{999, "999đ"},
		{1000, "1.000đ"},
		{66999, "66.999đ"},
		{150000, "150.000đ"},
		{1234567, "1.234.567đ"},
		{-5000, "-5.000đ"},
	}
	for _, tc := range cases {
		if got := formatVND(tc.amount); got != tc.want {
			t.Errorf("formatVND(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestListPriceRoundsFractions(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{99999.6, 100000},
		{100000.4, 100000},
		{75000, 75000},
	}
	for _, tc := range cases {
		if got := listPrice(catalog.Book{Price: tc.price}); got != tc.want {
			t.Errorf("listPrice(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer title", 6, "a lon…"},
		{"Dế Mèn Phiêu Lưu Ký", 6, "Dế Mè…"},
		{"anything", 0, ""},
		{"ab", 1, "…"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestCycleOption(t *testing.T) {
	options := []string{"all", "TLTT", "TLKH"}

	if got := cycleOption(options, "all", false); got != "TLTT" {
		t.Errorf("forward from all = %q, want TLTT", got)
	}
	if got := cycleOption(options, "TLKH", false); got != "all" {
		t.Errorf("forward wraps to %q, want all", got)
	}
	if got := cycleOption(options, "all", true); got != "TLKH" {
		t.Errorf("reverse wraps to %q, want TLKH", got)
	}
	if got := cycleOption(options, "missing", false); got != "TLTT" {
		t.Errorf("unknown current advances to %q, want TLTT", got)
	}
	if got := cycleOption(nil, "all", false); got != "all" {
		t.Errorf("empty options = %q, want all", got)
	}
}
