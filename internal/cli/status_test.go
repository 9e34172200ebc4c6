package cli

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short stays whole", "one day at a time", 80, "one day at a time"},
		{"exact length stays whole", "abcde", 5, "abcde"},
		{"long gets ellipsis", "abcdef", 5, "abcde..."},
		{"cuts on rune boundary", "héllo wörld", 7, "héllo w..."},
		{"emoji content", "🌱🌱🌱🌱", 2, "🌱🌱..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.n)
			}
		})
	}
}

func TestPluralDays(t *testing.T) {
	if got := pluralDays(1); got != "day sober" {
		t.Errorf("pluralDays(1) = %q", got)
	}
	for _, n := range []int{0, 2, 100} {
		if got := pluralDays(n); !strings.HasPrefix(got, "days") {
			t.Errorf("pluralDays(%d) = %q", n, got)
		}
	}
}
