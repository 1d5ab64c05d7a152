package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPlain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.5", "1,234.50"},
		{"0", "0.00"},
		{"-1234.5", "-1,234.50"},
		{"1000000", "1,000,000.00"},
		{"999.999", "1,000.00"},
		{"-0.004", "0.00"},
		{"-0.5", "-0.50"},
		{"12.3456", "12.35"},
		{"100000000000000000000", "100,000,000,000,000,000,000.00"},
		{"-1e30", "-1,000,000,000,000,000,000,000,000,000.00"},
		{"9223372036854775808.125", "9,223,372,036,854,775,808.13"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Plain(decimal.RequireFromString(tt.in))
			if got != tt.want {
				t.Errorf("Plain(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplayQuotes(t *testing.T) {
	got := Display(decimal.RequireFromString("1234.5"))
	if got != "`1,234.50`" {
		t.Errorf("Display = %q, want %q", got, "`1,234.50`")
	}
}

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOk bool
	}{
		{"plain integer", "50", "50", true},
		{"first number wins", "unos 30 o 40", "30", true},
		{"negative", "quitá -12.5 porfa", "-12.5", true},
		{"zero is found", "0", "0", true},
		{"zero among words", "pues 0 nada", "0", true},
		{"leading decimal point", ".5", "0.5", true},
		{"prefix of token", "50k", "50", true},
		{"explicit plus", "+7", "7", true},
		{"exponent", "1e3", "1000", true},
		{"no number", "nada de plata", "0", false},
		{"empty", "", "0", false},
		{"currency prefix is not a number", "$50", "0", false},
		{"skips words before number", "como 1,000 pesos", "1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractNumber(tt.in)
			if ok != tt.wantOk {
				t.Fatalf("ExtractNumber(%q) ok = %v, want %v", tt.in, ok, tt.wantOk)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ExtractNumber(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC), "Thursday, October 15th 2026"},
		{time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), "Friday, March 1st 2024"},
		{time.Date(2024, time.March, 22, 0, 0, 0, 0, time.UTC), "Friday, March 22nd 2024"},
		{time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC), "Wednesday, March 13th 2024"},
	}
	for _, tt := range tests {
		if got := Date(tt.in); got != tt.want {
			t.Errorf("Date(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
