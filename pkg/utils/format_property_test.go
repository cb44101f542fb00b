package utils

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var indianGrouping = regexp.MustCompile(`^(\d{1,2},)*\d{1,3}$`)

func TestFormatIndianCurrencyProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("always carries the rupee sign and two decimals", prop.ForAll(
		func(amount float64) bool {
			formatted := FormatIndianCurrency(amount)

			body := formatted
			if strings.HasPrefix(body, "-") {
				body = body[1:]
			}
			if !strings.HasPrefix(body, "₹") {
				t.Logf("missing rupee sign: %s", formatted)
				return false
			}
			dot := strings.LastIndex(body, ".")
			if dot == -1 || len(body)-dot-1 != 2 {
				t.Logf("expected two decimal places: %s", formatted)
				return false
			}
			return true
		},
		gen.Float64Range(-10000000, 10000000),
	))

	properties.Property("integer part uses Indian grouping", prop.ForAll(
		func(amount float64) bool {
			formatted := FormatIndianCurrency(amount)

			body := strings.TrimPrefix(strings.TrimPrefix(formatted, "-"), "₹")
			intPart := body[:strings.LastIndex(body, ".")]
			if !indianGrouping.MatchString(intPart) {
				t.Logf("bad grouping in %s", formatted)
				return false
			}
			return true
		},
		gen.Float64Range(0, 100000000),
	))

	properties.Property("formatting preserves the value", prop.ForAll(
		func(amount int64) bool {
			formatted := FormatIndianCurrency(float64(amount))

			cleaned := strings.NewReplacer("₹", "", ",", "").Replace(formatted)
			parsed, err := strconv.ParseFloat(cleaned, 64)
			if err != nil {
				t.Logf("cannot parse back %s: %v", formatted, err)
				return false
			}
			if parsed != float64(amount) {
				t.Logf("value drifted: %d became %f", amount, parsed)
				return false
			}
			return true
		},
		gen.Int64Range(-10000000, 10000000),
	))

	properties.TestingRun(t)
}

func TestFormatIndianCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{999, "₹999.00"},
		{1500, "₹1,500.00"},
		{100000, "₹1,00,000.00"},
		{2550000, "₹25,50,000.00"},
		{10000000, "₹1,00,00,000.00"},
		{-1500, "-₹1,500.00"},
	}

	for _, tt := range tests {
		if got := FormatIndianCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatIndianCurrency(%f) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{850, "₹850"},
		{12500, "₹12,500"},
		{350000, "₹3,50,000"},
		{-2000, "-₹2,000"},
	}

	for _, tt := range tests {
		if got := FormatRupees(tt.amount); got != tt.want {
			t.Errorf("FormatRupees(%d) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}
