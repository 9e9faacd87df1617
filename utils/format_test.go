package utils_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/profit_backend/utils"
	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0đ"},
		{"80", "80đ"},
		{"999", "999đ"},
		{"1000", "1.000đ"},
		{"1250000", "1.250.000đ"},
		{"1234567890", "1.234.567.890đ"},
		{"-45000", "-45.000đ"},
		{"1500.5", "1.500,5đ"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("bad decimal %q: %v", tc.in, err)
		}
		if got := utils.FormatMoney(d); got != tc.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
