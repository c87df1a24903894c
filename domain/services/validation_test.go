package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "Alice Smith", want: "Alice Smith"},
		{name: "trims whitespace", input: "  Alice  ", want: "Alice"},
		{name: "minimum length", input: "Al", want: "Al"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 51), wantErr: true},
		{name: "fifty chars ok", input: strings.Repeat("a", 50), want: strings.Repeat("a", 50)},
		{name: "non-ascii counted by rune", input: strings.Repeat("Ж", 26), want: strings.Repeat("Ж", 26)},
		{name: "fifty non-ascii chars ok", input: strings.Repeat("é", 50), want: strings.Repeat("é", 50)},
		{name: "fifty-one non-ascii chars rejected", input: strings.Repeat("é", 51), wantErr: true},
		{name: "angle bracket", input: "Alice<Smith", wantErr: true},
		{name: "slash", input: "Alice/Smith", wantErr: true},
		{name: "backslash", input: `Alice\Smith`, wantErr: true},
		{name: "pipe", input: "Alice|Smith", wantErr: true},
		{name: "colon", input: "Alice:Smith", wantErr: true},
		{name: "asterisk", input: "Alice*Smith", wantErr: true},
		{name: "question mark", input: "Alice?Smith", wantErr: true},
		{name: "quote", input: `Alice"Smith`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAccountName(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "100", want: "100.00"},
		{name: "two decimals", input: "99.95", want: "99.95"},
		{name: "currency symbol", input: "R1,000,000", want: "1000000.00"},
		{name: "spaces and commas stripped", input: " 1 234,56", want: "123456.00"},
		{name: "commas stripped", input: "12,345.67", want: "12345.67"},
		{name: "zero allowed", input: "0", want: "0.00"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "over limit", input: "1000000000", wantErr: true},
		{name: "at limit", input: "999999999", want: "999999999.00"},
		{name: "three decimals", input: "10.123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}
