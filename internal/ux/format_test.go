package ux

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"rfc3339", "2026-03-15T10:30:00Z", "15 Mar 2026"},
		{"date only", "2026-03-15", "15 Mar 2026"},
		{"empty", "", "-"},
		{"garbage passes through", "soon", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.input))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹499", FormatPrice(499))
	assert.Equal(t, "₹199.99", FormatPrice(199.99))
}

func TestFormatDiscount(t *testing.T) {
	assert.Equal(t, "₹500", FormatDiscount(500, 0))
	assert.Equal(t, "₹400 (₹500, -20%)", FormatDiscount(500, 20))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a long ...", Truncate("a long string", 10))
}

func TestTruncate_Multibyte(t *testing.T) {
	// Hindi service names and rupee amounts must not be cut mid-rune.
	got := Truncate("ज्योतिष परामर्श बुकिंग", 10)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "ज्योतिष...", got)

	got = Truncate("₹₹₹₹₹₹₹₹₹₹₹₹", 5)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "₹₹...", got)
}

func TestConfirmFrom(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"spelled out", "yes\n", false, true},
		{"no", "n\n", true, false},
		{"empty takes default yes", "\n", true, true},
		{"empty takes default no", "\n", false, false},
		{"eof takes default", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := ConfirmFrom(strings.NewReader(tt.input), &out, "Delete plan?", tt.defaultYes)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Delete plan?")
		})
	}
}

type fakeRows struct{}

func (fakeRows) TableHeaders() []string { return []string{"ID", "NAME"} }
func (fakeRows) TableRows() [][]string  { return [][]string{{"1", "Premium"}, {"2", "Basic"}} }

func TestTableFormatter(t *testing.T) {
	var out bytes.Buffer
	f, err := NewFormatter("table", &FormatterOptions{Writer: &out})
	require.NoError(t, err)

	require.NoError(t, f.Format(fakeRows{}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "Premium")
}

func TestJSONFormatter(t *testing.T) {
	var out bytes.Buffer
	f, err := NewFormatter("json", &FormatterOptions{Writer: &out})
	require.NoError(t, err)

	require.NoError(t, f.Format(map[string]int{"count": 3}))
	assert.JSONEq(t, `{"count": 3}`, out.String())
}

func TestNewFormatterRejectsUnknownFormat(t *testing.T) {
	_, err := NewFormatter("xml", nil)
	assert.Error(t, err)
}
