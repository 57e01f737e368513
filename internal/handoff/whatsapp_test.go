package handoff_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/nikolayk812/storefront/internal/handoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestWhatsApp_HandOff(t *testing.T) {
	w, err := handoff.NewWhatsApp("+53 5555-1234", zaptest.NewLogger(t))
	require.NoError(t, err)

	message := "New order\nTotal: 950.00 CUP & more"
	link, err := w.HandOff(t.Context(), message)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5355551234?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, message, parsed.Query().Get("text"))
}

func TestWhatsApp_Link(t *testing.T) {
	w, err := handoff.NewWhatsApp("5355551234", nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "spaces as %20",
			message: "Total: 950.00 CUP",
			want:    "https://wa.me/5355551234?text=Total%3A%20950.00%20CUP",
		},
		{
			name:    "literal plus kept distinct from space",
			message: "+53 5555",
			want:    "https://wa.me/5355551234?text=%2B53%205555",
		},
		{
			name:    "newline and ampersand",
			message: "a & b\nc",
			want:    "https://wa.me/5355551234?text=a%20%26%20b%0Ac",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := w.Link(tt.message)
			assert.Equal(t, tt.want, link)
			assert.NotContains(t, link, "+")

			unescaped, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/5355551234?text="))
			require.NoError(t, err)
			assert.Equal(t, tt.message, unescaped)
		})
	}
}

func TestWhatsApp_Errors(t *testing.T) {
	_, err := handoff.NewWhatsApp("call me", nil)
	require.Error(t, err)

	w, err := handoff.NewWhatsApp("5355551234", nil)
	require.NoError(t, err)

	_, err = w.HandOff(t.Context(), "  ")
	require.EqualError(t, err, "message is empty")
}
