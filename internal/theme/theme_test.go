package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name        string
		stored      string
		prefersDark bool
		want        Preference
	}{
		{"stored dark wins over light system", "dark", false, Dark},
		{"stored light wins over dark system", "light", true, Light},
		{"no stored value uses dark system", "", true, Dark},
		{"no stored value uses light system", "", false, Light},
		{"garbage stored value ignored", "sepia", true, Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.stored, tt.prefersDark))
		})
	}
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Light, Toggle(Dark))
	assert.Equal(t, Dark, Toggle(Light))
}

func TestFromRequestReadsCookieAndHint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ClientHint, `"dark"`)
	assert.Equal(t, Dark, FromRequest(req))

	req.AddCookie(&http.Cookie{Name: CookieName, Value: "light"})
	assert.Equal(t, Light, FromRequest(req))
}

func TestWriteSetsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, Dark, true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "dark", cookies[0].Value)
	assert.True(t, cookies[0].Secure)
}
