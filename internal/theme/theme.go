// Package theme resolves the visitor's light/dark preference.
package theme

import (
	"net/http"
	"strings"
	"time"
)

// Preference is the stored theme choice.
type Preference string

const (
	Dark  Preference = "dark"
	Light Preference = "light"
)

const (
	// CookieName holds the visitor's explicit choice.
	CookieName = "theme"
	// ClientHint carries the system light/dark signal.
	ClientHint = "Sec-CH-Prefers-Color-Scheme"

	cookieMaxAge = 365 * 24 * time.Hour
)

// Parse accepts only the two stored values.
func Parse(raw string) (Preference, bool) {
	switch Preference(strings.ToLower(strings.TrimSpace(raw))) {
	case Dark:
		return Dark, true
	case Light:
		return Light, true
	}
	return "", false
}

// Resolve picks the stored preference, or the system preference when nothing
// valid is stored.
func Resolve(stored string, systemPrefersDark bool) Preference {
	if p, ok := Parse(stored); ok {
		return p
	}
	if systemPrefersDark {
		return Dark
	}
	return Light
}

// Toggle flips the preference.
func Toggle(current Preference) Preference {
	if current == Dark {
		return Light
	}
	return Dark
}

// FromRequest reads the cookie and the client hint.
func FromRequest(r *http.Request) Preference {
	stored := ""
	if c, err := r.Cookie(CookieName); err == nil {
		stored = c.Value
	}
	prefersDark := strings.EqualFold(strings.Trim(r.Header.Get(ClientHint), `" `), "dark")
	return Resolve(stored, prefersDark)
}

// Write stores the preference on the response.
func Write(w http.ResponseWriter, p Preference, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(p),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

// AdvertiseHint asks browsers to send the color-scheme client hint on later
// requests.
func AdvertiseHint(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", ClientHint)
	w.Header().Add("Vary", ClientHint)
	w.Header().Set("Critical-CH", ClientHint)
}
