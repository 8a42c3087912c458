// Package media renders remote images that fall back to a generated avatar
// when the primary URL cannot be loaded.
package media

import (
	"net/url"
	"strings"
)

// DefaultAvatarBaseURL is the avatar generator used for fallbacks.
const DefaultAvatarBaseURL = "https://ui-avatars.com/api/"

const (
	avatarBackground = "137fec"
	avatarColor      = "fff"
)

// Avatars builds fallback avatar URLs.
type Avatars struct {
	baseURL string
}

// NewAvatars returns a builder for the given generator endpoint.
func NewAvatars(baseURL string) *Avatars {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultAvatarBaseURL
	}
	return &Avatars{baseURL: baseURL}
}

// URL returns the avatar URL for name, e.g.
// https://ui-avatars.com/api/?name=Dr.%20Priya%20Mehta&background=137fec&color=fff
func (a *Avatars) URL(name string) string {
	return a.baseURL + "?name=" + encodeComponent(name) +
		"&background=" + avatarBackground + "&color=" + avatarColor
}

// Image describes an <img> with an optional fallback name.
type Image struct {
	Src          string
	Alt          string
	FallbackName string
	Width        int
	Height       int
}

// Source tracks which URL an image currently displays. It substitutes the
// fallback at most once and never returns to the primary.
type Source struct {
	primary  string
	fallback string
	switched bool
}

// NewSource prepares the display state for img.
func (a *Avatars) NewSource(img Image) *Source {
	s := &Source{primary: img.Src}
	if img.FallbackName != "" {
		s.fallback = a.URL(img.FallbackName)
	}
	return s
}

// Current is the URL to display.
func (s *Source) Current() string {
	if s.switched {
		return s.fallback
	}
	return s.primary
}

// Fallback is the substitute URL, empty when the image has no fallback name.
func (s *Source) Fallback() string {
	return s.fallback
}

// Fail records a load failure of the current URL and reports whether the
// source switched to the fallback.
func (s *Source) Fail() bool {
	if s.switched || s.fallback == "" {
		return false
	}
	s.switched = true
	return true
}

// encodeComponent escapes like a browser's encodeURIComponent for the
// characters that matter in a query value.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
