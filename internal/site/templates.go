package site

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/wolfman30/smilebright-dental/internal/media"
)

//go:embed templates/*.html
var templateFS embed.FS

// imageView is what the image partial needs: the URL shown first and the
// avatar swapped in by the onerror handler.
type imageView struct {
	Src      string
	Fallback string
	Alt      string
	Width    int
	Height   int
	Class    string
}

// pageTemplates maps a page name to its template set (layout + partials + page).
type pageTemplates map[string]*template.Template

var pageNames = []string{"home", "services"}

func parseTemplates(avatars *media.Avatars) (pageTemplates, error) {
	funcMap := template.FuncMap{
		"dict": func(values ...any) (map[string]any, error) {
			if len(values)%2 != 0 {
				return nil, errors.New("invalid dict call")
			}
			dict := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"img": func(img media.Image, class string) imageView {
			src := avatars.NewSource(img)
			return imageView{
				Src:      src.Current(),
				Fallback: src.Fallback(),
				Alt:      img.Alt,
				Width:    img.Width,
				Height:   img.Height,
				Class:    class,
			}
		},
		"navActive": navActive,
		"stars": func(n int) string {
			if n < 0 {
				n = 0
			}
			return strings.Repeat("★", n)
		},
		"pageTitle": func(title string) string {
			if title == "" {
				return defaultTitle
			}
			return fmt.Sprintf(titleTemplate, title)
		},
	}

	out := make(pageTemplates, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcMap).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/modal.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("site: parse %s templates: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// navActive mirrors the bottom nav highlighting: "/" only on the home path,
// other items by path prefix.
func navActive(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	return strings.HasPrefix(path, strings.Replace(href, "/#", "/", 1))
}
