package nav

import "github.com/roach88/rerun/internal/ident"

// Page is one entry in an app's navigation table.
type Page struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon,omitempty"`
	// Default marks the page served when no page is requested.
	Default bool `yaml:"default,omitempty"`
	// Key overrides the identity reference; empty means the title is the
	// reference. Two pages may share a title only if their keys differ.
	Key string `yaml:"key,omitempty"`
}

func (p Page) ref() string {
	if p.Key != "" {
		return p.Key
	}
	return p.Title
}

// Hash is the page's content-addressed identity. It feeds every widget
// identity registered while the page is active.
func (p Page) Hash() string {
	return ident.PageHash(p.ref())
}
