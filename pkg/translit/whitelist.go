package translit

import "sort"

// defaultWhitelist lists commands whose arguments are prose and must be
// transliterated even though the command itself is kept.
var defaultWhitelist = []string{
	"author",
	"caption",
	"chapter",
	"dialog",
	"emph",
	"footnote",
	"paragraph",
	"section",
	"subsection",
	"subsubsection",
	"textbf",
	"textit",
	"title",
	"underline",
}

// Whitelist is a set of command names whose arguments are transliterated.
type Whitelist map[string]struct{}

// NewWhitelist builds a Whitelist from names. Empty names are ignored.
func NewWhitelist(names ...string) Whitelist {
	wl := make(Whitelist, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		wl[name] = struct{}{}
	}
	return wl
}

// DefaultWhitelist returns the built-in whitelist.
func DefaultWhitelist() Whitelist {
	return NewWhitelist(defaultWhitelist...)
}

// Contains reports whether name is whitelisted. Matching is case-sensitive,
// as LaTeX command names are.
func (wl Whitelist) Contains(name string) bool {
	_, ok := wl[name]
	return ok
}

// With returns a new Whitelist holding wl plus names.
func (wl Whitelist) With(names ...string) Whitelist {
	merged := make(Whitelist, len(wl)+len(names))
	for name := range wl {
		merged[name] = struct{}{}
	}
	for _, name := range names {
		if name != "" {
			merged[name] = struct{}{}
		}
	}
	return merged
}

// Names returns the whitelisted names in sorted order.
func (wl Whitelist) Names() []string {
	names := make([]string, 0, len(wl))
	for name := range wl {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
