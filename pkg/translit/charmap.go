// Package translit provides keyboard transliteration between English and Urdu,
// including a LaTeX-aware line scanner that leaves markup untouched.
package translit

import "sort"

// Entry is a single row of a character table.
type Entry struct {
	Source rune // Latin keyboard character
	Target rune // Urdu code point
}

// CharacterMap is an immutable bijection between two alphabets.
// Lookups never fail: characters outside the table pass through unchanged.
type CharacterMap struct {
	forward map[rune]rune
	reverse map[rune]rune
}

// NewCharacterMap builds a CharacterMap from a forward table and derives the
// reverse table. It returns a *ConfigurationError if two source characters
// map to the same target, since the inversion would lose one of them.
func NewCharacterMap(forward map[rune]rune) (*CharacterMap, error) {
	cm := &CharacterMap{
		forward: make(map[rune]rune, len(forward)),
		reverse: make(map[rune]rune, len(forward)),
	}

	// Collect every source per target so the error can name all of them
	sources := make(map[rune][]rune, len(forward))
	for src, dst := range forward {
		cm.forward[src] = dst
		cm.reverse[dst] = src
		sources[dst] = append(sources[dst], src)
	}

	var dups []rune
	for dst, srcs := range sources {
		if len(srcs) > 1 {
			dups = append(dups, dst)
		}
	}
	if len(dups) > 0 {
		sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })
		srcs := sources[dups[0]]
		sort.Slice(srcs, func(i, j int) bool { return srcs[i] < srcs[j] })
		return nil, &ConfigurationError{Target: dups[0], Sources: srcs}
	}

	return cm, nil
}

// MustDefault returns a CharacterMap for the built-in CRULP table.
// It panics if the built-in table is not injective.
func MustDefault() *CharacterMap {
	cm, err := NewCharacterMap(DefaultTable())
	if err != nil {
		panic(err)
	}
	return cm
}

// Forward maps an English keyboard character to Urdu.
func (cm *CharacterMap) Forward(r rune) rune {
	if dst, ok := cm.forward[r]; ok {
		return dst
	}
	return r
}

// Reverse maps an Urdu character back to its English keyboard character.
func (cm *CharacterMap) Reverse(r rune) rune {
	if src, ok := cm.reverse[r]; ok {
		return src
	}
	return r
}

// Len returns the number of entries in the table.
func (cm *CharacterMap) Len() int {
	return len(cm.forward)
}

// Entries returns the table sorted by source character.
func (cm *CharacterMap) Entries() []Entry {
	entries := make([]Entry, 0, len(cm.forward))
	for src, dst := range cm.forward {
		entries = append(entries, Entry{Source: src, Target: dst})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Source < entries[j].Source
	})
	return entries
}

// Merge returns a new table holding base with overrides applied on top.
// Neither input is modified.
func Merge(base, overrides map[rune]rune) map[rune]rune {
	merged := make(map[rune]rune, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
