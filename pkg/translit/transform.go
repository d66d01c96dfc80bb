package translit

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Direction selects which side of a CharacterMap a lookup uses.
type Direction int

const (
	ToUrdu    Direction = iota // Latin keyboard → Urdu
	ToEnglish                  // Urdu → Latin keyboard
)

// String returns the short name used on the command line.
func (d Direction) String() string {
	switch d {
	case ToUrdu:
		return "e2u"
	case ToEnglish:
		return "u2e"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Lookup returns the per-character mapping function for dir.
func (cm *CharacterMap) Lookup(dir Direction) func(rune) rune {
	if dir == ToEnglish {
		return cm.Reverse
	}
	return cm.Forward
}

// Transformer returns a transform.Transformer applying the table in the given
// direction. Bytes that are not valid UTF-8 are copied unchanged, as the
// Scanner does for literal text. It carries no state and can be shared.
func (cm *CharacterMap) Transformer(dir Direction) transform.Transformer {
	return runeMapper{fn: cm.Lookup(dir)}
}

type runeMapper struct {
	transform.NopResetter
	fn func(rune) rune
}

func (m runeMapper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])

			// Invalid byte, copy as is
			if r == utf8.RuneError && size == 1 {
				if nDst >= len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst] = src[nSrc]
				nDst++
				nSrc++
				continue
			}
		}

		r = m.fn(r)
		n := utf8.RuneLen(r)
		if n < 0 {
			r, n = utf8.RuneError, 3
		}
		if nDst+n > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// convertLines applies t to each line independently.
func convertLines(t transform.Transformer, doc []string) ([]string, error) {
	out := make([]string, len(doc))
	for i, line := range doc {
		converted, _, err := transform.String(t, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out[i] = converted
	}
	return out, nil
}
