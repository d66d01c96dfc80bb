package translit

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how a document is converted.
type Mode int

const (
	ModeUrduToEnglish Mode = iota // plain, Urdu → English
	ModeEnglishToUrdu             // plain, English → Urdu
	ModeLatex                     // LaTeX-aware, English → Urdu
)

// String returns the flag name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeUrduToEnglish:
		return "u2e"
	case ModeEnglishToUrdu:
		return "e2u"
	case ModeLatex:
		return "latex"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "u2e":
		return ModeUrduToEnglish, nil
	case "e2u":
		return ModeEnglishToUrdu, nil
	case "latex":
		return ModeLatex, nil
	}
	return 0, fmt.Errorf("unknown mode %q (valid: u2e, e2u, latex)", s)
}

// SelectMode resolves the mode flags. If several are set, latex wins, then
// u2e, then e2u. ErrNoMode is returned when none is set.
func SelectMode(u2e, e2u, latex bool) (Mode, error) {
	switch {
	case latex:
		return ModeLatex, nil
	case u2e:
		return ModeUrduToEnglish, nil
	case e2u:
		return ModeEnglishToUrdu, nil
	}
	return 0, ErrNoMode
}

// UrduToEnglish converts every character of every line back to the English
// keyboard. No markup handling is done.
func UrduToEnglish(cm *CharacterMap, doc []string) ([]string, error) {
	return convertLines(cm.Transformer(ToEnglish), doc)
}

// EnglishToUrdu converts every character of every line to Urdu. No markup
// handling is done.
func EnglishToUrdu(cm *CharacterMap, doc []string) ([]string, error) {
	return convertLines(cm.Transformer(ToUrdu), doc)
}

// LatexToUrdu converts a LaTeX document to Urdu. Lines before the activation
// marker and lines inside passthrough blocks are copied unchanged; all other
// lines go through a Scanner. The first unterminated command aborts the run
// and no output is returned.
func LatexToUrdu(cm *CharacterMap, wl Whitelist, m Markers, doc []string) ([]string, error) {
	scanner := NewScanner(cm.Forward, wl)
	tracker := NewBlockTracker(m)

	out := make([]string, len(doc))
	for i, line := range doc {
		if !tracker.Classify(line) {
			out[i] = line
			continue
		}

		converted, err := scanner.ScanLine(line)
		if err != nil {
			var unterminated *UnterminatedCommandError
			if errors.As(err, &unterminated) {
				unterminated.Line = i + 1
			}
			return nil, err
		}
		out[i] = converted
	}

	return out, nil
}

// Process converts doc according to mode.
func Process(mode Mode, cm *CharacterMap, wl Whitelist, m Markers, doc []string) ([]string, error) {
	switch mode {
	case ModeUrduToEnglish:
		return UrduToEnglish(cm, doc)
	case ModeEnglishToUrdu:
		return EnglishToUrdu(cm, doc)
	case ModeLatex:
		return LatexToUrdu(cm, wl, m, doc)
	default:
		return nil, fmt.Errorf("unsupported mode: %s", mode)
	}
}

// Processor bundles the configuration of a conversion session.
type Processor struct {
	charMap   *CharacterMap
	whitelist Whitelist
	markers   Markers
}

// NewProcessor returns a Processor for the given configuration.
func NewProcessor(cm *CharacterMap, wl Whitelist, m Markers) *Processor {
	return &Processor{charMap: cm, whitelist: wl, markers: m}
}

// CharacterMap returns the processor's character table.
func (p *Processor) CharacterMap() *CharacterMap {
	return p.charMap
}

// Whitelist returns the processor's command whitelist.
func (p *Processor) Whitelist() Whitelist {
	return p.whitelist
}

// Markers returns the processor's block markers.
func (p *Processor) Markers() Markers {
	return p.markers
}

// Run converts doc according to mode.
func (p *Processor) Run(mode Mode, doc []string) ([]string, error) {
	return Process(mode, p.charMap, p.whitelist, p.markers, doc)
}
