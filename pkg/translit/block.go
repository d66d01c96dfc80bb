// block.go tracks document-level state: before \begin{document}, inside a
// passthrough block, or translating.
package translit

import (
	"fmt"
	"regexp"
)

// Default marker patterns.
const (
	DefaultActivationMarker = `\\begin\{document\}`
	DefaultPassthroughBegin = `\\begin\{english\}`
	DefaultPassthroughEnd   = `\\end\{english\}`
)

// BlockState is the position of the current line within the document.
type BlockState int

const (
	StateBeforeActivation BlockState = iota // preamble, emitted verbatim
	StateActive                             // lines go through the scanner
	StateInPassthrough                      // inside a passthrough block, emitted verbatim
)

func (s BlockState) String() string {
	switch s {
	case StateBeforeActivation:
		return "before-activation"
	case StateActive:
		return "active"
	case StateInPassthrough:
		return "passthrough"
	default:
		return fmt.Sprintf("BlockState(%d)", int(s))
	}
}

// Markers holds the line patterns driving BlockTracker.
type Markers struct {
	Activation       *regexp.Regexp // matched case-insensitively anywhere in the line
	PassthroughBegin *regexp.Regexp // matched at line start
	PassthroughEnd   *regexp.Regexp // matched at line start
}

// CompileMarkers compiles the three marker patterns. The activation pattern
// is made case-insensitive; the passthrough patterns are anchored to the
// start of the line.
func CompileMarkers(activation, begin, end string) (Markers, error) {
	var m Markers
	var err error

	if m.Activation, err = regexp.Compile(`(?i)` + activation); err != nil {
		return Markers{}, fmt.Errorf("invalid activation marker: %w", err)
	}
	if m.PassthroughBegin, err = regexp.Compile(`^(?:` + begin + `)`); err != nil {
		return Markers{}, fmt.Errorf("invalid passthrough begin marker: %w", err)
	}
	if m.PassthroughEnd, err = regexp.Compile(`^(?:` + end + `)`); err != nil {
		return Markers{}, fmt.Errorf("invalid passthrough end marker: %w", err)
	}

	return m, nil
}

// DefaultMarkers returns the markers for \begin{document} and
// \begin{english} ... \end{english}.
func DefaultMarkers() Markers {
	m, err := CompileMarkers(DefaultActivationMarker, DefaultPassthroughBegin, DefaultPassthroughEnd)
	if err != nil {
		panic(err)
	}
	return m
}

// BlockTracker classifies lines one at a time, in document order.
type BlockTracker struct {
	markers Markers
	state   BlockState
}

// NewBlockTracker returns a tracker in StateBeforeActivation.
func NewBlockTracker(m Markers) *BlockTracker {
	return &BlockTracker{markers: m, state: StateBeforeActivation}
}

// State returns the state the tracker is in after the last classified line.
func (t *BlockTracker) State() BlockState {
	return t.state
}

// Classify advances the tracker past line and reports whether the line
// should be transliterated. Marker lines themselves are never transliterated.
func (t *BlockTracker) Classify(line string) bool {
	switch t.state {
	case StateBeforeActivation:
		if t.markers.Activation.MatchString(line) {
			t.state = StateActive
		}
		return false

	case StateInPassthrough:
		if t.markers.PassthroughEnd.MatchString(line) {
			t.state = StateActive
		}
		return false

	default:
		if t.markers.PassthroughBegin.MatchString(line) {
			t.state = StateInPassthrough
			return false
		}
		return true
	}
}
