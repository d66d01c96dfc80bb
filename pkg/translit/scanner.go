// scanner.go implements the LaTeX-aware line scanner. Literal text is
// transliterated; commands and their arguments are copied unchanged unless
// the command is whitelisted.
package translit

import (
	"strings"
	"unicode/utf8"
)

// Scanner transliterates single lines of LaTeX-like markup.
type Scanner struct {
	convert   func(rune) rune
	whitelist Whitelist
}

// NewScanner returns a Scanner that applies convert to literal text and to
// the arguments of commands in wl.
func NewScanner(convert func(rune) rune, wl Whitelist) *Scanner {
	if wl == nil {
		wl = NewWhitelist()
	}
	return &Scanner{convert: convert, whitelist: wl}
}

// ScanLine returns line with literal text transliterated and command syntax
// preserved. It returns an *UnterminatedCommandError (with Line unset) if a
// non-whitelisted command's brace argument runs past the end of the line.
func (s *Scanner) ScanLine(line string) (string, error) {
	var out strings.Builder
	out.Grow(len(line) * 2)

	pos := 0
	for pos < len(line) {
		if line[pos] != '\\' {
			r, size := utf8.DecodeRuneInString(line[pos:])
			if r == utf8.RuneError && size == 1 {
				// Invalid byte, copy as is
				out.WriteByte(line[pos])
			} else {
				out.WriteRune(s.convert(r))
			}
			pos += size
			continue
		}

		// An escaped backslash is kept as written
		if pos+1 < len(line) && line[pos+1] == '\\' {
			out.WriteString(line[pos : pos+2])
			pos += 2
			continue
		}

		next, err := s.scanCommand(line, pos, &out)
		if err != nil {
			return "", err
		}
		pos = next
	}

	return out.String(), nil
}

// scanCommand handles the command starting at the backslash at start,
// writes whatever must be copied to out, and returns the position at which
// scanning resumes.
func (s *Scanner) scanCommand(line string, start int, out *strings.Builder) (int, error) {
	nameStart := start + 1
	pos := nameStart
	for pos < len(line) && line[pos] != ' ' && line[pos] != '{' {
		pos++
	}

	// No delimiter before end of line: keep the rest as is
	if pos >= len(line) {
		out.WriteString(line[start:])
		return len(line), nil
	}

	// Hanging command, copied through the terminating space
	if line[pos] == ' ' {
		out.WriteString(line[start : pos+1])
		return pos + 1, nil
	}

	rawName := line[nameStart:pos]
	name := commandName(rawName)

	if s.whitelist.Contains(name) {
		// Keep \name[opt] and let the arguments flow through as text
		out.WriteString(line[start:pos])
		return pos, nil
	}

	end, ok := argumentsEnd(line, pos)
	if !ok {
		return 0, &UnterminatedCommandError{
			Column:  utf8.RuneCountInString(line[:start]) + 1,
			Command: name,
			Content: line,
		}
	}

	out.WriteString(line[start:end])
	return end, nil
}

// commandName strips an optional-argument segment: the first '[' before the
// opening brace divides the name from its options.
func commandName(raw string) string {
	if i := strings.IndexByte(raw, '['); i >= 0 {
		return raw[:i]
	}
	return raw
}

// argumentsEnd returns the position just past the last of the consecutive
// {...} arguments starting at open. It reports false if an argument is not
// closed on this line. Braces are not nested: each argument ends at the
// first unescaped '}'.
func argumentsEnd(line string, open int) (int, bool) {
	pos := open
	for pos < len(line) && line[pos] == '{' {
		closing := closingBrace(line, pos+1)
		if closing < 0 {
			return 0, false
		}
		pos = closing + 1
	}
	return pos, true
}

// closingBrace returns the index of the first '}' at or after from that is
// not escaped by a backslash, or -1.
func closingBrace(line string, from int) int {
	for i := from; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++ // skip the escaped character
		case '}':
			return i
		}
	}
	return -1
}
