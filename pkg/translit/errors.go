package translit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMode is returned when no conversion mode was requested.
var ErrNoMode = errors.New("no conversion mode selected: use --u2e, --e2u or --latex")

// ConfigurationError reports a character table that is not injective.
type ConfigurationError struct {
	Target  rune   // the target character mapped more than once
	Sources []rune // every source character mapping to Target
}

func (e *ConfigurationError) Error() string {
	quoted := make([]string, len(e.Sources))
	for i, r := range e.Sources {
		quoted[i] = fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("character table is not injective: %s all map to %q (%U)",
		strings.Join(quoted, ", "), e.Target, e.Target)
}

// UnterminatedCommandError reports a command whose brace argument is not
// closed before the end of the line.
type UnterminatedCommandError struct {
	Line    int    // 1-based line number, 0 when scanning a lone line
	Column  int    // 1-based column of the command's backslash
	Command string // command name as written, e.g. "rule"
	Content string // the offending line
}

func (e *UnterminatedCommandError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, column %d: unterminated argument for command \\%s: %s",
			e.Line, e.Column, e.Command, e.Content)
	}
	return fmt.Sprintf("column %d: unterminated argument for command \\%s: %s",
		e.Column, e.Command, e.Content)
}
