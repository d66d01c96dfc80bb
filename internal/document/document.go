// Package document reads and writes line-oriented text files for ucv.
package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StdioName is the file name that selects stdin or stdout.
const StdioName = "-"

// Read decodes r and splits it into lines with terminators stripped.
// Input is UTF-8 unless a byte order mark says otherwise; UTF-8 and UTF-16
// BOMs are honored and removed.
func Read(r io.Reader) ([]string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	br := bufio.NewReader(transform.NewReader(r, decoder))

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}

	return lines, nil
}

// ReadFile reads the lines of the named file, or of stdin for "-".
func ReadFile(path string) ([]string, error) {
	if path == StdioName {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write writes each line followed by a newline.
func Write(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// WriteFile writes lines to the named file, or to w for "" and "-".
func WriteFile(path string, w io.Writer, lines []string) error {
	if path == "" || path == StdioName {
		return Write(w, lines)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Write(f, lines); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
