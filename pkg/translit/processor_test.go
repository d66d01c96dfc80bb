package translit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name            string
		u2e, e2u, latex bool
		want            Mode
		wantErr         bool
	}{
		{"none", false, false, false, 0, true},
		{"u2e only", true, false, false, ModeUrduToEnglish, false},
		{"e2u only", false, true, false, ModeEnglishToUrdu, false},
		{"latex only", false, false, true, ModeLatex, false},
		{"latex beats plain", true, true, true, ModeLatex, false},
		{"latex beats e2u", false, true, true, ModeLatex, false},
		{"u2e beats e2u", true, true, false, ModeUrduToEnglish, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectMode(tt.u2e, tt.e2u, tt.latex)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, mode := range []Mode{ModeUrduToEnglish, ModeEnglishToUrdu, ModeLatex} {
		got, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := ParseMode("LaTeX")
	require.NoError(t, err)
	assert.Equal(t, ModeLatex, got)

	_, err = ParseMode("rot13")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestPlainModes(t *testing.T) {
	cm := MustDefault()
	doc := []string{"slam", "", `\rule{x}`}

	urdu, err := EnglishToUrdu(cm, doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"سلام", "", `\رءلع{ش}`}, urdu)

	back, err := UrduToEnglish(cm, urdu)
	require.NoError(t, err)
	assert.Equal(t, doc, back)

	empty, err := EnglishToUrdu(cm, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPlainModes_InvalidUTF8MatchesScanner(t *testing.T) {
	cm := MustDefault()
	line := "a\xffb"

	plain, err := EnglishToUrdu(cm, []string{line})
	require.NoError(t, err)
	assert.Equal(t, []string{"ا\xffب"}, plain)

	scanned, err := NewScanner(cm.Forward, nil).ScanLine(line)
	require.NoError(t, err)
	assert.Equal(t, plain[0], scanned)

	back, err := UrduToEnglish(cm, plain)
	require.NoError(t, err)
	assert.Equal(t, []string{line}, back)
}

func TestLatexToUrdu(t *testing.T) {
	doc := []string{
		`\documentclass{article}`,
		`preamble text`,
		`\begin{document}`,
		`\section{slam} ab`,
		`\begin{english}`,
		`plain english \rule{x`,
		`\end{english}`,
		`\dialog[3.5em]{abc}{def}`,
		`a\\b \rule{x}{y}`,
		``,
	}

	want := []string{
		`\documentclass{article}`,
		`preamble text`,
		`\begin{document}`,
		`\section{سلام} اب`,
		`\begin{english}`,
		`plain english \rule{x`,
		`\end{english}`,
		`\dialog[3.5em]{ابچ}{دعف}`,
		`ا\\ب \rule{x}{y}`,
		``,
	}

	got, err := LatexToUrdu(MustDefault(), DefaultWhitelist(), DefaultMarkers(), doc)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLatexToUrdu_NoActivation(t *testing.T) {
	doc := []string{"abc", `\rule{x`}

	got, err := LatexToUrdu(MustDefault(), DefaultWhitelist(), DefaultMarkers(), doc)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestLatexToUrdu_UnterminatedPassthrough(t *testing.T) {
	doc := []string{`\begin{document}`, `\begin{english}`, `abc`}

	got, err := LatexToUrdu(MustDefault(), DefaultWhitelist(), DefaultMarkers(), doc)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestLatexToUrdu_Unterminated(t *testing.T) {
	doc := []string{
		`\begin{document}`,
		`abc`,
		`ab \rule{x`,
		`never reached`,
	}

	got, err := LatexToUrdu(MustDefault(), DefaultWhitelist(), DefaultMarkers(), doc)
	require.Error(t, err)
	assert.Nil(t, got)

	var unterminated *UnterminatedCommandError
	require.True(t, errors.As(err, &unterminated))
	assert.Equal(t, 3, unterminated.Line)
	assert.Equal(t, 4, unterminated.Column)
	assert.Equal(t, "rule", unterminated.Command)
	assert.Equal(t, `ab \rule{x`, unterminated.Content)
	assert.Contains(t, err.Error(), "line 3, column 4")
}

func TestProcessor_Run(t *testing.T) {
	p := NewProcessor(MustDefault(), DefaultWhitelist(), DefaultMarkers())
	doc := []string{`\begin{document}`, `\textbf{ab} \label{ab}`}

	got, err := p.Run(ModeLatex, doc)
	require.NoError(t, err)
	assert.Equal(t, []string{`\begin{document}`, `\textbf{اب} \label{ab}`}, got)

	// Plain mode ignores markup and markers
	got, err = p.Run(ModeEnglishToUrdu, doc)
	require.NoError(t, err)
	assert.Equal(t, `\بعگین{دہچءمعنت}`, got[0])

	_, err = p.Run(Mode(42), doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported mode")
}

func TestProcessor_CustomConfig(t *testing.T) {
	cm, err := NewCharacterMap(map[rune]rune{'a': 'ا'})
	require.NoError(t, err)
	markers, err := CompileMarkers(`%%go`, `%%raw`, `%%end`)
	require.NoError(t, err)

	p := NewProcessor(cm, NewWhitelist("say"), markers)
	assert.Same(t, cm, p.CharacterMap())
	assert.True(t, p.Whitelist().Contains("say"))
	assert.True(t, p.Markers().Activation.MatchString("x %%go"))

	got, err := p.Run(ModeLatex, []string{"a", "%%GO", `\say{a} \emph{a} b`, "%%raw", "a", "%%end", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "%%GO", `\say{ا} \emph{a} b`, "%%raw", "a", "%%end", "ا"}, got)
}
