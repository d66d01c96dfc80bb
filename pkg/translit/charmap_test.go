package translit

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestNewCharacterMap_Default(t *testing.T) {
	cm, err := NewCharacterMap(DefaultTable())
	require.NoError(t, err)
	assert.Equal(t, len(DefaultTable()), cm.Len())
}

func TestCharacterMap_RoundTrip(t *testing.T) {
	cm := MustDefault()

	for src := range DefaultTable() {
		assert.Equal(t, src, cm.Reverse(cm.Forward(src)), "round trip of %q", src)
	}
}

func TestCharacterMap_Lookups(t *testing.T) {
	cm := MustDefault()

	tests := []struct {
		name string
		in   rune
		want rune
	}{
		{"qaf", 'q', 'ق'},
		{"alef", 'a', 'ا'},
		{"yeh barree", 'y', 'ے'},
		{"digit one", '1', '۱'},
		{"digit zero", '0', '۰'},
		{"urdu full stop", '.', '۔'},
		{"alef madda", 'A', 'آ'},
		{"noon ghunna", 'N', 'ں'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cm.Forward(tt.in))
			assert.Equal(t, tt.in, cm.Reverse(tt.want))
		})
	}
}

func TestCharacterMap_Passthrough(t *testing.T) {
	cm := MustDefault()

	for _, r := range []rune{'{', '[', '\\', ' ', '-', '!', 'é', '中'} {
		assert.Equal(t, r, cm.Forward(r), "forward %q", r)
		assert.Equal(t, r, cm.Reverse(r), "reverse %q", r)
	}

	// Latin letters are not targets, so reverse leaves them alone
	assert.Equal(t, 'q', cm.Reverse('q'))
	// Urdu letters are not sources, so forward leaves them alone
	assert.Equal(t, 'ق', cm.Forward('ق'))
}

func TestNewCharacterMap_NotInjective(t *testing.T) {
	table := map[rune]rune{
		'a': 'ا',
		'b': 'ب',
		'x': 'ا',
	}

	cm, err := NewCharacterMap(table)
	require.Error(t, err)
	assert.Nil(t, cm)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, 'ا', cfgErr.Target)
	assert.Equal(t, []rune{'a', 'x'}, cfgErr.Sources)
	assert.Contains(t, err.Error(), "not injective")
}

func TestNewCharacterMap_CopiesInput(t *testing.T) {
	table := map[rune]rune{'a': 'ا'}
	cm, err := NewCharacterMap(table)
	require.NoError(t, err)

	table['a'] = 'ب'
	assert.Equal(t, 'ا', cm.Forward('a'))
}

func TestCharacterMap_Entries(t *testing.T) {
	cm, err := NewCharacterMap(map[rune]rune{'b': 'ب', 'a': 'ا', '1': '۱'})
	require.NoError(t, err)

	entries := cm.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Source: '1', Target: '۱'}, entries[0])
	assert.Equal(t, Entry{Source: 'a', Target: 'ا'}, entries[1])
	assert.Equal(t, Entry{Source: 'b', Target: 'ب'}, entries[2])
}

func TestMerge(t *testing.T) {
	base := map[rune]rune{'a': 'ا', 'b': 'ب'}
	overrides := map[rune]rune{'b': 'پ', 'c': 'چ'}

	merged := Merge(base, overrides)
	assert.Equal(t, map[rune]rune{'a': 'ا', 'b': 'پ', 'c': 'چ'}, merged)
	assert.Equal(t, 'ب', base['b'], "base must not change")
}

func TestDefaultTable_ReturnsCopy(t *testing.T) {
	table := DefaultTable()
	table['q'] = 'x'
	assert.Equal(t, 'ق', DefaultTable()['q'])
}

func TestTransformer(t *testing.T) {
	cm := MustDefault()

	out, err := convertLines(cm.Transformer(ToUrdu), []string{"slam", "", "abc 123"})
	require.NoError(t, err)
	assert.Equal(t, []string{"سلام", "", "ابچ ۱۲۳"}, out)

	out, err = convertLines(cm.Transformer(ToEnglish), []string{"سلام"})
	require.NoError(t, err)
	assert.Equal(t, []string{"slam"}, out)
}

func TestTransformer_Streaming(t *testing.T) {
	cm := MustDefault()
	input := strings.Repeat("slam \xfe", 2000)

	// The reader hands the transformer small, split buffers
	data, err := io.ReadAll(transform.NewReader(iotest.OneByteReader(strings.NewReader(input)), cm.Transformer(ToUrdu)))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("سلام \xfe", 2000), string(data))
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "e2u", ToUrdu.String())
	assert.Equal(t, "u2e", ToEnglish.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())
}
