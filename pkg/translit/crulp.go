// crulp.go holds the CRULP Urdu phonetic keyboard layout v1.1.
package translit

// crulpTable maps English keyboard characters to Urdu code points.
// Adding a key = adding one entry here; targets must stay unique.
var crulpTable = map[rune]rune{
	// Digits → Extended Arabic-Indic digits
	'1': '۱',
	'2': '۲',
	'3': '۳',
	'4': '۴',
	'5': '۵',
	'6': '۶',
	'7': '۷',
	'8': '۸',
	'9': '۹',
	'0': '۰',

	// Top row
	'q': 'ق', // qaf
	'w': 'و', // waw
	'e': 'ع', // ain
	'r': 'ر', // reh
	't': 'ت', // teh
	'y': 'ے', // yeh barree
	'u': 'ء', // hamza
	'i': 'ی', // farsi yeh
	'o': 'ہ', // heh goal
	'p': 'پ', // peh

	// Home row
	'a': 'ا', // alef
	's': 'س', // seen
	'd': 'د', // dal
	'f': 'ف', // feh
	'g': 'گ', // gaf
	'h': 'ح', // hah
	'j': 'ج', // jeem
	'k': 'ک', // keheh
	'l': 'ل', // lam

	// Bottom row
	'z': 'ز', // zain
	'x': 'ش', // sheen
	'c': 'چ', // tcheh
	'v': 'ط', // tah
	'b': 'ب', // beh
	'n': 'ن', // noon
	'm': 'م', // meem

	// Shifted top row
	'Q': '\u0652', // sukun
	'W': '\u0651', // shadda
	'E': '\u0670', // superscript alef
	'R': 'ڑ',      // rreh
	'T': 'ٹ',      // tteh
	'Y': '\u064E', // fatha
	'U': 'ئ',      // yeh with hamza
	'I': '\u0650', // kasra
	'O': 'ۃ',      // teh marbuta goal
	'P': '\u064F', // damma

	// Shifted home row
	'A': 'آ',      // alef with madda
	'S': 'ص',      // sad
	'D': 'ڈ',      // ddal
	'F': '\u064D', // kasratan
	'G': 'غ',      // ghain
	'H': 'ھ',      // heh doachashmee
	'J': 'ض',      // dad
	'K': 'خ',      // khah

	// Shifted bottom row
	'Z': 'ذ',      // thal
	'X': 'ژ',      // jeh
	'C': 'ث',      // theh
	'V': 'ظ',      // zah
	'B': '\u064B', // fathatan
	'N': 'ں',      // noon ghunna
	'M': '\u0658', // noon ghunna mark

	// Punctuation
	',': '،', // arabic comma
	'.': '۔', // urdu full stop
	';': '؛', // arabic semicolon
	'?': '؟', // arabic question mark
}

// DefaultTable returns a copy of the built-in CRULP table.
func DefaultTable() map[rune]rune {
	table := make(map[rune]rune, len(crulpTable))
	for k, v := range crulpTable {
		table[k] = v
	}
	return table
}
