// Package keymap maps host keyboard characters to the CHIP-8 hex keypad.
//
// The keypad is laid out on the left side of a QWERTY keyboard:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
package keymap

import "unicode"

// Layout contains the host character for every keypad key, indexed by the
// key value.
var Layout = [16]rune{
	'x', '1', '2', '3',
	'q', 'w', 'e', 'a',
	's', 'd', 'z', 'c',
	'4', 'r', 'f', 'v',
}

// Key returns the keypad key for a host character. Letters match in both
// cases.
func Key(r rune) (uint8, bool) {
	r = unicode.ToLower(r)
	for key, host := range Layout {
		if host == r {
			return uint8(key), true
		}
	}
	return 0, false
}
