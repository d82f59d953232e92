package dmx

import "unicode/utf8"

// Item is the contract a value satisfies to become selectable.
//
// Implementations must be pure: Line may be called any number of times
// and must not mutate the item. Lines containing interior newlines are
// not supported; the trailing newline is the sole line delimiter in
// the picker protocol.
type Item interface {
	// KeyLen returns the number of characters in the item's key, or 0
	// if the item has no key portion. Select passes the largest KeyLen
	// over the whole item set to every Line call so all lines in one
	// menu align on the same column.
	KeyLen() int

	// Line renders the item's display line for the given key column
	// width. A trailing newline is optional; Select appends one if it
	// is missing.
	Line(keyLen int) []byte
}

// Pair is the reference Item implementation: a short, easily-typed key
// followed by a verbose description. It renders as the key left-padded
// to the column width, two spaces, and the description.
type Pair struct {
	Key  string
	Desc string
}

func (p Pair) KeyLen() int {
	return utf8.RuneCountInString(p.Key)
}

func (p Pair) Line(keyLen int) []byte {
	b := padKey(nil, p.Key, keyLen)
	b = append(b, ' ', ' ')
	b = append(b, p.Desc...)
	return append(b, '\n')
}

// Str is the most basic Item: the string is presented verbatim, with
// no key column.
type Str string

func (s Str) KeyLen() int { return 0 }

func (s Str) Line(int) []byte { return []byte(s) }

// padKey appends key to b, space-padded on the right to width
// characters. Padding counts runes, not bytes, so multibyte keys line
// up with ASCII ones.
func padKey(b []byte, key string, width int) []byte {
	b = append(b, key...)
	for n := utf8.RuneCountInString(key); n < width; n++ {
		b = append(b, ' ')
	}
	return b
}
