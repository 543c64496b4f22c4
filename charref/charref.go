// Package charref implements the stateful longest-prefix matcher over
// named HTML character references that the tokenizer's character-reference
// sub-states consume. spec.md calls this an external collaborator
// specified only by its interface; this package is a working
// implementation of that interface over a representative named-reference
// table, grounded on the trie-walk the teacher's (table-less, in the
// retrieved snippet) namedCharacterReferenceState parser performs by hand
// one rune at a time.
package charref

import "strings"

// node is one level of the reference trie. value is non-empty when the
// path from the root to this node spells a complete reference name
// (without its leading '&' or trailing ';').
type node struct {
	children map[rune]*node
	value    string
	terminal bool
}

func newNode() *node {
	return &node{children: map[rune]*node{}}
}

var root = buildTrie(table)

func buildTrie(t map[string]string) *node {
	r := newNode()
	for name, value := range t {
		n := r
		for _, ch := range name {
			next, ok := n.children[ch]
			if !ok {
				next = newNode()
				n.children[ch] = next
			}
			n = next
		}
		n.terminal = true
		n.value = value
	}
	return r
}

// Decoder is a push-character longest-prefix matcher. The tokenizer pushes
// the leading '&' first, then the characters that follow it, one at a
// time; it reports whether the accumulated input still extends some valid
// reference name. GetValue returns the longest matching expansion seen so
// far, falling back to the raw pushed input (including the leading '&') if
// nothing matched.
type Decoder struct {
	cur          *node
	pushed       strings.Builder
	afterAmp     int // length of pushed (in runes after '&') consumed by lastMatch
	lastMatch    string
	lastMatchLen int
}

// NewDecoder returns a Decoder ready to accept the '&' that begins a
// character reference.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.Reset()
	return d
}

// Reset clears all state, ready for a new character reference.
func (d *Decoder) Reset() {
	d.cur = root
	d.pushed.Reset()
	d.lastMatch = ""
	d.lastMatchLen = 0
}

// Push feeds one character into the matcher. The first call for a given
// Reset is expected to be the '&' that begins the reference; it always
// returns true and primes the trie walk. Subsequent calls return true iff
// ch continues a prefix that remains potentially valid; the caller should
// stop pushing once Push returns false.
func (d *Decoder) Push(ch rune) bool {
	pushedBefore := d.pushed.Len()
	d.pushed.WriteRune(ch)

	if pushedBefore == 0 && ch == '&' {
		return true
	}

	if d.cur == nil {
		return false
	}
	next, ok := d.cur.children[ch]
	if !ok {
		d.cur = nil
		return false
	}
	d.cur = next
	if next.terminal {
		d.lastMatch = next.value
		d.lastMatchLen = d.pushed.Len()
	}
	return true
}

// GetValue returns the longest matching expansion found so far, or the
// full pushed input (GetPushedInput) if no prefix of it ever matched a
// named reference.
func (d *Decoder) GetValue() string {
	if d.lastMatch == "" {
		return d.GetPushedInput()
	}
	return d.lastMatch
}

// MatchedLength returns the number of pushed characters (including the
// leading '&') consumed by the longest match; characters pushed after that
// point were not part of the matched reference and the caller is expected
// to have pushed back / not consumed them.
func (d *Decoder) MatchedLength() int {
	return d.lastMatchLen
}

// EndsInSemicolon reports whether the longest match ended on a ';'.
func (d *Decoder) EndsInSemicolon() bool {
	return d.lastMatchLen > 0 && strings.HasSuffix(d.pushed.String()[:d.lastMatchLen], ";")
}

// GetPushedInput returns every character pushed since the last Reset,
// including the leading '&'.
func (d *Decoder) GetPushedInput() string {
	return d.pushed.String()
}
