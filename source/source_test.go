package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestReadReturnsRunesInOrder(t *testing.T) {
	r := New(strings.NewReader("ab"))
	ch, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, 'a', ch)
	ch, err = r.Read()
	require.NoError(t, err)
	require.Equal(t, 'b', ch)
}

func TestReadReturnsEOFAtEnd(t *testing.T) {
	r := New(strings.NewReader(""))
	ch, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, rune(EOF), ch)
}

func TestReadNormalizesCRLFToLF(t *testing.T) {
	r := New(strings.NewReader("a\r\nb"))
	ch, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, 'a', ch)
	ch, err = r.Read()
	require.NoError(t, err)
	require.Equal(t, '\n', ch)
	ch, err = r.Read()
	require.NoError(t, err)
	require.Equal(t, 'b', ch)
}

func TestReadNormalizesLoneCRToLF(t *testing.T) {
	r := New(strings.NewReader("a\rb"))
	ch, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, 'a', ch)
	ch, err = r.Read()
	require.NoError(t, err)
	require.Equal(t, '\n', ch)
	ch, err = r.Read()
	require.NoError(t, err)
	require.Equal(t, 'b', ch)
}

func TestPositionTracksLineAndColumn(t *testing.T) {
	r := New(strings.NewReader("ab\ncd"))
	line, col := r.Position()
	require.Equal(t, 1, line)
	require.Equal(t, 1, col)

	r.Read() // 'a'
	r.Read() // 'b'
	line, col = r.Position()
	require.Equal(t, 1, line)
	require.Equal(t, 3, col)

	r.Read() // '\n'
	line, col = r.Position()
	require.Equal(t, 2, line)
	require.Equal(t, 1, col)

	r.Read() // 'c'
	line, col = r.Position()
	require.Equal(t, 2, line)
	require.Equal(t, 2, col)
}

func TestPeekDoesNotConsume(t *testing.T) {
	r := New(strings.NewReader("hello"))
	peeked, err := r.Peek(3)
	require.NoError(t, err)
	require.Equal(t, []rune{'h', 'e', 'l'}, peeked)

	ch, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, 'h', ch)
}

func TestPeekReturnsFewerRunesAtEOF(t *testing.T) {
	r := New(strings.NewReader("hi"))
	peeked, err := r.Peek(5)
	require.NoError(t, err)
	require.Equal(t, []rune{'h', 'i'}, peeked)
}

func TestPeekHandlesMultibyteRunes(t *testing.T) {
	r := New(strings.NewReader("héllo"))
	peeked, err := r.Peek(2)
	require.NoError(t, err)
	require.Equal(t, []rune{'h', 'é'}, peeked)
}

func TestDiscardSkipsRunesAndAdvancesPosition(t *testing.T) {
	r := New(strings.NewReader("abcd"))
	err := r.Discard(2)
	require.NoError(t, err)

	ch, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, 'c', ch)

	line, col := r.Position()
	require.Equal(t, 1, line)
	require.Equal(t, 4, col)
}

func TestDiscardPastEOFDoesNotError(t *testing.T) {
	r := New(strings.NewReader("a"))
	err := r.Discard(5)
	require.NoError(t, err)

	ch, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, rune(EOF), ch)
}

func TestWithEncodingTranscodesToUTF8(t *testing.T) {
	// 0xE9 in Windows-1252 is 'é'.
	raw := []byte{0xE9}
	r := New(strings.NewReader(string(raw)), WithEncoding(charmap.Windows1252))
	ch, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, 'é', ch)
}
