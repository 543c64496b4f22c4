package charref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pushAll(d *Decoder, s string) {
	for _, ch := range s {
		if !d.Push(ch) {
			return
		}
	}
}

func TestDecoderExactMatchWithSemicolon(t *testing.T) {
	d := NewDecoder()
	pushAll(d, "&amp;")
	require.Equal(t, "&", d.GetValue())
	require.Equal(t, len("&amp;"), d.MatchedLength())
	require.True(t, d.EndsInSemicolon())
}

func TestDecoderLegacyMatchWithoutSemicolon(t *testing.T) {
	d := NewDecoder()
	pushAll(d, "&amp")
	require.Equal(t, "&", d.GetValue())
	require.Equal(t, len("&amp"), d.MatchedLength())
	require.False(t, d.EndsInSemicolon())
}

func TestDecoderMaximalMunchPrefersLongerMatch(t *testing.T) {
	// "notin;" is a complete reference; "not" alone is not in the table,
	// so the longest match must be the full "notin;" form.
	d := NewDecoder()
	pushAll(d, "&notin;")
	require.Equal(t, "∉", d.GetValue())
	require.Equal(t, len("&notin;"), d.MatchedLength())
}

func TestDecoderNoMatchFallsBackToPushedInput(t *testing.T) {
	d := NewDecoder()
	ok := true
	for _, ch := range "&zzzzz" {
		if !d.Push(ch) {
			ok = false
			break
		}
	}
	require.False(t, ok)
	require.Equal(t, 0, d.MatchedLength())
	require.Equal(t, "&z", d.GetPushedInput())
	require.Equal(t, "&z", d.GetValue())
}

func TestDecoderPushReturnsFalseOnceNoPrefixRemainsValid(t *testing.T) {
	d := NewDecoder()
	require.True(t, d.Push('&'))
	require.True(t, d.Push('a'))
	require.True(t, d.Push('m'))
	require.True(t, d.Push('p'))
	require.True(t, d.Push(';'))
	require.False(t, d.Push('!'))
}

func TestDecoderResetClearsState(t *testing.T) {
	d := NewDecoder()
	pushAll(d, "&amp;")
	require.NotZero(t, d.MatchedLength())

	d.Reset()
	require.Equal(t, 0, d.MatchedLength())
	require.Equal(t, "", d.GetPushedInput())
	require.False(t, d.EndsInSemicolon())
}

func TestDecoderNamedReferenceWithoutTrailingSemicolonStillTerminal(t *testing.T) {
	d := NewDecoder()
	pushAll(d, "&copy")
	require.Equal(t, "©", d.GetValue())
	require.False(t, d.EndsInSemicolon())
}
