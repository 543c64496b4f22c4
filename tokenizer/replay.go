package tokenizer

import (
	"strings"

	"github.com/heathj/htmltok/token"
)

// EscapeForReplay re-applies the escaping the teacher's serializer
// (parser/fragment.go's escapeString) used to turn decoded text back into
// source-equivalent markup, run in the opposite direction from where the
// teacher used it: there it re-escaped a built DOM tree for output; here a
// round-trip test uses it to verify that a Data token's decoded Text,
// re-escaped, reproduces the source up to NUL -> U+FFFD substitution
// (spec.md section 8's round-trip invariant).
func EscapeForReplay(s string, attrVal bool) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "\u00A0", "&nbsp;")
	if attrVal {
		s = strings.ReplaceAll(s, "\"", "&quot;")
	} else {
		s = strings.ReplaceAll(s, "<", "&lt;")
		s = strings.ReplaceAll(s, ">", "&gt;")
	}
	return s
}

// ReplayText concatenates the re-escaped text of every Data token in toks
// that was produced from decodable content (EncodeEntities true — Data and
// RCDATA, never RAWTEXT/ScriptData/PlainText, which spec.md 4.6 says never
// decode entities). A test can compare this against the run of source text
// that produced toks, after applying the same NUL -> U+FFFD substitution to
// the source, to check the round-trip invariant without reconstructing a
// full document.
func ReplayText(toks []token.Token) string {
	var b strings.Builder
	for _, tok := range toks {
		if tok.Kind == token.Data && tok.EncodeEntities {
			b.WriteString(EscapeForReplay(tok.Text, false))
		}
	}
	return b.String()
}
