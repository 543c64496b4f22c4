package tokenizer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heathj/htmltok/source"
	"github.com/heathj/htmltok/token"
)

func tokenizeAll(t *testing.T, html string, cfg Config) []token.Token {
	t.Helper()
	tok := New(source.New(strings.NewReader(html)), token.Builder{}, cfg)
	var out []token.Token
	for {
		tt, ok, err := tok.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, tt)
	}
}

func tokenizeDefault(t *testing.T, html string) []token.Token {
	t.Helper()
	return tokenizeAll(t, html, DefaultConfig())
}

func lastOfKind(toks []token.Token, k token.Kind) (token.Token, bool) {
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].Kind == k {
			return toks[i], true
		}
	}
	return token.Token{}, false
}

func TestDataStateEmitsCharacterTokens(t *testing.T) {
	toks := tokenizeDefault(t, "hi")
	require.Len(t, toks, 3) // 'h', 'i', EOF
	require.Equal(t, token.Data, toks[0].Kind)
	require.Equal(t, "h", toks[0].Text)
	require.True(t, toks[0].EncodeEntities)
	require.Equal(t, "i", toks[1].Text)
	require.Equal(t, token.EndOfFile, toks[2].Kind)
}

func TestStartAndEndTagWithAttributes(t *testing.T) {
	toks := tokenizeDefault(t, `<a href="x" target='_blank' disabled>hi</a>`)
	start, ok := func() (token.Token, bool) {
		for _, tt := range toks {
			if tt.Kind == token.StartTag {
				return tt, true
			}
		}
		return token.Token{}, false
	}()
	require.True(t, ok)
	require.Equal(t, "a", start.TagName)
	require.False(t, start.IsEmptyElement)
	require.Equal(t, []token.Attribute{
		{Name: "href", Value: "x"},
		{Name: "target", Value: "_blank"},
		{Name: "disabled", Value: ""},
	}, start.Attributes)

	end, ok := lastOfKind(toks, token.EndTag)
	require.True(t, ok)
	require.Equal(t, "a", end.TagName)
	require.Nil(t, end.Attributes)
}

func TestDuplicateAttributeIsDropped(t *testing.T) {
	toks := tokenizeDefault(t, `<script src='123' src='456'></script>`)
	start, ok := lastOfKindFirst(toks, token.StartTag)
	require.True(t, ok)
	require.Equal(t, []token.Attribute{{Name: "src", Value: "123"}}, start.Attributes)
}

func lastOfKindFirst(toks []token.Token, k token.Kind) (token.Token, bool) {
	for _, tt := range toks {
		if tt.Kind == k {
			return tt, true
		}
	}
	return token.Token{}, false
}

func TestAttributeNameUppercasedAndNULReplaced(t *testing.T) {
	toks := tokenizeDefault(t, "<script ABC=\x00123'/script>")
	start, ok := lastOfKindFirst(toks, token.StartTag)
	require.True(t, ok)
	require.Equal(t, []token.Attribute{{Name: "abc", Value: "�123'/script"}}, start.Attributes)
}

func TestSelfClosingStartTag(t *testing.T) {
	toks := tokenizeDefault(t, `<br/>`)
	start, ok := lastOfKindFirst(toks, token.StartTag)
	require.True(t, ok)
	require.True(t, start.IsEmptyElement)
}

func TestRCDataAppliesContentModelAndDecodesEntities(t *testing.T) {
	toks := tokenizeDefault(t, `<title>a &amp; b</title>`)
	var text strings.Builder
	for _, tt := range toks {
		if tt.Kind == token.Data {
			text.WriteString(tt.Text)
		}
	}
	require.Equal(t, "a & b", text.String())
	end, ok := lastOfKindFirst(toks, token.EndTag)
	require.True(t, ok)
	require.Equal(t, "title", end.TagName)
}

func TestRawTextDoesNotDecodeEntities(t *testing.T) {
	toks := tokenizeDefault(t, `<style>a &amp; b</style>`)
	var text strings.Builder
	for _, tt := range toks {
		if tt.Kind == token.Data {
			text.WriteString(tt.Text)
		}
	}
	require.Equal(t, "a &amp; b", text.String())
}

func TestScriptDataEscapedDoesNotMatchNestedEndTagEarly(t *testing.T) {
	toks := tokenizeDefault(t, "<script>var x = '<!--<script>-->';</script>")
	var script strings.Builder
	for _, tt := range toks {
		if tt.Kind == token.ScriptData {
			script.WriteString(tt.Text)
		}
	}
	require.Contains(t, script.String(), "<!--<script>-->")
	end, ok := lastOfKindFirst(toks, token.EndTag)
	require.True(t, ok)
	require.Equal(t, "script", end.TagName)
}

func TestCommentBasic(t *testing.T) {
	toks := tokenizeDefault(t, `<!-- hello -->`)
	c, ok := lastOfKindFirst(toks, token.Comment)
	require.True(t, ok)
	require.Equal(t, " hello ", c.Text)
}

func TestBogusCommentFromMalformedMarkupDeclaration(t *testing.T) {
	toks := tokenizeDefault(t, `<!wat>`)
	c, ok := lastOfKindFirst(toks, token.Comment)
	require.True(t, ok)
	require.Equal(t, "wat", c.Text)
}

func TestDocTypeBasic(t *testing.T) {
	toks := tokenizeDefault(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`)
	dt, ok := lastOfKindFirst(toks, token.DocType)
	require.True(t, ok)
	require.Equal(t, "html", dt.Name)
	require.Equal(t, "-//W3C//DTD HTML 4.01//EN", dt.PublicIdentifier)
	require.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", dt.SystemIdentifier)
	require.False(t, dt.ForceQuirks)
}

func TestDocTypeWithNoKeywordsForcesQuirksOnMismatch(t *testing.T) {
	toks := tokenizeDefault(t, `<!DOCTYPE html SOMETHING "x">`)
	dt, ok := lastOfKindFirst(toks, token.DocType)
	require.True(t, ok)
	require.True(t, dt.ForceQuirks)
}

func TestCDataSectionInForeignContent(t *testing.T) {
	tok := New(source.New(strings.NewReader(`<![CDATA[hi]]>`)), token.Builder{}, DefaultConfig())
	tok.Feedback.AdjustedCurrentNodeInForeignContent = true
	var out []token.Token
	for {
		tt, ok, err := tok.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			break
		}
		out = append(out, tt)
	}
	var cdata strings.Builder
	for _, tt := range out {
		if tt.Kind == token.CData {
			cdata.WriteString(tt.Text)
		}
	}
	require.Equal(t, "hi", cdata.String())
}

func TestNamedCharacterReferenceMaximalMunch(t *testing.T) {
	toks := tokenizeDefault(t, "&notin;")
	var text strings.Builder
	for _, tt := range toks {
		if tt.Kind == token.Data {
			text.WriteString(tt.Text)
		}
	}
	require.Equal(t, "∉", text.String())
}

func TestAmbiguousAmpersandFallsBackToLiteralText(t *testing.T) {
	toks := tokenizeDefault(t, "&notarealentity;")
	var text strings.Builder
	for _, tt := range toks {
		if tt.Kind == token.Data {
			text.WriteString(tt.Text)
		}
	}
	require.Equal(t, "&notarealentity;", text.String())
}

func TestAttributeValueLegacyLeaveAloneRule(t *testing.T) {
	// "&amp" (no trailing ';') followed by '=' must NOT be resolved: the
	// ambiguous character reference is left as literal text inside the
	// attribute value per spec.md's attribute-value variant.
	toks := tokenizeDefault(t, `<a href="x&amp=y">`)
	start, ok := lastOfKindFirst(toks, token.StartTag)
	require.True(t, ok)
	require.Equal(t, "x&amp=y", start.Attributes[0].Value)
}

func TestAttributeValueNamedReferenceWithSemicolonIsResolved(t *testing.T) {
	toks := tokenizeDefault(t, `<a href="x&amp;y">`)
	start, ok := lastOfKindFirst(toks, token.StartTag)
	require.True(t, ok)
	require.Equal(t, "x&y", start.Attributes[0].Value)
}

func TestNumericCharacterReferenceDecimalAndHex(t *testing.T) {
	toks := tokenizeDefault(t, "&#65;&#x41;")
	var text strings.Builder
	for _, tt := range toks {
		if tt.Kind == token.Data {
			text.WriteString(tt.Text)
		}
	}
	require.Equal(t, "AA", text.String())
}

func TestNumericCharacterReferenceWindows1252Remap(t *testing.T) {
	// 0x80 is remapped to the euro sign (U+20AC) by the Windows-1252 C1 table.
	toks := tokenizeDefault(t, "&#128;")
	var text strings.Builder
	for _, tt := range toks {
		if tt.Kind == token.Data {
			text.WriteString(tt.Text)
		}
	}
	require.Equal(t, "€", text.String())
}

func TestNumericCharacterReferenceOutOfRangeBecomesReplacementChar(t *testing.T) {
	toks := tokenizeDefault(t, "&#x110000;")
	var text strings.Builder
	for _, tt := range toks {
		if tt.Kind == token.Data {
			text.WriteString(tt.Text)
		}
	}
	require.Equal(t, "�", text.String())
}

func TestDecodeCharacterReferencesDisabledLeavesAmpersandLiteral(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DecodeCharacterReferences = false
	toks := tokenizeAll(t, "&amp;", cfg)
	var text strings.Builder
	for _, tt := range toks {
		if tt.Kind == token.Data {
			text.WriteString(tt.Text)
		}
	}
	require.Equal(t, "&amp;", text.String())
}

func TestPlainTextNeverExits(t *testing.T) {
	tok := New(source.New(strings.NewReader("<p>x</p>")), token.Builder{}, DefaultConfig())
	tok.state = PlainText
	var out []token.Token
	for {
		tt, ok, err := tok.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			break
		}
		out = append(out, tt)
	}
	for _, tt := range out {
		require.NotEqual(t, token.StartTag, tt.Kind)
		require.NotEqual(t, token.EndTag, tt.Kind)
	}
}

func TestAttributeValueSurvivesWhitespaceBeforeEquals(t *testing.T) {
	toks := tokenizeDefault(t, `<a href = "x" id='y'>`)
	start, ok := lastOfKindFirst(toks, token.StartTag)
	require.True(t, ok)
	require.Equal(t, []token.Attribute{
		{Name: "href", Value: "x"},
		{Name: "id", Value: "y"},
	}, start.Attributes)
}

func TestAttributeWithNoValueFollowedByAnotherAttribute(t *testing.T) {
	toks := tokenizeDefault(t, `<input disabled foo="bar">`)
	start, ok := lastOfKindFirst(toks, token.StartTag)
	require.True(t, ok)
	require.Equal(t, []token.Attribute{
		{Name: "disabled", Value: ""},
		{Name: "foo", Value: "bar"},
	}, start.Attributes)
}

func TestDocTypeRawTagNamePreservesCasingSeen(t *testing.T) {
	toks := tokenizeDefault(t, `<!DOCTYPE html>`)
	dt, ok := lastOfKindFirst(toks, token.DocType)
	require.True(t, ok)
	require.Equal(t, "DOCTYPE", dt.RawTagName)
}

func TestDocTypeRawTagNamePreservesLowercaseSpelling(t *testing.T) {
	toks := tokenizeDefault(t, `<!doctype html>`)
	dt, ok := lastOfKindFirst(toks, token.DocType)
	require.True(t, ok)
	require.Equal(t, "doctype", dt.RawTagName)
}

func TestReplayTextRoundTripsDecodedEntities(t *testing.T) {
	// ReplayText re-escapes decoded Data tokens; for text with no tags in
	// between, the result should reproduce the original source markup
	// (spec.md section 8's round-trip invariant).
	toks := tokenizeDefault(t, `<p>a &lt; b &amp; c</p>`)
	require.Equal(t, "a &lt; b &amp; c", ReplayText(toks))
}

func TestEscapeForReplayUsesQuotAttributeVariant(t *testing.T) {
	require.Equal(t, `say &quot;hi&quot;`, EscapeForReplay(`say "hi"`, true))
	require.Equal(t, "a &lt; b", EscapeForReplay("a < b", false))
	require.Equal(t, "caf&amp;nbsp;", EscapeForReplay("caf&nbsp;", false))
}

func TestTagStackTracksScopeAcrossNestedTags(t *testing.T) {
	// Drive a TagStack off a real tokenizer run over nested markup, the way
	// a tree constructor would track open elements, and check that a scope
	// query mid-stream agrees with what the nesting actually looks like.
	toks := tokenizeDefault(t, `<div><table><tr><td>x</td></tr></table></div>`)

	var stack TagStack
	var sawTableScopeAtTD bool
	for _, tok := range toks {
		switch tok.Kind {
		case token.StartTag:
			if !tok.IsEmptyElement {
				stack.Push(tok.TagName)
				if tok.TagName == "td" {
					sawTableScopeAtTD = stack.ContainsInSpecificScope("table", "html")
				}
			}
		case token.EndTag:
			stack.Pop()
		}
	}

	require.True(t, sawTableScopeAtTD)
	require.Equal(t, 0, stack.Len())
}

func TestTagStackContainsInSpecificScopeStopsAtBoundary(t *testing.T) {
	var stack TagStack
	stack.Push("div")
	stack.Push("table")
	stack.Push("tr")

	require.True(t, stack.ContainsInSpecificScope("table", "html"))
	require.False(t, stack.ContainsInSpecificScope("div", "table"))
	require.Equal(t, "tr", stack.Top())
}
