package tokenizer

import "github.com/heathj/htmltok/token"

// makeRawTextEndTagFamily builds the less-than-sign / end-tag-open /
// end-tag-name triplet shared by RCDATA, RAWTEXT and ScriptData (spec.md
// section 4.6): on "</" followed by letters that spell the tag that opened
// the content model, the machine switches to tag parsing; anything else
// flushes the attempt as literal character tokens and returns to the
// content state. The three content models differ only in which state they
// return to and how a flushed character is re-emitted, so one generator
// produces all three families instead of the teacher's three copies.
func makeRawTextEndTagFamily(dataSt, endTagOpenSt, endTagNameSt State, kind token.Kind, encodeEntities bool) (lessThanSign, endTagOpen, endTagName handler) {
	flushLessThanSign := func(t *Tokenizer) {
		t.emitCharacterData('<', kind, encodeEntities)
	}
	flushEndTagOpen := func(t *Tokenizer) {
		t.emitCharacterData('<', kind, encodeEntities)
		t.emitCharacterData('/', kind, encodeEntities)
	}
	flushEndTagName := func(t *Tokenizer) {
		flushEndTagOpen(t)
		for _, r := range t.tempBuffer.String() {
			t.emitCharacterData(r, kind, encodeEntities)
		}
	}

	lessThanSign = func(t *Tokenizer, r rune, eof bool) (bool, State) {
		if eof {
			flushLessThanSign(t)
			return true, dataSt
		}
		if r == '/' {
			t.tempBuffer.Reset()
			return false, endTagOpenSt
		}
		flushLessThanSign(t)
		return true, dataSt
	}

	endTagOpen = func(t *Tokenizer, r rune, eof bool) (bool, State) {
		if eof {
			flushEndTagOpen(t)
			return true, dataSt
		}
		if isASCIIAlpha(r) {
			t.resetPendingTag()
			t.curTagIsEnd = true
			return true, endTagNameSt
		}
		flushEndTagOpen(t)
		return true, dataSt
	}

	endTagName = func(t *Tokenizer, r rune, eof bool) (bool, State) {
		if eof {
			flushEndTagName(t)
			return true, dataSt
		}
		switch {
		case isASCIIWhitespace(r):
			if t.isAppropriateEndTag() {
				return false, BeforeAttributeName
			}
			flushEndTagName(t)
			return true, dataSt
		case r == '/':
			if t.isAppropriateEndTag() {
				return false, SelfClosingStartTag
			}
			flushEndTagName(t)
			return true, dataSt
		case r == '>':
			if t.isAppropriateEndTag() {
				return false, t.emitCurrentTag()
			}
			flushEndTagName(t)
			return true, dataSt
		case isASCIIUpper(r):
			t.tempBuffer.WriteRune(r)
			t.name.WriteRune(toLower(r))
			return false, endTagNameSt
		case isASCIILower(r):
			t.tempBuffer.WriteRune(r)
			t.name.WriteRune(r)
			return false, endTagNameSt
		default:
			flushEndTagName(t)
			return true, dataSt
		}
	}
	return
}

var (
	rcDataLessThanSignState, rcDataEndTagOpenState, rcDataEndTagNameState = makeRawTextEndTagFamily(
		RCData, RCDataEndTagOpen, RCDataEndTagName, token.Data, true)

	rawTextLessThanSignState, rawTextEndTagOpenState, rawTextEndTagNameState = makeRawTextEndTagFamily(
		RawText, RawTextEndTagOpen, RawTextEndTagName, token.Data, false)

	scriptDataEndTagOpenState, scriptDataEndTagNameState = func() (handler, handler) {
		_, eto, etn := makeRawTextEndTagFamily(ScriptData, ScriptDataEndTagOpen, ScriptDataEndTagName, token.ScriptData, false)
		return eto, etn
	}()
)

// scriptDataLessThanSignState differs from the generic family: a '!' enters
// the script-data escape sub-machine (spec.md 4.7) instead of falling
// through to plain ScriptData.
func scriptDataLessThanSignState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emitCharacterData('<', token.ScriptData, false)
		return true, ScriptData
	}
	switch r {
	case '/':
		t.tempBuffer.Reset()
		return false, ScriptDataEndTagOpen
	case '!':
		t.emitCharacterData('<', token.ScriptData, false)
		t.emitCharacterData('!', token.ScriptData, false)
		return false, ScriptDataEscapeStart
	default:
		t.emitCharacterData('<', token.ScriptData, false)
		return true, ScriptData
	}
}
