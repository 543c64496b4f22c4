package tokenizer

import "github.com/heathj/htmltok/token"

// The script-data escape sub-machines implement spec.md section 4.7: a
// "<!--" inside script data suppresses end-tag recognition until a matching
// "-->", and a further "<script"/"</script" pair inside that escaped run
// nests one level deeper (double escape) before end-tag recognition comes
// back. Every character emitted in these states is a ScriptData token, not
// Data, mirroring scriptDataState itself.

func scriptDataEscapeStartState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, ScriptData
	}
	if r == '-' {
		t.emitCharacterData('-', token.ScriptData, false)
		return false, ScriptDataEscapeStartDash
	}
	return true, ScriptData
}

func scriptDataEscapeStartDashState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, ScriptData
	}
	if r == '-' {
		t.emitCharacterData('-', token.ScriptData, false)
		return false, ScriptDataEscapedDashDash
	}
	return true, ScriptData
}

func scriptDataEscapedState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '-':
		t.emitCharacterData('-', token.ScriptData, false)
		return false, ScriptDataEscapedDash
	case '<':
		return false, ScriptDataEscapedLessThanSign
	case '\u0000':
		t.emitCharacterData('\uFFFD', token.ScriptData, false)
		return false, ScriptDataEscaped
	default:
		t.emitCharacterData(r, token.ScriptData, false)
		return false, ScriptDataEscaped
	}
}

func scriptDataEscapedDashState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '-':
		t.emitCharacterData('-', token.ScriptData, false)
		return false, ScriptDataEscapedDashDash
	case '<':
		return false, ScriptDataEscapedLessThanSign
	case '\u0000':
		t.emitCharacterData('\uFFFD', token.ScriptData, false)
		return false, ScriptDataEscaped
	default:
		t.emitCharacterData(r, token.ScriptData, false)
		return false, ScriptDataEscaped
	}
}

func scriptDataEscapedDashDashState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '-':
		t.emitCharacterData('-', token.ScriptData, false)
		return false, ScriptDataEscapedDashDash
	case '<':
		return false, ScriptDataEscapedLessThanSign
	case '>':
		t.emitCharacterData('>', token.ScriptData, false)
		return false, ScriptData
	case '\u0000':
		t.emitCharacterData('\uFFFD', token.ScriptData, false)
		return false, ScriptDataEscaped
	default:
		t.emitCharacterData(r, token.ScriptData, false)
		return false, ScriptDataEscaped
	}
}

func scriptDataEscapedLessThanSignState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emitCharacterData('<', token.ScriptData, false)
		return true, ScriptDataEscaped
	}
	switch {
	case r == '/':
		t.tempBuffer.Reset()
		return false, ScriptDataEscapedEndTagOpen
	case isASCIIAlpha(r):
		t.tempBuffer.Reset()
		t.emitCharacterData('<', token.ScriptData, false)
		return true, ScriptDataDoubleEscapeStart
	default:
		t.emitCharacterData('<', token.ScriptData, false)
		return true, ScriptDataEscaped
	}
}

var scriptDataEscapedEndTagOpenState, scriptDataEscapedEndTagNameState = func() (handler, handler) {
	_, eto, etn := makeRawTextEndTagFamily(ScriptDataEscaped, ScriptDataEscapedEndTagOpen, ScriptDataEscapedEndTagName, token.ScriptData, false)
	return eto, etn
}()

// scriptDataDoubleEscapeStartState and scriptDataDoubleEscapeEndState share
// the "does the accumulated buffer spell 'script'" test that flips between
// one and two levels of escape; both emit the matched character as data
// regardless of which way they flip.
func scriptDataDoubleEscapeStartState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, ScriptDataEscaped
	}
	switch {
	case isASCIIWhitespace(r) || r == '/' || r == '>':
		t.emitCharacterData(r, token.ScriptData, false)
		if t.tempBuffer.String() == "script" {
			return false, ScriptDataDoubleEscaped
		}
		return false, ScriptDataEscaped
	case isASCIIUpper(r):
		t.emitCharacterData(r, token.ScriptData, false)
		t.tempBuffer.WriteRune(toLower(r))
		return false, ScriptDataDoubleEscapeStart
	case isASCIILower(r):
		t.emitCharacterData(r, token.ScriptData, false)
		t.tempBuffer.WriteRune(r)
		return false, ScriptDataDoubleEscapeStart
	default:
		return true, ScriptDataEscaped
	}
}

func scriptDataDoubleEscapedState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '-':
		t.emitCharacterData('-', token.ScriptData, false)
		return false, ScriptDataDoubleEscapedDash
	case '<':
		t.emitCharacterData('<', token.ScriptData, false)
		return false, ScriptDataDoubleEscapedLessThanSign
	case '\u0000':
		t.emitCharacterData('\uFFFD', token.ScriptData, false)
		return false, ScriptDataDoubleEscaped
	default:
		t.emitCharacterData(r, token.ScriptData, false)
		return false, ScriptDataDoubleEscaped
	}
}

func scriptDataDoubleEscapedDashState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '-':
		t.emitCharacterData('-', token.ScriptData, false)
		return false, ScriptDataDoubleEscapedDashDash
	case '<':
		t.emitCharacterData('<', token.ScriptData, false)
		return false, ScriptDataDoubleEscapedLessThanSign
	case '\u0000':
		t.emitCharacterData('\uFFFD', token.ScriptData, false)
		return false, ScriptDataDoubleEscaped
	default:
		t.emitCharacterData(r, token.ScriptData, false)
		return false, ScriptDataDoubleEscaped
	}
}

func scriptDataDoubleEscapedDashDashState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '-':
		t.emitCharacterData('-', token.ScriptData, false)
		return false, ScriptDataDoubleEscapedDashDash
	case '<':
		t.emitCharacterData('<', token.ScriptData, false)
		return false, ScriptDataDoubleEscapedLessThanSign
	case '>':
		t.emitCharacterData('>', token.ScriptData, false)
		return false, ScriptData
	case '\u0000':
		t.emitCharacterData('\uFFFD', token.ScriptData, false)
		return false, ScriptDataDoubleEscaped
	default:
		t.emitCharacterData(r, token.ScriptData, false)
		return false, ScriptDataDoubleEscaped
	}
}

func scriptDataDoubleEscapedLessThanSignState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, ScriptDataDoubleEscaped
	}
	if r == '/' {
		t.tempBuffer.Reset()
		t.emitCharacterData('/', token.ScriptData, false)
		return false, ScriptDataDoubleEscapeEnd
	}
	return true, ScriptDataDoubleEscaped
}

func scriptDataDoubleEscapeEndState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, ScriptDataDoubleEscaped
	}
	switch {
	case isASCIIWhitespace(r) || r == '/' || r == '>':
		t.emitCharacterData(r, token.ScriptData, false)
		if t.tempBuffer.String() == "script" {
			return false, ScriptDataEscaped
		}
		return false, ScriptDataDoubleEscaped
	case isASCIIUpper(r):
		t.emitCharacterData(r, token.ScriptData, false)
		t.tempBuffer.WriteRune(toLower(r))
		return false, ScriptDataDoubleEscapeEnd
	case isASCIILower(r):
		t.emitCharacterData(r, token.ScriptData, false)
		t.tempBuffer.WriteRune(r)
		return false, ScriptDataDoubleEscapeEnd
	default:
		return true, ScriptDataDoubleEscaped
	}
}
