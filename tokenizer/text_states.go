package tokenizer

import "github.com/heathj/htmltok/token"

// dataState implements spec.md section 4.2's Data row: '&' enters character
// reference handling (when decoding is enabled), '<' enters tag open, NUL
// is kept as-is (unlike RCDATA/RAWTEXT/ScriptData, which replace it).
func dataState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '&':
		if !t.cfg.DecodeCharacterReferences {
			t.data.WriteRune(r)
			t.emitCharacterData(r, token.Data, true)
			return false, Data
		}
		t.returnState = Data
		return false, CharacterReference
	case '<':
		t.data.WriteRune(r)
		return false, TagOpen
	default:
		t.data.WriteRune(r)
		t.emitCharacterData(r, token.Data, true)
		return false, Data
	}
}

func rcDataState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '&':
		if !t.cfg.DecodeCharacterReferences {
			t.data.WriteRune(r)
			t.emitCharacterData(r, token.Data, true)
			return false, RCData
		}
		t.returnState = RCData
		return false, CharacterReference
	case '<':
		t.data.WriteRune(r)
		return false, RCDataLessThanSign
	case '\u0000':
		t.data.WriteRune(r)
		t.emitCharacterData('\uFFFD', token.Data, true)
		return false, RCData
	default:
		t.data.WriteRune(r)
		t.emitCharacterData(r, token.Data, true)
		return false, RCData
	}
}

func rawTextState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '<':
		t.data.WriteRune(r)
		return false, RawTextLessThanSign
	case '\u0000':
		t.data.WriteRune(r)
		t.emitCharacterData('\uFFFD', token.Data, false)
		return false, RawText
	default:
		t.data.WriteRune(r)
		t.emitCharacterData(r, token.Data, false)
		return false, RawText
	}
}

func scriptDataState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '<':
		t.data.WriteRune(r)
		return false, ScriptDataLessThanSign
	case '\u0000':
		t.data.WriteRune(r)
		t.emitCharacterData('\uFFFD', token.ScriptData, false)
		return false, ScriptData
	default:
		t.data.WriteRune(r)
		t.emitCharacterData(r, token.ScriptData, false)
		return false, ScriptData
	}
}

// plaintextState never exits to any other state: once entered (only by
// the <plaintext> content-model switch, spec.md 4.10) everything up to
// EOF is literal data.
func plaintextState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, PlainText
	}
	switch r {
	case '\u0000':
		t.data.WriteRune(r)
		t.emitCharacterData('\uFFFD', token.Data, false)
		return false, PlainText
	default:
		t.data.WriteRune(r)
		t.emitCharacterData(r, token.Data, false)
		return false, PlainText
	}
}
