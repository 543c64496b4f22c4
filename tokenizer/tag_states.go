package tokenizer

// tagOpenState implements spec.md section 4.4: on '<', '!' goes to markup
// declaration, '/' to end-tag-open, an ASCII letter starts a start tag
// name, '?' is a bogus comment, anything else re-emits '<' as Data.
func tagOpenState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewData("<", true))
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch {
	case r == '!':
		return false, MarkupDeclarationOpen
	case r == '/':
		return false, EndTagOpen
	case isASCIIAlpha(r):
		t.resetPendingTag()
		t.curTagIsEnd = false
		return true, TagName
	case r == '?':
		t.resetPendingTag()
		return true, BogusComment
	default:
		t.emit(t.sink.NewData("<", true))
		return true, Data
	}
}

// endTagOpenState mirrors tagOpenState with curTagIsEnd=true; a bare
// "</>" is a parse error that silently discards the replay buffer and
// returns to Data (spec.md 4.4).
func endTagOpenState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewData("<", true), t.sink.NewData("/", true), t.sink.NewEndOfFile())
		return false, Data
	}
	switch {
	case isASCIIAlpha(r):
		t.resetPendingTag()
		t.curTagIsEnd = true
		return true, TagName
	case r == '>':
		t.data.Reset()
		return false, Data
	default:
		t.resetPendingTag()
		return true, BogusComment
	}
}

func tagNameState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch {
	case isASCIIWhitespace(r):
		return false, BeforeAttributeName
	case r == '/':
		return false, SelfClosingStartTag
	case r == '>':
		return false, t.emitCurrentTag()
	case isASCIIUpper(r):
		t.name.WriteRune(toLower(r))
		return false, TagName
	case r == '\u0000':
		t.name.WriteRune('\uFFFD')
		return false, TagName
	default:
		t.name.WriteRune(r)
		return false, TagName
	}
}

func selfClosingStartTagState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '>':
		t.curSelfClosing = true
		return false, t.emitCurrentTag()
	default:
		return true, BeforeAttributeName
	}
}
