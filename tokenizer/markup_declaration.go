package tokenizer

import "strings"

// bogusCommentState implements spec.md section 4.8: once a markup
// declaration is recognized as malformed, everything up to '>' (or EOF)
// becomes comment data verbatim, NUL replaced with U+FFFD as usual.
func bogusCommentState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewComment(t.name.String()), t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '>':
		t.emit(t.sink.NewComment(t.name.String()))
		return false, Data
	case '\u0000':
		t.name.WriteRune('\uFFFD')
		return false, BogusComment
	default:
		t.name.WriteRune(r)
		return false, BogusComment
	}
}

const markupDeclarationPeek = 6

// markupDeclarationOpenState dispatches "<!" into a comment, a DOCTYPE, a
// CDATA section, or a bogus comment, by peeking ahead at the literal text
// that follows without consuming it unless it matches (spec.md 4.8).
func markupDeclarationOpenState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.name.Reset()
		return true, BogusComment
	}
	switch r {
	case '-':
		peeked, _ := t.src.Peek(1)
		if len(peeked) == 1 && peeked[0] == '-' {
			t.src.Discard(1)
			t.name.Reset()
			return false, CommentStart
		}
		t.name.Reset()
		return true, BogusComment
	case 'D', 'd':
		peeked, _ := t.src.Peek(markupDeclarationPeek)
		if len(peeked) == markupDeclarationPeek && strings.EqualFold(string(peeked), "octype") {
			t.dt.rawTagName = string(r) + string(peeked)
			t.src.Discard(markupDeclarationPeek)
			return false, DocTypeState
		}
		t.name.Reset()
		return true, BogusComment
	case '[':
		peeked, _ := t.src.Peek(markupDeclarationPeek)
		if len(peeked) == markupDeclarationPeek && string(peeked) == "CDATA[" {
			t.src.Discard(markupDeclarationPeek)
			if t.Feedback.AdjustedCurrentNodeInForeignContent {
				return false, CDataSection
			}
			t.name.Reset()
			t.name.WriteString("[CDATA[")
			return false, BogusComment
		}
		t.name.Reset()
		return true, BogusComment
	default:
		t.name.Reset()
		return true, BogusComment
	}
}

func commentStartState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, Comment
	}
	switch r {
	case '-':
		return false, CommentStartDash
	case '>':
		t.emit(t.sink.NewComment(t.name.String()))
		return false, Data
	default:
		return true, Comment
	}
}

func commentStartDashState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewComment(t.name.String()), t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '-':
		return false, CommentEnd
	case '>':
		t.emit(t.sink.NewComment(t.name.String()))
		return false, Data
	default:
		t.name.WriteRune('-')
		return true, Comment
	}
}

func commentState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewComment(t.name.String()), t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '<':
		t.name.WriteRune(r)
		return false, CommentLessThanSign
	case '-':
		return false, CommentEndDash
	case '\u0000':
		t.name.WriteRune('\uFFFD')
		return false, Comment
	default:
		t.name.WriteRune(r)
		return false, Comment
	}
}

func commentLessThanSignState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, Comment
	}
	switch r {
	case '!':
		t.name.WriteRune(r)
		return false, CommentLessThanSignBang
	case '<':
		t.name.WriteRune(r)
		return false, CommentLessThanSign
	default:
		return true, Comment
	}
}

func commentLessThanSignBangState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, Comment
	}
	if r == '-' {
		return false, CommentLessThanSignBangDash
	}
	return true, Comment
}

func commentLessThanSignBangDashState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, CommentEndDash
	}
	if r == '-' {
		return false, CommentLessThanSignBangDashDash
	}
	return true, CommentEndDash
}

// commentLessThanSignBangDashDashState implements the nested-comment
// detection: a closing "-->" reached through "<!--" within a comment closes
// normally, anything else is a nested-comment parse error that still closes
// via CommentEnd.
func commentLessThanSignBangDashDashState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, CommentEnd
	}
	if r == '>' {
		return true, CommentEnd
	}
	return true, CommentEnd
}

func commentEndDashState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewComment(t.name.String()), t.sink.NewEndOfFile())
		return false, Data
	}
	if r == '-' {
		return false, CommentEnd
	}
	t.name.WriteRune('-')
	return true, Comment
}

func commentEndState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewComment(t.name.String()), t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '>':
		t.emit(t.sink.NewComment(t.name.String()))
		return false, Data
	case '!':
		return false, CommentEndBang
	case '-':
		t.name.WriteRune('-')
		return false, CommentEnd
	default:
		t.name.WriteRune('-')
		t.name.WriteRune('-')
		return true, Comment
	}
}

func commentEndBangState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewComment(t.name.String()), t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '-':
		t.name.WriteString("--!")
		return false, CommentEndDash
	case '>':
		t.emit(t.sink.NewComment(t.name.String()))
		return false, Data
	default:
		t.name.WriteString("--!")
		return true, Comment
	}
}

func cDataSectionState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	if r == ']' {
		return false, CDataSectionBracket
	}
	t.emit(t.sink.NewCData(string(r)))
	return false, CDataSection
}

func cDataSectionBracketState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewCData("]"))
		return true, CDataSection
	}
	if r == ']' {
		return false, CDataSectionEnd
	}
	t.emit(t.sink.NewCData("]"))
	return true, CDataSection
}

func cDataSectionEndState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewCData("]"), t.sink.NewCData("]"))
		return true, CDataSection
	}
	switch r {
	case ']':
		t.emit(t.sink.NewCData("]"))
		return false, CDataSectionEnd
	case '>':
		return false, Data
	default:
		t.emit(t.sink.NewCData("]"), t.sink.NewCData("]"))
		return true, CDataSection
	}
}
