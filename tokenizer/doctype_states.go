package tokenizer

import (
	"strings"

	"github.com/heathj/htmltok/token"
)

// emitDocType builds a DocType token from the in-progress docTypeBuilder
// and emits it, per spec.md section 4.9.
func (t *Tokenizer) emitDocType() {
	t.emit(t.sink.NewDocType(token.DocTypeFields{
		RawTagName:       t.dt.rawTagName,
		Name:             t.dt.name.String(),
		HasName:          t.dt.hasName,
		PublicKeyword:    t.dt.publicKeyword,
		SystemKeyword:    t.dt.systemKeyword,
		PublicIdentifier: t.dt.publicID.String(),
		HasPublicID:      t.dt.hasPublicID,
		SystemIdentifier: t.dt.systemID.String(),
		HasSystemID:      t.dt.hasSystemID,
		ForceQuirks:      t.dt.forceQuirks,
	}))
}

func docTypeState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeDocTypeName
	default:
		return true, BeforeDocTypeName
	}
}

func beforeDocTypeNameState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch {
	case isASCIIWhitespace(r):
		return false, BeforeDocTypeName
	case isASCIIUpper(r):
		t.dt.hasName = true
		t.dt.name.WriteRune(toLower(r))
		return false, DocTypeName
	case r == '\u0000':
		t.dt.hasName = true
		t.dt.name.WriteRune('\uFFFD')
		return false, DocTypeName
	case r == '>':
		t.dt.forceQuirks = true
		t.emitDocType()
		return false, Data
	default:
		t.dt.hasName = true
		t.dt.name.WriteRune(r)
		return false, DocTypeName
	}
}

func docTypeNameState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch {
	case isASCIIWhitespace(r):
		return false, AfterDocTypeName
	case r == '>':
		t.emitDocType()
		return false, Data
	case isASCIIUpper(r):
		t.dt.name.WriteRune(toLower(r))
		return false, DocTypeName
	case r == '\u0000':
		t.dt.name.WriteRune('\uFFFD')
		return false, DocTypeName
	default:
		t.dt.name.WriteRune(r)
		return false, DocTypeName
	}
}

func afterDocTypeNameState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch {
	case isASCIIWhitespace(r):
		return false, AfterDocTypeName
	case r == '>':
		t.emitDocType()
		return false, Data
	default:
		peeked, _ := t.src.Peek(5)
		candidate := string(r) + string(peeked)
		switch {
		case len(peeked) == 5 && strings.EqualFold(candidate, "public"):
			t.src.Discard(5)
			return false, AfterDocTypePublicKeyword
		case len(peeked) == 5 && strings.EqualFold(candidate, "system"):
			t.src.Discard(5)
			return false, AfterDocTypeSystemKeyword
		default:
			t.dt.forceQuirks = true
			return true, BogusDocType
		}
	}
}

func afterDocTypePublicKeywordState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeDocTypePublicIdentifier
	case '"':
		t.dt.hasPublicID = true
		return false, DocTypePublicIdentifierDoubleQuoted
	case '\'':
		t.dt.hasPublicID = true
		return false, DocTypePublicIdentifierSingleQuoted
	case '>':
		t.dt.forceQuirks = true
		t.emitDocType()
		return false, Data
	default:
		t.dt.forceQuirks = true
		return true, BogusDocType
	}
}

func beforeDocTypePublicIdentifierState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeDocTypePublicIdentifier
	case '"':
		t.dt.hasPublicID = true
		return false, DocTypePublicIdentifierDoubleQuoted
	case '\'':
		t.dt.hasPublicID = true
		return false, DocTypePublicIdentifierSingleQuoted
	case '>':
		t.dt.forceQuirks = true
		t.emitDocType()
		return false, Data
	default:
		t.dt.forceQuirks = true
		return true, BogusDocType
	}
}

func docTypePublicIdentifierDoubleQuotedState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '"':
		return false, AfterDocTypePublicIdentifier
	case '\u0000':
		t.dt.publicID.WriteRune('\uFFFD')
		return false, DocTypePublicIdentifierDoubleQuoted
	case '>':
		t.dt.forceQuirks = true
		t.emitDocType()
		return false, Data
	default:
		t.dt.publicID.WriteRune(r)
		return false, DocTypePublicIdentifierDoubleQuoted
	}
}

func docTypePublicIdentifierSingleQuotedState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\'':
		return false, AfterDocTypePublicIdentifier
	case '\u0000':
		t.dt.publicID.WriteRune('\uFFFD')
		return false, DocTypePublicIdentifierSingleQuoted
	case '>':
		t.dt.forceQuirks = true
		t.emitDocType()
		return false, Data
	default:
		t.dt.publicID.WriteRune(r)
		return false, DocTypePublicIdentifierSingleQuoted
	}
}

func afterDocTypePublicIdentifierState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BetweenDocTypePublicAndSystemIdentifiers
	case '>':
		t.emitDocType()
		return false, Data
	case '"':
		t.dt.hasSystemID = true
		return false, DocTypeSystemIdentifierDoubleQuoted
	case '\'':
		t.dt.hasSystemID = true
		return false, DocTypeSystemIdentifierSingleQuoted
	default:
		t.dt.forceQuirks = true
		return true, BogusDocType
	}
}

func betweenDocTypePublicAndSystemIdentifiersState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BetweenDocTypePublicAndSystemIdentifiers
	case '>':
		t.emitDocType()
		return false, Data
	case '"':
		t.dt.hasSystemID = true
		return false, DocTypeSystemIdentifierDoubleQuoted
	case '\'':
		t.dt.hasSystemID = true
		return false, DocTypeSystemIdentifierSingleQuoted
	default:
		t.dt.forceQuirks = true
		return true, BogusDocType
	}
}

func afterDocTypeSystemKeywordState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeDocTypeSystemIdentifier
	case '"':
		t.dt.hasSystemID = true
		return false, DocTypeSystemIdentifierDoubleQuoted
	case '\'':
		t.dt.hasSystemID = true
		return false, DocTypeSystemIdentifierSingleQuoted
	case '>':
		t.dt.forceQuirks = true
		t.emitDocType()
		return false, Data
	default:
		t.dt.forceQuirks = true
		return true, BogusDocType
	}
}

func beforeDocTypeSystemIdentifierState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeDocTypeSystemIdentifier
	case '"':
		t.dt.hasSystemID = true
		return false, DocTypeSystemIdentifierDoubleQuoted
	case '\'':
		t.dt.hasSystemID = true
		return false, DocTypeSystemIdentifierSingleQuoted
	case '>':
		t.dt.forceQuirks = true
		t.emitDocType()
		return false, Data
	default:
		t.dt.forceQuirks = true
		return true, BogusDocType
	}
}

func docTypeSystemIdentifierDoubleQuotedState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '"':
		return false, AfterDocTypeSystemIdentifier
	case '\u0000':
		t.dt.systemID.WriteRune('\uFFFD')
		return false, DocTypeSystemIdentifierDoubleQuoted
	case '>':
		t.dt.forceQuirks = true
		t.emitDocType()
		return false, Data
	default:
		t.dt.systemID.WriteRune(r)
		return false, DocTypeSystemIdentifierDoubleQuoted
	}
}

func docTypeSystemIdentifierSingleQuotedState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\'':
		return false, AfterDocTypeSystemIdentifier
	case '\u0000':
		t.dt.systemID.WriteRune('\uFFFD')
		return false, DocTypeSystemIdentifierSingleQuoted
	case '>':
		t.dt.forceQuirks = true
		t.emitDocType()
		return false, Data
	default:
		t.dt.systemID.WriteRune(r)
		return false, DocTypeSystemIdentifierSingleQuoted
	}
}

func afterDocTypeSystemIdentifierState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.dt.forceQuirks = true
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, AfterDocTypeSystemIdentifier
	case '>':
		t.emitDocType()
		return false, Data
	default:
		return true, BogusDocType
	}
}

func bogusDocTypeState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emitDocType()
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '>':
		t.emitDocType()
		return false, Data
	default:
		return false, BogusDocType
	}
}
