package tokenizer

// beforeAttributeNameState implements spec.md section 4.5: whitespace is
// skipped, '/' and '>' (and EOF) are reconsumed in AfterAttributeName, a
// bare '=' is a parse error that starts an attribute named "=", and
// anything else starts a new attribute.
func beforeAttributeNameState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, AfterAttributeName
	}
	switch {
	case isASCIIWhitespace(r):
		return false, BeforeAttributeName
	case r == '/' || r == '>':
		return true, AfterAttributeName
	case r == '=':
		t.attrName.WriteRune(r)
		return false, AttributeName
	default:
		return true, AttributeName
	}
}

func attributeNameState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.hasDuplicateAttributeName()
		return true, AfterAttributeName
	}
	switch {
	case isASCIIWhitespace(r) || r == '/' || r == '>':
		t.hasDuplicateAttributeName()
		return true, AfterAttributeName
	case r == '=':
		t.hasDuplicateAttributeName()
		return false, BeforeAttributeValue
	case isASCIIUpper(r):
		t.attrName.WriteRune(toLower(r))
		return false, AttributeName
	case r == '\u0000':
		t.attrName.WriteRune('\uFFFD')
		return false, AttributeName
	default:
		t.attrName.WriteRune(r)
		return false, AttributeName
	}
}

// afterAttributeNameState commits the pending attribute only once it's
// clear no value follows ('/', '>', or the start of the next name); '='
// leaves it pending so the upcoming value attaches to the same attribute
// instead of a freshly reset one.
func afterAttributeNameState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch {
	case isASCIIWhitespace(r):
		return false, AfterAttributeName
	case r == '/':
		t.commitAttribute()
		return false, SelfClosingStartTag
	case r == '=':
		return false, BeforeAttributeValue
	case r == '>':
		t.commitAttribute()
		return false, t.emitCurrentTag()
	default:
		t.commitAttribute()
		return true, AttributeName
	}
}

func beforeAttributeValueState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, AttributeValueUnquoted
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeAttributeValue
	case '"':
		t.quote = '"'
		return false, AttributeValueDoubleQuoted
	case '\'':
		t.quote = '\''
		return false, AttributeValueSingleQuoted
	case '>':
		t.commitAttribute()
		return false, t.emitCurrentTag()
	default:
		return true, AttributeValueUnquoted
	}
}

func attributeValueDoubleQuotedState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '"':
		t.commitAttribute()
		return false, AfterAttributeValueQuoted
	case '&':
		t.returnState = AttributeValueDoubleQuoted
		return false, CharacterReference
	case '\u0000':
		t.attrValue.WriteRune('\uFFFD')
		return false, AttributeValueDoubleQuoted
	default:
		t.attrValue.WriteRune(r)
		return false, AttributeValueDoubleQuoted
	}
}

func attributeValueSingleQuotedState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\'':
		t.commitAttribute()
		return false, AfterAttributeValueQuoted
	case '&':
		t.returnState = AttributeValueSingleQuoted
		return false, CharacterReference
	case '\u0000':
		t.attrValue.WriteRune('\uFFFD')
		return false, AttributeValueSingleQuoted
	default:
		t.attrValue.WriteRune(r)
		return false, AttributeValueSingleQuoted
	}
}

func attributeValueUnquotedState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		t.commitAttribute()
		return false, BeforeAttributeName
	case '&':
		t.returnState = AttributeValueUnquoted
		return false, CharacterReference
	case '>':
		t.commitAttribute()
		return false, t.emitCurrentTag()
	case '\u0000':
		t.attrValue.WriteRune('\uFFFD')
		return false, AttributeValueUnquoted
	default:
		t.attrValue.WriteRune(r)
		return false, AttributeValueUnquoted
	}
}

func afterAttributeValueQuotedState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.emit(t.sink.NewEndOfFile())
		return false, Data
	}
	switch r {
	case '\t', '\n', '\f', ' ':
		return false, BeforeAttributeName
	case '/':
		return false, SelfClosingStartTag
	case '>':
		return false, t.emitCurrentTag()
	default:
		return true, BeforeAttributeName
	}
}
