package tokenizer

import "github.com/heathj/htmltok/token"

// flushCodePointsAsCharacterReference implements spec.md section 4.3's
// "flush code points consumed as a character reference" step: inside an
// attribute value the pending text becomes part of the attribute, otherwise
// it is emitted as ordinary Data characters.
func (t *Tokenizer) flushCodePointsAsCharacterReference() {
	text := t.tempBuffer.String()
	if wasConsumedAsPartOfAttribute(t.returnState) {
		t.attrValue.WriteString(text)
		return
	}
	for _, r := range text {
		t.emitCharacterData(r, token.Data, true)
	}
}

// characterReferenceState implements spec.md section 4.3: a leading digit
// or letter goes to the named-reference matcher, '#' to the numeric one,
// anything else flushes the bare '&' and reconsumes in returnState.
func characterReferenceState(t *Tokenizer, r rune, eof bool) (bool, State) {
	t.tempBuffer.Reset()
	t.tempBuffer.WriteRune('&')
	t.decoder.Reset()
	t.decoder.Push('&')

	if eof {
		t.flushCodePointsAsCharacterReference()
		return true, t.returnState
	}
	switch {
	case isASCIIAlnum(r):
		return true, NamedCharacterReference
	case r == '#':
		t.tempBuffer.WriteRune(r)
		return false, NumericCharacterReference
	default:
		t.flushCodePointsAsCharacterReference()
		return true, t.returnState
	}
}

// namedCharacterReferenceState walks t.decoder one character at a time,
// pushing every peeked character it still accepts into the decoder, until
// the decoder reports the accumulated text can no longer extend any known
// reference name. Only the characters of the longest complete match are
// consumed and written to the temp buffer. It then either substitutes the
// matched expansion, keeps the raw text for the attribute-value legacy
// rule, or falls back to the ambiguous-ampersand recovery path.
func namedCharacterReferenceState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.flushCodePointsAsCharacterReference()
		return false, AmbiguousAmpersand
	}

	if !t.decoder.Push(r) {
		t.flushCodePointsAsCharacterReference()
		return true, AmbiguousAmpersand
	}

	// Look as far ahead as the trie still admits a longer reference name,
	// without committing any of it to the source yet: only the prefix that
	// actually spells out a complete reference name (decoder.MatchedLength)
	// is "consumed" by the algorithm, however far the trial walk went
	// beyond it.
	lookahead := 0
	for {
		peeked, err := t.src.Peek(lookahead + 1)
		if err != nil || len(peeked) <= lookahead {
			break
		}
		if !t.decoder.Push(peeked[lookahead]) {
			break
		}
		lookahead++
	}

	// MatchedLength counts '&' and r (the two characters already pushed
	// before this lookahead began) plus however many of the peeked
	// characters belong to the match.
	matchedAfterR := t.decoder.MatchedLength() - 2
	if matchedAfterR < 0 {
		matchedAfterR = 0
	}
	if matchedAfterR > 0 {
		peeked, _ := t.src.Peek(matchedAfterR)
		t.src.Discard(matchedAfterR)
		t.tempBuffer.WriteRune(r)
		for _, ru := range peeked {
			t.tempBuffer.WriteRune(ru)
		}
	} else {
		t.tempBuffer.WriteRune(r)
	}

	if t.decoder.MatchedLength() == 0 {
		t.flushCodePointsAsCharacterReference()
		return false, AmbiguousAmpersand
	}

	if wasConsumedAsPartOfAttribute(t.returnState) && !t.decoder.EndsInSemicolon() {
		peeked, err := t.src.Peek(1)
		if err == nil && len(peeked) == 1 && (peeked[0] == '=' || isASCIIAlnum(peeked[0])) {
			t.tempBuffer.WriteRune(peeked[0])
			t.src.Discard(1)
			t.flushCodePointsAsCharacterReference()
			return false, t.returnState
		}
	}

	t.tempBuffer.Reset()
	t.tempBuffer.WriteString(t.decoder.GetValue())
	t.flushCodePointsAsCharacterReference()
	return false, t.returnState
}

func ambiguousAmpersandState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, t.returnState
	}
	switch {
	case isASCIIAlnum(r):
		if wasConsumedAsPartOfAttribute(t.returnState) {
			t.attrValue.WriteRune(r)
		} else {
			t.emitCharacterData(r, token.Data, true)
		}
		return false, AmbiguousAmpersand
	case r == ';':
		return true, t.returnState
	default:
		return true, t.returnState
	}
}

func numericCharacterReferenceState(t *Tokenizer, r rune, eof bool) (bool, State) {
	t.charRefCode = 0
	if eof {
		return true, DecimalCharacterReferenceStart
	}
	switch r {
	case 'x', 'X':
		t.tempBuffer.WriteRune(r)
		return false, HexadecimalCharacterReferenceStart
	default:
		return true, DecimalCharacterReferenceStart
	}
}

func hexadecimalCharacterReferenceStartState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.flushCodePointsAsCharacterReference()
		return true, t.returnState
	}
	switch {
	case isHexDigit(r):
		return true, HexadecimalCharacterReference
	default:
		t.flushCodePointsAsCharacterReference()
		return true, t.returnState
	}
}

func decimalCharacterReferenceStartState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		t.flushCodePointsAsCharacterReference()
		return true, t.returnState
	}
	switch {
	case isASCIIDigit(r):
		return true, DecimalCharacterReference
	default:
		t.flushCodePointsAsCharacterReference()
		return true, t.returnState
	}
}

func hexadecimalCharacterReferenceState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, NumericCharacterReferenceEnd
	}
	switch {
	case isASCIIDigit(r):
		t.charRefCode = t.charRefCode*16 + int(r-'0')
		return false, HexadecimalCharacterReference
	case r >= 'A' && r <= 'F':
		t.charRefCode = t.charRefCode*16 + int(r-'A'+10)
		return false, HexadecimalCharacterReference
	case r >= 'a' && r <= 'f':
		t.charRefCode = t.charRefCode*16 + int(r-'a'+10)
		return false, HexadecimalCharacterReference
	case r == ';':
		return false, NumericCharacterReferenceEnd
	default:
		return true, NumericCharacterReferenceEnd
	}
}

func decimalCharacterReferenceState(t *Tokenizer, r rune, eof bool) (bool, State) {
	if eof {
		return true, NumericCharacterReferenceEnd
	}
	switch {
	case isASCIIDigit(r):
		t.charRefCode = t.charRefCode*10 + int(r-'0')
		return false, DecimalCharacterReference
	case r == ';':
		return false, NumericCharacterReferenceEnd
	default:
		return true, NumericCharacterReferenceEnd
	}
}

func isHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'A' && r <= 'F') || (r >= 'a' && r <= 'f')
}

// numericCharacterReferenceEndStateTable remaps the Windows-1252 C1 control
// block onto the codepoints most authors actually meant (spec.md 4.3).
var numericCharacterReferenceEndStateTable = map[int]rune{
	0x80: 0x20AC,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8E: 0x017D,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9E: 0x017E,
	0x9F: 0x0178,
}

// numericCharacterReferenceEndState substitutes the accumulated code point
// per spec.md 4.3's surrogate/non-character/control rules and reconsumes
// the character that ended HexadecimalCharacterReference/
// DecimalCharacterReference in returnState. Unlike the teacher, it does not
// need to unread a rune first: the "reconsume" boolean already carries the
// un-consumed character back into returnState without a pushback primitive.
func numericCharacterReferenceEndState(t *Tokenizer, r rune, eof bool) (bool, State) {
	switch {
	case t.charRefCode == 0:
		t.charRefCode = 0xFFFD
	case t.charRefCode > 0x10FFFF:
		t.charRefCode = 0xFFFD
	case isSurrogate(t.charRefCode):
		t.charRefCode = 0xFFFD
	case isNonCharacter(t.charRefCode):
		// parse error, value kept as-is
	case t.charRefCode == 0x0D || (isControl(t.charRefCode) && !isASCIIWhitespace(rune(t.charRefCode))):
		if mapped, ok := numericCharacterReferenceEndStateTable[t.charRefCode]; ok {
			t.charRefCode = int(mapped)
		}
	}

	t.tempBuffer.Reset()
	t.tempBuffer.WriteRune(rune(t.charRefCode))
	t.flushCodePointsAsCharacterReference()
	return true, t.returnState
}
