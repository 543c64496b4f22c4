package tokenizer

// dispatch maps every State to the handler that implements it. EndOfFile has
// no entry: step() simply stops once the queued EndOfFile token is dequeued
// and t.done is set, so the state machine is never re-entered in that state.
var dispatch = map[State]handler{
	Data:       dataState,
	RCData:     rcDataState,
	RawText:    rawTextState,
	ScriptData: scriptDataState,
	PlainText:  plaintextState,

	TagOpen:            tagOpenState,
	EndTagOpen:         endTagOpenState,
	TagName:            tagNameState,
	SelfClosingStartTag: selfClosingStartTagState,

	RCDataLessThanSign: rcDataLessThanSignState,
	RCDataEndTagOpen:   rcDataEndTagOpenState,
	RCDataEndTagName:   rcDataEndTagNameState,

	RawTextLessThanSign: rawTextLessThanSignState,
	RawTextEndTagOpen:   rawTextEndTagOpenState,
	RawTextEndTagName:   rawTextEndTagNameState,

	ScriptDataLessThanSign: scriptDataLessThanSignState,
	ScriptDataEndTagOpen:   scriptDataEndTagOpenState,
	ScriptDataEndTagName:   scriptDataEndTagNameState,

	ScriptDataEscapeStart:     scriptDataEscapeStartState,
	ScriptDataEscapeStartDash: scriptDataEscapeStartDashState,
	ScriptDataEscaped:         scriptDataEscapedState,
	ScriptDataEscapedDash:     scriptDataEscapedDashState,
	ScriptDataEscapedDashDash: scriptDataEscapedDashDashState,

	ScriptDataEscapedLessThanSign: scriptDataEscapedLessThanSignState,
	ScriptDataEscapedEndTagOpen:   scriptDataEscapedEndTagOpenState,
	ScriptDataEscapedEndTagName:   scriptDataEscapedEndTagNameState,

	ScriptDataDoubleEscapeStart:         scriptDataDoubleEscapeStartState,
	ScriptDataDoubleEscaped:             scriptDataDoubleEscapedState,
	ScriptDataDoubleEscapedDash:         scriptDataDoubleEscapedDashState,
	ScriptDataDoubleEscapedDashDash:     scriptDataDoubleEscapedDashDashState,
	ScriptDataDoubleEscapedLessThanSign: scriptDataDoubleEscapedLessThanSignState,
	ScriptDataDoubleEscapeEnd:           scriptDataDoubleEscapeEndState,

	BeforeAttributeName:       beforeAttributeNameState,
	AttributeName:             attributeNameState,
	AfterAttributeName:        afterAttributeNameState,
	BeforeAttributeValue:      beforeAttributeValueState,
	AttributeValueDoubleQuoted: attributeValueDoubleQuotedState,
	AttributeValueSingleQuoted: attributeValueSingleQuotedState,
	AttributeValueUnquoted:    attributeValueUnquotedState,
	AfterAttributeValueQuoted: afterAttributeValueQuotedState,

	BogusComment:          bogusCommentState,
	MarkupDeclarationOpen: markupDeclarationOpenState,
	CommentStart:          commentStartState,
	CommentStartDash:      commentStartDashState,
	Comment:               commentState,
	CommentLessThanSign:             commentLessThanSignState,
	CommentLessThanSignBang:         commentLessThanSignBangState,
	CommentLessThanSignBangDash:     commentLessThanSignBangDashState,
	CommentLessThanSignBangDashDash: commentLessThanSignBangDashDashState,
	CommentEndDash: commentEndDashState,
	CommentEnd:     commentEndState,
	CommentEndBang: commentEndBangState,

	DocTypeState:                  docTypeState,
	BeforeDocTypeName:             beforeDocTypeNameState,
	DocTypeName:                   docTypeNameState,
	AfterDocTypeName:              afterDocTypeNameState,
	AfterDocTypePublicKeyword:     afterDocTypePublicKeywordState,
	BeforeDocTypePublicIdentifier: beforeDocTypePublicIdentifierState,
	DocTypePublicIdentifierDoubleQuoted:      docTypePublicIdentifierDoubleQuotedState,
	DocTypePublicIdentifierSingleQuoted:      docTypePublicIdentifierSingleQuotedState,
	AfterDocTypePublicIdentifier:             afterDocTypePublicIdentifierState,
	BetweenDocTypePublicAndSystemIdentifiers: betweenDocTypePublicAndSystemIdentifiersState,
	AfterDocTypeSystemKeyword:                afterDocTypeSystemKeywordState,
	BeforeDocTypeSystemIdentifier:            beforeDocTypeSystemIdentifierState,
	DocTypeSystemIdentifierDoubleQuoted:       docTypeSystemIdentifierDoubleQuotedState,
	DocTypeSystemIdentifierSingleQuoted:       docTypeSystemIdentifierSingleQuotedState,
	AfterDocTypeSystemIdentifier:              afterDocTypeSystemIdentifierState,
	BogusDocType:                              bogusDocTypeState,

	CDataSection:        cDataSectionState,
	CDataSectionBracket: cDataSectionBracketState,
	CDataSectionEnd:     cDataSectionEndState,

	CharacterReference:                 characterReferenceState,
	NamedCharacterReference:            namedCharacterReferenceState,
	AmbiguousAmpersand:                 ambiguousAmpersandState,
	NumericCharacterReference:          numericCharacterReferenceState,
	HexadecimalCharacterReferenceStart: hexadecimalCharacterReferenceStartState,
	DecimalCharacterReferenceStart:     decimalCharacterReferenceStartState,
	HexadecimalCharacterReference:      hexadecimalCharacterReferenceState,
	DecimalCharacterReference:          decimalCharacterReferenceState,
	NumericCharacterReferenceEnd:       numericCharacterReferenceEndState,
}
