package tokenizer

// State enumerates the tokenizer's roughly seventy states, per
// spec.md section 3. Data is the initial value, EndOfFile the terminal,
// absorbing value.
type State uint8

const (
	Data State = iota
	RCData
	RawText
	ScriptData
	PlainText
	TagOpen
	EndTagOpen
	TagName
	RCDataLessThanSign
	RCDataEndTagOpen
	RCDataEndTagName
	RawTextLessThanSign
	RawTextEndTagOpen
	RawTextEndTagName
	ScriptDataLessThanSign
	ScriptDataEndTagOpen
	ScriptDataEndTagName
	ScriptDataEscapeStart
	ScriptDataEscapeStartDash
	ScriptDataEscaped
	ScriptDataEscapedDash
	ScriptDataEscapedDashDash
	ScriptDataEscapedLessThanSign
	ScriptDataEscapedEndTagOpen
	ScriptDataEscapedEndTagName
	ScriptDataDoubleEscapeStart
	ScriptDataDoubleEscaped
	ScriptDataDoubleEscapedDash
	ScriptDataDoubleEscapedDashDash
	ScriptDataDoubleEscapedLessThanSign
	ScriptDataDoubleEscapeEnd
	BeforeAttributeName
	AttributeName
	AfterAttributeName
	BeforeAttributeValue
	AttributeValueDoubleQuoted
	AttributeValueSingleQuoted
	AttributeValueUnquoted
	AfterAttributeValueQuoted
	SelfClosingStartTag
	BogusComment
	MarkupDeclarationOpen
	CommentStart
	CommentStartDash
	Comment
	CommentLessThanSign
	CommentLessThanSignBang
	CommentLessThanSignBangDash
	CommentLessThanSignBangDashDash
	CommentEndDash
	CommentEnd
	CommentEndBang
	DocTypeState
	BeforeDocTypeName
	DocTypeName
	AfterDocTypeName
	AfterDocTypePublicKeyword
	BeforeDocTypePublicIdentifier
	DocTypePublicIdentifierDoubleQuoted
	DocTypePublicIdentifierSingleQuoted
	AfterDocTypePublicIdentifier
	BetweenDocTypePublicAndSystemIdentifiers
	AfterDocTypeSystemKeyword
	BeforeDocTypeSystemIdentifier
	DocTypeSystemIdentifierDoubleQuoted
	DocTypeSystemIdentifierSingleQuoted
	AfterDocTypeSystemIdentifier
	BogusDocType
	CDataSection
	CDataSectionBracket
	CDataSectionEnd
	CharacterReference
	NamedCharacterReference
	AmbiguousAmpersand
	NumericCharacterReference
	HexadecimalCharacterReferenceStart
	DecimalCharacterReferenceStart
	HexadecimalCharacterReference
	DecimalCharacterReference
	NumericCharacterReferenceEnd
	EndOfFile
)

//go:generate stringer -type=State
var stateNames = map[State]string{
	Data: "Data", RCData: "RCData", RawText: "RawText", ScriptData: "ScriptData",
	PlainText: "PlainText", TagOpen: "TagOpen", EndTagOpen: "EndTagOpen", TagName: "TagName",
	RCDataLessThanSign: "RCDataLessThanSign", RCDataEndTagOpen: "RCDataEndTagOpen",
	RCDataEndTagName: "RCDataEndTagName", RawTextLessThanSign: "RawTextLessThanSign",
	RawTextEndTagOpen: "RawTextEndTagOpen", RawTextEndTagName: "RawTextEndTagName",
	ScriptDataLessThanSign: "ScriptDataLessThanSign", ScriptDataEndTagOpen: "ScriptDataEndTagOpen",
	ScriptDataEndTagName: "ScriptDataEndTagName", ScriptDataEscapeStart: "ScriptDataEscapeStart",
	ScriptDataEscapeStartDash: "ScriptDataEscapeStartDash", ScriptDataEscaped: "ScriptDataEscaped",
	ScriptDataEscapedDash: "ScriptDataEscapedDash", ScriptDataEscapedDashDash: "ScriptDataEscapedDashDash",
	ScriptDataEscapedLessThanSign: "ScriptDataEscapedLessThanSign",
	ScriptDataEscapedEndTagOpen:   "ScriptDataEscapedEndTagOpen",
	ScriptDataEscapedEndTagName:  "ScriptDataEscapedEndTagName",
	ScriptDataDoubleEscapeStart:  "ScriptDataDoubleEscapeStart",
	ScriptDataDoubleEscaped:      "ScriptDataDoubleEscaped",
	ScriptDataDoubleEscapedDash:  "ScriptDataDoubleEscapedDash",
	ScriptDataDoubleEscapedDashDash:     "ScriptDataDoubleEscapedDashDash",
	ScriptDataDoubleEscapedLessThanSign: "ScriptDataDoubleEscapedLessThanSign",
	ScriptDataDoubleEscapeEnd:           "ScriptDataDoubleEscapeEnd",
	BeforeAttributeName:                "BeforeAttributeName",
	AttributeName:                      "AttributeName",
	AfterAttributeName:                 "AfterAttributeName",
	BeforeAttributeValue:               "BeforeAttributeValue",
	AttributeValueDoubleQuoted:         "AttributeValueDoubleQuoted",
	AttributeValueSingleQuoted:         "AttributeValueSingleQuoted",
	AttributeValueUnquoted:             "AttributeValueUnquoted",
	AfterAttributeValueQuoted:          "AfterAttributeValueQuoted",
	SelfClosingStartTag:                "SelfClosingStartTag",
	BogusComment:                       "BogusComment",
	MarkupDeclarationOpen:              "MarkupDeclarationOpen",
	CommentStart:                       "CommentStart",
	CommentStartDash:                   "CommentStartDash",
	Comment:                            "Comment",
	CommentLessThanSign:                "CommentLessThanSign",
	CommentLessThanSignBang:            "CommentLessThanSignBang",
	CommentLessThanSignBangDash:        "CommentLessThanSignBangDash",
	CommentLessThanSignBangDashDash:    "CommentLessThanSignBangDashDash",
	CommentEndDash:                     "CommentEndDash",
	CommentEnd:                         "CommentEnd",
	CommentEndBang:                     "CommentEndBang",
	DocTypeState:                       "DocType",
	BeforeDocTypeName:                  "BeforeDocTypeName",
	DocTypeName:                        "DocTypeName",
	AfterDocTypeName:                   "AfterDocTypeName",
	AfterDocTypePublicKeyword:          "AfterDocTypePublicKeyword",
	BeforeDocTypePublicIdentifier:      "BeforeDocTypePublicIdentifier",
	DocTypePublicIdentifierDoubleQuoted: "DocTypePublicIdentifierDoubleQuoted",
	DocTypePublicIdentifierSingleQuoted: "DocTypePublicIdentifierSingleQuoted",
	AfterDocTypePublicIdentifier:       "AfterDocTypePublicIdentifier",
	BetweenDocTypePublicAndSystemIdentifiers: "BetweenDocTypePublicAndSystemIdentifiers",
	AfterDocTypeSystemKeyword:          "AfterDocTypeSystemKeyword",
	BeforeDocTypeSystemIdentifier:      "BeforeDocTypeSystemIdentifier",
	DocTypeSystemIdentifierDoubleQuoted: "DocTypeSystemIdentifierDoubleQuoted",
	DocTypeSystemIdentifierSingleQuoted: "DocTypeSystemIdentifierSingleQuoted",
	AfterDocTypeSystemIdentifier:       "AfterDocTypeSystemIdentifier",
	BogusDocType:                       "BogusDocType",
	CDataSection:                       "CDataSection",
	CDataSectionBracket:                "CDataSectionBracket",
	CDataSectionEnd:                    "CDataSectionEnd",
	CharacterReference:                 "CharacterReference",
	NamedCharacterReference:            "NamedCharacterReference",
	AmbiguousAmpersand:                 "AmbiguousAmpersand",
	NumericCharacterReference:          "NumericCharacterReference",
	HexadecimalCharacterReferenceStart: "HexadecimalCharacterReferenceStart",
	DecimalCharacterReferenceStart:     "DecimalCharacterReferenceStart",
	HexadecimalCharacterReference:      "HexadecimalCharacterReference",
	DecimalCharacterReference:          "DecimalCharacterReference",
	NumericCharacterReferenceEnd:       "NumericCharacterReferenceEnd",
	EndOfFile:                          "EndOfFile",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}
