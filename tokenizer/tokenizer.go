// Package tokenizer implements the WHATWG HTML tokenization state machine:
// a pull-driven, single-threaded engine that consumes runes from a
// character source and emits a lazy stream of HTML tokens. See SPEC_FULL.md
// for the full component design this package implements.
package tokenizer

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/heathj/htmltok/charref"
	"github.com/heathj/htmltok/htmlid"
	"github.com/heathj/htmltok/source"
	"github.com/heathj/htmltok/token"
)

// Config is the tokenizer's single recognised option (spec.md section 6).
type Config struct {
	// DecodeCharacterReferences controls whether '&' entities in Data and
	// RCDATA content are resolved. Attribute-value references are always
	// decoded regardless of this flag. Default true.
	DecodeCharacterReferences bool
}

// DefaultConfig returns the tokenizer's default configuration.
func DefaultConfig() Config {
	return Config{DecodeCharacterReferences: true}
}

// Feedback lets a downstream tree-construction stage steer the tokenizer
// the way spec.md section 4.8's CDATA-vs-bogus-comment decision requires:
// the tokenizer on its own cannot know whether the "adjusted current node"
// is in the HTML namespace. A tree constructor updates Feedback between
// calls to Next.
type Feedback struct {
	// AdjustedCurrentNodeInForeignContent, when true, makes a "<![CDATA["
	// markup declaration enter CDataSection instead of BogusComment.
	AdjustedCurrentNodeInForeignContent bool
	// ForceState, when non-nil, overrides the tokenizer's current state
	// before the next rune is read (used to enter RAWTEXT/RCDATA/etc. for
	// foreign or script contexts that tree construction, not tokenization,
	// decides).
	ForceState *State
}

// Tokenizer is the ~70-state WHATWG HTML tokenizer engine.
type Tokenizer struct {
	cfg Config
	log *logrus.Entry

	src   *source.Reader
	sink  token.TokenSink
	queue []token.Token
	done  bool

	state, returnState State

	// data mirrors every character consumed since the last emit, so it can
	// be flushed verbatim as a Data token on parse errors (spec.md 3).
	data strings.Builder
	// name is the current lexeme: tag name, attribute name/value, doctype
	// name/identifier, or comment body, depending on state.
	name strings.Builder

	tempBuffer strings.Builder
	decoder    *charref.Decoder
	charRefCode int

	curTagIsEnd    bool
	curSelfClosing bool
	curAttrs       []token.Attribute
	attrName       strings.Builder
	attrValue      strings.Builder
	dupAttr        bool

	quote rune // 0, '"', or '\''

	dt docTypeBuilder

	activeTag        string // tag name that caused entry into RCDATA/RAWTEXT/PlainText/ScriptData
	lastStartTagName string

	htmlNamespace htmlid.Namespace

	Feedback Feedback
}

type docTypeBuilder struct {
	rawTagName    string
	name          strings.Builder
	hasName       bool
	publicKeyword bool
	systemKeyword bool
	publicID      strings.Builder
	hasPublicID   bool
	systemID      strings.Builder
	hasSystemID   bool
	forceQuirks   bool
}

func (d *docTypeBuilder) reset() {
	*d = docTypeBuilder{}
}

// New constructs a Tokenizer reading from src, emitting tokens built by
// sink, using the given Config. The initial state is Data.
func New(src *source.Reader, sink token.TokenSink, cfg Config) *Tokenizer {
	return &Tokenizer{
		cfg:     cfg,
		log:     logrus.WithField("component", "tokenizer"),
		src:     src,
		sink:    sink,
		decoder: charref.NewDecoder(),
		state:   Data,
	}
}

// State returns the tokenizer's current state (observable between calls,
// per spec.md section 6).
func (t *Tokenizer) State() State { return t.state }

// HTMLNamespace returns the namespace detected from the last emitted
// <html> start tag's xmlns attribute, or htmlid.HTMLNamespace if none has
// been seen.
func (t *Tokenizer) HTMLNamespace() htmlid.Namespace { return t.htmlNamespace }

// Position returns the (line, column) just past the last character
// consumed.
func (t *Tokenizer) Position() (line, column int) { return t.src.Position() }

// Next returns the next token in the stream, or ok=false once EndOfFile has
// been reached and no token remains pending (spec.md section 4.1). It is
// the tokenizer's one public operation: read_next_token.
func (t *Tokenizer) Next(ctx context.Context) (token.Token, bool, error) {
	for {
		if tok, ok := t.dequeue(); ok {
			return tok, true, nil
		}
		if t.done {
			return token.Token{}, false, nil
		}
		select {
		case <-ctx.Done():
			return token.Token{}, false, ctx.Err()
		default:
		}

		if t.Feedback.ForceState != nil {
			t.state = *t.Feedback.ForceState
			t.Feedback.ForceState = nil
		}

		r, err := t.src.Read()
		if err != nil {
			return token.Token{}, false, err
		}
		eof := r == source.EOF

		t.step(r, eof)
	}
}

func (t *Tokenizer) dequeue() (token.Token, bool) {
	if len(t.queue) == 0 {
		return token.Token{}, false
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	if tok.Kind == token.EndOfFile {
		t.done = true
	}
	return tok, true
}

// step dispatches one input character through the state machine, looping
// while handlers ask to reconsume the same character in a new state.
func (t *Tokenizer) step(r rune, eof bool) {
	reconsume := true
	for reconsume {
		line, col := t.src.Position()
		t.log.WithFields(logrus.Fields{
			"state": t.state, "rune": string(r), "eof": eof, "line": line, "column": col,
		}).Trace("tokenizer step")

		handler := dispatch[t.state]
		if handler == nil {
			return
		}
		reconsume, t.state = handler(t, r, eof)
	}
}

// emit appends tokens to the pending queue. Per the teacher's emit
// bookkeeping, a start tag's name is recorded so later generic end-tag
// matching (spec.md 4.6) can compare against it, and end tags never carry
// attributes or self-closing flags through to a consumer even if the
// input tried to supply them.
func (t *Tokenizer) emit(toks ...token.Token) {
	for _, tok := range toks {
		if tok.Kind == token.EndTag {
			tok.Attributes = nil
			tok.IsEmptyElement = false
		} else if tok.Kind == token.StartTag {
			t.lastStartTagName = tok.TagName
		}
		t.queue = append(t.queue, tok)
	}
	t.data.Reset()
}

// flushData emits the raw replay buffer as a Data token, preserving input
// bit for bit, and clears pending tag/attribute/doctype state — the "flush
// raw" error policy (spec.md section 7) applied on unexpected EOF inside a
// multi-character construct.
func (t *Tokenizer) flushData() {
	if t.data.Len() == 0 {
		return
	}
	t.log.WithField("text", t.data.String()).Debug("flushing raw replay buffer as Data token")
	t.emit(t.sink.NewData(t.data.String(), true))
	t.resetPendingTag()
}

func (t *Tokenizer) resetPendingTag() {
	t.name.Reset()
	t.curTagIsEnd = false
	t.curSelfClosing = false
	t.curAttrs = nil
	t.attrName.Reset()
	t.attrValue.Reset()
	t.dupAttr = false
	t.dt.reset()
}

func (t *Tokenizer) emitCharacterData(r rune, kind token.Kind, encodeEntities bool) {
	switch kind {
	case token.ScriptData:
		t.emit(t.sink.NewScriptData(string(r)))
	default:
		t.emit(t.sink.NewData(string(r), encodeEntities))
	}
}

func (t *Tokenizer) emitCurrentTag() State {
	next := Data
	if t.curTagIsEnd {
		t.emit(t.sink.NewEndTag(t.name.String()))
	} else {
		t.emit(t.sink.NewStartTag(t.name.String(), t.curAttrs, t.curSelfClosing))
		t.applyContentModel(t.name.String())
		if !t.curSelfClosing {
			next = t.state
		}
	}
	t.resetPendingTag()
	return next
}

// applyContentModel is the tag-dispatched content-model switch of spec.md
// section 4.10: on a start tag's emission, the post-emit state is chosen
// by tag id.
func (t *Tokenizer) applyContentModel(name string) {
	id := htmlid.Lookup(name)
	switch {
	case id.RawText():
		t.activeTag = name
		t.state = RawText
	case id.RCData():
		t.activeTag = name
		t.state = RCData
	case id == htmlid.PlainText:
		t.state = PlainText
	case id == htmlid.Script:
		t.activeTag = name
		t.state = ScriptData
	case id == htmlid.HTML:
		t.state = Data
		for _, a := range t.curAttrs {
			if htmlid.IsXMLNSAttribute(a.Name) {
				t.htmlNamespace = htmlid.NamespaceByURI(a.Value)
			}
		}
	default:
		t.state = Data
	}
}

func (t *Tokenizer) commitAttribute() {
	if t.dupAttr {
		t.attrName.Reset()
		t.attrValue.Reset()
		t.dupAttr = false
		return
	}
	name := t.attrName.String()
	if name != "" {
		t.curAttrs = append(t.curAttrs, token.Attribute{Name: name, Value: t.attrValue.String()})
	}
	t.attrName.Reset()
	t.attrValue.Reset()
}

// hasDuplicateAttributeName reports whether the in-progress attribute name
// already exists on the pending tag; if so the attribute is discarded (not
// appended) when committed, matching the WHATWG tokenizer's de-duplication
// at the attribute-name/value boundary.
func (t *Tokenizer) hasDuplicateAttributeName() bool {
	name := t.attrName.String()
	for _, existing := range t.curAttrs {
		if existing.Name == name {
			t.dupAttr = true
			return true
		}
	}
	return false
}

func (t *Tokenizer) isAppropriateEndTag() bool {
	return t.activeTag != "" && t.lastStartTagName == t.activeTag && t.name.String() == t.activeTag
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ':
		return true
	}
	return false
}

func isASCIIUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isASCIIAlpha(r rune) bool  { return isASCIIUpper(r) || isASCIILower(r) }
func isASCIIAlnum(r rune) bool  { return isASCIIAlpha(r) || isASCIIDigit(r) }
func toLower(r rune) rune {
	if isASCIIUpper(r) {
		return r + 0x20
	}
	return r
}

func isSurrogate(code int) bool { return code >= 0xD800 && code <= 0xDFFF }

func isNonCharacter(code int) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}
	switch code {
	case 0xFFFE, 0xFFFF, 0x1FFFE, 0x1FFFF, 0x2FFFE, 0x2FFFF, 0x3FFFE, 0x3FFFF,
		0x4FFFE, 0x4FFFF, 0x5FFFE, 0x5FFFF, 0x6FFFE, 0x6FFFF, 0x7FFFE, 0x7FFFF,
		0x8FFFE, 0x8FFFF, 0x9FFFE, 0x9FFFF, 0xAFFFE, 0xAFFFF, 0xBFFFE, 0xBFFFF,
		0xCFFFE, 0xCFFFF, 0xDFFFE, 0xDFFFF, 0xEFFFE, 0xEFFFF, 0xFFFFE, 0xFFFFF,
		0x10FFFE, 0x10FFFF:
		return true
	}
	return false
}

func isC0Control(code int) bool { return code >= 0x00 && code <= 0x1F }
func isControl(code int) bool   { return isC0Control(code) || (code >= 0x7F && code <= 0x9F) }

// wasConsumedAsPartOfAttribute reports whether returnState is one of the
// attribute-value states, per spec.md section 4.3's attribute-value
// variant.
func wasConsumedAsPartOfAttribute(s State) bool {
	switch s {
	case AttributeValueDoubleQuoted, AttributeValueSingleQuoted, AttributeValueUnquoted:
		return true
	}
	return false
}

// handler is the signature every state's parser implements: given the
// current input character (meaningless when eof is true) it mutates the
// engine and returns whether the same character should be reconsumed in
// the returned next state.
type handler func(t *Tokenizer, r rune, eof bool) (reconsume bool, next State)
