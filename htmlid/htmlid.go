// Package htmlid is the tag-id / attribute-id / namespace lookup the
// tokenizer consumes as an external collaborator: a string-to-enum table
// used to drive the content-model switch on tag emission and to recognise
// xmlns declarations for namespace detection.
package htmlid

// TagID enumerates the tag names the tokenizer's content-model switch
// cares about. Tags with no special content model map to Unknown; the
// tokenizer still emits their token, it just returns to the Data state
// afterward.
type TagID uint8

const (
	Unknown TagID = iota
	Style
	Xmp
	IFrame
	NoEmbed
	NoFrames
	NoScript
	Title
	TextArea
	PlainText
	Script
	HTML
)

var byName = map[string]TagID{
	"style":    Style,
	"xmp":      Xmp,
	"iframe":   IFrame,
	"noembed":  NoEmbed,
	"noframes": NoFrames,
	"noscript": NoScript,
	"title":    Title,
	"textarea": TextArea,
	"plaintext": PlainText,
	"script":   Script,
	"html":     HTML,
}

// Lookup resolves a lowercase tag name to its TagID. Names outside the
// table (including names with mixed case, which callers must lowercase
// first per the tokenizer's tag-name state) resolve to Unknown.
func Lookup(name string) TagID {
	if id, ok := byName[name]; ok {
		return id
	}
	return Unknown
}

// RawText reports whether id puts the tokenizer into the RAWTEXT content
// model on start-tag emission.
func (id TagID) RawText() bool {
	switch id {
	case Style, Xmp, IFrame, NoEmbed, NoFrames, NoScript:
		return true
	}
	return false
}

// RCData reports whether id puts the tokenizer into the RCDATA content
// model on start-tag emission.
func (id TagID) RCData() bool {
	return id == Title || id == TextArea
}

// Namespace enumerates the namespaces an xmlns attribute on <html> can
// select.
type Namespace uint8

const (
	HTMLNamespace Namespace = iota
	MathMLNamespace
	SVGNamespace
)

// NamespaceByURI maps the value of an xmlns attribute to a Namespace,
// defaulting to HTMLNamespace for anything unrecognised.
func NamespaceByURI(uri string) Namespace {
	switch uri {
	case "http://www.w3.org/1998/Math/MathML":
		return MathMLNamespace
	case "http://www.w3.org/2000/svg":
		return SVGNamespace
	case "http://www.w3.org/1999/xhtml":
		return HTMLNamespace
	default:
		return HTMLNamespace
	}
}

// IsXMLNSAttribute reports whether name is the xmlns attribute or its
// xmlns:xlink form; other xmlns:* names are not recognised. The tokenizer's
// tag-dispatch step (spec.md 4.10) inspects these on an emitted <html>
// start tag.
func IsXMLNSAttribute(name string) bool {
	return name == "xmlns" || name == "xmlns:xlink"
}
