package htmlid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKnownTags(t *testing.T) {
	require.Equal(t, Style, Lookup("style"))
	require.Equal(t, Script, Lookup("script"))
	require.Equal(t, TextArea, Lookup("textarea"))
	require.Equal(t, HTML, Lookup("html"))
}

func TestLookupUnknownTagDefaultsToUnknown(t *testing.T) {
	require.Equal(t, Unknown, Lookup("div"))
	require.Equal(t, Unknown, Lookup("Style")) // mixed case is the caller's job to lowercase first
}

func TestRawTextTags(t *testing.T) {
	for _, id := range []TagID{Style, Xmp, IFrame, NoEmbed, NoFrames, NoScript} {
		require.True(t, id.RawText(), "expected %v to be RAWTEXT", id)
	}
	for _, id := range []TagID{Title, TextArea, Script, HTML, Unknown} {
		require.False(t, id.RawText(), "expected %v not to be RAWTEXT", id)
	}
}

func TestRCDataTags(t *testing.T) {
	require.True(t, Title.RCData())
	require.True(t, TextArea.RCData())
	require.False(t, Script.RCData())
	require.False(t, Unknown.RCData())
}

func TestNamespaceByURI(t *testing.T) {
	require.Equal(t, MathMLNamespace, NamespaceByURI("http://www.w3.org/1998/Math/MathML"))
	require.Equal(t, SVGNamespace, NamespaceByURI("http://www.w3.org/2000/svg"))
	require.Equal(t, HTMLNamespace, NamespaceByURI("http://www.w3.org/1999/xhtml"))
	require.Equal(t, HTMLNamespace, NamespaceByURI("something-unrecognized"))
}

func TestIsXMLNSAttribute(t *testing.T) {
	require.True(t, IsXMLNSAttribute("xmlns"))
	require.True(t, IsXMLNSAttribute("xmlns:xlink"))
	require.False(t, IsXMLNSAttribute("xlink:href"))
	require.False(t, IsXMLNSAttribute("class"))
}
