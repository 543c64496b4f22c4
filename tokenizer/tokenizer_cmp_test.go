package tokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/heathj/htmltok/token"
)

// TestStartTagAttributesMatchExactlyViaGoCmp diffs the full attribute slice
// with go-cmp instead of testify's require.Equal, so a future mismatch
// reports a structural diff (which attribute, which field) rather than
// just "not equal" — useful once a fixture grows past a couple of
// attributes and a flat Equal failure stops being readable.
func TestStartTagAttributesMatchExactlyViaGoCmp(t *testing.T) {
	toks := tokenizeDefault(t, `<img src="cat.png" alt="a cat" width="100">`)
	start, ok := lastOfKindFirst(toks, token.StartTag)
	if !ok {
		t.Fatal("expected a start tag")
	}

	want := []token.Attribute{
		{Name: "src", Value: "cat.png"},
		{Name: "alt", Value: "a cat"},
		{Name: "width", Value: "100"},
	}
	if diff := cmp.Diff(want, start.Attributes); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
}
