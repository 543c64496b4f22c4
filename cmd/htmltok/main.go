// Command htmltok tokenizes an HTML document and prints its token stream,
// one token per line. It expands the teacher's one-line
// parser.NewHTMLTokenizer(...).Tokenize() demo into a real entry point: a
// file argument or stdin is read, every token from tokenizer.Next is
// printed as it's produced, and --json switches to one JSON object per
// line for piping into other tools.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dlclark/regexp2"
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmltok/source"
	"github.com/heathj/htmltok/token"
	"github.com/heathj/htmltok/tokenizer"
)

func main() {
	jsonOut := flag.Bool("json", false, "print one JSON object per token instead of plain text")
	verbose := flag.Bool("v", false, "enable debug logging to stderr")
	grep := flag.String("grep", "", "only print tokens whose text matches this regular expression")
	flag.Parse()

	log := logrus.StandardLogger()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var grepRe *regexp2.Regexp
	if *grep != "" {
		re, err := regexp2.Compile(*grep, 0)
		if err != nil {
			log.WithError(err).Fatal("htmltok: compile --grep pattern")
		}
		grepRe = re
	}

	in, err := openInput(flag.Arg(0))
	if err != nil {
		log.WithError(err).Fatal("htmltok: open input")
	}
	defer in.Close()

	if err := run(in, os.Stdout, *jsonOut, grepRe); err != nil {
		log.WithError(err).Fatal("htmltok: tokenize")
	}
}

// matchesGrep reports whether t's text satisfies re. A nil re always
// matches, so callers that don't pass --grep see every token.
func matchesGrep(re *regexp2.Regexp, t token.Token) bool {
	if re == nil {
		return true
	}
	ok, err := re.MatchString(t.Text)
	return err == nil && ok
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func run(in io.Reader, out io.Writer, jsonOut bool, grepRe *regexp2.Regexp) error {
	src := source.New(in)
	tok := tokenizer.New(src, token.Builder{}, tokenizer.DefaultConfig())
	ctx := context.Background()

	for {
		t, ok, err := tok.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if !matchesGrep(grepRe, t) {
			continue
		}
		if jsonOut {
			line, err := json.Marshal(t)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(line))
			continue
		}
		line, col := tok.Position()
		fmt.Fprintf(out, "%d:%d %s\n", line, col, describe(t))
	}
}

func describe(t token.Token) string {
	switch t.Kind {
	case token.Data:
		return fmt.Sprintf("Data %q", t.Text)
	case token.CData:
		return fmt.Sprintf("CData %q", t.Text)
	case token.ScriptData:
		return fmt.Sprintf("ScriptData %q", t.Text)
	case token.Comment:
		return fmt.Sprintf("Comment %q", t.Text)
	case token.DocType:
		return fmt.Sprintf("DocType name=%q public=%q system=%q forceQuirks=%v",
			t.Name, t.PublicIdentifier, t.SystemIdentifier, t.ForceQuirks)
	case token.StartTag:
		return fmt.Sprintf("StartTag <%s> attrs=%v selfClosing=%v", t.TagName, t.Attributes, t.IsEmptyElement)
	case token.EndTag:
		return fmt.Sprintf("EndTag </%s>", t.TagName)
	case token.EndOfFile:
		return "EndOfFile"
	default:
		return "Unknown"
	}
}
