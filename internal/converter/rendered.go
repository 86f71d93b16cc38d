package converter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

const valueAtRule = "@value"

// Entry is a resolved key/value pair read from processor output.
type Entry struct {
	Key   string
	Value string
}

// ParseRendered collects every "@value key: value;" at-rule from rendered
// CSS in document order. Other rules are ignored.
func ParseRendered(rendered string) ([]Entry, error) {
	parser := css.NewParser(parse.NewInputString(rendered), false)

	var entries []Entry
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return entries, fmt.Errorf("parse rendered css: %w", err)
			}
			return entries, nil

		case css.AtRuleGrammar:
			if !strings.EqualFold(string(data), valueAtRule) {
				continue
			}
			entry, ok := entryFromTokens(parser.Values())
			if ok {
				entries = append(entries, entry)
			}
		}
	}
}

func entryFromTokens(tokens []css.Token) (Entry, bool) {
	var sb strings.Builder
	lastSpace := false
	for _, tok := range tokens {
		if tok.TokenType == css.WhitespaceToken {
			if !lastSpace {
				sb.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		lastSpace = false
		sb.Write(tok.Data)
	}

	key, value, found := strings.Cut(sb.String(), ":")
	if !found {
		return Entry{}, false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return Entry{}, false
	}
	return Entry{Key: key, Value: strings.TrimSpace(value)}, true
}
