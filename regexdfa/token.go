// SPDX-License-Identifier: MIT
// Package regexdfa: tokenizer. Grounded on
// mabhi256-codecrafters-grep-go/app/tokenizer.go's scan-and-classify loop:
// a maximal run of non-operator, non-whitespace characters is one symbol
// token; each operator character is its own token.
package regexdfa

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokSymbol tokenKind = iota
	tokLParen
	tokRParen
	tokPipe
	tokStar
	tokEOF
)

type token struct {
	kind tokenKind
	text string // only meaningful for tokSymbol
	pos  int    // rune offset, for error messages
}

// tokenize scans pattern into a token stream terminated by tokEOF.
func tokenize(pattern string) ([]token, error) {
	var toks []token
	var buf strings.Builder
	bufStart := 0

	flush := func(endPos int) {
		if buf.Len() > 0 {
			toks = append(toks, token{kind: tokSymbol, text: buf.String(), pos: bufStart})
			buf.Reset()
		}
		_ = endPos
	}

	runes := []rune(pattern)
	for i, r := range runes {
		switch r {
		case '(', ')', '|', '*':
			flush(i)
			kind := map[rune]tokenKind{'(': tokLParen, ')': tokRParen, '|': tokPipe, '*': tokStar}[r]
			toks = append(toks, token{kind: kind, pos: i})
		case ' ', '\t', '\n', '\r':
			flush(i)
		default:
			if buf.Len() == 0 {
				bufStart = i
			}
			buf.WriteRune(r)
		}
	}
	flush(len(runes))
	toks = append(toks, token{kind: tokEOF, pos: len(runes)})

	return toks, nil
}

func (k tokenKind) String() string {
	switch k {
	case tokSymbol:
		return "symbol"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokPipe:
		return "'|'"
	case tokStar:
		return "'*'"
	case tokEOF:
		return "end of pattern"
	default:
		return fmt.Sprintf("token(%d)", int(k))
	}
}
