package countquery

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenPlaceholder
	tokenLeftParen
	tokenRightParen
)

// token is a structural token. Operators, literals and numbers are skipped
// because only keywords, placeholders and nesting matter for the rewrite.
type token struct {
	kind  tokenKind
	word  string // upper-cased, only for tokenWord
	start int
	end   int
	depth int // parenthesis depth the token sits at
}

type scanner struct {
	input        string
	pos          int
	depth        int
	tokens       []token
	lineComments [][2]int
}

// scan splits query into structural tokens. It understands single-quoted
// literals ('' and backslash escapes), double-quoted and backtick identifiers,
// line comments (-- and #) and block comments.
func scan(query string) ([]token, error) {
	s, err := run(query)
	if err != nil {
		return nil, err
	}
	return s.tokens, nil
}

func run(query string) (*scanner, error) {
	s := &scanner{input: query, tokens: make([]token, 0, 32)}
	for {
		if err := s.skipSpaceAndComments(); err != nil {
			return nil, err
		}
		if s.pos >= len(s.input) {
			break
		}

		ch := s.input[s.pos]
		switch {
		case isWordStart(ch):
			s.readWord()
		case isDigit(ch):
			s.skipNumber()
		case ch == '\'' || ch == '"' || ch == '`':
			if err := s.skipQuoted(ch); err != nil {
				return nil, err
			}
		case ch == '?':
			s.add(tokenPlaceholder, "", s.pos, s.pos+1)
			s.pos++
		case ch == '(':
			s.add(tokenLeftParen, "", s.pos, s.pos+1)
			s.depth++
			s.pos++
		case ch == ')':
			s.depth--
			if s.depth < 0 {
				return nil, fmt.Errorf("unbalanced ')' at position %d", s.pos)
			}
			s.add(tokenRightParen, "", s.pos, s.pos+1)
			s.pos++
		default:
			s.pos++
		}
	}
	if s.depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses: %d left open", s.depth)
	}
	return s, nil
}

// stripLineComments blanks out -- and # comments so that text appended to the
// query is not swallowed by them. Byte offsets are preserved.
func stripLineComments(query string) (string, error) {
	s, err := run(query)
	if err != nil {
		return "", err
	}
	if len(s.lineComments) == 0 {
		return query, nil
	}
	b := []byte(query)
	for _, span := range s.lineComments {
		for i := span[0]; i < span[1]; i++ {
			b[i] = ' '
		}
	}
	return string(b), nil
}

func (s *scanner) add(kind tokenKind, word string, start, end int) {
	s.tokens = append(s.tokens, token{kind: kind, word: word, start: start, end: end, depth: s.depth})
}

func (s *scanner) skipSpaceAndComments() error {
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f':
			s.pos++
		case ch == '#' || (ch == '-' && s.peek(1) == '-'):
			start := s.pos
			for s.pos < len(s.input) && s.input[s.pos] != '\n' {
				s.pos++
			}
			s.lineComments = append(s.lineComments, [2]int{start, s.pos})
		case ch == '/' && s.peek(1) == '*':
			end := strings.Index(s.input[s.pos+2:], "*/")
			if end < 0 {
				return fmt.Errorf("unterminated comment at position %d", s.pos)
			}
			s.pos += end + 4
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.input) {
		return s.input[s.pos+n]
	}
	return 0
}

func (s *scanner) readWord() {
	start := s.pos
	for s.pos < len(s.input) && isWordPart(s.input[s.pos]) {
		s.pos++
	}
	s.add(tokenWord, strings.ToUpper(s.input[start:s.pos]), start, s.pos)
}

// skipNumber consumes numeric literals including forms like 1.5e-3 and 0x1F,
// so that their letters are not mistaken for keywords.
func (s *scanner) skipNumber() {
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		if isWordPart(ch) || ch == '.' {
			s.pos++
			continue
		}
		if (ch == '+' || ch == '-') && s.pos > 0 && (s.input[s.pos-1] == 'e' || s.input[s.pos-1] == 'E') {
			s.pos++
			continue
		}
		break
	}
}

func (s *scanner) skipQuoted(quote byte) error {
	start := s.pos
	s.pos++
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		if ch == '\\' && quote == '\'' {
			s.pos += 2
			continue
		}
		if ch == quote {
			if s.peek(1) == quote {
				s.pos += 2
				continue
			}
			s.pos++
			return nil
		}
		s.pos++
	}
	return fmt.Errorf("unterminated literal starting at position %d", start)
}

func isWordStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 0x80
}

func isWordPart(ch byte) bool {
	return isWordStart(ch) || isDigit(ch) || ch == '$'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Placeholders returns the byte offsets of every positional '?' placeholder in
// query, skipping those inside literals, quoted identifiers and comments.
func Placeholders(query string) ([]int, error) {
	toks, err := scan(query)
	if err != nil {
		return nil, err
	}
	var offsets []int
	for _, t := range toks {
		if t.kind == tokenPlaceholder {
			offsets = append(offsets, t.start)
		}
	}
	return offsets, nil
}
