package abbr

import (
	"strconv"

	"github.com/arthur-debert/zen/pkg/errors"
)

// Operator joins a token to the previous one
type Operator byte

const (
	OpNone    Operator = 0
	OpChild   Operator = '>'
	OpSibling Operator = '+'
)

// MaxCount is the largest multiplier accepted after '*'
const MaxCount = 10000

// Token is one element of an abbreviation
type Token struct {
	Operator Operator
	Name     string
	ID       string
	Classes  []string

	// HasMultiplier is set by '*'. Count is the number after it, 0 when the
	// star is bare.
	HasMultiplier bool
	Count         int

	// Expando is set when the abbreviation ends with '+' right after this token
	Expando bool

	// Offset is the byte offset of the token in the scanned string
	Offset int
}

// RepeatsByLines reports a bare '*'
func (t Token) RepeatsByLines() bool {
	return t.HasMultiplier && t.Count == 0
}

// Scan splits an abbreviation into tokens. Any character that does not
// belong to a token is a syntax error reported with ErrParse.
func Scan(abbr string) ([]Token, error) {
	s := &scanner{src: abbr}
	var tokens []Token
	for s.pos < len(s.src) {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) peek(off int) byte {
	if i := s.pos + off; i < len(s.src) {
		return s.src[i]
	}
	return 0
}

// unexpected reports the byte at the current position
func (s *scanner) unexpected() error {
	return errors.Newf(errors.ErrParse, "unexpected %q at offset %d", s.src[s.pos], s.pos).
		WithDetail("abbreviation", s.src).
		WithDetail("offset", s.pos)
}

// next reads one token. On a syntax error the position is left at the token
// start.
func (s *scanner) next() (Token, error) {
	start := s.pos
	tok := Token{Offset: start}

	if c := s.peek(0); c == '>' || c == '+' {
		tok.Operator = Operator(c)
		s.pos++
	}

	if !isNameStart(s.peek(0)) {
		s.pos = start
		return Token{}, s.unexpected()
	}
	tok.Name = s.run(s.pos+1, isNameChar)

	if s.peek(0) == '#' && isAttrChar(s.peek(1)) {
		tok.ID = s.run(s.pos+1, isAttrChar)[1:]
	}

	for s.peek(0) == '.' && isAttrChar(s.peek(1)) {
		tok.Classes = append(tok.Classes, s.run(s.pos+1, isAttrChar)[1:])
	}

	if s.peek(0) == '*' {
		tok.HasMultiplier = true
		at := s.pos + 1
		digits := s.run(at, isDigit)[1:]
		if digits != "" {
			// all digits, so the only failure is overflow
			n, err := strconv.Atoi(digits)
			if err != nil || n > MaxCount {
				return Token{}, errors.Newf(errors.ErrParse, "multiplier %s at offset %d exceeds %d", digits, at, MaxCount).
					WithDetail("abbreviation", s.src).
					WithDetail("offset", at).
					WithDetail("max", MaxCount)
			}
			tok.Count = n
		}
	}

	if s.peek(0) == '+' && s.pos == len(s.src)-1 {
		tok.Expando = true
		s.pos++
	}

	return tok, nil
}

// run consumes from the current position through from and then every
// following byte accepted by ok, returning the consumed text
func (s *scanner) run(from int, ok func(byte) bool) string {
	start := s.pos
	s.pos = from
	for s.pos < len(s.src) && ok(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameStart(c byte) bool {
	return isLetter(c) || c == '@' || c == '!'
}

func isNameChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == ':' || c == '-' || c == '!'
}

func isAttrChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_' || c == '-' || c == '$'
}
