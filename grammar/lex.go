package grammar

import (
	"io"
	"strings"
)

type scstate int

const (
	stateStart scstate = iota
	stateNumber
	stateIdentifier
	stateString
)

func (s scstate) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateNumber:
		return "number"
	case stateIdentifier:
		return "identifier"
	case stateString:
		return "string"
	}
	return "?"
}

// Newline is the token separating program lines.
const Newline = "\n"

// lexer splits BASIC source into untyped tokens.
type lexer struct {
	stream runeStream
	state  scstate
	tokens []string
}

// Lex splits a program text into tokens. Lex never fails: input it cannot
// make sense of ends up in symbol tokens, and an unterminated string
// swallows the rest of the input.
func Lex(input string) []string {
	tokens, _ := Tokenize(strings.NewReader(input))
	return tokens
}

// Tokenize reads a program text from a rune reader and splits it into
// tokens. The only errors returned are those of the reader; tokens scanned
// before the error are returned as well.
func Tokenize(reader io.RuneReader) ([]string, error) {
	l := &lexer{stream: runeStream{reader: reader}}
	for {
		r, err := l.stream.lookahead()
		if err == io.EOF {
			break
		} else if err != nil {
			l.flush()
			return l.tokens, err
		}
		l.step(r)
	}
	l.flush()
	tracer().Debugf("lexer produced %d tokens", len(l.tokens))
	return l.tokens, nil
}

// step consumes rune r. The order of the cases is significant.
func (l *lexer) step(r rune) {
	switch {
	case r == '"':
		if l.state == stateString {
			l.stream.match(r)
			l.flush()
			l.state = stateStart
		} else {
			l.flush()
			l.state = stateString
			l.stream.match(r)
		}
	case l.state == stateString:
		l.stream.match(r)
	case r == ' ':
		l.stream.skip()
		if l.stream.OutputLen() > 0 {
			l.flush()
			l.state = stateStart
		}
	case r == '\n':
		l.flush()
		l.stream.match(r)
		l.flush()
		l.state = stateStart
	case isExponent(r) && l.state == stateNumber:
		l.stream.match(r)
	case (r == '+' || r == '-') && l.state == stateNumber:
		if isExponent(l.stream.last) { // signed exponent, e.g. 1.5E-10
			l.stream.match(r)
			return
		}
		l.flush()
		l.stream.match(r)
		l.state = stateStart
	case (isLetter(r) || isDigit(r)) && l.state == stateIdentifier:
		l.stream.match(r)
	case isLetter(r):
		// letters never flush: "(A" stays one token
		l.state = stateIdentifier
		l.stream.match(r)
	case (r == '$' || r == '%') && l.state == stateIdentifier:
		l.stream.match(r)
		l.flush()
		l.state = stateStart
	case isDigit(r) || r == '.':
		if l.state != stateNumber {
			l.flush()
			l.state = stateNumber
		}
		l.stream.match(r)
	default:
		l.flush()
		l.state = stateStart
		l.stream.match(r)
	}
}

// flush emits the current lexeme, if any.
func (l *lexer) flush() {
	if l.stream.OutputLen() == 0 {
		return
	}
	lexeme := l.stream.OutputString()
	tracer().Debugf("lexer accepting %q in state %s", lexeme, l.state)
	l.tokens = append(l.tokens, lexeme)
	l.stream.ResetOutput()
}

func isExponent(r rune) bool {
	return r == 'E' || r == 'e'
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
