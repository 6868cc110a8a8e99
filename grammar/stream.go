package grammar

import (
	"io"
	"strings"
	"unicode/utf8"
)

// runeStream reads runes one at a time and collects the lexeme currently
// under construction.
type runeStream struct {
	isEof   bool
	next    rune
	hasNext bool
	last    rune // most recent rune of the current lexeme, 0 if empty
	reader  io.RuneReader
	writer  strings.Builder
}

func (rs *runeStream) OutputString() string {
	return rs.writer.String()
}

func (rs *runeStream) OutputLen() int {
	return rs.writer.Len()
}

func (rs *runeStream) ResetOutput() {
	rs.writer.Reset()
	rs.last = 0
}

// lookahead returns the next rune without consuming it.
func (rs *runeStream) lookahead() (r rune, err error) {
	if rs.isEof {
		return utf8.RuneError, io.EOF
	}
	if rs.hasNext {
		return rs.next, nil
	}
	r, _, err = rs.reader.ReadRune()
	if err == io.EOF {
		rs.isEof = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return 0, err
	}
	rs.next, rs.hasNext = r, true
	return
}

// match consumes the lookahead rune and appends it to the current lexeme.
func (rs *runeStream) match(r rune) {
	rs.writer.WriteRune(r)
	rs.last = r
	rs.hasNext = false
}

// skip consumes the lookahead rune without keeping it.
func (rs *runeStream) skip() {
	rs.hasNext = false
}
