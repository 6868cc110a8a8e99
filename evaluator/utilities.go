package evaluator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/lpi/grammar"
)

// ParseLineNumber converts the text of a line number to an unsigned 16-bit
// integer.
func ParseLineNumber(text string) (uint16, error) {
	n, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return 0, &LineNumberError{Text: text, Err: err}
	}
	return uint16(n), nil
}

// splitLine separates the line number from the statement of a line.
// Unnumbered lines report hasNumber = false.
func splitLine(line *grammar.Node) (number uint16, stmt []*grammar.Node, hasNumber bool, err error) {
	ch := line.Children
	if len(ch) == 0 || ch[0].Kind != grammar.KindLineNumber {
		return 0, ch, false, nil
	}
	number, err = ParseLineNumber(ch[0].Value)
	return number, ch[1:], true, err
}

// parseNumber converts a numeric literal to float64. Literals consist of
// decimal digits, '.', an exponent marker E or e, and signs; hex floats,
// digit separators and named values like "Inf" are malformed. Literals out
// of range evaluate to ±Inf or 0.
func parseNumber(literal string) (float64, error) {
	if literal == "" || strings.IndexFunc(literal, notInLiteral) >= 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumericLiteral, literal)
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumericLiteral, literal)
	}
	return f, nil
}

func notInLiteral(r rune) bool {
	return !(r >= '0' && r <= '9' || strings.ContainsRune(".Ee+-", r))
}
