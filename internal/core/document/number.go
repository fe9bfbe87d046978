package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PeriodSuffix returns the "/MM/YYYY" suffix scoping document numbers to the
// calendar month of t. Sequencing restarts at 1 whenever the suffix changes.
func PeriodSuffix(t time.Time) string {
	return fmt.Sprintf("/%02d/%04d", int(t.Month()), t.Year())
}

// FormatNumber renders a document number as NNN/MM/YYYY. The three-digit
// zero padding is a display convention, not a ceiling: sequence 1000 renders
// as 1000/MM/YYYY and still parses correctly.
func FormatNumber(sequence int, t time.Time) string {
	return fmt.Sprintf("%03d%s", sequence, PeriodSuffix(t))
}

// ParseSequence extracts the numeric sequence prefix of a document number,
// reading digits up to the first '/' rather than assuming a fixed width.
// Returns an error for numbers that do not start with an integer prefix.
func ParseSequence(number string) (int, error) {
	prefix, _, found := strings.Cut(number, "/")
	if !found {
		return 0, fmt.Errorf("malformed document number: %q", number)
	}
	seq, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, fmt.Errorf("malformed document number %q: %w", number, err)
	}
	return seq, nil
}

// NextNumber computes the document number following lastNumber for the
// period of t. An empty lastNumber means the period has no documents yet and
// sequencing starts at 1.
func NextNumber(lastNumber string, t time.Time) (string, error) {
	if lastNumber == "" {
		return FormatNumber(1, t), nil
	}
	seq, err := ParseSequence(lastNumber)
	if err != nil {
		return "", err
	}
	return FormatNumber(seq+1, t), nil
}
