package base2n

import (
	"fmt"
	"strings"
)

// Kind classifies the failures reported by this package.
type Kind int

const (
	_ Kind = iota
	// InvalidCharset is returned for a malformed charset description (empty, odd length, bad UTF-8)
	InvalidCharset
	// NonAscendingRange is returned when a range starts after it ends
	NonAscendingRange
	// OverlappingRanges is returned when two ranges share at least one codepoint
	OverlappingRanges
	// DegenerateAlphabet is returned when the alphabet has less than two symbols
	DegenerateAlphabet
	// NonPowerOfTwoAlphabet is returned when the alphabet size is not a power of two
	NonPowerOfTwoAlphabet
	// NoTableRequested is returned when neither lookup direction was selected
	NoTableRequested
	// UnknownTableRepresentation is returned for an unrecognized representation tag
	UnknownTableRepresentation
	// TableNotBuilt is returned when encoding/decoding against a direction that wasn't built
	TableNotBuilt
	// InvalidInput is returned when the input to the codec is not usable at all
	InvalidInput
	// InvalidCharacter is returned when decoding hits a character outside the alphabet
	InvalidCharacter
)

var kindNames = map[Kind]string{
	InvalidCharset:             "InvalidCharset",
	NonAscendingRange:          "NonAscendingRange",
	OverlappingRanges:          "OverlappingRanges",
	DegenerateAlphabet:         "DegenerateAlphabet",
	NonPowerOfTwoAlphabet:      "NonPowerOfTwoAlphabet",
	NoTableRequested:           "NoTableRequested",
	UnknownTableRepresentation: "UnknownTableRepresentation",
	TableNotBuilt:              "TableNotBuilt",
	InvalidInput:               "InvalidInput",
	InvalidCharacter:           "InvalidCharacter",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for use with errors.Is. Any *Error matches the sentinel of the same Kind.
var (
	ErrInvalidCharset             = &Error{Kind: InvalidCharset}
	ErrNonAscendingRange          = &Error{Kind: NonAscendingRange}
	ErrOverlappingRanges          = &Error{Kind: OverlappingRanges}
	ErrDegenerateAlphabet         = &Error{Kind: DegenerateAlphabet}
	ErrNonPowerOfTwoAlphabet      = &Error{Kind: NonPowerOfTwoAlphabet}
	ErrNoTableRequested           = &Error{Kind: NoTableRequested}
	ErrUnknownTableRepresentation = &Error{Kind: UnknownTableRepresentation}
	ErrTableNotBuilt              = &Error{Kind: TableNotBuilt}
	ErrInvalidInput               = &Error{Kind: InvalidInput}
	ErrInvalidCharacter           = &Error{Kind: InvalidCharacter}
)

// Error carries enough context about a failure to render a precise diagnostic. Only the fields
// relevant to the Kind are set.
type Error struct {
	Kind    Kind
	Message string

	// Ranges holds the offending range(s) for charset errors
	Ranges []CodepointRange
	// Sizes holds the per-range sizes for NonPowerOfTwoAlphabet
	Sizes []int
	// Size is the total alphabet size, where relevant
	Size int

	// Rune is the offending character for InvalidCharacter
	Rune rune
	// Offset is the rune index of Rune in the decoded text, -1 if unknown
	Offset int
	// Value carries the offending tag or value, where relevant
	Value interface{}
}

func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString(e.Kind.String())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	switch e.Kind {
	case InvalidCharacter:
		if e.Offset >= 0 {
			fmt.Fprintf(b, " %q (U+%04X) at %d", e.Rune, e.Rune, e.Offset)
		}
	case NonAscendingRange, OverlappingRanges:
		fmt.Fprintf(b, " %v", e.Ranges)
	case NonPowerOfTwoAlphabet:
		fmt.Fprintf(b, " (ranges=%v, sizes=%v, size=%d)", e.Ranges, e.Sizes, e.Size)
	case DegenerateAlphabet:
		fmt.Fprintf(b, " (size=%d)", e.Size)
	case UnknownTableRepresentation:
		fmt.Fprintf(b, " %v", e.Value)
	}
	return b.String()
}

// Is reports errors of the same Kind as equal so that the sentinels work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Offset:  -1,
	}
}
