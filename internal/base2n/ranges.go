package base2n

import (
	"fmt"
	"github.com/pkg/errors"
	"sort"
	"unicode/utf8"
)

// CodepointRange is an inclusive, contiguous run of alphabet codepoints.
type CodepointRange struct {
	First rune
	Last  rune
}

// Len returns the number of codepoints in the range. Non-ascending ranges yield zero or less.
func (r CodepointRange) Len() int {
	return int(r.Last) - int(r.First) + 1
}

// Overlaps reports whether the two ranges share at least one codepoint.
func (r CodepointRange) Overlaps(o CodepointRange) bool {
	return r.First <= o.Last && o.First <= r.Last
}

func (r CodepointRange) String() string {
	return fmt.Sprintf("U+%04X-U+%04X", r.First, r.Last)
}

// RangeSet is a validated list of disjoint codepoint ranges together with the scalars derived
// from it.
type RangeSet struct {
	// Ranges in encoding order. Sorted ascending by First unless created with sortRanges=false.
	Ranges []CodepointRange
	// Sizes of the individual ranges, in the order the caller supplied them
	Sizes []int
	// Size is the total number of symbols
	Size int

	FirstCodepoint rune
	LastCodepoint  rune
	// RangeSpan is LastCodepoint - FirstCodepoint + 1; the footprint of a dense decode table
	RangeSpan int

	Sorted bool
}

// ParseRanges interprets the charset description as consecutive (first, last) character pairs.
// The description is read per codepoint, so characters outside of the BMP count as one.
func ParseRanges(charset string, sortRanges bool) (*RangeSet, error) {
	if !utf8.ValidString(charset) {
		return nil, errors.WithStack(newError(InvalidCharset, "charset description is not valid UTF-8"))
	}

	runes := []rune(charset)
	if len(runes) == 0 || len(runes)%2 == 1 {
		err := newError(InvalidCharset, "charset description must consist of character pairs, got %d characters", len(runes))
		err.Value = len(runes)
		return nil, errors.WithStack(err)
	}

	ranges := make([]CodepointRange, 0, len(runes)/2)
	for i := 0; i < len(runes); i += 2 {
		ranges = append(ranges, CodepointRange{First: runes[i], Last: runes[i+1]})
	}

	return NewRangeSet(ranges, sortRanges)
}

// NewRangeSet validates the given ranges. The slice is copied; the caller may reuse it.
func NewRangeSet(ranges []CodepointRange, sortRanges bool) (*RangeSet, error) {
	if len(ranges) == 0 {
		return nil, errors.WithStack(newError(InvalidCharset, "no ranges given"))
	}

	if a, b, found := findOverlap(ranges); found {
		err := newError(OverlappingRanges, "overlapping charset ranges")
		err.Ranges = []CodepointRange{a, b}
		return nil, errors.WithStack(err)
	}

	sizes := make([]int, len(ranges))
	size := 0
	for i, r := range ranges {
		l := r.Len()
		if l <= 0 {
			err := newError(NonAscendingRange, "non-ascending charset range")
			err.Ranges = []CodepointRange{r}
			return nil, errors.WithStack(err)
		}
		if !validRange(r) {
			err := newError(InvalidCharset, "range contains codepoints that cannot be represented in UTF-8")
			err.Ranges = []CodepointRange{r}
			return nil, errors.WithStack(err)
		}
		sizes[i] = l
		size += l
	}

	if size <= 1 {
		err := newError(DegenerateAlphabet, "alphabet must have at least two symbols")
		err.Size = size
		return nil, errors.WithStack(err)
	}

	rs := &RangeSet{
		Ranges: append([]CodepointRange(nil), ranges...),
		Sizes:  sizes,
		Size:   size,
		Sorted: sortRanges,
	}

	if sortRanges {
		sort.SliceStable(rs.Ranges, func(i, j int) bool {
			return rs.Ranges[i].First < rs.Ranges[j].First
		})
		rs.FirstCodepoint = rs.Ranges[0].First
		rs.LastCodepoint = rs.Ranges[len(rs.Ranges)-1].Last
	} else {
		rs.FirstCodepoint = rs.Ranges[0].First
		rs.LastCodepoint = rs.Ranges[0].Last
		for _, r := range rs.Ranges[1:] {
			if r.First < rs.FirstCodepoint {
				rs.FirstCodepoint = r.First
			}
			if r.Last > rs.LastCodepoint {
				rs.LastCodepoint = r.Last
			}
		}
	}
	rs.RangeSpan = int(rs.LastCodepoint) - int(rs.FirstCodepoint) + 1

	return rs, nil
}

// validRange rejects ranges reaching outside of the Unicode codespace or into the surrogate block.
func validRange(r CodepointRange) bool {
	if r.First < 0 || r.Last > utf8.MaxRune {
		return false
	}
	return r.Last < surrogateMin || r.First > surrogateMax
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// findOverlap returns the first colliding pair under a pairwise ascending scan.
func findOverlap(ranges []CodepointRange) (CodepointRange, CodepointRange, bool) {
	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].Overlaps(ranges[j]) {
				return ranges[i], ranges[j], true
			}
		}
	}
	return CodepointRange{}, CodepointRange{}, false
}
