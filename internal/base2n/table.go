package base2n

import (
	"fmt"
	"github.com/pkg/errors"
	"math"
	"math/bits"
	"unicode/utf8"
)

// Table is an alphabet together with its lookup tables. It is immutable once built and may be
// shared by any number of concurrent Encode / Decode calls.
type Table struct {
	charset string
	ranges  *RangeSet

	bitsPerChar    uint
	needsExtraChar bool
	averageLength  float64
	averageBytes   float64

	lookup LookupTable
}

type tableOptions struct {
	sortRanges     bool
	tables         Direction
	representation Representation
}

// TableOption configures NewTable.
type TableOption func(*tableOptions)

// WithSortRanges controls whether ranges are sorted by their first codepoint before values are
// assigned. Defaults to true. Sorting changes the value assignment, so both sides of a
// conversation must agree on it.
func WithSortRanges(sortRanges bool) TableOption {
	return func(o *tableOptions) {
		o.sortRanges = sortRanges
	}
}

// WithTables selects the lookup directions to build. Defaults to BothTables.
func WithTables(d Direction) TableOption {
	return func(o *tableOptions) {
		o.tables = d
	}
}

// WithRepresentation selects the lookup layout. Defaults to Associative.
func WithRepresentation(r Representation) TableOption {
	return func(o *tableOptions) {
		o.representation = r
	}
}

// NewTable parses the charset description and builds the lookup tables for it.
func NewTable(charset string, opts ...TableOption) (*Table, error) {
	o := buildOptions(opts)
	rs, err := ParseRanges(charset, o.sortRanges)
	if err != nil {
		return nil, err
	}
	t, err := build(rs, o)
	if err != nil {
		return nil, err
	}
	t.charset = charset
	return t, nil
}

// NewTableFromRanges builds the lookup tables for an already validated range set. The sort option
// is ignored; the range set was already created sorted or unsorted.
func NewTableFromRanges(rs *RangeSet, opts ...TableOption) (*Table, error) {
	if rs == nil {
		return nil, errors.WithStack(newError(InvalidCharset, "no range set given"))
	}
	o := buildOptions(opts)
	o.sortRanges = rs.Sorted
	t, err := build(rs, o)
	if err != nil {
		return nil, err
	}
	t.charset = rangesToCharset(rs.Ranges)
	return t, nil
}

func buildOptions(opts []TableOption) *tableOptions {
	o := &tableOptions{
		sortRanges:     true,
		tables:         BothTables,
		representation: Associative,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// MaxBitsPerChar is the widest alphabet Unicode scalar values can supply (2^20 <= 0x10F800 < 2^21)
const MaxBitsPerChar = 20

func build(rs *RangeSet, o *tableOptions) (*Table, error) {
	if rs.Size <= 1 || bits.OnesCount(uint(rs.Size)) != 1 {
		err := newError(NonPowerOfTwoAlphabet, "charset length must be a power of 2")
		err.Ranges = append([]CodepointRange(nil), rs.Ranges...)
		err.Sizes = append([]int(nil), rs.Sizes...)
		err.Size = rs.Size
		return nil, errors.WithStack(err)
	}
	bitsPerChar := uint(bits.TrailingZeros(uint(rs.Size)))

	if o.tables&BothTables == 0 {
		err := newError(NoTableRequested, "at least one type of table must be generated")
		err.Value = o.tables
		return nil, errors.WithStack(err)
	}

	lookup, err := newLookupTable(o.representation, o.tables&BothTables, rs)
	if err != nil {
		return nil, err
	}

	val := uint32(0)
	codeUnits := 0
	utf8Bytes := 0
	for _, r := range rs.Ranges {
		for cp := r.First; cp <= r.Last; cp++ {
			lookup.set(val, cp)
			val++
			if cp >= 0x10000 {
				codeUnits += 2
			} else {
				codeUnits++
			}
			utf8Bytes += utf8.RuneLen(cp)
		}
	}

	return &Table{
		ranges:         rs,
		bitsPerChar:    bitsPerChar,
		needsExtraChar: !(bitsPerChar == 1 || bitsPerChar == 2 || bitsPerChar == 4 || bitsPerChar == 8),
		averageLength:  float64(codeUnits) / float64(rs.Size),
		averageBytes:   float64(utf8Bytes) / float64(rs.Size),
		lookup:         lookup,
	}, nil
}

func rangesToCharset(ranges []CodepointRange) string {
	buf := make([]rune, 0, len(ranges)*2)
	for _, r := range ranges {
		buf = append(buf, r.First, r.Last)
	}
	return string(buf)
}

// Charset returns the description the table was built from.
func (t *Table) Charset() string { return t.charset }

// Ranges returns a copy of the ranges in value-assignment order.
func (t *Table) Ranges() []CodepointRange {
	return append([]CodepointRange(nil), t.ranges.Ranges...)
}

// Base is the number of symbols in the alphabet.
func (t *Table) Base() int { return t.ranges.Size }

// BitsPerChar is log2(Base).
func (t *Table) BitsPerChar() uint { return t.bitsPerChar }

// NeedsExtraChar reports whether encoded strings end with a remainder marker.
func (t *Table) NeedsExtraChar() bool { return t.needsExtraChar }

// AverageLength is the average number of UTF-16 code units per symbol.
func (t *Table) AverageLength() float64 { return t.averageLength }

// AverageBytes is the average number of UTF-8 bytes per symbol.
func (t *Table) AverageBytes() float64 { return t.averageBytes }

func (t *Table) FirstCodepoint() rune { return t.ranges.FirstCodepoint }
func (t *Table) LastCodepoint() rune  { return t.ranges.LastCodepoint }
func (t *Table) RangeSpan() int       { return t.ranges.RangeSpan }
func (t *Table) SortedRanges() bool   { return t.ranges.Sorted }

func (t *Table) Representation() Representation { return t.lookup.Representation() }
func (t *Table) Lookup() LookupTable            { return t.lookup }
func (t *Table) CanEncode() bool                { return t.lookup.CanEncode() }
func (t *Table) CanDecode() bool                { return t.lookup.CanDecode() }

func (t *Table) String() string {
	return fmt.Sprintf("Base2nTable(base=%d, bits=%d, type=%v, ranges=%v)",
		t.Base(), t.bitsPerChar, t.Representation(), t.ranges.Ranges)
}

// approximateEncodedSize returns the expected number of symbols for n input bytes
func (t *Table) approximateEncodedSize(n int) int {
	dataBits := n * 8
	return (dataBits+int(t.bitsPerChar)-1)/int(t.bitsPerChar) + 1
}

// approximateDecodedSize returns the expected number of bytes for the given encoded text
func (t *Table) approximateDecodedSize(textBytes int) int {
	chars := int(math.Ceil(float64(textBytes) / t.averageBytes))
	return (chars*int(t.bitsPerChar) + 7) / 8
}
