package base2n

import (
	"github.com/pkg/errors"
	"strings"
)

// Representation selects how the lookup tables are laid out in memory.
type Representation int

const (
	// Associative uses maps. Works for any codepoint layout at a higher per-lookup cost.
	Associative Representation = iota
	// Dense uses slices. The decode slice spans FirstCodepoint..LastCodepoint, so it is only
	// compact when the ranges are close together.
	Dense
)

func (r Representation) String() string {
	switch r {
	case Associative:
		return "map"
	case Dense:
		return "buffer"
	default:
		return "unknown"
	}
}

// ParseRepresentation maps a textual tag to a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "map", "associative":
		return Associative, nil
	case "buffer", "dense", "typedarray", "array":
		return Dense, nil
	}
	err := newError(UnknownTableRepresentation, "invalid table type")
	err.Value = s
	return Associative, errors.WithStack(err)
}

// MarshalFlag implements flags.Marshaler
func (r Representation) MarshalFlag() (string, error) {
	return r.String(), nil
}

// UnmarshalFlag implements flags.Unmarshaler
func (r *Representation) UnmarshalFlag(value string) error {
	v, err := ParseRepresentation(value)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Representation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Representation) UnmarshalText(text []byte) error {
	return r.UnmarshalFlag(string(text))
}

// Direction is a bit set of the lookup directions to build.
type Direction uint8

const (
	// EncodeTable is the value -> character lookup
	EncodeTable Direction = 1 << iota
	// DecodeTable is the character -> value lookup
	DecodeTable

	BothTables = EncodeTable | DecodeTable
)

func (d Direction) String() string {
	switch d {
	case EncodeTable:
		return "encode"
	case DecodeTable:
		return "decode"
	case BothTables:
		return "both"
	default:
		return "none"
	}
}

// ParseDirection maps "encode", "decode" or "both" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "encode,decode", "decode,encode":
		return BothTables, nil
	case "encode":
		return EncodeTable, nil
	case "decode":
		return DecodeTable, nil
	}
	err := newError(NoTableRequested, "unknown table direction %q", s)
	err.Value = s
	return 0, errors.WithStack(err)
}

// MarshalFlag implements flags.Marshaler
func (d Direction) MarshalFlag() (string, error) {
	return d.String(), nil
}

// UnmarshalFlag implements flags.Unmarshaler
func (d *Direction) UnmarshalFlag(value string) error {
	v, err := ParseDirection(value)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	return d.UnmarshalFlag(string(text))
}

// LookupTable maps alphabet values to characters and back. Implementations are filled once
// by NewTable and are read-only afterwards.
type LookupTable interface {
	Representation() Representation
	// Size is the number of symbols in the alphabet
	Size() int
	CanEncode() bool
	CanDecode() bool
	// Rune returns the character for the value
	Rune(val uint32) (rune, bool)
	// Value returns the value of the character
	Value(r rune) (uint32, bool)

	set(val uint32, r rune)
}

func newLookupTable(repr Representation, dir Direction, rs *RangeSet) (LookupTable, error) {
	switch repr {
	case Associative:
		m := &mapLookup{size: rs.Size}
		if dir&EncodeTable != 0 {
			m.encode = make(map[uint32]rune, rs.Size)
		}
		if dir&DecodeTable != 0 {
			m.decode = make(map[rune]uint32, rs.Size)
		}
		return m, nil
	case Dense:
		d := &denseLookup{size: rs.Size, first: rs.FirstCodepoint}
		if dir&EncodeTable != 0 {
			d.encode = make([]rune, rs.Size)
		}
		if dir&DecodeTable != 0 {
			d.decode = make([]uint32, rs.RangeSpan)
			for i := range d.decode {
				d.decode[i] = denseSentinel
			}
		}
		return d, nil
	}
	err := newError(UnknownTableRepresentation, "invalid table type")
	err.Value = repr
	return nil, errors.WithStack(err)
}

// -------------------------------------------------------

type mapLookup struct {
	size   int
	encode map[uint32]rune
	decode map[rune]uint32
}

func (m *mapLookup) Representation() Representation { return Associative }
func (m *mapLookup) Size() int                      { return m.size }
func (m *mapLookup) CanEncode() bool                { return m.encode != nil }
func (m *mapLookup) CanDecode() bool                { return m.decode != nil }

func (m *mapLookup) Rune(val uint32) (rune, bool) {
	r, ok := m.encode[val]
	return r, ok
}

func (m *mapLookup) Value(r rune) (uint32, bool) {
	v, ok := m.decode[r]
	return v, ok
}

func (m *mapLookup) set(val uint32, r rune) {
	if m.encode != nil {
		m.encode[val] = r
	}
	if m.decode != nil {
		m.decode[r] = val
	}
}

// -------------------------------------------------------

// denseSentinel marks decode slots of codepoints that are not part of the alphabet
const denseSentinel = ^uint32(0)

type denseLookup struct {
	size   int
	first  rune
	encode []rune
	decode []uint32
}

func (d *denseLookup) Representation() Representation { return Dense }
func (d *denseLookup) Size() int                      { return d.size }
func (d *denseLookup) CanEncode() bool                { return d.encode != nil }
func (d *denseLookup) CanDecode() bool                { return d.decode != nil }

func (d *denseLookup) Rune(val uint32) (rune, bool) {
	if uint64(val) >= uint64(len(d.encode)) {
		return 0, false
	}
	return d.encode[val], true
}

func (d *denseLookup) Value(r rune) (uint32, bool) {
	idx := int64(r) - int64(d.first)
	if idx < 0 || idx >= int64(len(d.decode)) {
		return 0, false
	}
	v := d.decode[idx]
	if v == denseSentinel {
		return 0, false
	}
	return v, true
}

func (d *denseLookup) set(val uint32, r rune) {
	if d.encode != nil {
		d.encode[val] = r
	}
	if d.decode != nil {
		d.decode[r-d.first] = val
	}
}
