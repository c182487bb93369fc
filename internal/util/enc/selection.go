package enc

import (
	"fmt"
	"github.com/bokysan/base2n/internal/base2n"
	"strconv"
	"strings"
)

// CustomCode is the code reported by encoders built from a custom charset
const CustomCode = '*'

// Selection describes a base2n alphabet picked either by preset name or by a custom charset
type Selection struct {
	Preset         string
	Charset        string
	KeepOrder      bool
	Representation base2n.Representation
	PredictSize    bool
}

// Key uniquely identifies the encoder built for this selection
func (s Selection) Key() string {
	if s.Charset == "" {
		return fmt.Sprintf("preset:%s/%v/%v", strings.ToLower(s.Preset), s.Representation, s.PredictSize)
	}
	return fmt.Sprintf("charset:%s/%v/%v/%v", strconv.QuoteToASCII(s.Charset), s.KeepOrder, s.Representation, s.PredictSize)
}

// Table builds the lookup table for the selection with only the requested directions. A custom
// charset takes precedence over the preset.
func (s Selection) Table(dir base2n.Direction) (*base2n.Table, error) {
	charset, keepOrder := s.Charset, s.KeepOrder
	if charset == "" {
		p, err := PresetFromName(s.Preset)
		if err != nil {
			return nil, err
		}
		if s.Representation == base2n.Dense && dir == base2n.BothTables {
			return p.Table()
		}
		charset, keepOrder = p.Charset, p.KeepOrder
	}
	return base2n.NewTable(charset,
		base2n.WithSortRanges(!keepOrder),
		base2n.WithRepresentation(s.Representation),
		base2n.WithTables(dir),
	)
}

// Name is the preset name, or "base<N>" for a custom charset
func (s Selection) Name(t *base2n.Table) string {
	if s.Charset == "" {
		if p, err := PresetFromName(s.Preset); err == nil {
			return p.Name
		}
	}
	return fmt.Sprintf("base%d", t.Base())
}

// Build creates the encoder for the selection
func (s Selection) Build() (*Base2nEncoder, error) {
	table, err := s.Table(base2n.BothTables)
	if err != nil {
		return nil, err
	}
	if s.Charset == "" {
		p, err := PresetFromName(s.Preset)
		if err != nil {
			return nil, err
		}
		return NewBase2nEncoder(p.Name, p.Code, table, s.PredictSize)
	}
	return NewBase2nEncoder(s.Name(table), CustomCode, table, s.PredictSize)
}
