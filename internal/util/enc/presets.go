package enc

import (
	"github.com/bokysan/base2n/internal/base2n"
	"github.com/pkg/errors"
	"sort"
	"strings"
	"sync"
)

// Preset is a named, well-known base2n alphabet
type Preset struct {
	Name        string
	Code        byte
	Charset     string
	KeepOrder   bool
	Description string

	once    sync.Once
	encoder *Base2nEncoder
	err     error
}

// Table returns the lazily built table of the preset
func (p *Preset) Table() (*base2n.Table, error) {
	e, err := p.Encoder()
	if err != nil {
		return nil, err
	}
	return e.Table(), nil
}

// Encoder returns the lazily built encoder of the preset. Tables are built once and shared.
func (p *Preset) Encoder() (*Base2nEncoder, error) {
	p.once.Do(func() {
		var table *base2n.Table
		table, p.err = base2n.NewTable(p.Charset,
			base2n.WithSortRanges(!p.KeepOrder),
			base2n.WithRepresentation(base2n.Dense),
		)
		if p.err != nil {
			return
		}
		p.encoder, p.err = NewBase2nEncoder(p.Name, p.Code, table, true)
	})
	return p.encoder, p.err
}

var (
	Base16Preset = &Preset{
		Name:        "base16",
		Code:        'G',
		Charset:     "09af",
		Description: "lowercase hexadecimal",
	}
	Base32Preset = &Preset{
		Name:        "base32",
		Code:        'H',
		Charset:     "az27",
		KeepOrder:   true,
		Description: "RFC 4648 base32, lowercase, no padding",
	}
	Base64Preset = &Preset{
		Name:        "base64",
		Code:        'I',
		Charset:     "AZaz09++//",
		KeepOrder:   true,
		Description: "RFC 4648 base64, no padding",
	}
	Base64UrlPreset = &Preset{
		Name:        "base64url",
		Code:        'J',
		Charset:     "AZaz09--__",
		KeepOrder:   true,
		Description: "RFC 4648 URL-safe base64, no padding",
	}
	Base1024Preset = &Preset{
		Name:        "base1024",
		Code:        'K',
		Charset:     "\u4e00\u51ff",
		Description: "10 bits per character, CJK ideographs",
	}
	Base32768Preset = &Preset{
		Name:        "base32768",
		Code:        'L',
		Charset:     "\u4e00\ucdff",
		Description: "15 bits per character, BMP block starting at U+4E00",
	}
	Base2n20Preset = &Preset{
		Name:        "base2n20",
		Code:        'M',
		Charset:     "!\ud7ff\ue000\U00100820",
		Description: "20 bits per character, most of Unicode above the ASCII control characters",
	}
)

// ErrUnknownPreset is returned when looking up a preset that does not exist
var ErrUnknownPreset = errors.New("unknown preset")

var presets = []*Preset{
	Base16Preset,
	Base32Preset,
	Base64Preset,
	Base64UrlPreset,
	Base1024Preset,
	Base32768Preset,
	Base2n20Preset,
}

var (
	RawEncoding     = &RawEncoder{}
	Base32Encoding  = &Base32Encoder{}
	Base64Encoding  = &Base64Encoder{}
	Base85Encoding  = &Base85Encoder{}
	Base91Encoding  = &Base91Encoder{}
	Base128Encoding = &Base128Encoder{}
)

var references = []Encoder{
	RawEncoding,
	Base32Encoding,
	Base64Encoding,
	Base85Encoding,
	Base91Encoding,
	Base128Encoding,
}

// Presets returns all base2n presets, in the order of increasing bit width
func Presets() []*Preset {
	res := make([]*Preset, len(presets))
	copy(res, presets)
	return res
}

// PresetNames returns the sorted names of all presets
func PresetNames() []string {
	res := make([]string, 0, len(presets))
	for _, p := range presets {
		res = append(res, p.Name)
	}
	sort.Strings(res)
	return res
}

// PresetFromName finds the preset by its (case-insensitive) name
func PresetFromName(name string) (*Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownPreset, "%v (known presets: %v)", name, strings.Join(PresetNames(), ", "))
}

// References returns the encoders the base2n presets are compared against
func References() []Encoder {
	res := make([]Encoder, len(references))
	copy(res, references)
	return res
}

// FromName returns the preset or reference encoder with the given (case-insensitive) name.
// Presets take precedence over reference encoders.
func FromName(name string) (Encoder, error) {
	p, err := PresetFromName(name)
	if err == nil {
		return p.Encoder()
	}
	for _, e := range references {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	return nil, err
}

// FromCode returns the preset or reference encoder with the given one-letter code
func FromCode(code byte) (Encoder, error) {
	for _, e := range references {
		if e.Code() == code {
			return e, nil
		}
	}
	for _, p := range presets {
		if p.Code == code {
			return p.Encoder()
		}
	}
	return nil, errors.Errorf("Unknown encoder code: %v", string(code))
}
