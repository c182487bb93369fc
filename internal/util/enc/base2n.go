package enc

import (
	"fmt"
	"github.com/bokysan/base2n/internal/base2n"
	"github.com/pkg/errors"
)

// Base2nEncoder encodes data with an arbitrary power-of-two alphabet
type Base2nEncoder struct {
	name        string
	code        byte
	table       *base2n.Table
	predictSize bool
}

// NewBase2nEncoder wraps the table into an Encoder. The table must have been built for both directions.
func NewBase2nEncoder(name string, code byte, table *base2n.Table, predictSize bool) (*Base2nEncoder, error) {
	if table == nil || !table.CanEncode() || !table.CanDecode() {
		return nil, errors.WithStack(base2n.ErrTableNotBuilt)
	}
	return &Base2nEncoder{
		name:        name,
		code:        code,
		table:       table,
		predictSize: predictSize,
	}, nil
}

func (b *Base2nEncoder) Name() string {
	return b.name
}

func (b *Base2nEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base2nEncoder) Code() byte {
	return b.code
}

func (b *Base2nEncoder) Table() *base2n.Table {
	return b.table
}

func (b *Base2nEncoder) Encode(data []byte) string {
	res, err := base2n.Encode(data, b.table, base2n.WithPredictSize(b.predictSize))
	if err != nil {
		// Only possible with a table missing the encode lookup, which the constructor rejects
		panic(err)
	}
	return res
}

func (b *Base2nEncoder) Decode(data string) ([]byte, error) {
	return base2n.Decode(data, b.table, base2n.WithPredictSize(b.predictSize))
}

func (b *Base2nEncoder) TestPatterns() []string {
	res := make([]string, 0, 2)
	res = append(res, b.table.Charset())
	if r, ok := b.table.Lookup().Rune(uint32(b.table.Base() - 1)); ok {
		res = append(res, string([]rune{r, r, r}))
	}
	return res
}

// Ratio is the average number of output bytes per input byte, including the UTF-8 size of the characters
func (b *Base2nEncoder) Ratio() float64 {
	return b.table.AverageBytes() * 8.0 / float64(b.table.BitsPerChar())
}
