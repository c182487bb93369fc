package base2n

import (
	"github.com/pkg/errors"
	"math"
	"strings"
)

type codecOptions struct {
	predictSize bool
}

// CodecOption configures Encode and Decode.
type CodecOption func(*codecOptions)

// WithPredictSize pre-allocates the output buffer from the expected output length. It never
// changes the result.
func WithPredictSize(predictSize bool) CodecOption {
	return func(o *codecOptions) {
		o.predictSize = predictSize
	}
}

func codecOpts(opts []CodecOption) codecOptions {
	o := codecOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Encode converts the data into a string of alphabet characters. Bits are consumed MSB-first,
// bitsPerChar at a time. A final partial group is zero-padded. Tables with a bit width that does
// not divide a byte evenly get one extra character whose value is the number of real bits in the
// final group.
func Encode(data []byte, t *Table, opts ...CodecOption) (string, error) {
	if t == nil || t.lookup == nil || !t.lookup.CanEncode() {
		return "", errors.WithStack(newError(TableNotBuilt, "can't encode, lookup table wasn't generated"))
	}
	o := codecOpts(opts)

	b := &strings.Builder{}
	if o.predictSize {
		b.Grow(t.approximateEncodedSize(len(data)) * int(math.Ceil(t.averageBytes)))
	}

	lookup := t.lookup
	bitsPerChar := t.bitsPerChar
	mask := uint64(1)<<bitsPerChar - 1

	var buffer uint64
	var bufferBits uint

	for _, v := range data {
		buffer = buffer<<8 | uint64(v)
		bufferBits += 8

		for bufferBits >= bitsPerChar {
			bufferBits -= bitsPerChar
			r, _ := lookup.Rune(uint32((buffer >> bufferBits) & mask))
			b.WriteRune(r)
		}
	}

	if bufferBits > 0 {
		r, _ := lookup.Rune(uint32((buffer << (bitsPerChar - bufferBits)) & mask))
		b.WriteRune(r)
	}

	if t.needsExtraChar {
		r, _ := lookup.Rune(uint32(bufferBits))
		b.WriteRune(r)
	}

	return b.String(), nil
}
