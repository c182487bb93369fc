package base2n

import (
	"github.com/pkg/errors"
	"unicode/utf8"
)

// growPercent is how much the predicted decode buffer grows when the prediction was too low
const growPercent = 5

// Decode reverses Encode. For tables that need the extra character, the last character of the
// text is the remainder marker; it tells how many of the final group's bits were padding, and
// the bytes that padding produced are dropped from the output.
func Decode(text string, t *Table, opts ...CodecOption) ([]byte, error) {
	if t == nil || t.lookup == nil || !t.lookup.CanDecode() {
		return nil, errors.WithStack(newError(TableNotBuilt, "can't decode, lookup table wasn't generated"))
	}
	if !utf8.ValidString(text) {
		return nil, errors.WithStack(newError(InvalidInput, "encoded text is not valid UTF-8"))
	}
	o := codecOpts(opts)

	body := text
	var marker rune
	if t.needsExtraChar {
		if text == "" {
			return nil, errors.WithStack(newError(InvalidCharacter, "missing remainder character"))
		}
		r, size := utf8.DecodeLastRuneInString(text)
		marker = r
		body = text[:len(text)-size]
	}

	var decoded []byte
	if o.predictSize {
		decoded = make([]byte, 0, t.approximateDecodedSize(len(body)))
	} else {
		decoded = []byte{}
	}

	lookup := t.lookup
	bitsPerChar := t.bitsPerChar

	var buffer uint64
	var bufferBits uint

	pos := 0
	for _, r := range body {
		val, ok := lookup.Value(r)
		if !ok {
			return nil, errors.WithStack(invalidCharacter(r, pos))
		}

		buffer = buffer<<bitsPerChar | uint64(val)
		bufferBits += bitsPerChar

		for bufferBits >= 8 {
			bufferBits -= 8
			if o.predictSize && len(decoded) == cap(decoded) {
				decoded = expand(decoded, growPercent)
			}
			decoded = append(decoded, byte(buffer>>bufferBits))
		}
		pos++
	}

	if !t.needsExtraChar {
		return decoded, nil
	}

	leftoverBits, ok := lookup.Value(marker)
	if !ok {
		return nil, errors.WithStack(invalidCharacter(marker, pos))
	}
	if uint(leftoverBits) >= bitsPerChar {
		err := newError(InvalidCharacter, "remainder character out of range")
		err.Rune = marker
		err.Offset = pos
		err.Value = leftoverBits
		return nil, errors.WithStack(err)
	}

	extraBits := uint(0)
	if leftoverBits > 0 {
		extraBits = bitsPerChar - uint(leftoverBits)
	}
	zeros := int(extraBits / 8)

	// Whatever is left in the accumulator must be exactly the padding the encoder added.
	if bufferBits != extraBits%8 || zeros > len(decoded) {
		err := newError(InvalidCharacter, "remainder character does not match the encoded length")
		err.Rune = marker
		err.Offset = pos
		err.Value = leftoverBits
		return nil, errors.WithStack(err)
	}

	return decoded[:len(decoded)-zeros], nil
}

func invalidCharacter(r rune, pos int) *Error {
	err := newError(InvalidCharacter, "invalid character in encoded string")
	err.Rune = r
	err.Offset = pos
	return err
}

// expand returns a copy of buf with the capacity increased by the given percentage
func expand(buf []byte, percent int) []byte {
	newCap := cap(buf) + cap(buf)*percent/100
	if newCap <= cap(buf) {
		newCap = cap(buf) + 1
	}
	res := make([]byte, len(buf), newCap)
	copy(res, buf)
	return res
}
