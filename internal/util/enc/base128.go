package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
	"strings"
	"sync"
)

const (
	// Latin-1 accented characters are used for the upper part of the alphabet, as they might
	// readily be entered in normal use.
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"¼½¾¿ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕÖ×ØÙÚÛÜÝÞßàáâãäåæçèéêëìíîïðñòóôõö÷øùúûüý"
)

var cb128Runes []rune
var cb128Invert map[rune]byte
var cbInitialized sync.Once

func setupCb128Invert() {
	cbInitialized.Do(func() {
		cb128Runes = []rune(cb128)
		cb128Invert = make(map[rune]byte, len(cb128Runes))
		for i, v := range cb128Runes {
			cb128Invert[v] = byte(i)
		}
	})
}

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) string {
	dst := make([]byte, 0, len(src)*8/7+1)

	whichByte := uint(1)
	bufByte := byte(0)

	for _, val := range src {
		// Take the current buffer, add current value, shifted.
		// E.g. first round is first 7 bits of value
		elem := bufByte | (val >> whichByte)
		dst = append(dst, elem)

		// Prepare the remaining data for the next buffer.
		// E.g. first round is the remaining bit
		bufByte = val & ((1 << whichByte) - 1)

		// Shift the remaining value to the left
		bufByte = bufByte << (7 - whichByte)

		if whichByte == 7 {
			dst = append(dst, bufByte)
			bufByte = 0
			whichByte = 0
		}

		whichByte++
	}

	if whichByte > 1 {
		dst = append(dst, bufByte)
	}
	return escape128(dst)
}

func escape128(src []byte) string {
	setupCb128Invert()
	res := &strings.Builder{}
	res.Grow(len(src) * 2)
	for _, v := range src {
		res.WriteRune(cb128Runes[v&0x7F])
	}
	return res.String()
}

func unescape128(src string) ([]byte, error) {
	setupCb128Invert()
	res := make([]byte, 0, len(src))
	for _, v := range src {
		b, ok := cb128Invert[v]
		if !ok {
			return nil, errors.Errorf("Invalid base128 character: %q", v)
		}
		res = append(res, b)
	}
	return res, nil
}

func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	src, err := unescape128(data)
	if err != nil {
		return nil, err
	}
	res, err := base128.DecodeString(string(src))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base128Encoder) TestPatterns() []string {
	return []string{
		"aA-Aaahhh-Drink-mal-ein-Jägermeister-",
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ",
		cb128,
	}
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}
