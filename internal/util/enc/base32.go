package enc

import (
	"encoding/base32"
	"fmt"
	"github.com/pkg/errors"
)

const (
	cb32 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
)

var rfcBase32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters using the RFC 4648 alphabet, without padding.
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "StdBase32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return rfcBase32Encoding.EncodeToString(data)
}

func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	res, err := rfcBase32Encoding.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base32Encoder) TestPatterns() []string {
	return []string{
		cb32,
	}
}

func (b *Base32Encoder) Ratio() float64 {
	return 8.0 / 5.0
}
