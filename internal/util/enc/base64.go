package enc

import (
	"encoding/base64"
	"fmt"
	"github.com/pkg/errors"
)

const (
	cb64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
)

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters, RFC 4648 standard alphabet without padding
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "StdBase64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return base64.RawStdEncoding.EncodeToString(data)
}

func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	res, err := base64.RawStdEncoding.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base64Encoder) TestPatterns() []string {
	return []string{
		cb64,
	}
}

func (b *Base64Encoder) Ratio() float64 {
	return 4.0 / 3.0
}
