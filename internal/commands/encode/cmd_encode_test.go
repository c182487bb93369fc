package encode

import (
	"github.com/bokysan/base2n/internal/args"
	"github.com/bokysan/base2n/internal/base2n"
	"github.com/bokysan/base2n/internal/util"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func Test_EncodeFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "data.bin")
	data := make([]byte, 1000)
	for k := range data {
		data[k] = byte(k * 7)
	}
	require.NoError(t, util.WriteFile(input, data))

	for _, repr := range []base2n.Representation{base2n.Associative, base2n.Dense} {
		cmd := &Command{
			Alphabet: args.Alphabet{Preset: "base32768", Representation: repr, PredictSize: true},
			Input:    input,
			Hash:     "blake2b",
		}
		output, err := cmd.Run()
		require.NoError(t, err)
		require.Equal(t, filepath.Join(filepath.Dir(input), "data_encoded.txt"), output)

		text, err := util.ReadFile(output)
		require.NoError(t, err)
		require.True(t, utf8.Valid(text))
		// 8000 bits in 15 bit characters, plus the remainder character
		require.Equal(t, 535, utf8.RuneCount(text))
	}
}

func Test_EncodeErrors(t *testing.T) {
	dir := t.TempDir()
	cmd := &Command{
		Alphabet: args.Alphabet{Preset: "base16"},
		Input:    filepath.Join(dir, "missing.bin"),
	}
	_, err := cmd.Run()
	require.Error(t, err)

	input := filepath.Join(dir, "data.bin")
	require.NoError(t, util.WriteFile(input, []byte{1}))
	cmd = &Command{
		Alphabet: args.Alphabet{Charset: "02"},
		Input:    input,
	}
	_, err = cmd.Run()
	require.Error(t, err)
}

func Test_Verify(t *testing.T) {
	require.NoError(t, Verify("sha256", []byte{1, 2}, []byte{1, 2}))
	require.Error(t, Verify("sha256", []byte{1, 2}, []byte{1, 3}))
	require.Error(t, Verify("md5", []byte{1, 2}, []byte{1, 2}))
}

func Test_EncodeWrapped(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.bin")
	require.NoError(t, util.WriteFile(input, make([]byte, 30)))

	cmd := &Command{
		Alphabet: args.Alphabet{Preset: "base16"},
		Input:    input,
		Output:   filepath.Join(dir, "wrapped.txt"),
		Wrap:     16,
	}
	output, err := cmd.Run()
	require.NoError(t, err)

	text, err := util.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("0", 16)+"\n"+strings.Repeat("0", 16)+"\n"+strings.Repeat("0", 16)+"\n"+strings.Repeat("0", 12), string(text))
}
