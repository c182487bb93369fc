package util

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_SplitList(t *testing.T) {
	require.Equal(t, []string{"base64", "Base91", "raw"}, SplitList(" base64 ,Base91,  raw "))
	require.Equal(t, []string{}, SplitList(""))
	require.Equal(t, []string{"a", "b"}, SplitList("a,,b,"))
}

func Test_Wrap(t *testing.T) {
	require.Equal(t, "abc\ndef\ng", Wrap("abcdefg", 3))
	require.Equal(t, "abcdef", Wrap("abcdef", 0))
	require.Equal(t, "abc", Wrap("abc", 3))
	require.Equal(t, "一凿\n丁", Wrap("一凿丁", 2))
}

func Test_Unwrap(t *testing.T) {
	require.Equal(t, "abcdefg", Unwrap("abc\ndef\r\ng"))
	require.Equal(t, "一凿丁", Unwrap(Wrap("一凿丁", 1)))
}
