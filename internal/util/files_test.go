package util

import (
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func Test_OutputName(t *testing.T) {
	require.Equal(t, "data_encoded.txt", OutputName("data.bin", "_encoded.txt"))
	require.Equal(t, filepath.Join("dir", "data_decoded.bin"), OutputName(filepath.Join("dir", "data_encoded.txt"), "_decoded.bin"))
	require.Equal(t, "README_encoded.txt", OutputName("README", "_encoded.txt"))
}

func Test_ReadWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.bin")
	require.NoError(t, WriteFile(name, []byte{1, 2, 3}))

	data, err := ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, data)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}
