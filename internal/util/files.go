package util

import (
	"github.com/pkg/errors"
	"os"
	"path/filepath"
	"strings"
)

// OutputName derives the output file name from the input file, e.g. "data.bin" and "_encoded.txt"
// give "data_encoded.txt" in the same directory
func OutputName(input, suffix string) string {
	dir, file := filepath.Split(input)
	ext := filepath.Ext(file)
	return filepath.Join(dir, strings.TrimSuffix(file, ext)+suffix)
}

// ReadFile reads the whole file
func ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read %v", name)
	}
	return data, nil
}

// WriteFile creates or truncates the file and writes the data to it
func WriteFile(name string, data []byte) error {
	if err := os.WriteFile(name, data, 0644); err != nil {
		return errors.Wrapf(err, "Could not write %v", name)
	}
	return nil
}
