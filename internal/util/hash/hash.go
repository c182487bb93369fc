// Package hash provides the digests used to verify that decoded data matches the original
package hash

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	stdhash "hash"
	"sort"
	"strings"
)

const Default = "sha1"

var constructors = map[string]func() stdhash.Hash{
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"blake2b": func() stdhash.Hash {
		// Only fails with an invalid key
		h, _ := blake2b.New256(nil)
		return h
	},
	"xxhash": func() stdhash.Hash {
		return xxhash.New()
	},
}

// Names returns the sorted list of supported digest names
func Names() []string {
	res := make([]string, 0, len(constructors))
	for k := range constructors {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// New returns a fresh hash for the given name. An empty name selects the default (sha1).
func New(name string) (stdhash.Hash, error) {
	if name == "" {
		name = Default
	}
	c, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("Unknown hash: %v. Supported: %v", name, strings.Join(Names(), ", "))
	}
	return c(), nil
}

// Sum calculates the hex digest of the data
func Sum(name string, data []byte) (string, error) {
	h, err := New(name)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
