//go:build fuzz
// +build fuzz

package base2n

import (
	"bytes"
	"testing"
)

// FuzzRoundTrip checks that every input survives an encode/decode cycle for every bit width
func FuzzRoundTrip(f *testing.F) {
	tables := make([]*Table, 0, 2*maxBitsPerChar)
	for _, repr := range representations {
		for bpc := uint(1); bpc <= maxBitsPerChar; bpc++ {
			tables = append(tables, generateTable(f, repr, bpc, 0x10000))
		}
	}

	f.Add([]byte(""), uint8(0))
	f.Add([]byte{0xFF}, uint8(2))
	f.Add([]byte("hello, world"), uint8(19))

	f.Fuzz(func(t *testing.T, data []byte, which uint8) {
		table := tables[int(which)%len(tables)]
		encoded, err := Encode(data, table)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		decoded, err := Decode(encoded, table, WithPredictSize(which%2 == 0))
		if err != nil {
			t.Fatalf("Decode failed for %v: %v", table, err)
		}
		if !bytes.Equal(decoded, data) {
			t.Errorf("Round trip mismatch for %v: got %x, want %x", table, decoded, data)
		}
	})
}

// FuzzDecode makes sure arbitrary text never panics the decoder
func FuzzDecode(f *testing.F) {
	table := generateTable(f, Dense, 5, 'A')

	f.Add("ABCD")
	f.Add("")
	f.Add("\U0001F600")

	f.Fuzz(func(t *testing.T, text string) {
		_, _ = Decode(text, table)
	})
}
