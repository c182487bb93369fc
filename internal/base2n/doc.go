// Package base2n converts binary data to text drawn from an arbitrary alphabet whose size is a
// power of two, and back. It generalizes base16, base32 and base64 to any bit width between 1
// and 20 bits per character and to any set of Unicode codepoint ranges.
//
// An alphabet is described by a string of character pairs, each pair being the first and the last
// character of an inclusive range. "09af" is the lowercase hexadecimal alphabet:
//
//	table, err := base2n.NewTable("09af")
//	text, err := base2n.Encode([]byte{0x4a}, table)   // "4a"
//	data, err := base2n.Decode(text, table)           // []byte{0x4a}
//
// Alphabets with a bit width other than 1, 2, 4 or 8 end every encoded string with one extra
// character telling the decoder how many bits of the last group were real data.
//
// A Table is immutable and can be shared between goroutines.
package base2n
