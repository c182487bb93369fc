package enc

// Encoder converts binary data to text and back.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represends the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse proces of encoding
	Decode(string) ([]byte, error)

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string

	// Ratio is the approximate number of output bytes produced for every input byte
	Ratio() float64
}
