package encode

import (
	"github.com/bokysan/base2n/internal/args"
	"github.com/bokysan/base2n/internal/logging"
	"github.com/bokysan/base2n/internal/util"
	"github.com/bokysan/base2n/internal/util/hash"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"time"
)

// Command encodes a file, writes the text next to it and verifies that it decodes back
type Command struct {
	args.Alphabet

	Input    string `json:"input"    short:"i" long:"input"     required:"true" description:"File to encode"`
	Output   string `json:"output"   short:"o" long:"output"                    description:"Output file. Defaults to <input>_encoded.txt"`
	Hash     string `json:"hash"               long:"hash"                      description:"Digest used to verify the round trip" choice:"sha1" choice:"sha256" choice:"blake2b" choice:"xxhash" default:"sha1"`
	NoVerify bool   `json:"noVerify"           long:"no-verify"                 description:"Skip decoding the written file"`
	Wrap     int    `json:"wrap"         short:"w" long:"wrap"                      description:"Insert a line break after every N characters. Decode with --unwrap."`
}

func (c *Command) Execute(a []string) error {
	logging.SetupLogging()
	_, err := c.Run()
	return err
}

// Run does the work of Execute and returns the name of the written file
func (c *Command) Run() (string, error) {
	data, err := util.ReadFile(c.Input)
	if err != nil {
		return "", err
	}

	start := time.Now()
	encoder, err := c.Alphabet.Selection().Build()
	if err != nil {
		return "", err
	}
	tableTime := time.Since(start)

	start = time.Now()
	text := encoder.Encode(data)
	encodeTime := time.Since(start)
	text = util.Wrap(text, c.Wrap)

	output := c.Output
	if output == "" {
		output = util.OutputName(c.Input, "_encoded.txt")
	}
	if err := util.WriteFile(output, []byte(text)); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"table":      encoder.Name(),
		"bits":       encoder.Table().BitsPerChar(),
		"input":      c.Input,
		"output":     output,
		"bytes":      len(data),
		"characters": len([]rune(text)),
		"textBytes":  len(text),
		"tableTime":  tableTime,
		"encodeTime": encodeTime,
	}).Infof("Encoded %v to %v", c.Input, output)

	if c.NoVerify {
		return output, nil
	}

	written, err := util.ReadFile(output)
	if err != nil {
		return "", err
	}
	start = time.Now()
	if c.Wrap > 0 {
		written = []byte(util.Unwrap(string(written)))
	}
	decoded, err := encoder.Decode(string(written))
	if err != nil {
		return "", errors.Wrapf(err, "Could not decode %v", output)
	}
	decodeTime := time.Since(start)

	if err := Verify(c.Hash, data, decoded); err != nil {
		return "", err
	}
	log.WithField("decodeTime", decodeTime).Infof("Verified %v", output)

	return output, nil
}

// Verify compares the digests of the original and the decoded data
func Verify(hashName string, original, decoded []byte) error {
	expected, err := hash.Sum(hashName, original)
	if err != nil {
		return err
	}
	actual, err := hash.Sum(hashName, decoded)
	if err != nil {
		return err
	}
	log.Debugf("%v original: %v, decoded: %v", hashName, expected, actual)
	if expected != actual {
		return errors.Errorf("Round trip failed: %v of the original is %v, of the decoded data %v", hashName, expected, actual)
	}
	return nil
}
