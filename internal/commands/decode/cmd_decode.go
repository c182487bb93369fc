package decode

import (
	"github.com/bokysan/base2n/internal/args"
	"github.com/bokysan/base2n/internal/logging"
	"github.com/bokysan/base2n/internal/util"
	"github.com/bokysan/base2n/internal/util/hash"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"time"
	"unicode/utf8"
)

// Command decodes a text file back into binary data
type Command struct {
	args.Alphabet

	Input  string `json:"input"  short:"i" long:"input"  required:"true" description:"File to decode"`
	Output string `json:"output" short:"o" long:"output"                 description:"Output file. Defaults to <input>_decoded.bin"`
	Hash   string `json:"hash"             long:"hash"                   description:"Digest logged for the decoded data" choice:"sha1" choice:"sha256" choice:"blake2b" choice:"xxhash" default:"sha1"`
	Unwrap bool   `json:"unwrap"           long:"unwrap"                 description:"Remove line breaks before decoding"`
}

func (c *Command) Execute(a []string) error {
	logging.SetupLogging()
	_, err := c.Run()
	return err
}

// Run does the work of Execute and returns the name of the written file
func (c *Command) Run() (string, error) {
	text, err := util.ReadFile(c.Input)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(text) {
		return "", errors.Errorf("%v is not a valid UTF-8 file", c.Input)
	}

	start := time.Now()
	encoder, err := c.Alphabet.Selection().Build()
	if err != nil {
		return "", err
	}
	tableTime := time.Since(start)

	start = time.Now()
	input := string(text)
	if c.Unwrap {
		input = util.Unwrap(input)
	}
	data, err := encoder.Decode(input)
	if err != nil {
		return "", errors.Wrapf(err, "Could not decode %v", c.Input)
	}
	decodeTime := time.Since(start)

	output := c.Output
	if output == "" {
		output = util.OutputName(c.Input, "_decoded.bin")
	}
	if err := util.WriteFile(output, data); err != nil {
		return "", err
	}

	digest, err := hash.Sum(c.Hash, data)
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"table":      encoder.Name(),
		"input":      c.Input,
		"output":     output,
		"bytes":      len(data),
		"tableTime":  tableTime,
		"decodeTime": decodeTime,
		"hash":       c.Hash,
		"digest":     digest,
	}).Infof("Decoded %v to %v", c.Input, output)

	return output, nil
}
