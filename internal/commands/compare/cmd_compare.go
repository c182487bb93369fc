package compare

import (
	"bytes"
	"github.com/bokysan/base2n/internal/args"
	"github.com/bokysan/base2n/internal/logging"
	"github.com/bokysan/base2n/internal/util"
	"github.com/bokysan/base2n/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"time"
	"unicode/utf8"
)

// Command encodes files with the selected table and the reference encoders and reports the sizes
type Command struct {
	args.Alphabet

	Inputs   []string `json:"inputs"   short:"i" long:"input"    required:"true" description:"File to compare the encoders on. Can be repeated."`
	Encoders string   `json:"encoders" short:"e" long:"encoders"                 description:"Comma-separated names of the encoders to compare against. Defaults to all reference encoders."`
}

// Result is the outcome of one encoder on one file
type Result struct {
	File       string
	Encoder    string
	Bytes      int
	Characters int
	TextBytes  int
	EncodeTime time.Duration
	DecodeTime time.Duration
}

// Ratio is the number of UTF-8 bytes of the text per byte of input
func (r *Result) Ratio() float64 {
	if r.Bytes == 0 {
		return 0
	}
	return float64(r.TextBytes) / float64(r.Bytes)
}

func (c *Command) Execute(a []string) error {
	logging.SetupLogging()
	_, err := c.Run()
	return err
}

// Run compares all encoders on all files. A failing file does not stop the others; all errors are
// returned together.
func (c *Command) Run() ([]*Result, error) {
	selected, err := c.Alphabet.Selection().Build()
	if err != nil {
		return nil, err
	}

	encoders, err := c.encoders(selected)
	if err != nil {
		return nil, err
	}

	var errs error
	results := make([]*Result, 0)
	for _, file := range c.Inputs {
		data, err := util.ReadFile(file)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		for _, e := range encoders {
			r, err := Measure(e, file, data)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			log.WithFields(log.Fields{
				"file":       r.File,
				"encoder":    r.Encoder,
				"bytes":      r.Bytes,
				"characters": r.Characters,
				"textBytes":  r.TextBytes,
				"ratio":      r.Ratio(),
				"expected":   e.Ratio(),
				"encodeTime": r.EncodeTime,
				"decodeTime": r.DecodeTime,
			}).Infof("%v: %v", file, e)
			results = append(results, r)
		}
	}

	return results, errs
}

func (c *Command) encoders(selected enc.Encoder) ([]enc.Encoder, error) {
	res := []enc.Encoder{selected}
	names := util.SplitList(c.Encoders)
	if len(names) == 0 {
		return append(res, enc.References()...), nil
	}
	for _, name := range names {
		e, err := enc.FromName(name)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

// Measure encodes and decodes the data and checks the round trip
func Measure(e enc.Encoder, file string, data []byte) (*Result, error) {
	start := time.Now()
	text := e.Encode(data)
	encodeTime := time.Since(start)

	start = time.Now()
	decoded, err := e.Decode(text)
	if err != nil {
		return nil, errors.Wrapf(err, "%v could not decode %v", e.Name(), file)
	}
	decodeTime := time.Since(start)

	if !bytes.Equal(data, decoded) {
		return nil, errors.Errorf("%v: round trip of %v returned different data", e.Name(), file)
	}

	return &Result{
		File:       file,
		Encoder:    e.Name(),
		Bytes:      len(data),
		Characters: utf8.RuneCountInString(text),
		TextBytes:  len(text),
		EncodeTime: encodeTime,
		DecodeTime: decodeTime,
	}, nil
}
