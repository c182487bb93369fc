package main

import (
	"fmt"
	"github.com/bokysan/base2n/internal/args"
	"github.com/bokysan/base2n/internal/commands/compare"
	"github.com/bokysan/base2n/internal/commands/decode"
	"github.com/bokysan/base2n/internal/commands/encode"
	"github.com/bokysan/base2n/internal/commands/serve"
	"github.com/bokysan/base2n/internal/commands/table"
	"github.com/bokysan/base2n/internal/commands/version"
	b2nFlags "github.com/bokysan/base2n/internal/flags"
	"github.com/bokysan/base2n/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base2n is the main executable
type Base2n struct {
	parser *flags.Parser
}

// NewBase2n will create a new instance of Base2n and initialize the parser
func NewBase2n() *Base2n {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &Base2n{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.addCommand("version", "Print the version", "Print the application version and exit", &version.Command{})
	b.addCommand("encode", "Encode a file", "Encode a file to text and verify that the text decodes back to the same data", &encode.Command{})
	b.addCommand("decode", "Decode a file", "Decode a text file back to binary data", &decode.Command{})
	b.addCommand("table", "Describe a table", "Build an alphabet table and print its properties", &table.Command{})
	b.addCommand("compare", "Compare encoders", "Encode files with the selected alphabet and the reference encoders and compare the sizes", &compare.Command{})
	b.addCommand("serve", "Run the HTTP service", "Serve encode and decode requests over HTTP", &serve.Command{})

	return b
}

// setupGeneral will configure general options
func (b *Base2n) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

func (b *Base2n) addCommand(name, short, long string, cmd interface{}) {
	_, err := b.parser.AddCommand(name, short, long, cmd)
	util.MustErrorNilOrExit(err)
}

// main parses the configuration file and the command line and runs the selected command
func main() {
	b := NewBase2n()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := b2nFlags.NewYamlParser(b.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
