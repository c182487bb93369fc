package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"
)

// YamlParser reads command options for a flags.Parser from a YAML file instead of an INI file.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses options from a yaml formatted file. Unknown top-level keys are reported as
// flags.Error with type flags.ErrUnknownGroup.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Anchors and aliases may point to files next to the configuration file
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents one after another. Multiple documents in one stream are separated
// by triple dashes (`---`); later documents override the values of earlier ones.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document at position %v", i)
		}

		if err = y.parseDocument(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseDocument matches every top-level key to a command of the parser (e.g. "encode:") and
// unmarshals the value into that command's options.
func (y *YamlParser) parseDocument(obj map[string]interface{}) error {
	for name, val := range obj {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command '%s'", name),
			})
		}

		// go-flags keeps the options struct in an unexported field of the group
		group := reflect.ValueOf(command.Group)
		dereferencedGroup := reflect.Indirect(group)
		dataField := dereferencedGroup.FieldByName("data")
		dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
		options := dataField.Elem()

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, options.Interface()); err != nil {
			return errors.Wrapf(err, "Invalid options for '%s'", name)
		}
	}
	return nil
}
