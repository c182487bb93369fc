package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type encodeOptions struct {
	Preset      string `long:"preset"`
	Charset     string `long:"charset"`
	PredictSize bool   `long:"predict-size"`
}

func newParser(t *testing.T) (*YamlParser, *encodeOptions) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	data := &encodeOptions{}
	_, err := parser.AddCommand("encode", "Encode", "Encode a file", data)
	require.NoErrorf(t, err, "Could not add encode command")
	return NewYamlParser(parser), data
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"
	yamlParser, _ := newParser(t)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_EncodeParse(t *testing.T) {
	file := "testdata/encode.yml"
	yamlParser, data := newParser(t)

	err := yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, true, data.PredictSize, "Invalid reading of boolean value")
	require.Equal(t, "base1024", data.Preset, "Invalid reading of string value")
}

func Test_MultipleDocuments(t *testing.T) {
	file := "testdata/multiple.yml"
	yamlParser, data := newParser(t)

	err := yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "base16", data.Preset)
	require.Equal(t, "07", data.Charset)
}

func Test_ParseReader(t *testing.T) {
	yamlParser, data := newParser(t)
	err := yamlParser.Parse(strings.NewReader("encode:\n  charset: \"\\u4e00\\u51ff\"\n"))
	require.NoError(t, err)
	require.Equal(t, "一凿", data.Charset)
}

func Test_InvalidEncodeParse(t *testing.T) {
	file := "testdata/invalid_encode.yml"
	yamlParser, _ := newParser(t)

	err := yamlParser.ParseFile(file)
	require.Errorf(t, err, "Parsing should fail: %v", file)
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"
	yamlParser, _ := newParser(t)

	err := yamlParser.ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
	require.Contains(t, err.Error(), "tunnel")
}

func Test_MissingFile(t *testing.T) {
	yamlParser, _ := newParser(t)
	require.Error(t, yamlParser.ParseFile("testdata/does_not_exist.yml"))
}
