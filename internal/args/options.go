package args

import (
	"github.com/bokysan/base2n/internal/base2n"
	"github.com/bokysan/base2n/internal/util/enc"
)

type CallbackOption func(string) error

// General holds the options shared by all commands
var General struct {
	Verbose               []bool         `short:"v" long:"verbose"             env:"BASE2N_VERBOSITY"          description:"Show verbose debug information"`
	ConfigurationFile     CallbackOption `short:"c" long:"config"              env:"BASE2N_CONFIG"             description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string
	LogFile               *string `short:"l" long:"log-file"            env:"BASE2N_LOG_FILE"           description:"Log file (file will be appended). If not set, defaults to stderr." default:"-"`
	LogFormat             string  `short:"f" long:"log-format"          env:"BASE2N_LOG_FORMAT"         description:"Log file format (json or text)." choice:"text" choice:"json" default:"text"`
	LogColor              string  `short:"C" long:"log-color"           env:"BASE2N_LOG_COLOR"          description:"Should the log output be colored? true, false or auto" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto"`
	LogFullTimestamp      bool    `          long:"log-full-timestamp"  env:"BASE2N_LOG_FULL_TIMESTAMP" description:"Display full timestamp in logs."`
	LogReportCaller       bool    `          long:"log-report-caller"   env:"BASE2N_LOG_REPORT_CALLER"  description:"If you wish to add the calling method as a field."`
}

// Alphabet selects the table used by the encode, decode, table and compare commands
type Alphabet struct {
	Preset         string                `json:"preset"         short:"p" long:"preset"         env:"BASE2N_PRESET"         description:"Name of a built-in alphabet, e.g. base16, base32, base64url, base1024, base32768, base2n20" default:"base2n20"`
	Charset        string                `json:"charset"        short:"s" long:"charset"        env:"BASE2N_CHARSET"        description:"Custom alphabet as pairs of first and last characters, e.g. '09af'. Overrides --preset."`
	KeepOrder      bool                  `json:"keepOrder"            long:"keep-order"     env:"BASE2N_KEEP_ORDER"     description:"Assign values in the order the ranges are given instead of sorting them by codepoint"`
	Representation base2n.Representation `json:"representation" short:"r" long:"representation" env:"BASE2N_REPRESENTATION" description:"Lookup table representation (map or buffer)" default:"buffer"`
	PredictSize    bool                  `json:"predictSize"          long:"predict-size"   env:"BASE2N_PREDICT_SIZE"   description:"Preallocate the output buffer from the estimated output size"`
}

// Selection converts the options into an encoder selection
func (a *Alphabet) Selection() enc.Selection {
	return enc.Selection{
		Preset:         a.Preset,
		Charset:        a.Charset,
		KeepOrder:      a.KeepOrder,
		Representation: a.Representation,
		PredictSize:    a.PredictSize,
	}
}
