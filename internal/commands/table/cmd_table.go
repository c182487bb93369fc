package table

import (
	"fmt"
	"github.com/bokysan/base2n/internal/args"
	"github.com/bokysan/base2n/internal/base2n"
	"github.com/bokysan/base2n/internal/logging"
	"github.com/bokysan/base2n/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"strings"
	"time"
)

// sparseFactor is how many times larger than the alphabet a dense decode table may be before
// the user is warned
const sparseFactor = 16

// Command builds a table and reports its properties
type Command struct {
	args.Alphabet

	All    bool             `json:"all"    short:"a" long:"all"    description:"Describe all built-in presets"`
	Tables base2n.Direction `json:"tables" short:"t" long:"tables" description:"Lookup directions to build: encode, decode or both" default:"both"`
}

// Built is a table built by the command
type Built struct {
	Name  string
	Table *base2n.Table
}

func (c *Command) Execute(a []string) error {
	logging.SetupLogging()
	_, err := c.Run()
	return err
}

// Run builds the selected tables, logs their metadata and returns them
func (c *Command) Run() ([]*Built, error) {
	selections := make([]enc.Selection, 0)
	if c.All {
		for _, p := range enc.Presets() {
			selections = append(selections, enc.Selection{Preset: p.Name, Representation: c.Representation})
		}
	} else {
		selections = append(selections, c.Alphabet.Selection())
	}

	dir := c.Tables
	if dir == 0 {
		dir = base2n.BothTables
	}

	res := make([]*Built, 0, len(selections))
	for _, s := range selections {
		start := time.Now()
		t, err := s.Table(dir)
		if err != nil {
			return nil, err
		}
		b := &Built{Name: s.Name(t), Table: t}
		Describe(b, time.Since(start))
		res = append(res, b)
	}
	return res, nil
}

// Sparse is true for dense tables whose decode slice is much larger than the alphabet
func Sparse(t *base2n.Table) bool {
	return t.Representation() == base2n.Dense && t.CanDecode() && t.RangeSpan() > sparseFactor*t.Base()
}

// Describe logs the metadata of the table
func Describe(b *Built, buildTime time.Duration) {
	t := b.Table
	ranges := make([]string, 0)
	for _, r := range t.Ranges() {
		ranges = append(ranges, r.String())
	}

	log.WithFields(log.Fields{
		"base":           t.Base(),
		"bitsPerChar":    t.BitsPerChar(),
		"needsExtraChar": t.NeedsExtraChar(),
		"averageLength":  t.AverageLength(),
		"averageBytes":   t.AverageBytes(),
		"firstCodepoint": fmt.Sprintf("U+%04X", t.FirstCodepoint()),
		"lastCodepoint":  fmt.Sprintf("U+%04X", t.LastCodepoint()),
		"rangeSpan":      t.RangeSpan(),
		"sortedRanges":   t.SortedRanges(),
		"representation": t.Representation(),
		"canEncode":      t.CanEncode(),
		"canDecode":      t.CanDecode(),
		"ratio":          fmt.Sprintf("%.3f", t.AverageBytes()*8.0/float64(t.BitsPerChar())),
		"buildTime":      buildTime,
	}).Infof("Table %v: %v", b.Name, strings.Join(ranges, ", "))

	if Sparse(t) {
		log.Warnf("Table %v spans %v codepoints for %v characters, the dense decode table wastes memory. Consider --representation=map.",
			b.Name, t.RangeSpan(), t.Base())
	}

	if log.IsLevelEnabled(log.TraceLevel) {
		cfg := spew.ConfigState{Indent: "  ", MaxDepth: 2, DisablePointerAddresses: true, DisableCapacities: true}
		log.Tracef("%v", cfg.Sdump(t.Ranges()))
		log.Tracef("%v", cfg.Sdump(t.Charset()))
	}
}
