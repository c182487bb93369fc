package server

import (
	"encoding/json"
	"fmt"
	"github.com/bokysan/base2n/internal/base2n"
	"github.com/bokysan/base2n/internal/util/enc"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"
)

const (
	opEncode = "encode"
	opDecode = "decode"
	opTable  = "table"
)

// TableInfo is the JSON description of a table
type TableInfo struct {
	Name           string   `json:"name"`
	Code           string   `json:"code,omitempty"`
	Description    string   `json:"description,omitempty"`
	Charset        string   `json:"charset"`
	Ranges         []string `json:"ranges"`
	Base           int      `json:"base"`
	BitsPerChar    uint     `json:"bitsPerChar"`
	NeedsExtraChar bool     `json:"needsExtraChar"`
	AverageLength  float64  `json:"averageLength"`
	AverageBytes   float64  `json:"averageBytes"`
	FirstCodepoint string   `json:"firstCodepoint"`
	LastCodepoint  string   `json:"lastCodepoint"`
	RangeSpan      int      `json:"rangeSpan"`
	SortedRanges   bool     `json:"sortedRanges"`
	Representation string   `json:"representation"`
}

// NewTableInfo describes the table of the encoder
func NewTableInfo(e *enc.Base2nEncoder) *TableInfo {
	t := e.Table()
	ranges := make([]string, 0)
	for _, r := range t.Ranges() {
		ranges = append(ranges, r.String())
	}
	return &TableInfo{
		Name:           e.Name(),
		Code:           string(e.Code()),
		Charset:        t.Charset(),
		Ranges:         ranges,
		Base:           t.Base(),
		BitsPerChar:    t.BitsPerChar(),
		NeedsExtraChar: t.NeedsExtraChar(),
		AverageLength:  t.AverageLength(),
		AverageBytes:   t.AverageBytes(),
		FirstCodepoint: fmt.Sprintf("U+%04X", t.FirstCodepoint()),
		LastCodepoint:  fmt.Sprintf("U+%04X", t.LastCodepoint()),
		RangeSpan:      t.RangeSpan(),
		SortedRanges:   t.SortedRanges(),
		Representation: t.Representation().String(),
	}
}

// selectionFromQuery reads the alphabet from the query string: preset (default base2n20), charset,
// representation (default buffer), keepOrder and predictSize.
func selectionFromQuery(r *http.Request) (enc.Selection, error) {
	q := r.URL.Query()
	s := enc.Selection{
		Preset:         q.Get("preset"),
		Charset:        q.Get("charset"),
		Representation: base2n.Dense,
	}
	if s.Preset == "" {
		s.Preset = enc.Base2n20Preset.Name
	}
	if v := q.Get("representation"); v != "" {
		repr, err := base2n.ParseRepresentation(v)
		if err != nil {
			return s, err
		}
		s.Representation = repr
	}
	var err error
	if s.KeepOrder, err = queryBool(q.Get("keepOrder")); err != nil {
		return s, err
	}
	if s.PredictSize, err = queryBool(q.Get("predictSize")); err != nil {
		return s, err
	}
	return s, nil
}

func queryBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrapf(errBadRequest, "invalid boolean %q", v)
	}
	return b, nil
}

var errBadRequest = errors.New("bad request")

// statusOf maps an error to the HTTP status: 400 for anything caused by the request, 500 otherwise
func statusOf(err error) int {
	if errors.Is(err, errBadRequest) || errors.Is(err, enc.ErrUnknownPreset) {
		return http.StatusBadRequest
	}
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return http.StatusRequestEntityTooLarge
	}
	var e *base2n.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case base2n.TableNotBuilt, base2n.NoTableRequested:
			return http.StatusInternalServerError
		default:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func resultOf(status int) string {
	if status < 500 {
		return resultClientError
	}
	return resultError
}

func (ws *HttpServer) fail(w http.ResponseWriter, r *http.Request, op string, err error, size int, start time.Time) {
	status := statusOf(err)
	ws.metrics.RecordOperation(op, resultOf(status), size, start)
	entry := log.WithError(err).WithField("request_id", middleware.GetReqID(r.Context()))
	if status >= 500 {
		entry.Errorf("Could not %v: %+v", op, err)
	} else {
		entry.Debugf("Rejected %v request: %v", op, err)
	}
	http.Error(w, err.Error(), status)
}

func (ws *HttpServer) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, ws.config.MaxBodySize))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return body, nil
}

func (ws *HttpServer) handleEncode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s, err := selectionFromQuery(r)
	if err != nil {
		ws.fail(w, r, opEncode, err, 0, start)
		return
	}
	e, err := ws.tables.Get(s)
	if err != nil {
		ws.fail(w, r, opEncode, err, 0, start)
		return
	}
	data, err := ws.readBody(w, r)
	if err != nil {
		ws.fail(w, r, opEncode, err, 0, start)
		return
	}

	text := e.Encode(data)
	ws.metrics.RecordOperation(opEncode, resultSuccess, len(data), start)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Base2n-Table", e.Name())
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, text); err != nil {
		log.WithError(err).Debugf("Could not write the response: %v", err)
	}
}

func (ws *HttpServer) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s, err := selectionFromQuery(r)
	if err != nil {
		ws.fail(w, r, opDecode, err, 0, start)
		return
	}
	e, err := ws.tables.Get(s)
	if err != nil {
		ws.fail(w, r, opDecode, err, 0, start)
		return
	}
	body, err := ws.readBody(w, r)
	if err != nil {
		ws.fail(w, r, opDecode, err, 0, start)
		return
	}
	if !utf8.Valid(body) {
		ws.fail(w, r, opDecode, errors.Wrapf(errBadRequest, "request body is not valid UTF-8"), len(body), start)
		return
	}

	data, err := e.Decode(string(body))
	if err != nil {
		ws.fail(w, r, opDecode, err, len(body), start)
		return
	}
	ws.metrics.RecordOperation(opDecode, resultSuccess, len(body), start)

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Base2n-Table", e.Name())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Debugf("Could not write the response: %v", err)
	}
}

func (ws *HttpServer) handleListTables(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	res := make([]*TableInfo, 0)
	for _, p := range enc.Presets() {
		e, err := ws.tables.Get(enc.Selection{Preset: p.Name, Representation: base2n.Dense})
		if err != nil {
			ws.fail(w, r, opTable, err, 0, start)
			return
		}
		info := NewTableInfo(e)
		info.Description = p.Description
		res = append(res, info)
	}
	ws.metrics.RecordOperation(opTable, resultSuccess, 0, start)
	writeJSON(w, res)
}

func (ws *HttpServer) handleTable(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	p, err := enc.PresetFromName(chi.URLParam(r, "preset"))
	if err != nil {
		ws.fail(w, r, opTable, err, 0, start)
		return
	}
	s, err := selectionFromQuery(r)
	if err != nil {
		ws.fail(w, r, opTable, err, 0, start)
		return
	}
	s.Preset = p.Name
	s.Charset = ""
	e, err := ws.tables.Get(s)
	if err != nil {
		ws.fail(w, r, opTable, err, 0, start)
		return
	}
	info := NewTableInfo(e)
	info.Description = p.Description
	ws.metrics.RecordOperation(opTable, resultSuccess, 0, start)
	writeJSON(w, info)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Debugf("Could not write the response: %v", err)
	}
}
