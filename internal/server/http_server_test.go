package server

import (
	"bytes"
	"encoding/json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func newTestServer(t *testing.T) (*HttpServer, *httptest.Server) {
	ws, err := NewHttpServer(Config{Address: "127.0.0.1:0", CacheSize: 4, MaxBodySize: 1024})
	require.NoError(t, err)
	ts := httptest.NewServer(ws.Router())
	t.Cleanup(ts.Close)
	return ws, ts
}

func post(t *testing.T, ts *httptest.Server, path string, body []byte) (int, []byte) {
	res, err := http.Post(ts.URL+path, "application/octet-stream", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, data
}

func Test_EncodeHex(t *testing.T) {
	_, ts := newTestServer(t)

	status, body := post(t, ts, "/encode?preset=base16", []byte{0x4a})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "4a", string(body))

	status, body = post(t, ts, "/encode?charset=07&representation=map", []byte{0xff})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "7762", string(body))
}

func Test_RoundTrip(t *testing.T) {
	ws, ts := newTestServer(t)
	data := []byte("The quick brown fox jumps over the lazy dog")

	for _, query := range []string{
		"",
		"?preset=base1024&predictSize=true",
		"?preset=base32&representation=map",
		"?charset=" + url.QueryEscape("\U0001F600\U0001F63F"),
	} {
		status, encoded := post(t, ts, "/encode"+query, data)
		require.Equal(t, http.StatusOK, status, query)

		status, decoded := post(t, ts, "/decode"+query, encoded)
		require.Equal(t, http.StatusOK, status, query)
		require.Equal(t, data, decoded, query)
	}

	require.Equal(t, 4, ws.tables.Len())
	require.Equal(t, float64(4), testutil.ToFloat64(ws.metrics.operationsTotal.WithLabelValues(opEncode, resultSuccess)))
	require.Equal(t, float64(4), testutil.ToFloat64(ws.metrics.operationsTotal.WithLabelValues(opDecode, resultSuccess)))
	require.Equal(t, float64(4*len(data)), testutil.ToFloat64(ws.metrics.bytesTotal.WithLabelValues(opEncode)))
	require.Equal(t, float64(4), testutil.ToFloat64(ws.metrics.tableCacheTotal.WithLabelValues("hit")))
}

func Test_BadRequests(t *testing.T) {
	ws, ts := newTestServer(t)

	for path, body := range map[string][]byte{
		"/encode?preset=base3":           {1},
		"/encode?charset=02":             {1},
		"/encode?charset=095a":           {1},
		"/encode?representation=tree":    {1},
		"/encode?predictSize=maybe":      {1},
		"/decode?preset=base16":          []byte("4g"),
		"/decode?preset=base1024":        []byte(""),
		"/decode?preset=base16&utf8=no":  []byte("\xff"),
		"/decode?charset=07&keepOrder=1": []byte("7767"),
	} {
		status, _ := post(t, ts, path, body)
		require.Equal(t, http.StatusBadRequest, status, path)
	}
	require.Equal(t, float64(4), testutil.ToFloat64(ws.metrics.operationsTotal.WithLabelValues(opDecode, resultClientError)))
}

func Test_BodyTooLarge(t *testing.T) {
	_, ts := newTestServer(t)
	status, _ := post(t, ts, "/encode", make([]byte, 2048))
	require.Equal(t, http.StatusRequestEntityTooLarge, status)
}

func Test_Tables(t *testing.T) {
	_, ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/tables/base64url")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))

	info := &TableInfo{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(info))
	require.Equal(t, "base64url", info.Name)
	require.Equal(t, 64, info.Base)
	require.Equal(t, uint(6), info.BitsPerChar)
	require.True(t, info.NeedsExtraChar)
	require.False(t, info.SortedRanges)
	require.Equal(t, "buffer", info.Representation)
	require.Equal(t, []string{"U+0041-U+005A", "U+0061-U+007A", "U+0030-U+0039", "U+002D-U+002D", "U+005F-U+005F"}, info.Ranges)

	res2, err := http.Get(ts.URL + "/tables")
	require.NoError(t, err)
	defer res2.Body.Close()
	list := make([]TableInfo, 0)
	require.NoError(t, json.NewDecoder(res2.Body).Decode(&list))
	require.Len(t, list, 7)

	res3, err := http.Get(ts.URL + "/tables/base3")
	require.NoError(t, err)
	defer res3.Body.Close()
	require.Equal(t, http.StatusBadRequest, res3.StatusCode)
}

func Test_Metrics(t *testing.T) {
	_, ts := newTestServer(t)
	post(t, ts, "/encode?preset=base16", []byte{1, 2, 3})

	res, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	text := string(body)
	require.True(t, strings.Contains(text, `base2n_operations_total{op="encode",result="success"} 1`), text)
	require.True(t, strings.Contains(text, `base2n_bytes_total{op="encode"} 3`), text)
}

func Test_StartupShutdown(t *testing.T) {
	ws, err := NewHttpServer(Config{Address: "127.0.0.1:0"})
	require.NoError(t, err)
	require.NoError(t, ws.Startup())

	res, err := http.Post(ws.String()+"/encode?preset=base16", "application/octet-stream", bytes.NewReader([]byte{0xab}))
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	require.NoError(t, err)
	require.Equal(t, "ab", string(body))

	require.NoError(t, ws.Shutdown())
	select {
	case err := <-ws.Errors():
		require.NoError(t, err)
	case <-time.After(100 * time.Millisecond):
	}
}

func Test_ServeFailure(t *testing.T) {
	ws, err := NewHttpServer(Config{Address: "127.0.0.1:0"})
	require.NoError(t, err)
	require.NoError(t, ws.Startup())

	// closing the listener underneath the server makes Serve return
	require.NoError(t, ws.listener.Close())

	select {
	case err := <-ws.Errors():
		require.Error(t, err)
		require.Contains(t, err.Error(), "stopped")
	case <-time.After(5 * time.Second):
		require.Fail(t, "server failure was not reported")
	}
	require.NoError(t, ws.Shutdown())
}

func Test_StatusOf(t *testing.T) {
	require.Equal(t, http.StatusInternalServerError, statusOf(io.ErrUnexpectedEOF))
}
