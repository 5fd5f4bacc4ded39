package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/mavcodec/pkg/dialect/openhd"
)

// airLoadFrame is OPENHD_AIR_LOAD{cpuload: 42, temp: 55} from system 1,
// component 1, sequence 0.
const airLoadFrame = "fd020000000101ce04002a375569"

type testServer struct {
	server  *Server
	handler http.Handler
	metrics *Metrics
}

func setupTestServer(t *testing.T, config ServerConfig) *testServer {
	t.Helper()

	if config.SystemID == 0 {
		config.SystemID, config.ComponentID = 1, 1
	}
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(openhd.NewDialect(), config, metrics, logger)

	return &testServer{server: server, handler: NewRouter(server, reg), metrics: metrics}
}

type rawResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (ts *testServer) do(t *testing.T, method, path, body string, header ...string) (*httptest.ResponseRecorder, rawResponse) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)

	var resp rawResponse
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func decodeData(t *testing.T, resp rawResponse, v interface{}) {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(resp.Data))
	dec.UseNumber()
	require.NoError(t, dec.Decode(v))
}

func (ts *testServer) openChannel(t *testing.T, body string) string {
	t.Helper()
	w, resp := ts.do(t, "POST", "/api/v1/channels", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ch ChannelResponse
	decodeData(t, resp, &ch)
	return ch.ID
}

func (ts *testServer) pack(t *testing.T, channelID, body string) PackResponse {
	t.Helper()
	w, resp := ts.do(t, "POST", "/api/v1/channels/"+channelID+"/pack", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out PackResponse
	decodeData(t, resp, &out)
	return out
}

func TestServer_handleHealth(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})

	w, resp := ts.do(t, "GET", "/api/v1/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	var data map[string]interface{}
	decodeData(t, resp, &data)
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "openhd", data["dialect"])
	assert.Equal(t, json.Number("11"), data["messages"])
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.healthChecksTotal.WithLabelValues(statusSuccess)))
}

func TestServer_handleListMessages(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})

	w, resp := ts.do(t, "GET", "/api/v1/messages", "")
	require.Equal(t, http.StatusOK, w.Code)

	var messages []MessageSummary
	decodeData(t, resp, &messages)
	require.Len(t, messages, 11)

	assert.Equal(t, MessageSummary{ID: 0, Name: "HEARTBEAT", PayloadLen: 9, MinPayloadLen: 9, CRCExtra: 50, Typed: true}, messages[0])
	assert.Equal(t, MessageSummary{ID: 1230, Name: "OPENHD_AIR_LOAD", PayloadLen: 2, MinPayloadLen: 2, CRCExtra: 97, Typed: true}, messages[10])
	for i := 1; i < len(messages); i++ {
		assert.Less(t, messages[i-1].ID, messages[i].ID)
	}
}

func TestServer_handleGetMessage(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})

	t.Run("by name", func(t *testing.T) {
		w, resp := ts.do(t, "GET", "/api/v1/messages/openhd_air_load", "")
		require.Equal(t, http.StatusOK, w.Code)

		var detail MessageDetail
		decodeData(t, resp, &detail)
		assert.Equal(t, uint32(1230), detail.ID)
		assert.Equal(t, uint8(97), detail.CRCExtra)
		assert.True(t, detail.Typed)
		require.Len(t, detail.Fields, 2)
		assert.Equal(t, "cpuload", detail.Fields[0].Name)
		assert.Equal(t, 1, detail.Fields[1].Offset)
	})

	t.Run("by id", func(t *testing.T) {
		w, resp := ts.do(t, "GET", "/api/v1/messages/147", "")
		require.Equal(t, http.StatusOK, w.Code)

		var detail MessageDetail
		decodeData(t, resp, &detail)
		assert.Equal(t, "BATTERY_STATUS", detail.Name)
		assert.Equal(t, 36, detail.MinPayloadLen)
		assert.Equal(t, 54, detail.PayloadLen)
	})

	t.Run("unknown", func(t *testing.T) {
		w, resp := ts.do(t, "GET", "/api/v1/messages/NOPE", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, resp.Success)
	})
}

func TestServer_ChannelLifecycle(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})

	id := ts.openChannel(t, "")
	assert.Len(t, id, 27) // ksuid string form
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.channelsOpen))

	first := ts.pack(t, id, `{"message": "OPENHD_AIR_LOAD", "fields": {"cpuload": 42, "temp": 55}}`)
	assert.Equal(t, airLoadFrame, first.Frame)
	assert.Equal(t, 14, first.Length)
	assert.Equal(t, uint8(0), first.Sequence)

	second := ts.pack(t, id, `{"message": "OPENHD_AIR_LOAD", "system_id": 1, "component_id": 1, "fields": {"cpuload": 42, "temp": 55}}`)
	assert.Equal(t, uint8(1), second.Sequence)
	assert.NotEqual(t, first.Frame, second.Frame)

	w, resp := ts.do(t, "GET", "/api/v1/channels/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var ch ChannelResponse
	decodeData(t, resp, &ch)
	assert.Equal(t, 2, ch.Version)
	assert.Equal(t, uint8(2), ch.Sequence)
	assert.Equal(t, 2.0, testutil.ToFloat64(ts.metrics.framesPackedTotal.WithLabelValues("OPENHD_AIR_LOAD")))

	w, _ = ts.do(t, "DELETE", "/api/v1/channels/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.0, testutil.ToFloat64(ts.metrics.channelsOpen))

	w, _ = ts.do(t, "GET", "/api/v1/channels/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = ts.do(t, "DELETE", "/api/v1/channels/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_ChannelsAreIndependent(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})
	a := ts.openChannel(t, "")
	b := ts.openChannel(t, `{"version": 2}`)

	ts.pack(t, a, `{"message": "HEARTBEAT"}`)
	ts.pack(t, a, `{"message": "HEARTBEAT"}`)
	out := ts.pack(t, b, `{"message": "HEARTBEAT"}`)

	assert.Equal(t, uint8(0), out.Sequence)
}

func TestServer_PackHeartbeatVersions(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})
	body := `{"message": "HEARTBEAT", "fields": {"type": 2, "autopilot": 3, "base_mode": 81, "custom_mode": 4, "system_status": 4, "mavlink_version": 3}}`

	v2 := ts.openChannel(t, "")
	assert.Equal(t, "fd0900000001010000000400000002035104037bae", ts.pack(t, v2, body).Frame)

	v1 := ts.openChannel(t, `{"version": 1}`)
	assert.Equal(t, "fe0900010100040000000203510403e16d", ts.pack(t, v1, body).Frame)
}

func TestServer_PackExtendedIDOnV1Channel(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})
	id := ts.openChannel(t, `{"version": 1}`)

	w, resp := ts.do(t, "POST", "/api/v1/channels/"+id+"/pack", `{"message": "OPENHD_AIR_LOAD"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, resp.Error, "MAVLink 1")

	// The rejected pack did not consume a sequence number.
	out := ts.pack(t, id, `{"message": "HEARTBEAT"}`)
	assert.Equal(t, uint8(0), out.Sequence)
}

func TestServer_PackErrors(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})
	id := ts.openChannel(t, "")

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"unknown channel", "/api/v1/channels/missing/pack", `{"message": "HEARTBEAT"}`, http.StatusNotFound},
		{"malformed body", "/api/v1/channels/" + id + "/pack", `{"message":`, http.StatusBadRequest},
		{"unknown message", "/api/v1/channels/" + id + "/pack", `{"message": "NOPE"}`, http.StatusNotFound},
		{"unknown field", "/api/v1/channels/" + id + "/pack", `{"message": "HEARTBEAT", "fields": {"speed": 1}}`, http.StatusBadRequest},
		{"non numeric value", "/api/v1/channels/" + id + "/pack", `{"message": "HEARTBEAT", "fields": {"type": "fast"}}`, http.StatusBadRequest},
		{"array too long", "/api/v1/channels/" + id + "/pack", `{"message": "BATTERY_STATUS", "fields": {"voltages": [1,2,3,4,5,6,7,8,9,10,11]}}`, http.StatusBadRequest},
		{"system id out of range", "/api/v1/channels/" + id + "/pack", `{"message": "HEARTBEAT", "system_id": 300}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := ts.do(t, "POST", tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}

	out := ts.pack(t, id, `{"message": "HEARTBEAT"}`)
	assert.Equal(t, uint8(0), out.Sequence)
}

func TestServer_CreateChannelRejectsVersion(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})

	w, _ := ts.do(t, "POST", "/api/v1/channels", `{"version": 3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = ts.do(t, "POST", "/api/v1/channels", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_handleDecode(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})

	w, resp := ts.do(t, "POST", "/api/v1/decode", `{"frame": "fd 02 00 00 00 01 01 ce 04 00 2a 37 55 69"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out DecodeResponse
	decodeData(t, resp, &out)
	assert.Equal(t, 2, out.Version)
	assert.Equal(t, uint32(1230), out.MessageID)
	assert.Equal(t, "OPENHD_AIR_LOAD", out.Message)
	assert.Equal(t, 2, out.PayloadLen)
	assert.True(t, out.Typed)
	assert.False(t, out.Signed)
	assert.Equal(t, json.Number("42"), out.Fields["cpuload"])
	assert.Equal(t, json.Number("55"), out.Fields["temp"])
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.framesDecodedTotal.WithLabelValues("OPENHD_AIR_LOAD")))
}

func TestServer_handleDecodeRejections(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})

	tests := []struct {
		name   string
		frame  string
		reason string
	}{
		{"checksum", "fd020000000101ce04002a385569", "checksum"},
		{"unknown id", "fd020000000101cf04002a375569", "unknown_id"},
		{"bad magic", "fa020000000101ce04002a375569", "magic"},
		{"truncated", "fd020000000101ce04002a37", "truncated"},
		{"length", "fd030000000101ce04002a3700d0c3", "length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := ts.do(t, "POST", "/api/v1/decode", `{"frame": "`+tt.frame+`"}`)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

			var detail RejectionDetail
			decodeData(t, resp, &detail)
			assert.Equal(t, tt.reason, detail.Reason)
			assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.framesRejectedTotal.WithLabelValues(tt.reason)))
		})
	}

	w, _ := ts.do(t, "POST", "/api/v1/decode", `{"frame": "zz"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_PackDecodeRoundTrip(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})
	id := ts.openChannel(t, "")

	packed := ts.pack(t, id, `{
		"message": "BATTERY_STATUS",
		"system_id": 7,
		"fields": {"id": 1, "voltages": [4100, 4110], "battery_remaining": -1, "current_consumed": -20}
	}`)
	// Extensions are zero so the payload is trimmed to its minimum.
	assert.Equal(t, 10+36+2, packed.Length)

	w, resp := ts.do(t, "POST", "/api/v1/decode", `{"frame": "`+packed.Frame+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out DecodeResponse
	decodeData(t, resp, &out)
	assert.Equal(t, uint8(7), out.SystemID)
	assert.Equal(t, uint8(1), out.ComponentID)
	assert.Equal(t, "BATTERY_STATUS", out.Message)
	assert.Equal(t, json.Number("-1"), out.Fields["battery_remaining"])
	assert.Equal(t, json.Number("-20"), out.Fields["current_consumed"])
	assert.Equal(t, json.Number("0"), out.Fields["time_remaining"])

	voltages, ok := out.Fields["voltages"].([]interface{})
	require.True(t, ok)
	require.Len(t, voltages, 10)
	assert.Equal(t, json.Number("4100"), voltages[0])
	assert.Equal(t, json.Number("4110"), voltages[1])
	assert.Equal(t, json.Number("0"), voltages[9])
}

func TestServer_PackKeepsUint64Exact(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})
	id := ts.openChannel(t, "")

	packed := ts.pack(t, id, `{"message": "GPS_RAW_INT", "fields": {"time_usec": 18446744073709551615, "lat": -353632621}}`)

	_, resp := ts.do(t, "POST", "/api/v1/decode", `{"frame": "`+packed.Frame+`"}`)
	var out DecodeResponse
	decodeData(t, resp, &out)
	assert.Equal(t, json.Number("18446744073709551615"), out.Fields["time_usec"])
	assert.Equal(t, json.Number("-353632621"), out.Fields["lat"])
}

func TestServer_ConcurrentPacksShareSequence(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})
	id := ts.openChannel(t, "")

	const n = 64
	seqs := make(chan uint8, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest("POST", "/api/v1/channels/"+id+"/pack", strings.NewReader(`{"message": "HEARTBEAT"}`))
			w := httptest.NewRecorder()
			ts.handler.ServeHTTP(w, req)

			var resp struct {
				Data PackResponse `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err == nil {
				seqs <- resp.Data.Sequence
			}
		}()
	}
	wg.Wait()
	close(seqs)

	seen := make(map[uint8]bool)
	for s := range seqs {
		seen[s] = true
	}
	assert.Len(t, seen, n)
}
