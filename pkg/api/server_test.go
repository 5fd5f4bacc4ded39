package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/mavcodec/pkg/dialect/openhd"
)

func TestRouter_Metrics(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})
	id := ts.openChannel(t, "")
	ts.pack(t, id, `{"message": "OPENHD_AIR_LOAD", "fields": {"cpuload": 1}}`)

	w, _ := ts.do(t, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `mavcodec_frames_packed_total{message="OPENHD_AIR_LOAD"} 1`)
	assert.Contains(t, body, `mavcodec_channels_open 1`)
	assert.Contains(t, body, `mavcodec_http_requests_total{endpoint="/api/v1/channels",method="POST",status_code="201"} 1`)
}

func TestRouter_APIKey(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{APIKey: "secret"})

	w, _ := ts.do(t, "GET", "/api/v1/health", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = ts.do(t, "GET", "/api/v1/health", "", "X-API-Key", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = ts.do(t, "GET", "/api/v1/health", "", "X-API-Key", "secret")
	assert.Equal(t, http.StatusOK, w.Code)

	// Missing keys are not counted as authentication attempts.
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.authRequestsTotal.WithLabelValues(statusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.authRequestsTotal.WithLabelValues(statusSuccess)))

	// Scraping and docs stay open.
	w, _ = ts.do(t, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = ts.do(t, "GET", "/swagger/index.html", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Swagger(t *testing.T) {
	ts := setupTestServer(t, ServerConfig{})

	w, _ := ts.do(t, "GET", "/swagger/index.html", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "/swagger/swagger.json")

	w, _ = ts.do(t, "GET", "/swagger/swagger.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		Swagger string                     `json:"swagger"`
		Info    map[string]string          `json:"info"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "mavcodec REST API", doc.Info["title"])
	for _, path := range []string{"/health", "/messages", "/messages/{name}", "/channels", "/channels/{id}", "/channels/{id}/pack", "/decode"} {
		assert.Contains(t, doc.Paths, path)
	}

	w, _ = ts.do(t, "GET", "/swagger/swagger.yaml", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))
	var yamlDoc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &yamlDoc))
	assert.Equal(t, "2.0", yamlDoc["swagger"])
	assert.Contains(t, w.Body.String(), "title: mavcodec REST API")

	w, _ = ts.do(t, "GET", "/swagger/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartServer_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- StartServer(ctx, openhd.NewDialect(), ServerConfig{Bind: "127.0.0.1", Port: 0}, nil)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestFactories(t *testing.T) {
	d, err := NewDialectFactory().CreateDialect("openhd", nil)
	require.NoError(t, err)
	assert.Equal(t, "openhd", d.Name())
	assert.Equal(t, 11, d.Len())

	_, err = NewDialectFactory().CreateDialect("ardupilotmega", nil)
	assert.Error(t, err)

	assert.IsType(t, &DefaultServerStarter{}, NewServerFactory().CreateServerStarter())
}
