package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themer/internal/metrics"
	"github.com/alexisbeaulieu97/themer/pkg/loader"
	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

func newTestServer(t *testing.T) (*Server, *loader.Registry, *metrics.Metrics, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	registry, err := loader.Load(map[string]any{
		"Default": map[string]any{
			"accent": map[string]any{"hex": "#FF0000", "alpha": 0.5},
			"title":  "Default",
			"label": map[string]any{
				"font":      map[string]any{"name": "Avenir", "size": 18},
				"alignment": "right",
			},
			"fade": 0.25,
		},
		"Dark": map[string]any{
			"title": "Dark",
		},
	}, loader.WithStrictColors(false), loader.WithThemeOptions(theme.WithCacheObserver(m)))
	require.NoError(t, err)

	return New(Options{Registry: registry, Metrics: m, Gatherer: reg}), registry, m, reg
}

func do(t *testing.T, s *Server, method, target string) (int, []byte) {
	t.Helper()

	resp, err := s.App().Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHealth(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newTestServer(t)
	status, body := do(t, s, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", string(body))
}

func TestListThemes(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newTestServer(t)
	status, body := do(t, s, http.MethodGet, "/themes")
	require.Equal(t, http.StatusOK, status)

	var resp themesResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "Default", resp.Default)
	assert.Equal(t, []themeSummary{
		{Name: "Dark", Parent: "Default"},
		{Name: "Default", Default: true},
	}, resp.Themes)
}

func TestValues(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newTestServer(t)

	cases := []struct {
		name   string
		target string
		status int
		check  func(t *testing.T, value any)
	}{
		{
			name:   "inherited raw value",
			target: "/themes/Dark/values?key=fade",
			status: http.StatusOK,
			check: func(t *testing.T, value any) {
				assert.Equal(t, 0.25, value)
			},
		},
		{
			name:   "own string",
			target: "/themes/Dark/values?key=title&type=string",
			status: http.StatusOK,
			check: func(t *testing.T, value any) {
				assert.Equal(t, "Dark", value)
			},
		},
		{
			name:   "color",
			target: "/themes/Dark/values?key=accent&type=color",
			status: http.StatusOK,
			check: func(t *testing.T, value any) {
				color := value.(map[string]any)
				assert.Equal(t, "#ff0000", color["hex"])
			},
		},
		{
			name:   "label with adjustment",
			target: "/themes/Default/values?key=label&type=label&adjust=2",
			status: http.StatusOK,
			check: func(t *testing.T, value any) {
				label := value.(map[string]any)
				font := label["font"].(map[string]any)
				assert.Equal(t, 20.0, font["size"])
				assert.Equal(t, "right", label["alignment"])
			},
		},
		{name: "unknown theme", target: "/themes/Light/values?key=title", status: http.StatusNotFound},
		{name: "missing specifier", target: "/themes/Dark/values?key=nothing&type=view", status: http.StatusNotFound},
		{name: "unknown type", target: "/themes/Dark/values?key=title&type=matrix", status: http.StatusBadRequest},
		{name: "bad adjustment", target: "/themes/Dark/values?key=label&type=font&adjust=x", status: http.StatusBadRequest},
		{name: "missing key", target: "/themes/Dark/values", status: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, s, http.MethodGet, tc.target)
			require.Equal(t, tc.status, status, string(body))

			if tc.check == nil {
				var errResp errorResponse
				require.NoError(t, json.Unmarshal(body, &errResp))
				assert.NotEmpty(t, errResp.Error)
				return
			}
			var resp valueResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			tc.check(t, resp.Value)
		})
	}
}

func TestMalformedColorIsUnprocessable(t *testing.T) {
	t.Parallel()

	registry, err := loader.Load(map[string]any{
		"Default": map[string]any{"bad": map[string]any{"hex": "#12"}},
	}, loader.WithStrictColors(false))
	require.NoError(t, err)
	s := New(Options{Registry: registry})

	status, body := do(t, s, http.MethodGet, "/themes/Default/values?key=bad&type=color")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, string(body), "color error")
}

func TestClearCache(t *testing.T) {
	t.Parallel()

	s, registry, m, _ := newTestServer(t)

	status, _ := do(t, s, http.MethodGet, "/themes/Dark/values?key=accent&type=color")
	require.Equal(t, http.StatusOK, status)
	dark, _ := registry.Theme("Dark")
	require.Equal(t, 1, dark.CacheSizes()[theme.CacheColor])

	status, body := do(t, s, http.MethodDelete, "/themes/Dark/caches/color")
	require.Equal(t, http.StatusOK, status)

	var resp clearResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, map[string]int{theme.CacheColor: 1}, resp.Cleared)
	assert.Zero(t, dark.CacheSizes()[theme.CacheColor])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheClearedTotal.WithLabelValues("Dark", theme.CacheColor)))

	status, _ = do(t, s, http.MethodDelete, "/themes/Dark/caches/images")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	s, _, m, _ := newTestServer(t)

	do(t, s, http.MethodGet, "/themes/Default/values?key=accent&type=color")
	do(t, s, http.MethodGet, "/themes/Default/values?key=accent&type=color")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("200", "/themes/:name/values")))

	status, body := do(t, s, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `themer_cache_hits_total{cache="color",theme="Default"} 1`)
	assert.Contains(t, string(body), "themer_http_request_duration_seconds")
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newTestServer(t)
	status, _ := do(t, s, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, status)
}
