package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"users-insights/config"
	"users-insights/internal/analytics"
	"users-insights/internal/dto"
	"users-insights/internal/evaluation"
	"users-insights/internal/repository/memory"
	"users-insights/internal/transport/http/server/handlers-fiber"
	"users-insights/internal/usecase"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:     config.ServerConfig{Host: "127.0.0.1", Port: 8000, ShutdownTimeout: time.Second},
		HTTP:       config.HTTPConfig{RequestTimeout: 2 * time.Second, BodyLimit: 1 << 20},
		Logging:    config.LoggingConfig{Level: "debug"},
		Metrics:    config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Evaluation: config.EvaluationConfig{Timeout: 2 * time.Second},
	}
}

// newApp wires the full stack; the evaluator targets baseURL.
func newApp(cfg *config.Config, baseURL string) *fiber.App {
	log := zap.NewNop().Sugar()
	ctx := context.Background()

	repo := memory.New(ctx, log, cfg.Metrics.Enabled)
	uc := usecase.New(log, ctx, repo, analytics.NewEngine(), cfg.HTTP.RequestTimeout)
	h := handlers_fiber.NewHandler(log, uc, evaluation.New(log, baseURL, cfg.Evaluation.Timeout))
	return New(log, cfg, h)
}

func TestHealthzAndMetrics(t *testing.T) {
	app := newApp(testConfig(), "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`[{"id":"1","name":"n","age":1,"score":901,"active":true,"country":"BR","team":{"name":"t","leader":false,"projects":[]},"logs":[]}]`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/superusers", nil))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "store_generations_installed_total")
	require.Contains(t, string(body), `analytics_report_duration_seconds_count{report="superusers"}`)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	app := newApp(cfg, "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSelfEvaluation(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	baseURL := "http://" + ln.Addr().String()
	app := newApp(testConfig(), baseURL)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL + "/evaluation")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.EvaluationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.TestedEndpoints, 4)
	for path, m := range out.TestedEndpoints {
		require.Equal(t, http.StatusOK, m.Status, path)
		require.True(t, m.ValidResponse, path)
	}
}
