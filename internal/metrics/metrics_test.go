package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := NewRegistry()

	engine := gin.New()
	engine.Use(reg.Middleware())
	engine.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })
	engine.GET("/metrics", gin.WrapH(reg.Handler()))

	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	reg.OnboardingTransition("next", errors.New("blocked"))
	reg.POSTest("MPLUSKASSA", true)
	reg.StaleSnapshots(2)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	assert.Contains(t, text, `backoffice_http_requests_total{method="GET",route="/ping",status="200"} 1`)
	assert.Contains(t, text, `backoffice_onboarding_transitions_total{outcome="rejected",transition="next"} 1`)
	assert.Contains(t, text, `backoffice_pos_connection_tests_total{ok="true",provider="MPLUSKASSA"} 1`)
	assert.Contains(t, text, "backoffice_onboarding_stale_snapshots 2")
}
