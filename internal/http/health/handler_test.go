package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrnf/catet/internal/http/health"
)

func TestStatus(t *testing.T) {
	started := time.Now().Add(-90 * time.Second)
	h := health.NewHandler(nil, "Catet", started)

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		App    string `json:"app"`
		Uptime string `json:"uptime"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Catet", body.App)
	assert.NotEmpty(t, body.Uptime)
}
