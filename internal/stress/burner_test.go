package stress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestBurn_WorkersStopAtDeadline(t *testing.T) {
	burner := NewBurner()

	wait := burner.Burn(context.Background(), 50*time.Millisecond, 2)
	require.EqualValues(t, 2, burner.Active())

	wait()
	require.EqualValues(t, 0, burner.Active())
}

func TestBurn_CancelStopsWorkersEarly(t *testing.T) {
	burner := NewBurner()
	ctx, cancel := context.WithCancel(context.Background())

	wait := burner.Burn(ctx, time.Minute, 2)
	cancel()

	done := make(chan struct{})
	go func() {
		wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("workers did not stop after cancellation")
	}
	require.EqualValues(t, 0, burner.Active())
}

func newTestRouter(burner *Burner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(burner).Register(router)
	return router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTriggerStress_ReturnsImmediately(t *testing.T) {
	burner := NewBurner()
	router := newTestRouter(burner)

	start := time.Now()
	rec := doGet(router, "/stress?seconds=1&intensity=2")
	require.Less(t, time.Since(start), time.Second)
	require.Equal(t, http.StatusOK, rec.Code)

	var reply map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	require.Equal(t, "Load increased!", reply["message"])
	require.Equal(t, "1s", reply["duration"])
	require.EqualValues(t, 2, reply["cores_attacked"])
	require.EqualValues(t, 2, reply["active_processes"])

	// Drain before the test process exits.
	require.Eventually(t, func() bool { return burner.Active() == 0 }, 5*time.Second, 20*time.Millisecond)
}

func TestTriggerStress_Defaults(t *testing.T) {
	router := newTestRouter(NewBurner())

	rec := doGet(router, "/stress?seconds=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var reply map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	require.EqualValues(t, 1, reply["cores_attacked"])
}

func TestTriggerStress_Validation(t *testing.T) {
	router := newTestRouter(NewBurner())

	rec := doGet(router, "/stress?seconds=abc")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(router, "/stress?seconds=-1")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(router, "/stress?intensity=0")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatus(t *testing.T) {
	router := newTestRouter(NewBurner())

	rec := doGet(router, "/status")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "cpu-stress")
	require.Contains(t, rec.Body.String(), "online")
}
