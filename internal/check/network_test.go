package check

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func swapEndpoints(t *testing.T, endpoints map[string]string) {
	t.Helper()
	old := providerEndpoints
	providerEndpoints = endpoints
	t.Cleanup(func() { providerEndpoints = old })
}

func newNetworkEnv(timeout time.Duration) *Env {
	env := testEnv()
	env.HTTP = &http.Client{Timeout: timeout}
	return env
}

func TestNetworkProbeAllReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden) // any response counts as reachable
	}))
	defer srv.Close()
	swapEndpoints(t, map[string]string{"Local": srv.URL})

	res := (&NetworkProbe{}).Run(context.Background(), newNetworkEnv(2*time.Second))
	assert.Equal(t, StatusPass, res.Status)
	assert.Contains(t, res.Details, "Local")
}

func TestNetworkProbeAllUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	swapEndpoints(t, map[string]string{"Down": url})

	res := (&NetworkProbe{}).Run(context.Background(), newNetworkEnv(2*time.Second))
	assert.Equal(t, StatusFail, res.Status)
	assert.Contains(t, res.Details, "Down (connection failed)")
	assert.NotEmpty(t, res.Suggestions)
}

func TestNetworkProbePartiallyReachable(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer up.Close()
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	downURL := down.URL
	down.Close()
	swapEndpoints(t, map[string]string{"Up": up.URL, "Gone": downURL})

	res := (&NetworkProbe{}).Run(context.Background(), newNetworkEnv(2*time.Second))
	assert.Equal(t, StatusWarn, res.Status)
	assert.Contains(t, res.Message, "Gone")
	assert.Contains(t, res.Details, "Up")
}

func TestHeadEndpointTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 50 * time.Millisecond}
	assert.Equal(t, "timeout", headEndpoint(context.Background(), client, srv.URL))
}

func TestHeadEndpointOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	client := &http.Client{Timeout: time.Second}
	assert.Equal(t, "", headEndpoint(context.Background(), client, srv.URL))
}
