package http_test

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	panelhttp "github.com/dockpanel/dockpanel/internal/adapters/http"
	"github.com/dockpanel/dockpanel/internal/core/domain"
	"github.com/dockpanel/dockpanel/internal/core/ports"
	"github.com/dockpanel/dockpanel/internal/session"
)

type stubSource struct {
	containers []domain.Container
	err        error
}

func (s stubSource) ListContainers(ctx context.Context) ([]domain.Container, error) {
	return s.containers, s.err
}

func newContainersApp(t *testing.T, source ports.InventorySource) (*fiber.App, *nethttp.Cookie) {
	t.Helper()
	codec := session.NewCodec("test-secret", false)
	h := panelhttp.NewContainerHandler(source, codec)

	app := fiber.New()
	app.Get("/api/containers", h.ListContainers)

	value, err := codec.Persist(session.Session{UserID: "u1", Username: "alice"})
	require.NoError(t, err)
	return app, &nethttp.Cookie{Name: session.CookieName, Value: value}
}

func TestListContainersRequiresIdentity(t *testing.T) {
	app, _ := newContainersApp(t, stubSource{})

	// No cookie at all.
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/containers", nil))
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	// A cookie that fails verification is just as anonymous.
	req := httptest.NewRequest(nethttp.MethodGet, "/api/containers", nil)
	req.AddCookie(&nethttp.Cookie{Name: session.CookieName, Value: "forged-garbage"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestListContainers(t *testing.T) {
	pub := 8080
	source := stubSource{containers: []domain.Container{
		{
			ID:     "abc123",
			Names:  []string{"web"},
			Image:  "nginx:latest",
			State:  "running",
			Status: "Up 3 hours",
			Ports: []domain.PortBinding{
				{IP: "0.0.0.0", PublicPort: &pub, PrivatePort: 80, Type: "tcp"},
				{PrivatePort: 443, Type: "tcp"},
			},
		},
	}}
	app, cookie := newContainersApp(t, source)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/containers", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// Field names are what the UI consumes; they must not drift.
	var got []map[string]any
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Len(t, got, 1)
	require.Equal(t, "abc123", got[0]["Id"])
	require.Equal(t, []any{"web"}, got[0]["Names"])
	require.Equal(t, "running", got[0]["State"])

	bindings, ok := got[0]["Ports"].([]any)
	require.True(t, ok)
	require.Len(t, bindings, 2)
	first := bindings[0].(map[string]any)
	require.Equal(t, "0.0.0.0", first["IP"])
	require.Equal(t, float64(8080), first["PublicPort"])
	require.Equal(t, float64(80), first["PrivatePort"])
	second := bindings[1].(map[string]any)
	_, published := second["PublicPort"]
	require.False(t, published, "unpublished port must omit PublicPort")
}

func TestListContainersFailure(t *testing.T) {
	app, cookie := newContainersApp(t, stubSource{err: ports.ErrInventoryUnavailable})

	req := httptest.NewRequest(nethttp.MethodGet, "/api/containers", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(t, body, "error")
}
