package main

import (
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/premier-motors/internal/auth"
	"github.com/ukydev/premier-motors/internal/catalog"
	"github.com/ukydev/premier-motors/internal/handlers"
	"github.com/ukydev/premier-motors/internal/models"
	"github.com/ukydev/premier-motors/internal/prefs"
	"github.com/ukydev/premier-motors/internal/store"
)

type bridge struct {
	server   *httptest.Server
	plans    *store.PlanStore
	services *store.ServiceStore
}

func newBridge(t *testing.T) *bridge {
	t.Helper()
	logger, _ := test.NewNullLogger()
	b := &bridge{
		plans:    store.NewPlanStore(time.Now),
		services: store.NewServiceStore(time.Now),
	}
	b.server = httptest.NewServer(handlers.NewRouter(handlers.Deps{
		Auth:     auth.NewService("sim-secret", time.Hour),
		Plans:    b.plans,
		Services: b.services,
		Theme:    prefs.NewThemeService(prefs.NewMemoryStore(), models.ThemeLight, logger),
		Log:      logger,
	}))
	t.Cleanup(b.server.Close)
	return b
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	m.Run()
}

func TestLogin(t *testing.T) {
	b := newBridge(t)
	c := NewClient(b.server.URL + "/api")

	err := c.Login("demo@premiermotors.com", "demo123")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Token)
}

func TestLogin_Rejected(t *testing.T) {
	b := newBridge(t)
	c := NewClient(b.server.URL + "/api")

	err := c.Login("demo@premiermotors.mx", "demo123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Empty(t, c.Token)
}

func TestRunCustomer(t *testing.T) {
	b := newBridge(t)
	c := NewClient(b.server.URL + "/api")
	require.NoError(t, c.Login("demo@premiermotors.com", "demo123"))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 3; i++ {
		require.NoError(t, runCustomer(c, rng))
	}

	plans := b.plans.Plans()
	require.Len(t, plans, 3)
	for _, p := range plans {
		assert.Equal(t, models.PlanCompleted, p.Status)
		assert.Equal(t, p.TotalInstallments, p.PaidInstallments)
	}
	assert.Len(t, b.services.History(), 3)
	assert.Empty(t, b.services.Upcoming())
}

func TestRunCustomer_Unauthorized(t *testing.T) {
	b := newBridge(t)
	c := NewClient(b.server.URL + "/api")

	err := runCustomer(c, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
	assert.Empty(t, b.plans.Plans())
}

func TestClientDo_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	err := c.do(http.MethodGet, "/anything", nil, nil, http.StatusOK)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClientDo_NetworkError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	c.HTTP.Timeout = time.Second
	err := c.do(http.MethodGet, "/health", nil, nil, http.StatusOK)
	assert.Error(t, err)
}

func TestRandomVehicle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		v := randomVehicle(rng)
		assert.Contains(t, catalog.ModelsFor(v.Brand), v.Model)
		assert.GreaterOrEqual(t, v.Year, 2019)
		assert.Less(t, v.Mileage, 30000)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SIM_CUSTOMERS", "12")
	assert.Equal(t, 12, getEnvInt("SIM_CUSTOMERS", 5))

	t.Setenv("SIM_CUSTOMERS", "zero")
	assert.Equal(t, 5, getEnvInt("SIM_CUSTOMERS", 5))
}
