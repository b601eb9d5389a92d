package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tastyhub/dashboard-manager/internal/apisrv/auth"
	"github.com/tastyhub/dashboard-manager/internal/apisrv/dashboard"
	"github.com/tastyhub/dashboard-manager/internal/dependency/mocks"
	"github.com/tastyhub/dashboard-manager/internal/entity"
	"github.com/tastyhub/dashboard-manager/internal/period"
	"github.com/tastyhub/dashboard-manager/internal/store/memory"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newTestHandler(t *testing.T, d *mocks.Dashboard, db Pinger, c *Config) (http.Handler, *auth.Server) {
	t.Helper()
	st := memory.New()
	require.NoError(t, st.Permissions().AddRolePermission(context.Background(), entity.RolePermission{
		Role: entity.RoleAdmin, Subject: entity.SubjectAdmin, Module: entity.ModuleDashboard, Action: entity.ActionRead,
	}))
	authS, err := auth.New(&auth.Config{JWTSecret: "secret", JWTTTL: "1h"}, st.Permissions())
	require.NoError(t, err)
	if c == nil {
		c = &Config{}
	}
	return New(c).Handler(authS, dashboard.New(d), db), authS
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t, mocks.NewDashboard(t), pinger{}, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"data":{"status":"ok"}}`, rr.Body.String())

	h, _ = newTestHandler(t, mocks.NewDashboard(t), pinger{err: errors.New("db gone")}, nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestDashboardRoutesRequireAuth(t *testing.T) {
	d := mocks.NewDashboard(t)
	d.On("KPIs", mock.Anything, period.Day).Return(&entity.DashboardKPIs{
		Revenue: entity.MetricValue{Value: decimal.NewFromInt(10)},
	}, nil).Once()
	h, authS := newTestHandler(t, d, pinger{}, nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/kpis", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	opsTok, err := authS.IssueToken("ops", []string{entity.RoleRestaurantOps}, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/kpis", nil)
	req.Header.Set("Authorization", "Bearer "+opsTok)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	adminTok, err := authS.IssueToken("admin", []string{entity.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/dashboard/kpis?period=day", nil)
	req.Header.Set("Authorization", "Bearer "+adminTok)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"revenue":{"value":10,"change":0}`)
	assert.NotEmpty(t, rr.Header().Get("Content-Type"))
}

func TestCORS(t *testing.T) {
	h, _ := newTestHandler(t, mocks.NewDashboard(t), pinger{}, &Config{AllowedOrigins: []string{"https://admin.tastyhub.io"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/dashboard/kpis", nil)
	req.Header.Set("Origin", "https://admin.tastyhub.io")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "https://admin.tastyhub.io", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/dashboard/kpis", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	h, _ := newTestHandler(t, mocks.NewDashboard(t), pinger{}, &Config{RateLimit: 2, RateWindow: time.Minute})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestIsOriginAllowed(t *testing.T) {
	assert.True(t, isOriginAllowed("http://localhost:3000", nil))
	assert.True(t, isOriginAllowed("https://a.io", []string{"https://a.io"}))
	assert.True(t, isOriginAllowed("https://b.io", []string{"*"}))
	assert.False(t, isOriginAllowed("https://b.io", []string{"https://a.io"}))
}
