// Package dashboard serves the admin dashboard routes.
package dashboard

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tastyhub/dashboard-manager/internal/apisrv/auth"
	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/dto"
	"github.com/tastyhub/dashboard-manager/internal/entity"
	"github.com/tastyhub/dashboard-manager/internal/form"
	"github.com/tastyhub/dashboard-manager/internal/permission"
)

// Server implements the dashboard HTTP handlers.
type Server struct {
	dashboard dependency.Dashboard
}

func New(d dependency.Dashboard) *Server {
	return &Server{dashboard: d}
}

// Routes mounts every dashboard route on a fresh router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/kpis", s.KPIs)
	r.Get("/revenue-chart", s.RevenueChart)
	r.Get("/orders-analytics", s.OrdersAnalytics)
	r.Get("/best-restaurants", s.leaderboard(entity.LeaderboardRestaurant, "Error fetching best restaurants"))
	r.Get("/best-products", s.leaderboard(entity.LeaderboardProduct, "Error fetching best products"))
	r.Get("/driver-performance", s.leaderboard(entity.LeaderboardDriver, "Error fetching driver performance"))
	r.Get("/shipping-agents-performance", s.leaderboard(entity.LeaderboardShippingAgent, "Error fetching shipping agents performance"))
	r.Get("/active-orders", s.ActiveOrders)
	r.Get("/recent-activities", s.RecentActivities)
	return r
}

// query parses period and limit. It answers 400 and returns nil on an invalid limit.
func query(w http.ResponseWriter, r *http.Request) *form.DashboardQuery {
	dq := form.NewDashboardQuery(r.URL.Query())
	if err := dq.Validate(); err != nil {
		render.Render(w, r, dto.ErrInvalidRequest(err))
		return nil
	}
	return dq
}

func fail(w http.ResponseWriter, r *http.Request, msg string, dq *form.DashboardQuery, err error) {
	ctx := r.Context()
	slog.Default().ErrorContext(ctx, msg,
		slog.String("endpoint", r.URL.Path),
		slog.String("period", string(dq.Token())),
		slog.String("subject", auth.SubjectFromContext(ctx)),
		slog.Any("roles", permission.FromContext(ctx).Roles()),
		slog.String("err", err.Error()),
	)
	render.Render(w, r, dto.ErrInternalServerError(msg, err))
}

func (s *Server) KPIs(w http.ResponseWriter, r *http.Request) {
	dq := form.NewDashboardQuery(r.URL.Query())
	kpis, err := s.dashboard.KPIs(r.Context(), dq.Token())
	if err != nil {
		fail(w, r, "Error fetching dashboard KPIs", dq, err)
		return
	}
	render.Render(w, r, dto.OK(dto.ConvertEntityDashboardKPIs(kpis)))
}

func (s *Server) RevenueChart(w http.ResponseWriter, r *http.Request) {
	dq := form.NewDashboardQuery(r.URL.Query())
	series, err := s.dashboard.RevenueSeries(r.Context(), dq.Token())
	if err != nil {
		fail(w, r, "Error fetching revenue chart", dq, err)
		return
	}
	render.Render(w, r, dto.OK(dto.ConvertEntityRevenueSeries(series)))
}

func (s *Server) OrdersAnalytics(w http.ResponseWriter, r *http.Request) {
	dq := form.NewDashboardQuery(r.URL.Query())
	oa, err := s.dashboard.OrderAnalytics(r.Context(), dq.Token())
	if err != nil {
		fail(w, r, "Error fetching orders analytics", dq, err)
		return
	}
	render.Render(w, r, dto.OK(dto.ConvertEntityOrderAnalytics(oa)))
}

func (s *Server) leaderboard(kind entity.LeaderboardKind, msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dq := query(w, r)
		if dq == nil {
			return
		}
		rows, err := s.dashboard.Leaderboard(r.Context(), kind, dq.Token(), dq.LimitValue())
		if err != nil {
			fail(w, r, msg, dq, err)
			return
		}
		render.Render(w, r, dto.OK(dto.ConvertEntityLeaderboard(kind, rows)))
	}
}

func (s *Server) ActiveOrders(w http.ResponseWriter, r *http.Request) {
	dq := query(w, r)
	if dq == nil {
		return
	}
	rows, err := s.dashboard.ActiveOrders(r.Context(), dq.LimitValue())
	if err != nil {
		fail(w, r, "Error fetching active orders", dq, err)
		return
	}
	render.Render(w, r, dto.OK(dto.ConvertEntityActiveOrders(rows)))
}

func (s *Server) RecentActivities(w http.ResponseWriter, r *http.Request) {
	dq := query(w, r)
	if dq == nil {
		return
	}
	rows, err := s.dashboard.RecentActivities(r.Context(), dq.LimitValue())
	if err != nil {
		fail(w, r, "Error fetching recent activities", dq, err)
		return
	}
	render.Render(w, r, dto.OK(dto.ConvertEntityActivities(rows)))
}
