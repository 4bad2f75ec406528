package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TemirB/foodcart/internal/application/service"
	"github.com/TemirB/foodcart/internal/domain"
	"github.com/TemirB/foodcart/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type ServerWithStats interface {
	SubmitOrderWithStats(ctx context.Context, order *domain.Order) (service.UpsertStats, error)
	GetOrder(ctx context.Context, uid string) (*domain.Order, error)
	MatchOrderWithStats(ctx context.Context, uid string) (domain.MatchResult, service.MatchStats, error)
	MatchActiveOrders(ctx context.Context) ([]service.OrderMatch, error)
	CreateRestaurant(ctx context.Context, r domain.Restaurant) (*domain.Restaurant, error)
	UpdateRestaurantAddress(ctx context.Context, id int64, address string) (*domain.Restaurant, error)
	SetMenuItem(ctx context.Context, item domain.MenuItem) error
}

type snapshotter interface {
	Snapshot() observability.Snapshot
}

type Server struct {
	service ServerWithStats
	router  chi.Router
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(service ServerWithStats, logger *zap.Logger, metrics observability.Metrics) *Server {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	s := &Server{
		service: service,
		logger:  logger,
		router:  chi.NewRouter(),
		metrics: metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(s.logger))
	r.Use(ServerTimingApp(s.metrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/debug/metrics", s.debugMetrics)

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", s.submitOrder)
		r.Get("/{uid}", s.getOrder)
		r.Get("/{uid}/restaurants", s.matchOrder)
	})
	r.Get("/manager/orders", s.managerOrders)

	r.Route("/restaurants", func(r chi.Router) {
		r.Post("/", s.createRestaurant)
		r.Put("/{id}/address", s.updateRestaurantAddress)
		r.Put("/{id}/menu/{product}", s.setMenuItem)
	})
}

func (s *Server) debugMetrics(w http.ResponseWriter, _ *http.Request) {
	snap, ok := s.metrics.(snapshotter)
	if !ok {
		http.Error(w, "metrics are not collected", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, snap.Snapshot())
}

func (s *Server) submitOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if !s.decodeJSON(w, r, &order) {
		return
	}
	if strings.TrimSpace(order.OrderUID) == "" {
		order.OrderUID = uuid.NewString()
	}

	st, err := s.service.SubmitOrderWithStats(r.Context(), &order)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	observability.AppendServerTiming(w, observability.Timing{Name: "db_write", DurMs: st.DBWriteMs})
	w.Header().Set("Location", "/orders/"+order.OrderUID)
	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.service.GetOrder(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) matchOrder(w http.ResponseWriter, r *http.Request) {
	res, st, err := s.service.MatchOrderWithStats(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	observability.AppendServerTiming(w,
		observability.Timing{Name: "load", DurMs: st.LoadMs},
		observability.Timing{Name: "match", DurMs: st.MatchMs, Desc: res.Outcome().String()},
	)
	w.Header().Set("X-Match-Outcome", res.Outcome().String())
	observability.SetIfPos(w, "X-Match-Time", st.MatchMs)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) managerOrders(w http.ResponseWriter, r *http.Request) {
	list, err := s.service.MatchActiveOrders(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var in domain.Restaurant
	if !s.decodeJSON(w, r, &in) {
		return
	}
	rest, err := s.service.CreateRestaurant(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

type addressRequest struct {
	Address string `json:"address"`
}

func (s *Server) updateRestaurantAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}
	var req addressRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	rest, err := s.service.UpdateRestaurantAddress(r.Context(), id, req.Address)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

func (s *Server) setMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}
	product, ok := int64Param(w, r, "product")
	if !ok {
		return
	}
	var req availabilityRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	item := domain.MenuItem{RestaurantID: id, ProductID: product, Available: req.Available}
	if err := s.service.SetMenuItem(r.Context(), item); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		s.logger.Error("Error while decoding JSON",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func int64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || v <= 0 {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidOrder), errors.Is(err, domain.ErrInvalidRestaurant):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
	default:
		s.logger.Error("Service error",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		http.Error(w, "Service error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return srv.ListenAndServe()
}

func (s *Server) Handler() http.Handler { return s.router }
