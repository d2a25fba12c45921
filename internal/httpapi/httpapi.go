package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/akarimov/ordercache/internal/application/service"
	"github.com/akarimov/ordercache/internal/domain"
	"github.com/akarimov/ordercache/internal/observability"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

const defaultReportLimit = 10

type OrderService interface {
	PlaceOrderWithStats(ctx context.Context, userID int64, items []domain.ItemRequest) (int64, service.PlaceStats, error)
	DeleteOrder(ctx context.Context, id int64) (int64, error)
	SyncCache(ctx context.Context) (int, error)
	GetOrderWithStats(ctx context.Context, id int64) (*domain.Order, service.LookupStats, error)
	RecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
	TopSpenders(ctx context.Context, limit int) ([]domain.UserSpend, error)
	BestSellers(ctx context.Context, limit int) ([]domain.ProductSales, error)
}

type Server struct {
	service OrderService
	mux     *http.ServeMux
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(service OrderService, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		service: service,
		mux:     http.NewServeMux(),
		logger:  logger,
		metrics: metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /orders", s.placeOrder)
	s.mux.HandleFunc("GET /orders", s.listOrders)
	s.mux.HandleFunc("GET /orders/{id}", s.getOrder)
	s.mux.HandleFunc("DELETE /orders/{id}", s.deleteOrder)
	s.mux.HandleFunc("POST /cache/sync", s.syncCache)
	s.mux.HandleFunc("GET /reports/top-spenders", s.topSpenders)
	s.mux.HandleFunc("GET /reports/best-sellers", s.bestSellers)
}

func (s *Server) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.PlaceOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		s.logger.Error("error while decoding JSON",
			zap.Error(err),
		)
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	id, st, err := s.service.PlaceOrderWithStats(r.Context(), req.UserID, req.Items)
	if err != nil {
		if domain.IsInvalid(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "service error", http.StatusInternalServerError)
		return
	}

	observability.AppendServerTiming(w, "db_write", st.DBWriteMs, "")
	observability.AppendServerTiming(w, "cache_write", st.CacheWriteMs, "")

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]int64{"order_id": id})
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "order id must be an integer", http.StatusBadRequest)
		return
	}

	order, st, err := s.service.GetOrderWithStats(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "no order with this id", http.StatusNotFound)
			return
		}
		http.Error(w, "service error", http.StatusInternalServerError)
		return
	}

	observability.AppendServerTiming(w, "cache", st.CacheMs, "")
	observability.SetIfPos(w, "X-Cache-Time", st.CacheMs)

	writeJSON(w, order)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, defaultReportLimit)

	orders, err := s.service.RecentOrders(r.Context(), limit)
	if err != nil {
		http.Error(w, "service error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, orders)
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "order id must be an integer", http.StatusBadRequest)
		return
	}

	deleted, err := s.service.DeleteOrder(r.Context(), id)
	if err != nil {
		http.Error(w, "service error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]int64{"deleted": deleted})
}

func (s *Server) syncCache(w http.ResponseWriter, r *http.Request) {
	count, err := s.service.SyncCache(r.Context())
	if err != nil {
		http.Error(w, "service error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]int{"orders_in_cache": count})
}

func (s *Server) topSpenders(w http.ResponseWriter, r *http.Request) {
	report, err := s.service.TopSpenders(r.Context(), queryLimit(r, defaultReportLimit))
	if err != nil {
		http.Error(w, "service error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, report)
}

func (s *Server) bestSellers(w http.ResponseWriter, r *http.Request) {
	report, err := s.service.BestSellers(r.Context(), queryLimit(r, defaultReportLimit))
	if err != nil {
		http.Error(w, "service error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, report)
}

func queryLimit(r *http.Request, def int) int {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	handler := ServerTimingApp(s.metrics)(s.mux)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) Handler() http.Handler { return s.mux }
