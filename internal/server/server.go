//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mocks
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"webshop-backend/internal/kafka"
	"webshop-backend/internal/storage"
)

type ProductStorage interface {
	ListProducts(ctx context.Context) ([]storage.Product, error)
	GetProduct(ctx context.Context, id int) (*storage.Product, error)
	AddProduct(ctx context.Context, input storage.ProductCreate) (int, error)
	ReplaceProduct(ctx context.Context, id int, product storage.Product) error
	DeleteProduct(ctx context.Context, id int) error
}

type OrderStorage interface {
	ListOrders(ctx context.Context) ([]storage.Order, error)
	GetOrder(ctx context.Context, id int) (*storage.Order, error)
	PlaceOrder(ctx context.Context, input storage.OrderCreate) (int, error)
	UpdateOrderStatus(ctx context.Context, id int, status storage.OrderStatus) error
}

type AdminStorage interface {
	Login(ctx context.Context, username, password string) (string, error)
	ChangePassword(ctx context.Context, req storage.PasswordChangeRequest) error
}

type Server struct {
	products ProductStorage
	orders   OrderStorage
	admin    AdminStorage

	logger      *zap.Logger
	corsOrigins []string

	server       *http.Server
	AuditManager *AuditManager
}

func New(products ProductStorage, orders OrderStorage, admin AdminStorage,
	producer kafka.Producer, logger *zap.Logger, corsOrigins []string) *Server {
	return &Server{
		products:     products,
		orders:       orders,
		admin:        admin,
		logger:       logger,
		corsOrigins:  corsOrigins,
		AuditManager: NewAuditManager(2, 5, 500*time.Millisecond, producer, logger),
	}
}

// Run starts the audit pipeline and serves HTTP until the listener is closed
// by Shutdown.
func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/products", s.handleListProducts).Methods(http.MethodGet)
	r.HandleFunc("/products", s.handleAddProduct).Methods(http.MethodPost)
	r.HandleFunc("/products/{id:[0-9]+}", s.handleGetProduct).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}", s.handleUpdateProduct).Methods(http.MethodPut)
	r.HandleFunc("/products/{id:[0-9]+}", s.handleDeleteProduct).Methods(http.MethodDelete)

	r.HandleFunc("/admin/login", s.handleAdminLogin).Methods(http.MethodPost)
	r.HandleFunc("/admin/change-password", s.handleChangePassword).Methods(http.MethodPut)

	// The order collection is served with and without the trailing slash; a
	// StrictSlash redirect would turn POSTs into GETs in browsers.
	for _, path := range []string{"/orders", "/orders/"} {
		r.HandleFunc(path, s.handleListOrders).Methods(http.MethodGet)
		r.HandleFunc(path, s.handlePlaceOrder).Methods(http.MethodPost)
	}
	r.HandleFunc("/orders/{id:[0-9]+}", s.handleGetOrder).Methods(http.MethodGet)
	r.HandleFunc("/orders/{order_id:[0-9]+}/status", s.handleUpdateOrderStatus).Methods(http.MethodPut)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return s.corsMiddleware(s.auditLogMiddleware(r))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(s.corsOrigins))
	for _, origin := range s.corsOrigins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// respondStorageError maps domain errors onto status codes and the response
// detail strings the API has always used.
func respondStorageError(w http.ResponseWriter, err error) {
	respondError(w, statusFromError(err), errorDetail(err))
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, storage.ErrProductNotFound), errors.Is(err, storage.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, storage.ErrUsernameMismatch), errors.Is(err, storage.ErrWrongPassword):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func errorDetail(err error) string {
	switch {
	case errors.Is(err, storage.ErrProductNotFound):
		return "Product not found"
	case errors.Is(err, storage.ErrOrderNotFound):
		return "Order not found"
	case errors.Is(err, storage.ErrUsernameMismatch):
		return "Invalid username."
	case errors.Is(err, storage.ErrWrongPassword):
		return "Current password is incorrect."
	case errors.Is(err, storage.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, storage.ErrAdminNotConfigured):
		return "Admin data not configured."
	case errors.Is(err, storage.ErrValidation):
		return err.Error()
	default:
		return "Internal server error"
	}
}
