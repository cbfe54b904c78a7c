package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"webshop-backend/internal/metrics"
	"webshop-backend/internal/storage"
)

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	return id, err == nil
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.ListProducts(r.Context())
	if err != nil {
		s.logger.Error("failed to list products", zap.Error(err))
		respondStorageError(w, err)
		return
	}
	if products == nil {
		products = []storage.Product{}
	}

	respondJSON(w, http.StatusOK, products)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := s.products.GetProduct(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var input storage.ProductCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.products.AddProduct(r.Context(), input)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("add_product").Inc()
		respondStorageError(w, err)
		return
	}

	metrics.ProductsCreatedTotal.Inc()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Product added",
		"product_id": id,
	})
}

// handleUpdateProduct stores the caller-supplied record verbatim. The body id
// is trusted even when it differs from the path id.
func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product storage.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.products.ReplaceProduct(r.Context(), id, product); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_product").Inc()
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Product updated"})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := s.products.DeleteProduct(r.Context(), id); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("delete_product").Inc()
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req storage.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.admin.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("admin_login").Inc()
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req storage.PasswordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.admin.ChangePassword(r.Context(), req); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("change_password").Inc()
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully."})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.ListOrders(r.Context())
	if err != nil {
		s.logger.Error("failed to list orders", zap.Error(err))
		respondStorageError(w, err)
		return
	}
	if orders == nil {
		orders = []storage.Order{}
	}

	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := s.orders.GetOrder(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var input storage.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.orders.PlaceOrder(r.Context(), input)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("place_order").Inc()
		respondStorageError(w, err)
		return
	}

	metrics.OrdersPlacedTotal.Inc()
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Order placed successfully",
		"order_id": id,
	})
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "order_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	newStatus := r.URL.Query().Get("new_status")
	if newStatus == "" {
		respondError(w, http.StatusUnprocessableEntity, "Missing new_status parameter")
		return
	}

	if err := s.orders.UpdateOrderStatus(r.Context(), id, storage.OrderStatus(newStatus)); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_order_status").Inc()
		respondStorageError(w, err)
		return
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(newStatus).Inc()
	respondJSON(w, http.StatusOK, map[string]string{"message": "Status updated"})
}
