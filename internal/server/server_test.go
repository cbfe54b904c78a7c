package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"webshop-backend/internal/kafka"
	"webshop-backend/internal/server/mocks"
	"webshop-backend/internal/storage"
)

type serverMocks struct {
	products *mocks.MockProductStorage
	orders   *mocks.MockOrderStorage
	admin    *mocks.MockAdminStorage
}

func newTestServer(t *testing.T) (*Server, serverMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serverMocks{
		products: mocks.NewMockProductStorage(ctrl),
		orders:   mocks.NewMockOrderStorage(ctrl),
		admin:    mocks.NewMockAdminStorage(ctrl),
	}

	logger := zap.NewNop()
	s := New(m.products, m.orders, m.admin, kafka.NewConsoleProducer(logger), logger, nil)
	return s, m
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleAddProduct(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m serverMocks)
		wantStatus int
		wantDetail string
	}{
		{
			name: "success",
			body: `{"name": "Widget", "price": 9.99, "quantity": 5}`,
			setup: func(m serverMocks) {
				m.products.EXPECT().
					AddProduct(gomock.Any(), storage.ProductCreate{Name: "Widget", Price: 9.99, Quantity: 5}).
					Return(7, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			setup:      func(serverMocks) {},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Invalid request body",
		},
		{
			name: "schema violation",
			body: `{"name": "Widget", "price": 0, "quantity": 5}`,
			setup: func(m serverMocks) {
				m.products.EXPECT().
					AddProduct(gomock.Any(), gomock.Any()).
					Return(0, fmt.Errorf("failed to add product: %w", storage.ErrValidation))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestServer(t)
			tc.setup(m)

			req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			s.handleAddProduct(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "Product added", body["message"])
				assert.Equal(t, float64(7), body["product_id"])
			} else if tc.wantDetail != "" {
				assert.Equal(t, tc.wantDetail, body["detail"])
			}
		})
	}
}

func TestHandleGetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, m := newTestServer(t)
		m.products.EXPECT().GetProduct(gomock.Any(), 3).Return(&storage.Product{
			ProductCreate: storage.ProductCreate{Name: "Widget", Price: 9.99, Quantity: 5},
			ID:            3,
			PublishDate:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		}, nil)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/products/3", nil),
			map[string]string{"id": "3"})
		rec := httptest.NewRecorder()

		s.handleGetProduct(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Widget", body["name"])
		assert.Equal(t, float64(3), body["id"])
	})

	t.Run("not found", func(t *testing.T) {
		s, m := newTestServer(t)
		m.products.EXPECT().GetProduct(gomock.Any(), 42).Return(nil, storage.ErrProductNotFound)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/products/42", nil),
			map[string]string{"id": "42"})
		rec := httptest.NewRecorder()

		s.handleGetProduct(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product not found", decodeBody(t, rec)["detail"])
	})
}

func TestHandleListProducts_EmptyStoreYieldsEmptyArray(t *testing.T) {
	s, m := newTestServer(t)
	m.products.EXPECT().ListProducts(gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	s.handleListProducts(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandleUpdateProduct(t *testing.T) {
	s, m := newTestServer(t)

	// The body id wins over the path id; the handler passes the record on
	// verbatim.
	replacement := storage.Product{
		ProductCreate: storage.ProductCreate{Name: "Renamed", Price: 19.99, Quantity: 2},
		ID:            99,
	}
	m.products.EXPECT().ReplaceProduct(gomock.Any(), 3, replacement).Return(nil)

	payload, err := json.Marshal(replacement)
	require.NoError(t, err)

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodPut, "/products/3", strings.NewReader(string(payload))),
		map[string]string{"id": "3"})
	rec := httptest.NewRecorder()

	s.handleUpdateProduct(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product updated", decodeBody(t, rec)["message"])
}

func TestHandleDeleteProduct_NotFound(t *testing.T) {
	s, m := newTestServer(t)
	m.products.EXPECT().DeleteProduct(gomock.Any(), 42).Return(storage.ErrProductNotFound)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/products/42", nil),
		map[string]string{"id": "42"})
	rec := httptest.NewRecorder()

	s.handleDeleteProduct(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleAdminLogin(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(m serverMocks)
		wantStatus int
		wantDetail string
	}{
		{
			name: "success",
			setup: func(m serverMocks) {
				m.admin.EXPECT().Login(gomock.Any(), "admin", "pw1").
					Return(storage.AdminToken, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "bad credentials",
			setup: func(m serverMocks) {
				m.admin.EXPECT().Login(gomock.Any(), "admin", "pw1").
					Return("", storage.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Invalid username or password",
		},
		{
			name: "admin record missing",
			setup: func(m serverMocks) {
				m.admin.EXPECT().Login(gomock.Any(), "admin", "pw1").
					Return("", storage.ErrAdminNotConfigured)
			},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Admin data not configured.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestServer(t)
			tc.setup(m)

			body := `{"username": "admin", "password": "pw1"}`
			req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
			rec := httptest.NewRecorder()

			s.handleAdminLogin(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			resp := decodeBody(t, rec)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, storage.AdminToken, resp["token"])
			} else {
				assert.Equal(t, tc.wantDetail, resp["detail"])
			}
		})
	}
}

func TestHandleChangePassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{name: "success", err: nil, wantStatus: http.StatusOK},
		{name: "username mismatch", err: storage.ErrUsernameMismatch,
			wantStatus: http.StatusBadRequest, wantDetail: "Invalid username."},
		{name: "wrong current password", err: storage.ErrWrongPassword,
			wantStatus: http.StatusBadRequest, wantDetail: "Current password is incorrect."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestServer(t)
			want := storage.PasswordChangeRequest{
				Username:        "admin",
				CurrentPassword: "pw1",
				NewPassword:     "newpass",
			}
			m.admin.EXPECT().ChangePassword(gomock.Any(), want).Return(tc.err)

			body := `{"username": "admin", "current_password": "pw1", "new_password": "newpass"}`
			req := httptest.NewRequest(http.MethodPut, "/admin/change-password", strings.NewReader(body))
			rec := httptest.NewRecorder()

			s.handleChangePassword(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			resp := decodeBody(t, rec)
			if tc.err == nil {
				assert.Equal(t, "Password changed successfully.", resp["message"])
			} else {
				assert.Equal(t, tc.wantDetail, resp["detail"])
			}
		})
	}
}

func TestHandlePlaceOrder(t *testing.T) {
	s, m := newTestServer(t)

	// The payload carries a status; OrderCreate has no such field, so the
	// store only ever sees the rest.
	want := storage.OrderCreate{
		Name:    "Alice",
		Email:   "alice@example.com",
		Address: "1 Main St",
		Items: []storage.OrderItem{
			{ID: 1, Name: "Widget", Quantity: 2, Price: 9.99},
		},
		TotalPrice: 19.98,
	}
	m.orders.EXPECT().PlaceOrder(gomock.Any(), want).Return(1, nil)

	body := `{
  "name": "Alice",
  "email": "alice@example.com",
  "address": "1 Main St",
  "items": [{"id": 1, "name": "Widget", "quantity": 2, "price": 9.99}],
  "total_price": 19.98,
  "status": "completed"
}`
	req := httptest.NewRequest(http.MethodPost, "/orders/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.handlePlaceOrder(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "Order placed successfully", resp["message"])
	assert.Equal(t, float64(1), resp["order_id"])
}

func TestHandleUpdateOrderStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, m := newTestServer(t)
		m.orders.EXPECT().
			UpdateOrderStatus(gomock.Any(), 5, storage.StatusAccepted).
			Return(nil)

		req := mux.SetURLVars(
			httptest.NewRequest(http.MethodPut, "/orders/5/status?new_status=accepted", nil),
			map[string]string{"order_id": "5"})
		rec := httptest.NewRecorder()

		s.handleUpdateOrderStatus(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Status updated", decodeBody(t, rec)["message"])
	})

	t.Run("missing new_status", func(t *testing.T) {
		s, _ := newTestServer(t)

		req := mux.SetURLVars(
			httptest.NewRequest(http.MethodPut, "/orders/5/status", nil),
			map[string]string{"order_id": "5"})
		rec := httptest.NewRecorder()

		s.handleUpdateOrderStatus(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Missing new_status parameter", decodeBody(t, rec)["detail"])
	})

	t.Run("unknown status", func(t *testing.T) {
		s, m := newTestServer(t)
		m.orders.EXPECT().
			UpdateOrderStatus(gomock.Any(), 5, storage.OrderStatus("shipped")).
			Return(fmt.Errorf("%w: unknown status %q", storage.ErrValidation, "shipped"))

		req := mux.SetURLVars(
			httptest.NewRequest(http.MethodPut, "/orders/5/status?new_status=shipped", nil),
			map[string]string{"order_id": "5"})
		rec := httptest.NewRecorder()

		s.handleUpdateOrderStatus(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{storage.ErrProductNotFound, http.StatusNotFound},
		{storage.ErrOrderNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", storage.ErrValidation), http.StatusUnprocessableEntity},
		{storage.ErrUsernameMismatch, http.StatusBadRequest},
		{storage.ErrWrongPassword, http.StatusBadRequest},
		{storage.ErrInvalidCredentials, http.StatusUnauthorized},
		{storage.ErrAdminNotConfigured, http.StatusInternalServerError},
		{fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, statusFromError(tc.err), "error: %v", tc.err)
	}
}
