package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// auditLogMiddleware records every request and its outcome as an audit entry.
// The /metrics scrape is the only exempt path.
func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		entry := AuditLogEntry{
			ID:        uuid.New(),
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if id := pathSegmentAfter(r.URL.Path, "products"); id != "" {
			entry.ProductID = id
		}
		if id := pathSegmentAfter(r.URL.Path, "orders"); id != "" {
			entry.OrderID = id
		}
		if strings.HasSuffix(r.URL.Path, "/status") {
			entry.NewStatus = r.URL.Query().Get("new_status")
		}

		if r.Body != nil && r.Method != http.MethodGet {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			if !strings.HasPrefix(r.URL.Path, "/admin") {
				// Credential bodies stay out of the audit trail.
				entry.Request = string(requestBody)
			}
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		if !strings.HasPrefix(r.URL.Path, "/admin") {
			entry.Response = string(wrw.GetBody())
		}

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func pathSegmentAfter(path, segment string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if part == segment && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/products"):
		hasID := pathSegmentAfter(path, "products") != ""
		switch {
		case method == http.MethodPost:
			return "handleAddProduct"
		case method == http.MethodPut:
			return "handleUpdateProduct"
		case method == http.MethodDelete:
			return "handleDeleteProduct"
		case hasID:
			return "handleGetProduct"
		default:
			return "handleListProducts"
		}
	case strings.HasPrefix(path, "/admin/login"):
		return "handleAdminLogin"
	case strings.HasPrefix(path, "/admin/change-password"):
		return "handleChangePassword"
	case strings.HasPrefix(path, "/orders"):
		hasID := pathSegmentAfter(path, "orders") != ""
		switch {
		case method == http.MethodPost:
			return "handlePlaceOrder"
		case strings.HasSuffix(path, "/status"):
			return "handleUpdateOrderStatus"
		case hasID:
			return "handleGetOrder"
		default:
			return "handleListOrders"
		}
	}
	return "unknown"
}
