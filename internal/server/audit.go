package server

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogEntry struct {
	ID         uuid.UUID `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Handler    string    `json:"handler"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	ProductID  string    `json:"product_id,omitempty"`
	OrderID    string    `json:"order_id,omitempty"`
	NewStatus  string    `json:"new_status,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}
