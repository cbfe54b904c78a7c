package storage

import "time"

// OrderStatus enumerates the lifecycle states of an order. There is no
// transition graph: any status may move to any other status.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusCompleted OrderStatus = "completed"
	StatusRejected  OrderStatus = "rejected"
)

// ProductCreate carries the caller-supplied fields of a new product.
type ProductCreate struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"image_url,omitempty"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
}

// Product is a stored product record. The id and publish date are assigned
// by the store on creation; a full replace trusts the caller's record verbatim.
type Product struct {
	ProductCreate
	ID          int       `json:"id" validate:"required"`
	PublishDate time.Time `json:"publish_date"`
}

func (p Product) RecordID() int { return p.ID }

// OrderItem is a denormalized snapshot of a product at purchase time, not a
// reference to a live product record.
type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

// OrderCreate carries the caller-supplied fields of a new order. Status is
// deliberately absent: orders always start out pending.
type OrderCreate struct {
	Name       string      `json:"name" validate:"required"`
	Email      string      `json:"email" validate:"required,email"`
	Address    string      `json:"address" validate:"required"`
	Items      []OrderItem `json:"items" validate:"required,min=1,dive"`
	TotalPrice float64     `json:"total_price"`
}

type Order struct {
	OrderCreate
	ID        int         `json:"id" validate:"required"`
	Status    OrderStatus `json:"status" validate:"required,oneof=pending accepted completed rejected"`
	CreatedAt time.Time   `json:"created_at"`
}

func (o Order) RecordID() int { return o.ID }

// Admin is the single credential record in admin.json. It is never created or
// deleted by the service and must be seeded before startup.
type Admin struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PasswordChangeRequest is the typed body of PUT /admin/change-password.
type PasswordChangeRequest struct {
	Username        string `json:"username" validate:"required"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// LoginRequest is the typed body of POST /admin/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
