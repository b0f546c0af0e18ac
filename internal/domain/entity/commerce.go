package entity

import (
	"time"

	"groove/internal/errors"

	"github.com/google/uuid"
)

// ShoppingSession is a user's open cart. Cart items hang off it.
type ShoppingSession struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (s *ShoppingSession) Validate() error {
	if s.UserID == uuid.Nil {
		return errors.New("userId is required")
	}
	if s.Total < 0 {
		return errors.New("total must not be negative")
	}

	return nil
}

// CartItem holds one album inside a shopping session. A session carries at
// most one item per album.
type CartItem struct {
	ID                uuid.UUID `json:"id"`
	ShoppingSessionID uuid.UUID `json:"shoppingSessionId"`
	AlbumID           uuid.UUID `json:"albumId"`
	Quantity          int       `json:"quantity"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (c *CartItem) Validate() error {
	if c.ShoppingSessionID == uuid.Nil {
		return errors.New("shoppingSessionId is required")
	}
	if c.AlbumID == uuid.Nil {
		return errors.New("albumId is required")
	}
	if c.Quantity < 0 {
		return errors.New("quantity must not be negative")
	}

	return nil
}

// OrderDetail is a placed order: who ordered, how it is paid and its total.
// Order items hang off it.
type OrderDetail struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	UserPaymentID uuid.UUID `json:"userPaymentId"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (o *OrderDetail) Validate() error {
	if o.UserID == uuid.Nil {
		return errors.New("userId is required")
	}
	if o.UserPaymentID == uuid.Nil {
		return errors.New("userPaymentId is required")
	}
	if o.Total < 0 {
		return errors.New("total must not be negative")
	}

	return nil
}

// OrderItem holds one ordered album inside an order.
type OrderItem struct {
	ID            uuid.UUID `json:"id"`
	OrderDetailID uuid.UUID `json:"orderDetailId"`
	AlbumID       uuid.UUID `json:"albumId"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (o *OrderItem) Validate() error {
	if o.OrderDetailID == uuid.Nil {
		return errors.New("orderDetailId is required")
	}
	if o.AlbumID == uuid.Nil {
		return errors.New("albumId is required")
	}
	if o.Quantity < 0 {
		return errors.New("quantity must not be negative")
	}

	return nil
}
