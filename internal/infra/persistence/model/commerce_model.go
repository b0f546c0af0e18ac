package model

import (
	"time"

	"github.com/google/uuid"
)

// AlbumModel mirrors the 'albums' table. The four-column unique index keeps
// one listing per seller, record, year and condition.
type AlbumModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_albums_listing"`
	RecordID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_albums_listing"`
	Description string    `gorm:"type:text"`
	Stock       int       `gorm:"not null;check:stock >= 0"`
	Year        int       `gorm:"not null;uniqueIndex:idx_albums_listing"`
	New         bool      `gorm:"not null;uniqueIndex:idx_albums_listing"`
	Price       float64   `gorm:"type:decimal(10,2);not null;check:price >= 0"`
	Type        string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlbumModel) TableName() string {
	return "albums"
}

// ShoppingSessionModel mirrors the 'shopping_sessions' table.
type ShoppingSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Total     float64   `gorm:"type:decimal(10,2);not null;default:0;check:total >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShoppingSessionModel) TableName() string {
	return "shopping_sessions"
}

// CartItemModel mirrors the 'cart_items' table. A session holds at most one
// row per album.
type CartItemModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShoppingSessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_session_album"`
	AlbumID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_session_album"`
	Quantity          int       `gorm:"not null;check:quantity >= 0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// UserPaymentModel mirrors the 'user_payments' table.
type UserPaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	AccountNumber string    `gorm:"type:varchar(50);not null"`
	PaymentType   string    `gorm:"type:varchar(20);not null"`
	Provider      string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPaymentModel) TableName() string {
	return "user_payments"
}

// OrderDetailModel mirrors the 'order_details' table.
type OrderDetailModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	UserPaymentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Total         float64   `gorm:"type:decimal(10,2);not null;check:total >= 0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderDetailModel) TableName() string {
	return "order_details"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderDetailID uuid.UUID `gorm:"type:uuid;not null;index"`
	AlbumID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity      int       `gorm:"not null;check:quantity >= 0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// All returns every model for schema migration, parents before dependents.
func All() []any {
	return []any{
		&UserModel{},
		&LabelModel{},
		&ArtistModel{},
		&PersonModel{},
		&BandMemberModel{},
		&RecordModel{},
		&GenreModel{},
		&RecordGenreModel{},
		&AlbumModel{},
		&ShoppingSessionModel{},
		&CartItemModel{},
		&UserPaymentModel{},
		&OrderDetailModel{},
		&OrderItemModel{},
		&UserAddressModel{},
		&RefreshTokenModel{},
	}
}
