package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// It allows the use case layer to run multi-step work atomically without
// depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back,
	// otherwise it is committed. All repository instances obtained from the
	// factory operate on the same transaction; cascade deletes rely on this
	// to remove a parent and its dependents atomically.
	Execute(ctx context.Context, fn func(f Factory) error) error
}

// Factory provides repository instances bound to one transaction.
type Factory interface {
	Users() UserRepository
	Labels() LabelRepository
	Artists() ArtistRepository
	Persons() PersonRepository
	BandMembers() BandMemberRepository
	Records() RecordRepository
	Genres() GenreRepository
	RecordGenres() RecordGenreRepository
	Albums() AlbumRepository
	ShoppingSessions() ShoppingSessionRepository
	CartItems() CartItemRepository
	UserPayments() UserPaymentRepository
	OrderDetails() OrderDetailRepository
	OrderItems() OrderItemRepository
	UserAddresses() UserAddressRepository
	RefreshTokens() RefreshTokenRepository
}
