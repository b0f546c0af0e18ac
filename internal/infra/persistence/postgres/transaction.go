package postgres

import (
	"context"
	"fmt"

	"groove/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
// Cascade deletes depend on this: a parent and all of its dependents are
// removed atomically or not at all.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(f repository.Factory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back on panic so a failing handler can never leak an open transaction.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// gormFactory implements the domain's Factory interface. It holds one GORM
// transaction and hands out repository instances bound to it.
type gormFactory struct {
	tx *gorm.DB // A *gorm.DB obtained from Begin() is the transaction handle.
}

func (f *gormFactory) Users() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormFactory) Labels() repository.LabelRepository {
	return NewLabelRepository(f.tx)
}

func (f *gormFactory) Artists() repository.ArtistRepository {
	return NewArtistRepository(f.tx)
}

func (f *gormFactory) Persons() repository.PersonRepository {
	return NewPersonRepository(f.tx)
}

func (f *gormFactory) BandMembers() repository.BandMemberRepository {
	return NewBandMemberRepository(f.tx)
}

func (f *gormFactory) Records() repository.RecordRepository {
	return NewRecordRepository(f.tx)
}

func (f *gormFactory) Genres() repository.GenreRepository {
	return NewGenreRepository(f.tx)
}

func (f *gormFactory) RecordGenres() repository.RecordGenreRepository {
	return NewRecordGenreRepository(f.tx)
}

func (f *gormFactory) Albums() repository.AlbumRepository {
	return NewAlbumRepository(f.tx)
}

func (f *gormFactory) ShoppingSessions() repository.ShoppingSessionRepository {
	return NewShoppingSessionRepository(f.tx)
}

func (f *gormFactory) CartItems() repository.CartItemRepository {
	return NewCartItemRepository(f.tx)
}

func (f *gormFactory) UserPayments() repository.UserPaymentRepository {
	return NewUserPaymentRepository(f.tx)
}

func (f *gormFactory) OrderDetails() repository.OrderDetailRepository {
	return NewOrderDetailRepository(f.tx)
}

func (f *gormFactory) OrderItems() repository.OrderItemRepository {
	return NewOrderItemRepository(f.tx)
}

func (f *gormFactory) UserAddresses() repository.UserAddressRepository {
	return NewUserAddressRepository(f.tx)
}

func (f *gormFactory) RefreshTokens() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}
