// Package mocks provides testify doubles for the persistence interfaces.
package mocks

import (
	"context"

	"groove/internal/domain/entity"
	"groove/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager runs every unit of work against a fixed factory.
// There is no real transaction; tests assert on the repositories instead.
type MockTransactionManager struct {
	Factory repository.Factory
}

func (m *MockTransactionManager) Execute(_ context.Context, fn func(f repository.Factory) error) error {
	return fn(m.Factory)
}

// MockCrud is the shared testify mock behind every entity repository double.
type MockCrud[E any] struct {
	mock.Mock
}

func (m *MockCrud[E]) Create(ctx context.Context, e *E) error {
	args := m.Called(ctx, e)

	return args.Error(0)
}

func (m *MockCrud[E]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*E), args.Error(1)
}

func (m *MockCrud[E]) Find(ctx context.Context, q repository.Query) (*repository.Page[E], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.Page[E]), args.Error(1)
}

func (m *MockCrud[E]) Update(ctx context.Context, e *E) error {
	args := m.Called(ctx, e)

	return args.Error(0)
}

func (m *MockCrud[E]) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// listResult unwraps a mocked slice return, tolerating nil.
func listResult[E any](args mock.Arguments) ([]*E, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*E), args.Error(1)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	MockCrud[entity.User]
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

// MockLabelRepository mocks repository.LabelRepository.
type MockLabelRepository struct {
	MockCrud[entity.Label]
}

// MockArtistRepository mocks repository.ArtistRepository.
type MockArtistRepository struct {
	MockCrud[entity.Artist]
}

func (m *MockArtistRepository) FindByLabelID(ctx context.Context, labelID uuid.UUID) ([]*entity.Artist, error) {
	return listResult[entity.Artist](m.Called(ctx, labelID))
}

// MockPersonRepository mocks repository.PersonRepository.
type MockPersonRepository struct {
	MockCrud[entity.Person]
}

// MockBandMemberRepository mocks repository.BandMemberRepository.
type MockBandMemberRepository struct {
	MockCrud[entity.BandMember]
}

func (m *MockBandMemberRepository) DeleteByArtistID(ctx context.Context, artistID uuid.UUID) error {
	return m.Called(ctx, artistID).Error(0)
}

func (m *MockBandMemberRepository) DeleteByPersonID(ctx context.Context, personID uuid.UUID) error {
	return m.Called(ctx, personID).Error(0)
}

// MockRecordRepository mocks repository.RecordRepository.
type MockRecordRepository struct {
	MockCrud[entity.Record]
}

func (m *MockRecordRepository) FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.Record, error) {
	return listResult[entity.Record](m.Called(ctx, artistID))
}

func (m *MockRecordRepository) FindByLabelID(ctx context.Context, labelID uuid.UUID) ([]*entity.Record, error) {
	return listResult[entity.Record](m.Called(ctx, labelID))
}

// MockGenreRepository mocks repository.GenreRepository.
type MockGenreRepository struct {
	MockCrud[entity.Genre]
}

// MockRecordGenreRepository mocks repository.RecordGenreRepository.
type MockRecordGenreRepository struct {
	MockCrud[entity.RecordGenre]
}

func (m *MockRecordGenreRepository) DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error {
	return m.Called(ctx, recordID).Error(0)
}

func (m *MockRecordGenreRepository) DeleteByGenreID(ctx context.Context, genreID uuid.UUID) error {
	return m.Called(ctx, genreID).Error(0)
}

// MockAlbumRepository mocks repository.AlbumRepository.
type MockAlbumRepository struct {
	MockCrud[entity.Album]
}

func (m *MockAlbumRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Album, error) {
	return listResult[entity.Album](m.Called(ctx, userID))
}

func (m *MockAlbumRepository) FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]*entity.Album, error) {
	return listResult[entity.Album](m.Called(ctx, recordID))
}

// MockShoppingSessionRepository mocks repository.ShoppingSessionRepository.
type MockShoppingSessionRepository struct {
	MockCrud[entity.ShoppingSession]
}

func (m *MockShoppingSessionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingSession, error) {
	return listResult[entity.ShoppingSession](m.Called(ctx, userID))
}

// MockCartItemRepository mocks repository.CartItemRepository.
type MockCartItemRepository struct {
	MockCrud[entity.CartItem]
}

func (m *MockCartItemRepository) DeleteBySessionID(ctx context.Context, sessionID uuid.UUID) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockCartItemRepository) DeleteByAlbumID(ctx context.Context, albumID uuid.UUID) error {
	return m.Called(ctx, albumID).Error(0)
}

// MockUserPaymentRepository mocks repository.UserPaymentRepository.
type MockUserPaymentRepository struct {
	MockCrud[entity.UserPayment]
}

func (m *MockUserPaymentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserPayment, error) {
	return listResult[entity.UserPayment](m.Called(ctx, userID))
}

// MockOrderDetailRepository mocks repository.OrderDetailRepository.
type MockOrderDetailRepository struct {
	MockCrud[entity.OrderDetail]
}

func (m *MockOrderDetailRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetail, error) {
	return listResult[entity.OrderDetail](m.Called(ctx, userID))
}

func (m *MockOrderDetailRepository) FindByUserPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*entity.OrderDetail, error) {
	return listResult[entity.OrderDetail](m.Called(ctx, paymentID))
}

// MockOrderItemRepository mocks repository.OrderItemRepository.
type MockOrderItemRepository struct {
	MockCrud[entity.OrderItem]
}

func (m *MockOrderItemRepository) DeleteByOrderDetailID(ctx context.Context, orderDetailID uuid.UUID) error {
	return m.Called(ctx, orderDetailID).Error(0)
}

func (m *MockOrderItemRepository) DeleteByAlbumID(ctx context.Context, albumID uuid.UUID) error {
	return m.Called(ctx, albumID).Error(0)
}

// MockUserAddressRepository mocks repository.UserAddressRepository.
type MockUserAddressRepository struct {
	MockCrud[entity.UserAddress]
}

func (m *MockUserAddressRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockRefreshTokenRepository mocks repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Update(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockFactory hands out the repository doubles wired into its fields. Fields
// left nil are lazily initialized so tests only set up what they touch.
// NewMockFactory pre-populates every field for tests that want them all.
type MockFactory struct {
	UserRepo            *MockUserRepository
	LabelRepo           *MockLabelRepository
	ArtistRepo          *MockArtistRepository
	PersonRepo          *MockPersonRepository
	BandMemberRepo      *MockBandMemberRepository
	RecordRepo          *MockRecordRepository
	GenreRepo           *MockGenreRepository
	RecordGenreRepo     *MockRecordGenreRepository
	AlbumRepo           *MockAlbumRepository
	ShoppingSessionRepo *MockShoppingSessionRepository
	CartItemRepo        *MockCartItemRepository
	UserPaymentRepo     *MockUserPaymentRepository
	OrderDetailRepo     *MockOrderDetailRepository
	OrderItemRepo       *MockOrderItemRepository
	UserAddressRepo     *MockUserAddressRepository
	RefreshTokenRepo    *MockRefreshTokenRepository
}

// NewMockFactory returns a factory with every repository double in place.
func NewMockFactory() *MockFactory {
	return &MockFactory{
		UserRepo:            &MockUserRepository{},
		LabelRepo:           &MockLabelRepository{},
		ArtistRepo:          &MockArtistRepository{},
		PersonRepo:          &MockPersonRepository{},
		BandMemberRepo:      &MockBandMemberRepository{},
		RecordRepo:          &MockRecordRepository{},
		GenreRepo:           &MockGenreRepository{},
		RecordGenreRepo:     &MockRecordGenreRepository{},
		AlbumRepo:           &MockAlbumRepository{},
		ShoppingSessionRepo: &MockShoppingSessionRepository{},
		CartItemRepo:        &MockCartItemRepository{},
		UserPaymentRepo:     &MockUserPaymentRepository{},
		OrderDetailRepo:     &MockOrderDetailRepository{},
		OrderItemRepo:       &MockOrderItemRepository{},
		UserAddressRepo:     &MockUserAddressRepository{},
		RefreshTokenRepo:    &MockRefreshTokenRepository{},
	}
}

func (f *MockFactory) Users() repository.UserRepository {
	if f.UserRepo == nil {
		f.UserRepo = &MockUserRepository{}
	}

	return f.UserRepo
}

func (f *MockFactory) Labels() repository.LabelRepository {
	if f.LabelRepo == nil {
		f.LabelRepo = &MockLabelRepository{}
	}

	return f.LabelRepo
}

func (f *MockFactory) Artists() repository.ArtistRepository {
	if f.ArtistRepo == nil {
		f.ArtistRepo = &MockArtistRepository{}
	}

	return f.ArtistRepo
}

func (f *MockFactory) Persons() repository.PersonRepository {
	if f.PersonRepo == nil {
		f.PersonRepo = &MockPersonRepository{}
	}

	return f.PersonRepo
}

func (f *MockFactory) BandMembers() repository.BandMemberRepository {
	if f.BandMemberRepo == nil {
		f.BandMemberRepo = &MockBandMemberRepository{}
	}

	return f.BandMemberRepo
}

func (f *MockFactory) Records() repository.RecordRepository {
	if f.RecordRepo == nil {
		f.RecordRepo = &MockRecordRepository{}
	}

	return f.RecordRepo
}

func (f *MockFactory) Genres() repository.GenreRepository {
	if f.GenreRepo == nil {
		f.GenreRepo = &MockGenreRepository{}
	}

	return f.GenreRepo
}

func (f *MockFactory) RecordGenres() repository.RecordGenreRepository {
	if f.RecordGenreRepo == nil {
		f.RecordGenreRepo = &MockRecordGenreRepository{}
	}

	return f.RecordGenreRepo
}

func (f *MockFactory) Albums() repository.AlbumRepository {
	if f.AlbumRepo == nil {
		f.AlbumRepo = &MockAlbumRepository{}
	}

	return f.AlbumRepo
}

func (f *MockFactory) ShoppingSessions() repository.ShoppingSessionRepository {
	if f.ShoppingSessionRepo == nil {
		f.ShoppingSessionRepo = &MockShoppingSessionRepository{}
	}

	return f.ShoppingSessionRepo
}

func (f *MockFactory) CartItems() repository.CartItemRepository {
	if f.CartItemRepo == nil {
		f.CartItemRepo = &MockCartItemRepository{}
	}

	return f.CartItemRepo
}

func (f *MockFactory) UserPayments() repository.UserPaymentRepository {
	if f.UserPaymentRepo == nil {
		f.UserPaymentRepo = &MockUserPaymentRepository{}
	}

	return f.UserPaymentRepo
}

func (f *MockFactory) OrderDetails() repository.OrderDetailRepository {
	if f.OrderDetailRepo == nil {
		f.OrderDetailRepo = &MockOrderDetailRepository{}
	}

	return f.OrderDetailRepo
}

func (f *MockFactory) OrderItems() repository.OrderItemRepository {
	if f.OrderItemRepo == nil {
		f.OrderItemRepo = &MockOrderItemRepository{}
	}

	return f.OrderItemRepo
}

func (f *MockFactory) UserAddresses() repository.UserAddressRepository {
	if f.UserAddressRepo == nil {
		f.UserAddressRepo = &MockUserAddressRepository{}
	}

	return f.UserAddressRepo
}

func (f *MockFactory) RefreshTokens() repository.RefreshTokenRepository {
	if f.RefreshTokenRepo == nil {
		f.RefreshTokenRepo = &MockRefreshTokenRepository{}
	}

	return f.RefreshTokenRepo
}
