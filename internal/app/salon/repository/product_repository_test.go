package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"atakuafor/internal/app/salon/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ProductRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  ProductRepository
	sqlDB *sql.DB
}

func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryTestSuite))
}

func (s *ProductRepositoryTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	dialector := postgres.New(postgres.Config{
		Conn:       s.sqlDB,
		DriverName: "postgres",
	})

	s.db, err = gorm.Open(dialector, &gorm.Config{})
	require.NoError(s.T(), err)

	s.repo = NewProductRepository(s.db)
}

func (s *ProductRepositoryTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

func (s *ProductRepositoryTestSuite) TestCreate_Success() {
	ctx := context.Background()
	product := &entity.Product{
		ID:        uuid.New(),
		Title:     "Şampuan",
		ImageURL:  "https://example.com/sampuan.jpg",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "products"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	err := s.repo.Create(ctx, product)

	s.NoError(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ProductRepositoryTestSuite) TestGetByID_Success() {
	ctx := context.Background()
	productID := uuid.New()
	price := 250.0
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "title", "price", "image_url", "created_at", "updated_at"}).
		AddRow(productID, "Şampuan", price, "https://example.com/sampuan.jpg", now, now)

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE id = $1`)).
		WillReturnRows(rows)

	product, err := s.repo.GetByID(ctx, productID)

	s.NoError(err)
	s.NotNil(product)
	s.Equal(productID, product.ID)
	s.Equal("Şampuan", product.Title)
	s.NotNil(product.Price)
	s.Equal(price, *product.Price)

	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ProductRepositoryTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "image_url", "created_at", "updated_at"}))

	product, err := s.repo.GetByID(ctx, uuid.New())

	s.Nil(product)
	s.ErrorIs(err, ErrProductNotFound)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ProductRepositoryTestSuite) TestGetByIDs_SkipsMissing() {
	ctx := context.Background()
	knownID := uuid.New()
	missingID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "title", "price", "image_url", "created_at", "updated_at"}).
		AddRow(knownID, "Şampuan", nil, "https://example.com/sampuan.jpg", now, now)

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE id IN`)).
		WillReturnRows(rows)

	products, err := s.repo.GetByIDs(ctx, []uuid.UUID{knownID, missingID})

	s.NoError(err)
	s.Len(products, 1)
	s.Equal(knownID, products[0].ID)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ProductRepositoryTestSuite) TestGetAll_OrderedByCreatedAt() {
	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "title", "price", "image_url", "created_at", "updated_at"}).
		AddRow(uuid.New(), "Saç Kremi", nil, "https://example.com/krem.jpg", now, now).
		AddRow(uuid.New(), "Şampuan", nil, "https://example.com/sampuan.jpg", now.Add(-time.Hour), now.Add(-time.Hour))

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" ORDER BY created_at DESC`)).
		WillReturnRows(rows)

	products, err := s.repo.GetAll(ctx)

	s.NoError(err)
	s.Len(products, 2)
	s.Equal("Saç Kremi", products[0].Title)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ProductRepositoryTestSuite) TestGetAll_EmptyTableReturnsEmptySlice() {
	rows := sqlmock.NewRows([]string{"id", "title", "price", "image_url", "created_at", "updated_at"})

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" ORDER BY created_at DESC`)).
		WillReturnRows(rows)

	products, err := s.repo.GetAll(context.Background())

	s.NoError(err)
	s.NotNil(products)
	s.Len(products, 0)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ProductRepositoryTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	product := &entity.Product{
		ID:       uuid.New(),
		Title:    "Şampuan",
		ImageURL: "https://example.com/sampuan.jpg",
	}

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	err := s.repo.Update(ctx, product)

	s.ErrorIs(err, ErrProductNotFound)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ProductRepositoryTestSuite) TestDelete_Success() {
	ctx := context.Background()
	productID := uuid.New()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products" WHERE id = $1`)).
		WithArgs(productID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	err := s.repo.Delete(ctx, productID)

	s.NoError(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ProductRepositoryTestSuite) TestDelete_NotFound() {
	ctx := context.Background()
	productID := uuid.New()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products" WHERE id = $1`)).
		WithArgs(productID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	err := s.repo.Delete(ctx, productID)

	s.ErrorIs(err, ErrProductNotFound)
	s.NoError(s.mock.ExpectationsWereMet())
}
