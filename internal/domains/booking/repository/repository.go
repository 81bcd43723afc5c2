package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"linka/infras/otel"
	"linka/infras/postgres"
	"linka/internal/domains/booking/model"
	gDto "linka/shared/dto"
	gRepo "linka/shared/repository"

	"github.com/jmoiron/sqlx"
)

// ErrOpenBookingExists is returned by Create when the customer already holds
// a pending or confirmed booking on the same ride or accommodation.
var ErrOpenBookingExists = errors.New("open booking already exists")

type Booking interface {
	Create(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	UpdateCountTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Create relies on the partial unique index over (customer_id, target) for
// open statuses, so concurrent duplicates lose at the database.
func (repo *repositoryImpl) Create(ctx context.Context, booking model.Booking) error {
	err := repo.Insert(ctx, booking)
	if gRepo.IsUniqueViolation(err) {
		return ErrOpenBookingExists
	}

	return err
}
