package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"linka/infras/otel"
	"linka/infras/postgres"
	"linka/internal/domains/ride/model"
	gDto "linka/shared/dto"
	gRepo "linka/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Ride interface {
	Insert(ctx context.Context, model model.Ride) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Ride, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Ride, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	UpdateCountTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	ReserveSeatsTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int) (bool, error)
	ReleaseSeatsTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int) (bool, error)
	ResizeSeatsTx(ctx context.Context, tx *sqlx.Tx, id string, totalSeats int) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Ride]
}

func New(db *postgres.Connection, otel otel.Otel) Ride {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Ride](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

const (
	queryReserveSeats = `UPDATE rides
SET available_seats = available_seats - :quantity, version = version + 1, modified_at = :now
WHERE id = :id AND available_seats >= :quantity AND status = 'active'`

	queryReleaseSeats = `UPDATE rides
SET available_seats = available_seats + :quantity, version = version + 1, modified_at = :now
WHERE id = :id AND available_seats + :quantity <= total_seats`

	queryResizeSeats = `UPDATE rides
SET available_seats = available_seats + (:total_seats - total_seats), total_seats = :total_seats,
	version = version + 1, modified_at = :now
WHERE id = :id AND available_seats + (:total_seats - total_seats) >= 0 AND status = 'active'`
)

// ReserveSeatsTx takes quantity seats if that many are still free. It reports
// false without touching the row otherwise.
func (repo *repositoryImpl) ReserveSeatsTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int) (bool, error) {
	return repo.capacityExec(ctx, tx, "ReserveSeatsTx", queryReserveSeats, map[string]any{
		"id":       id,
		"quantity": quantity,
	})
}

func (repo *repositoryImpl) ReleaseSeatsTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int) (bool, error) {
	return repo.capacityExec(ctx, tx, "ReleaseSeatsTx", queryReleaseSeats, map[string]any{
		"id":       id,
		"quantity": quantity,
	})
}

// ResizeSeatsTx changes total_seats while keeping every confirmed seat.
func (repo *repositoryImpl) ResizeSeatsTx(ctx context.Context, tx *sqlx.Tx, id string, totalSeats int) (bool, error) {
	return repo.capacityExec(ctx, tx, "ResizeSeatsTx", queryResizeSeats, map[string]any{
		"id":          id,
		"total_seats": totalSeats,
	})
}

func (repo *repositoryImpl) capacityExec(ctx context.Context, tx *sqlx.Tx, op, query string, args map[string]any) (bool, error) {
	affected, err := repo.ExecTx(ctx, tx, op, query, args)

	return affected == 1, err
}
