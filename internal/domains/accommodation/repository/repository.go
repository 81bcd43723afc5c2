package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"linka/infras/otel"
	"linka/infras/postgres"
	"linka/internal/domains/accommodation/model"
	gDto "linka/shared/dto"
	gRepo "linka/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Accommodation interface {
	Insert(ctx context.Context, model model.Accommodation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Accommodation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Accommodation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	UpdateCountTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	ReserveRoomsTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int) (bool, error)
	ReleaseRoomsTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int) (bool, error)
	ResizeRoomsTx(ctx context.Context, tx *sqlx.Tx, id string, totalRooms int) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Accommodation]
}

func New(db *postgres.Connection, otel otel.Otel) Accommodation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Accommodation](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

const (
	queryReserveRooms = `UPDATE accommodations
SET available_rooms = available_rooms - :quantity, version = version + 1, modified_at = :now
WHERE id = :id AND available_rooms >= :quantity AND status = 'active'`

	queryReleaseRooms = `UPDATE accommodations
SET available_rooms = available_rooms + :quantity, version = version + 1, modified_at = :now
WHERE id = :id AND available_rooms + :quantity <= total_rooms`

	queryResizeRooms = `UPDATE accommodations
SET available_rooms = available_rooms + (:total_rooms - total_rooms), total_rooms = :total_rooms,
	version = version + 1, modified_at = :now
WHERE id = :id AND available_rooms + (:total_rooms - total_rooms) >= 0 AND status = 'active'`
)

func (repo *repositoryImpl) ReserveRoomsTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int) (bool, error) {
	return repo.capacityExec(ctx, tx, "ReserveRoomsTx", queryReserveRooms, map[string]any{
		"id":       id,
		"quantity": quantity,
	})
}

func (repo *repositoryImpl) ReleaseRoomsTx(ctx context.Context, tx *sqlx.Tx, id string, quantity int) (bool, error) {
	return repo.capacityExec(ctx, tx, "ReleaseRoomsTx", queryReleaseRooms, map[string]any{
		"id":       id,
		"quantity": quantity,
	})
}

func (repo *repositoryImpl) ResizeRoomsTx(ctx context.Context, tx *sqlx.Tx, id string, totalRooms int) (bool, error) {
	return repo.capacityExec(ctx, tx, "ResizeRoomsTx", queryResizeRooms, map[string]any{
		"id":          id,
		"total_rooms": totalRooms,
	})
}

func (repo *repositoryImpl) capacityExec(ctx context.Context, tx *sqlx.Tx, op, query string, args map[string]any) (bool, error) {
	affected, err := repo.ExecTx(ctx, tx, op, query, args)

	return affected == 1, err
}
