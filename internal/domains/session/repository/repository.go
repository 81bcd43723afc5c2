package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"linka/infras/otel"
	"linka/infras/postgres"
	"linka/internal/domains/session/model"
	gDto "linka/shared/dto"
	gRepo "linka/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Session interface {
	Insert(ctx context.Context, model model.Session) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Session) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Session, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateCountTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Session]
}

func New(db *postgres.Connection, otel otel.Otel) Session {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Session](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
