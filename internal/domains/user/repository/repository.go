package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"linka/infras/otel"
	"linka/infras/postgres"
	"linka/internal/domains/user/model"
	gDto "linka/shared/dto"
	gRepo "linka/shared/repository"

	"github.com/jmoiron/sqlx"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ApplyRatingTx(ctx context.Context, tx *sqlx.Tx, userID string, score int) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

const queryApplyRating = `UPDATE users
SET rating = ROUND(((rating * rating_count) + :score)::numeric / (rating_count + 1), 2),
	rating_count = rating_count + 1,
	modified_at = :now
WHERE id = :id`

// ApplyRatingTx folds one score into the user's running average.
func (repo *repositoryImpl) ApplyRatingTx(ctx context.Context, tx *sqlx.Tx, userID string, score int) error {
	affected, err := repo.ExecTx(ctx, tx, "ApplyRatingTx", queryApplyRating, map[string]any{
		"id":    userID,
		"score": score,
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return fmt.Errorf("failed to apply rating (%s): no user %s", model.EntityName, userID)
	}

	return nil
}
