package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/internal/domains/pet/model"
	gDto "petcare/shared/dto"
	gRepo "petcare/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Pet interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Pet, error)
	// FindOwnedTx returns the subset of petIDs that belong to userID.
	FindOwnedTx(ctx context.Context, sqltx *sqlx.Tx, userID string, petIDs []string) ([]model.Pet, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Pet]
}

func New(db *postgres.Connection, otel otel.Otel) Pet {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Pet](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) FindOwnedTx(ctx context.Context, sqltx *sqlx.Tx, userID string, petIDs []string) ([]model.Pet, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    petIDs,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	return r.GetAllTx(ctx, sqltx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}
