package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"cafe/infras/database"
	"cafe/infras/otel"
	"cafe/internal/domains/cafe/model"
	gDto "cafe/shared/dto"
	gRepo "cafe/shared/repository"
	"context"
)

type Cafe interface {
	Insert(ctx context.Context, model model.Cafe) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Cafe, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Cafe, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Cafe]
}

func New(db *database.Connection, otel otel.Otel) Cafe {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Cafe](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
