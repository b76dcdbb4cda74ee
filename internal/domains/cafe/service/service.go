package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Cafe=MockCafeService

import (
	"cafe/config"
	"cafe/infras/database"
	"cafe/infras/otel"
	"cafe/internal/domains/cafe/model"
	"cafe/internal/domains/cafe/model/dto"
	"cafe/internal/domains/cafe/repository"
	"cafe/shared"
	"cafe/shared/constant"
	gDto "cafe/shared/dto"
	"cafe/shared/failure"
	"context"
	"crypto/subtle"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
)

type Cafe interface {
	Random(ctx context.Context) (dto.CafeResponse, error)
	GetAll(ctx context.Context) (dto.CafesResponse, error)
	Search(ctx context.Context, location string) (dto.CafesResponse, error)
	Create(ctx context.Context, req dto.CreateCafeRequest) (dto.CafeResponse, error)
	UpdatePrice(ctx context.Context, req dto.UpdatePriceRequest) error
	Close(ctx context.Context, req dto.CloseCafeRequest) error
}

type serviceImpl struct {
	repo repository.Cafe
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Cafe, cfg *config.Config, otel otel.Otel) Cafe {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

var byInsertionOrder = gDto.QueryParams{
	SortBy:  model.FieldID,
	SortDir: gDto.SortDirAsc,
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup) ([]model.Cafe, error) {
	cafes, err := s.repo.GetAll(ctx, byInsertionOrder, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cafes")

		return nil, fmt.Errorf("failed to get cafes: %w", err)
	}

	return cafes, nil
}

func (s *serviceImpl) Random(ctx context.Context) (res dto.CafeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Random")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cafes, err := s.list(ctx, gDto.FilterGroup{})
	if err != nil {
		return res, err
	}

	if len(cafes) == 0 {
		return res, failure.NotFound(model.MessageNoCafes) //nolint:wrapcheck
	}

	res.FromModel(cafes[rand.IntN(len(cafes))]) //nolint:gosec

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.CafesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cafes, err := s.list(ctx, gDto.FilterGroup{})
	if err != nil {
		return res, err
	}

	scope.SetAttribute("cafes.count", len(cafes))

	return dto.NewCafesResponse(cafes), nil
}

// Search matches location exactly, including case.
func (s *serviceImpl) Search(ctx context.Context, location string) (res dto.CafesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("cafes.location", location)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldLocation,
				Operator: gDto.FilterOperatorEq,
				Value:    location,
				Table:    model.TableName,
			},
		},
	}

	cafes, err := s.list(ctx, filter)
	if err != nil {
		return res, err
	}

	if len(cafes) == 0 {
		return res, failure.NotFound(model.MessageNoCafeAtLocation) //nolint:wrapcheck
	}

	return dto.NewCafesResponse(cafes), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCafeRequest) (res dto.CafeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cafe := req.ToModel()

	cafe.ID, err = s.repo.Insert(ctx, cafe)
	if database.IsUniqueViolation(err) {
		log.Warn().Err(err).Str("name", cafe.Name).Msg("cafe name already taken")

		return res, failure.Conflict(model.MessageDuplicateName) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create cafe")

		return res, fmt.Errorf("failed to create cafe: %w", err)
	}

	res.FromModel(cafe)

	return res, nil
}

// UpdatePrice overwrites coffee_price only. Repeating it with the same price is a no-op.
func (s *serviceImpl) UpdatePrice(ctx context.Context, req dto.UpdatePriceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if cafe exists")

		return fmt.Errorf("failed to check if cafe exists: %w", err)
	}

	if !exist {
		return failure.NotFound(model.MessageCafeNotFound) //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req), filter); err != nil {
		log.Error().Err(err).Msg("failed to update cafe price")

		return fmt.Errorf("failed to update cafe price: %w", err)
	}

	return nil
}

// Close removes a cafe reported as closed. The key is checked before the store is touched.
func (s *serviceImpl) Close(ctx context.Context, req dto.CloseCafeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Close")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(s.cfg.App.APIKey)) != 1 {
		log.Warn().Int64("id", req.ID).Msg("rejected report-close with a wrong api key")

		return failure.ForbiddenError
	}

	filter := shared.FilterByID(req.ID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if cafe exists")

		return fmt.Errorf("failed to check if cafe exists: %w", err)
	}

	if !exist {
		return failure.NotFound(model.MessageCafeNotFound) //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete cafe")

		return fmt.Errorf("failed to delete cafe: %w", err)
	}

	return nil
}
