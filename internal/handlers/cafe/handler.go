package cafe

import (
	"cafe/infras/otel"
	"cafe/internal/domains/cafe/model/dto"
	"cafe/internal/domains/cafe/service"
	"cafe/shared"
	"cafe/shared/constant"
	"cafe/shared/failure"
	"cafe/shared/validator"
	"cafe/transport/http/response"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

const (
	keySuccess        = "success"
	keySuccessTitled  = "Success"
	messageCafeAdded  = "Successfully added the new cafe."
	messagePriceSaved = "Successfully updated the price of Cafe-%d"
	messageCafeClosed = "Successfully deleted the Cafe with ID-%d"
)

type Handler struct {
	service service.Cafe
	otel    otel.Otel
}

func New(service service.Cafe, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/random", handler.GetRandomCafe)
	router.Get("/all", handler.GetAllCafes)
	router.Get("/search", handler.SearchCafes)
	router.Post("/add", handler.AddCafe)
	router.Patch("/update-price", handler.UpdatePrice)
	router.Delete("/report-close", handler.ReportClose)
}

// GetRandomCafe returns one cafe picked at random.
// @Summary Get a random cafe
// @Tags Cafe
// @Produce json
// @Success 200 {object} dto.CafeResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /random [get]
func (handler *Handler) GetRandomCafe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRandomCafe")
	defer scope.End()

	cafe, err := handler.service.Random(ctx)
	if err != nil {
		scope.TraceError(err)
		hlog.FromRequest(r).Error().Err(err).Msg("failed to get random cafe")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cafe)
}

// GetAllCafes lists every cafe keyed by position.
// @Summary Get all cafes
// @Description Cafes keyed "1".."N" in insertion order. An empty store answers {}.
// @Tags Cafe
// @Produce json
// @Success 200 {object} dto.CafesResponse
// @Failure 500 {object} response.Error
// @Router /all [get]
func (handler *Handler) GetAllCafes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllCafes")
	defer scope.End()

	cafes, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		hlog.FromRequest(r).Error().Err(err).Msg("failed to get cafes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cafes)
}

// SearchCafes lists the cafes at an exact location.
// @Summary Find cafes by location
// @Tags Cafe
// @Produce json
// @Param loc query string true "Location, matched exactly"
// @Success 200 {object} dto.CafesResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /search [get]
func (handler *Handler) SearchCafes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchCafes")
	defer scope.End()

	cafes, err := handler.service.Search(ctx, r.URL.Query().Get(constant.RequestParamLocation))
	if err != nil {
		scope.TraceError(err)
		hlog.FromRequest(r).Error().Err(err).Msg("failed to search cafes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cafes)
}

// AddCafe stores a new cafe from a submitted form.
// @Summary Add a cafe
// @Description Amenity flags are true for true/1/t/on/yes/y and false otherwise.
// @Tags Cafe
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param name formData string true "Name, unique"
// @Param map_url formData string true "Map URL"
// @Param img_url formData string true "Image URL"
// @Param loc formData string true "Location"
// @Param seats formData string true "Seats, e.g. 20-30"
// @Param sockets formData string false "Has sockets"
// @Param toilet formData string false "Has toilet"
// @Param wifi formData string false "Has wifi"
// @Param calls formData string false "Can take calls"
// @Param coffee_price formData string false "Coffee price, e.g. £2.40"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /add [post]
func (handler *Handler) AddCafe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCafe")
	defer scope.End()

	form, err := parseForm(w, r)
	if err != nil {
		scope.TraceError(err)
		hlog.FromRequest(r).Error().Err(err).Msg("failed to parse form")

		response.WithError(w, err)

		return
	}

	req := dto.CreateCafeRequest{}
	req.FromForm(form)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		hlog.FromRequest(r).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	cafe, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		hlog.FromRequest(r).Error().Err(err).Msg("failed to add cafe")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(fmt.Sprintf("Cafe-%d added", cafe.ID))

	response.WithResponse(w, http.StatusOK, keySuccess, messageCafeAdded)
}

// UpdatePrice replaces the coffee price of a cafe.
// @Summary Update the coffee price of a cafe
// @Tags Cafe
// @Produce json
// @Param id query integer true "Cafe ID"
// @Param new_price query string true "New coffee price"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /update-price [patch]
func (handler *Handler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePrice")
	defer scope.End()

	query := r.URL.Query()

	id, err := parseID(query.Get(constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		hlog.FromRequest(r).Error().Err(err).Msg("invalid cafe id")

		response.WithError(w, err)

		return
	}

	req := dto.UpdatePriceRequest{
		ID:          id,
		CoffeePrice: query.Get(constant.RequestParamNewPrice),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		hlog.FromRequest(r).Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePrice(ctx, req); err != nil {
		scope.TraceError(err)
		hlog.FromRequest(r).Error().Err(err).Int64("id", id).Msg("failed to update cafe price")

		response.WithError(w, err)

		return
	}

	response.WithResponse(w, http.StatusOK, keySuccessTitled, fmt.Sprintf(messagePriceSaved, id))
}

// ReportClose deletes a cafe that has closed down. Requires the api key.
// @Summary Delete a closed cafe
// @Tags Cafe
// @Produce json
// @Param cafe_id query integer true "Cafe ID"
// @Param api_key query string true "API key"
// @Success 200 {object} response.Result
// @Failure 403 {object} response.Result
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /report-close [delete]
func (handler *Handler) ReportClose(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReportClose")
	defer scope.End()

	query := r.URL.Query()

	// the key is checked before the id; an id that does not parse matches no cafe
	id, _ := strconv.ParseInt(strings.TrimSpace(query.Get(constant.RequestParamCafeID)), 10, 64)

	err := handler.service.Close(ctx, dto.CloseCafeRequest{
		ID:     id,
		APIKey: query.Get(constant.RequestParamAPIKey),
	})
	if err != nil {
		scope.TraceError(err)
		hlog.FromRequest(r).Error().Err(err).Int64("id", id).Msg("failed to report cafe closed")

		response.WithError(w, err)

		return
	}

	response.WithResult(w, http.StatusOK, keySuccessTitled, fmt.Sprintf(messageCafeClosed, id))
}

func parseID(raw string) (int64, error) {
	if raw == "" {
		return 0, failure.BadRequestFromString("id is required")
	}

	id, err := shared.ConvertStringToInt(raw)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("id must be an integer, got %q", raw))
	}

	return id, nil
}

// parseForm reads a urlencoded or multipart body, capped at RequestMaxMemory.
func parseForm(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, constant.RequestMaxMemory)

	var err error
	if shared.ContentTypeIs(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData) {
		err = r.ParseMultipartForm(constant.RequestMaxMemory)
	} else {
		err = r.ParseForm()
	}

	if err != nil {
		return nil, failure.BadRequest(fmt.Errorf("failed to parse form: %w", err)) //nolint:wrapcheck
	}

	return r.PostForm, nil
}
