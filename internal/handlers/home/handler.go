package home

import (
	"bytes"
	"cafe/config"
	"cafe/infras/otel"
	"cafe/shared/constant"
	"cafe/transport/http/response"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

//go:embed templates/index.html
var templates embed.FS

type route struct {
	Method      string
	Path        string
	Description string
}

type page struct {
	Title  string
	Routes []route
}

var routes = []route{
	{Method: http.MethodGet, Path: "/random", Description: "A random cafe"},
	{Method: http.MethodGet, Path: "/all", Description: "Every cafe, keyed 1..N"},
	{Method: http.MethodGet, Path: "/search?loc=<location>", Description: "Cafes at a location"},
	{Method: http.MethodPost, Path: "/add", Description: "Add a cafe (form body)"},
	{Method: http.MethodPatch, Path: "/update-price?id=<id>&new_price=<price>", Description: "Change a coffee price"},
	{Method: http.MethodDelete, Path: "/report-close?cafe_id=<id>&api_key=<key>", Description: "Remove a closed cafe"},
}

type Handler struct {
	page page
	tmpl *template.Template
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		page: page{Title: cfg.App.Name, Routes: routes},
		tmpl: template.Must(template.ParseFS(templates, "templates/index.html")),
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Home)
}

// Home renders the landing page.
// @Summary Landing page
// @Tags Home
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (handler *Handler) Home(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Home")
	defer scope.End()

	var body bytes.Buffer

	if err := handler.tmpl.Execute(&body, handler.page); err != nil {
		scope.TraceError(err)
		hlog.FromRequest(r).Error().Err(err).Msg("failed to render home page")

		response.WithError(w, err)

		return
	}

	response.WithHTML(w, http.StatusOK, body.Bytes())
}
