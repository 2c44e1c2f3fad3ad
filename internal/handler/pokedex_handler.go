package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/godex-app/godex/internal/model"
	"github.com/godex-app/godex/internal/service"
)

// PokedexService is the contract the handlers depend on. The handlers never
// see the concrete service implementation.
type PokedexService interface {
	ListPokemon(ctx context.Context) ([]model.PokemonSummary, error)
	GetPokemon(ctx context.Context, id int) (*model.PokemonDetail, error)
}

// PokedexHandler serves the server-rendered HTML pages.
type PokedexHandler struct {
	service PokedexService
	logger  *log.Logger
}

func NewPokedexHandler(s PokedexService, l *log.Logger) *PokedexHandler {
	return &PokedexHandler{
		service: s,
		logger:  l,
	}
}

type indexPageData struct {
	Title   string
	Pokemon []model.PokemonSummary
}

type detailPageData struct {
	Title   string
	Pokemon *model.PokemonDetail
}

func (h *PokedexHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.ListPokemon(r.Context())
	if err != nil {
		h.logger.Printf("ERROR: %v", err)
		renderError(w, h.logger, http.StatusBadGateway, "The Pokédex data source is unavailable right now")
		return
	}

	renderPage(w, h.logger, http.StatusOK, indexTemplate, indexPageData{
		Title:   "Pokédex",
		Pokemon: summaries,
	})
}

func (h *PokedexHandler) DetailPage(w http.ResponseWriter, r *http.Request) {
	// The route pattern only admits digits, so Atoi can only fail on
	// numbers too large for an int.
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		renderError(w, h.logger, http.StatusNotFound, "No such Pokémon")
		return
	}

	detail, err := h.service.GetPokemon(r.Context(), id)
	if err != nil {
		h.logger.Printf("ERROR: %v", err)

		if errors.Is(err, service.ErrNotFound) {
			renderError(w, h.logger, http.StatusNotFound, "No such Pokémon")
			return
		}
		renderError(w, h.logger, http.StatusBadGateway, "The Pokédex data source is unavailable right now")
		return
	}

	renderPage(w, h.logger, http.StatusOK, detailTemplate, detailPageData{
		Title:   detail.Name,
		Pokemon: detail,
	})
}
