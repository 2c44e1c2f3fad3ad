package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/godex-app/godex/internal/service"
)

// APIHandler serves the JSON renditions of the listing and detail data.
type APIHandler struct {
	service PokedexService
	logger  *log.Logger
}

func NewAPIHandler(s PokedexService, l *log.Logger) *APIHandler {
	return &APIHandler{
		service: s,
		logger:  l,
	}
}

func (h *APIHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.ListPokemon(r.Context())
	if err != nil {
		h.logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadGateway, "upstream api unavailable")
		return
	}

	respondWithJSON(w, http.StatusOK, summaries)
}

func (h *APIHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "pokemon not found")
		return
	}

	detail, err := h.service.GetPokemon(r.Context(), id)
	if err != nil {
		h.logger.Printf("ERROR: %v", err)

		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "pokemon not found")
			return
		}
		respondWithError(w, http.StatusBadGateway, "upstream api unavailable")
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}
