package handler

import (
	"fmt"
	"net/http"

	"github.com/skinforge/lootbox/internal/domain"
	"github.com/skinforge/lootbox/internal/logger"
	"github.com/skinforge/lootbox/internal/skin"
)

// HandleGetSkins handles listing skins
// @Summary List skins
// @Description Get a paginated list of all skins
// @Tags skins
// @Produce json
// @Param limit query int false "Page size (default 500)"
// @Param offset query int false "Rows to skip (default 0)"
// @Success 200 {array} domain.Skin
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/skins [get]
func HandleGetSkins(svc skin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		limit, offset, ok := parsePageParams(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}

		skins, err := svc.GetAll(r.Context(), limit, offset)
		if err != nil {
			log.Error(ErrMsgListSkinsFailed, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, skins)
	}
}

// HandleGetAvailableSkins handles listing available skins
// @Summary List available skins
// @Description Get all skins currently flagged available
// @Tags skins
// @Produce json
// @Success 200 {array} domain.Skin
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/skins/available [get]
func HandleGetAvailableSkins(svc skin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		skins, err := svc.GetAvailable(r.Context())
		if err != nil {
			log.Error(ErrMsgListSkinsFailed, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, skins)
	}
}

// HandleGetFilteredSkins handles the filtered skin listing
// @Summary List filtered skins
// @Description Get available skins in a price range, optionally matching a name substring, sorted by price
// @Tags skins
// @Produce json
// @Param min_price query number false "Minimum base price (default 2.0)"
// @Param max_price query number false "Maximum base price (default 1000.0)"
// @Param order query string false "Sort order: asc or desc (default asc)"
// @Param name_contains query string false "Case-insensitive substring match on name"
// @Success 200 {array} domain.Skin
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/skins/filtered [get]
func HandleGetFilteredSkins(svc skin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter := domain.DefaultSkinFilter()

		minPrice, ok := parseFloatParam(r, "min_price", filter.MinPrice)
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPrice, "min_price"))
			return
		}
		maxPrice, ok := parseFloatParam(r, "max_price", filter.MaxPrice)
		if !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPrice, "max_price"))
			return
		}
		filter.MinPrice = minPrice
		filter.MaxPrice = maxPrice

		if order := r.URL.Query().Get("order"); order != "" {
			filter.Order = order
		}
		filter.NameContains = r.URL.Query().Get("name_contains")

		skins, err := svc.GetFiltered(r.Context(), filter)
		if err != nil {
			log.Error(ErrMsgListSkinsFailed, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, skins)
	}
}

// HandleGetSkinByName handles single-skin lookup by exact name
// @Summary Get skin by name
// @Description Get one skin by its exact, case-sensitive name
// @Tags skins
// @Produce json
// @Param name query string true "Skin name"
// @Success 200 {object} domain.Skin
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/skins/by-name [get]
func HandleGetSkinByName(svc skin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		name := r.URL.Query().Get("name")
		if name == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "name"))
			return
		}

		s, err := svc.GetByName(r.Context(), name)
		if err != nil {
			log.Error(ErrMsgGetSkinFailed, "skin", name, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, s)
	}
}
