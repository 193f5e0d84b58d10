package handler

import (
	"encoding/json"
	"net/http"

	"github.com/skinforge/lootbox/internal/logger"
	"github.com/skinforge/lootbox/internal/lootbox"
	"github.com/skinforge/lootbox/internal/metrics"
)

// CreateLootboxRequest is the body of the create endpoint
type CreateLootboxRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
}

// AddSkinsRequest is the body of the add-skins endpoint
type AddSkinsRequest struct {
	SkinNames []string `json:"skin_names" validate:"required,min=1,dive,required"`
}

// SetProbabilitiesRequest is the body of the probabilities endpoint
type SetProbabilitiesRequest struct {
	Probabilities map[string]float64 `json:"probabilities" validate:"required,min=1"`
}

// HandleCreateLootbox handles creating a new, empty lootbox
// @Summary Create lootbox
// @Description Create a new lootbox with no skins
// @Tags lootboxes
// @Accept json
// @Produce json
// @Param request body CreateLootboxRequest true "Lootbox to create"
// @Success 201 {object} domain.Lootbox
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/lootboxes [post]
func HandleCreateLootbox(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateLootboxRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		lb, err := svc.Create(r.Context(), req.Name, req.Description)
		if err != nil {
			log.Error(ErrMsgCreateLootboxFailed, "lootbox", req.Name, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		metrics.LootboxesCreated.Inc()
		respondJSON(w, http.StatusCreated, lb)
	}
}

// HandleGetLootboxes handles listing lootboxes
// @Summary List lootboxes
// @Description Get a paginated list of lootboxes
// @Tags lootboxes
// @Produce json
// @Param limit query int false "Page size (default 500)"
// @Param offset query int false "Rows to skip (default 0)"
// @Success 200 {array} domain.Lootbox
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/lootboxes [get]
func HandleGetLootboxes(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		limit, offset, ok := parsePageParams(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}

		lootboxes, err := svc.GetAll(r.Context(), limit, offset)
		if err != nil {
			log.Error(ErrMsgListLootboxesFailed, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, lootboxes)
	}
}

// HandleGetLootboxContents handles resolving a lootbox to its skins
// @Summary Get lootbox contents
// @Description Get the full skin records for a lootbox's members
// @Tags lootboxes
// @Produce json
// @Param name path string true "Lootbox name"
// @Success 200 {array} domain.Skin
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lootboxes/{name}/contents [get]
func HandleGetLootboxContents(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		name := lootboxNameParam(r)

		contents, err := svc.GetContents(r.Context(), name)
		if err != nil {
			log.Error(ErrMsgGetContentsFailed, "lootbox", name, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, contents)
	}
}

// HandleAddSkins handles adding skins to a lootbox by name
// @Summary Add skins to lootbox
// @Description Add named skins to a lootbox; unknown names and existing members are reported, not errors
// @Tags lootboxes
// @Accept json
// @Produce json
// @Param name path string true "Lootbox name"
// @Param request body AddSkinsRequest true "Skin names to add"
// @Success 200 {object} lootbox.AddSkinsResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lootboxes/{name}/skins [post]
func HandleAddSkins(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		name := lootboxNameParam(r)

		var req AddSkinsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		result, err := svc.AddSkins(r.Context(), name, req.SkinNames)
		if err != nil {
			log.Error(ErrMsgAddSkinsFailed, "lootbox", name, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		added := len(result.Contents)
		metrics.SkinsAdded.WithLabelValues(name).Add(float64(len(req.SkinNames) - len(result.NotFound) - len(result.Duplicates)))
		log.Info("Skins added", "lootbox", name, "members", added)

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSetProbabilities handles assigning drop rates and repricing a lootbox
// @Summary Set lootbox probabilities
// @Description Assign a drop rate to every member skin; rates must sum to 1. Reprices the lootbox.
// @Tags lootboxes
// @Accept json
// @Produce json
// @Param name path string true "Lootbox name"
// @Param request body SetProbabilitiesRequest true "Skin name to probability mapping"
// @Success 200 {object} domain.Lootbox
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lootboxes/{name}/probabilities [put]
func HandleSetProbabilities(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		name := lootboxNameParam(r)

		var req SetProbabilitiesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
			return
		}

		lb, err := svc.SetProbabilities(r.Context(), name, req.Probabilities)
		if err != nil {
			log.Error(ErrMsgSetProbabilitiesFailed, "lootbox", name, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		metrics.PricesRecomputed.WithLabelValues(name).Inc()
		respondJSON(w, http.StatusOK, lb)
	}
}

// HandleRemoveLootbox handles deleting a lootbox and its membership edges
// @Summary Remove lootbox
// @Description Delete a lootbox's membership edges and then the lootbox itself
// @Tags lootboxes
// @Produce json
// @Param name path string true "Lootbox name"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lootboxes/{name} [delete]
func HandleRemoveLootbox(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		name := lootboxNameParam(r)

		if err := svc.Remove(r.Context(), name); err != nil {
			log.Error(ErrMsgRemoveLootboxFailed, "lootbox", name, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		metrics.LootboxesRemoved.Inc()
		w.WriteHeader(http.StatusNoContent)
	}
}
