package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"cost-engine-service/internal/contextkeys"
	"cost-engine-service/internal/core/domain"
	"cost-engine-service/internal/core/port"
	"cost-engine-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type EstimateHandlers struct {
	estimatePropertyUC usecases_port.EstimatePropertyUseCase
	getEstimateUC      usecases_port.GetEstimateUseCase
}

func NewEstimateHandlers(estimatePropertyUC usecases_port.EstimatePropertyUseCase,
	getEstimateUC usecases_port.GetEstimateUseCase) *EstimateHandlers {
	return &EstimateHandlers{
		estimatePropertyUC: estimatePropertyUC,
		getEstimateUC:      getEstimateUC,
	}
}

// CreateEstimate handles POST /api/v1/estimates
func (h *EstimateHandlers) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var dto PropertyAssessmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	assessment, err := dto.ToDomain()
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "CreateEstimate",
		"property_id": assessment.PropertyID,
		"room_count":  len(assessment.Rooms),
	})
	handlerLogger.Debug("Processing estimate request", nil)

	estimate, err := h.estimatePropertyUC.Execute(r.Context(), assessment)
	if err != nil {
		handlerLogger.Error("Estimate use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "failed to compute estimate")
		return
	}

	RespondWithJSON(w, http.StatusCreated, estimate)
}

// GetEstimate handles GET /api/v1/estimates/{estimateID}
func (h *EstimateHandlers) GetEstimate(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	idStr := chi.URLParam(r, "estimateID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "estimateID must be a valid UUID")
		return
	}

	estimate, err := h.getEstimateUC.Execute(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEstimateNotFound) {
			WriteJSONError(w, http.StatusNotFound, "estimate not found")
			return
		}
		logger.Error("Get estimate use case failed", err, port.Fields{"estimate_id": idStr})
		WriteJSONError(w, http.StatusInternalServerError, "failed to fetch estimate")
		return
	}

	RespondWithJSON(w, http.StatusOK, estimate)
}

// Health handles GET /api/v1/health
func (h *EstimateHandlers) Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
