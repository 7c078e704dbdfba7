package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/core"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/service"
)

type CostController struct {
	costService core.CostService
	logger      *zap.Logger
}

func NewCostController(costService core.CostService, logger *zap.Logger) *CostController {
	return &CostController{
		costService: costService,
		logger:      logger,
	}
}

func (c *CostController) AddCost(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID      flexNumber    `json:"userid"`
		Description string        `json:"description"`
		Category    string        `json:"category"`
		Sum         flexNumber    `json:"sum"`
		CreatedAt   flexTimestamp `json:"createdAt"`
	}

	// An empty body falls through to the missing fields check.
	if err := render.DecodeJSON(r.Body, &request); err != nil && !errors.Is(err, io.EOF) {
		c.logger.Info("Invalid request format", zap.Error(err))
		respondError(w, r, http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	c.logger.Info("Received add cost request",
		zap.Float64("userid", float64(request.UserID)),
		zap.String("description", request.Description),
		zap.String("category", request.Category),
		zap.Float64("sum", float64(request.Sum)),
		zap.String("createdAt", string(request.CreatedAt)))

	cost, err := c.costService.AddCost(r.Context(), model.CostInput{
		UserID:      float64(request.UserID),
		Description: request.Description,
		Category:    request.Category,
		Sum:         float64(request.Sum),
		CreatedAt:   string(request.CreatedAt),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			respondError(w, r, http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		case errors.Is(err, service.ErrInvalidCategory):
			respondError(w, r, http.StatusBadRequest, ErrorResponse{
				Error:           "Invalid category",
				ValidCategories: model.Categories(),
			})
		case errors.Is(err, service.ErrInvalidDate):
			respondError(w, r, http.StatusBadRequest, ErrorResponse{Error: "Invalid createdAt"})
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, r, http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			c.logger.Error("Failed to add cost", zap.Error(err))
			respondServerError(w, r, err)
		}
		return
	}

	render.JSON(w, r, cost)
}

func (c *CostController) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	id, year, month := query.Get("id"), query.Get("year"), query.Get("month")

	c.logger.Info("Received report request",
		zap.String("id", id),
		zap.String("year", year),
		zap.String("month", month))

	report, err := c.costService.GetMonthlyReport(r.Context(), id, year, month)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingQueryParams):
			respondError(w, r, http.StatusBadRequest, ErrorResponse{
				Error: "Missing required query parameters: id, year, month",
			})
		case errors.Is(err, service.ErrNonNumericQueryParams):
			respondError(w, r, http.StatusBadRequest, ErrorResponse{
				Error: "Query parameters id, year, and month must be numbers",
			})
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, r, http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			c.logger.Error("Failed to build monthly report", zap.Error(err))
			respondServerError(w, r, err)
		}
		return
	}

	render.JSON(w, r, report)
}
