// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sitepulse/backend/internal/application/usecase/prediction"
	domainerror "github.com/sitepulse/backend/internal/domain/error"
	"github.com/sitepulse/backend/internal/integration/entrypoint/dto"
	"github.com/sitepulse/backend/internal/integration/entrypoint/middleware"
)

// PredictionController handles delay prediction endpoints.
type PredictionController struct {
	getUseCase *prediction.GetPredictionsUseCase
}

// NewPredictionController creates a new prediction controller instance.
func NewPredictionController(getUseCase *prediction.GetPredictionsUseCase) *PredictionController {
	return &PredictionController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /projects/:projectId/predictions requests.
// A refresh=true query parameter bypasses the cached forecast.
func (c *PredictionController) Get(ctx *gin.Context) {
	if _, ok := middleware.GetEngineerIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Engineer not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}

	input := prediction.GetPredictionsInput{
		ProjectID:    projectID,
		ForceRefresh: ctx.Query("refresh") == "true",
	}

	output, oracleErr := c.getUseCase.Execute(ctx.Request.Context(), input)
	if oracleErr != nil {
		ctx.JSON(c.getStatusCodeForOracleError(oracleErr.Code), dto.ErrorResponse{
			Error: oracleErr.Message,
			Code:  oracleErr.Code,
		})
		return
	}

	response := dto.ToPredictionListResponse(output.Predictions, output.FromCache, output.GeneratedAt)
	ctx.JSON(http.StatusOK, response)
}

// getStatusCodeForOracleError maps oracle error codes to HTTP status codes.
func (c *PredictionController) getStatusCodeForOracleError(code string) int {
	switch code {
	case prediction.ErrCodeOracleRateLimited:
		return http.StatusTooManyRequests
	case prediction.ErrCodeOracleTimeout:
		return http.StatusGatewayTimeout
	case prediction.ErrCodeOracleUnavailable:
		return http.StatusServiceUnavailable
	case prediction.ErrCodeOracleAuthError, prediction.ErrCodeOracleParseError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
