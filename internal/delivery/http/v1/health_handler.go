package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(root *gin.Engine, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	root.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Pings the database; 503 when it is unreachable.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status, err := h.healthUC.Check(c.Request.Context())
	if err != nil {
		logger.Log.Warn("health check failed", "error", err)
		response.JSON(c, http.StatusServiceUnavailable, status)
		return
	}
	response.JSON(c, http.StatusOK, status)
}
