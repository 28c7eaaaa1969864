package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/delivery/http/web"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

// NewPortfolioHandler registers the landing page and its JSON twin
func NewPortfolioHandler(root *gin.Engine, api *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	root.GET("/", handler.Home)
	api.GET("/portfolio", handler.GetPortfolio)
}

// Home godoc
// @Summary      Landing page
// @Description  Renders the HTML page from every resource.
// @Tags         portfolio
// @Produce      html
// @Success      200  {string}  string  "HTML page"
// @Failure      500  {object}  response.ErrorBody
// @Router       / [get]
func (h *PortfolioHandler) Home(c *gin.Context) {
	p, err := h.portfolioUC.GetPortfolio(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.HTML(http.StatusOK, web.IndexTemplate, p)
}

// GetPortfolio godoc
// @Summary      Aggregated portfolio
// @Description  Returns every resource in one document.
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  domain.Portfolio
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	p, err := h.portfolioUC.GetPortfolio(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}
