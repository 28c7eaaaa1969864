package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// CollectionHandler serves a multi-row resource keyed by :id
type CollectionHandler[T any] struct {
	uc domain.CollectionUsecase[T]
}

// NewCollectionHandler registers list/get on reads and create/update/delete on writes
func NewCollectionHandler[T any](
	reads *gin.RouterGroup,
	writes *gin.RouterGroup,
	path string,
	uc domain.CollectionUsecase[T],
) *CollectionHandler[T] {
	handler := &CollectionHandler[T]{uc: uc}

	reads.GET(path, handler.List)
	reads.GET(path+"/:id", handler.Get)
	writes.POST(path, handler.Create)
	writes.PUT(path+"/:id", handler.Update)
	writes.DELETE(path+"/:id", handler.Delete)
	return handler
}

// List godoc
// @Summary      List a collection
// @Tags         collections
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/formacoes [get]
// @Router       /api/softskills [get]
// @Router       /api/hardskills [get]
// @Router       /api/projetos [get]
func (h *CollectionHandler[T]) List(c *gin.Context) {
	rows, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// Get godoc
// @Summary      Get a row by id
// @Tags         collections
// @Produce      json
// @Param        id   path      int  true  "Row ID"
// @Success      200  {object}  object
// @Failure      404  {object}  response.MessageBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/formacoes/{id} [get]
// @Router       /api/softskills/{id} [get]
// @Router       /api/hardskills/{id} [get]
// @Router       /api/projetos/{id} [get]
func (h *CollectionHandler[T]) Get(c *gin.Context) {
	v, err := h.uc.Get(c.Request.Context(), parseID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, v)
}

// Create godoc
// @Summary      Add a row
// @Description  Stores the body and echoes it with the generated id.
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Row fields"
// @Success      200   {object}  object
// @Failure      400   {object}  response.ErrorBody
// @Failure      500   {object}  response.ErrorBody
// @Router       /api/formacoes [post]
// @Router       /api/softskills [post]
// @Router       /api/hardskills [post]
// @Router       /api/projetos [post]
func (h *CollectionHandler[T]) Create(c *gin.Context) {
	body, ok := bindBody[T](c)
	if !ok {
		return
	}

	v, err := h.uc.Create(c.Request.Context(), body)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, v)
}

// Update godoc
// @Summary      Update a row
// @Description  Overwrites every column of the row; 404 when the id matches no row.
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        id    path      int     true  "Row ID"
// @Param        body  body      object  true  "Row fields"
// @Success      200   {object}  object
// @Failure      400   {object}  response.ErrorBody
// @Failure      404   {object}  response.MessageBody
// @Failure      500   {object}  response.ErrorBody
// @Router       /api/formacoes/{id} [put]
// @Router       /api/softskills/{id} [put]
// @Router       /api/hardskills/{id} [put]
// @Router       /api/projetos/{id} [put]
func (h *CollectionHandler[T]) Update(c *gin.Context) {
	body, ok := bindBody[T](c)
	if !ok {
		return
	}

	v, err := h.uc.Update(c.Request.Context(), parseID(c), body)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, v)
}

// Delete godoc
// @Summary      Delete a row
// @Description  Answers 204 without a body, or 404 when the id matches no row.
// @Tags         collections
// @Param        id  path  int  true  "Row ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.MessageBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/formacoes/{id} [delete]
// @Router       /api/softskills/{id} [delete]
// @Router       /api/hardskills/{id} [delete]
// @Router       /api/projetos/{id} [delete]
func (h *CollectionHandler[T]) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), parseID(c)); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c, http.StatusNoContent)
}
