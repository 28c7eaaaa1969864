package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// SingletonHandler serves a resource that holds at most one row
type SingletonHandler[T any] struct {
	uc domain.SingletonUsecase[T]
	// deletedMessage is returned by DELETE; empty means DELETE is not routed
	deletedMessage string
}

// NewSingletonHandler registers GET/POST/PUT on path. Writes go through the
// writes group so they pick up its middleware. A non-empty deletedMessage
// also routes DELETE.
func NewSingletonHandler[T any](
	reads *gin.RouterGroup,
	writes *gin.RouterGroup,
	path string,
	uc domain.SingletonUsecase[T],
	deletedMessage string,
) *SingletonHandler[T] {
	handler := &SingletonHandler[T]{
		uc:             uc,
		deletedMessage: deletedMessage,
	}

	reads.GET(path, handler.Get)
	writes.POST(path, handler.Create)
	writes.PUT(path, handler.Update)
	if deletedMessage != "" {
		writes.DELETE(path, handler.Delete)
	}
	return handler
}

// Get godoc
// @Summary      Get a singleton resource
// @Description  Returns the stored row, or the empty shape while the table has none.
// @Tags         singletons
// @Produce      json
// @Success      200  {object}  object
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/dados [get]
// @Router       /api/sobre [get]
// @Router       /api/contato [get]
func (h *SingletonHandler[T]) Get(c *gin.Context) {
	v, err := h.uc.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, v)
}

// Create godoc
// @Summary      Replace a singleton resource
// @Description  Deletes whatever row exists and stores the request body as the only row.
// @Tags         singletons
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Resource fields"
// @Success      200   {object}  object
// @Failure      400   {object}  response.ErrorBody
// @Failure      500   {object}  response.ErrorBody
// @Router       /api/dados [post]
// @Router       /api/sobre [post]
// @Router       /api/contato [post]
func (h *SingletonHandler[T]) Create(c *gin.Context) {
	body, ok := bindBody[T](c)
	if !ok {
		return
	}

	v, err := h.uc.Replace(c.Request.Context(), body)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, v)
}

// Update godoc
// @Summary      Update a singleton resource
// @Description  Writes the body over the existing row and echoes it with the number of changed rows; changes is 0 when there is none.
// @Tags         singletons
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Resource fields"
// @Success      200   {object}  object
// @Failure      400   {object}  response.ErrorBody
// @Failure      500   {object}  response.ErrorBody
// @Router       /api/dados [put]
// @Router       /api/sobre [put]
// @Router       /api/contato [put]
func (h *SingletonHandler[T]) Update(c *gin.Context) {
	body, ok := bindBody[T](c)
	if !ok {
		return
	}

	res, err := h.uc.Update(c.Request.Context(), body)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Delete godoc
// @Summary      Delete the contact
// @Description  Removes every row and always confirms, even when the table was empty.
// @Tags         singletons
// @Produce      json
// @Success      200  {object}  response.MessageBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/contato [delete]
func (h *SingletonHandler[T]) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, h.deletedMessage)
}

// bindBody decodes the JSON body into a new T. Fields are not validated;
// an empty body decodes as {} so every column is written as NULL.
func bindBody[T any](c *gin.Context) (*T, bool) {
	var v T
	if err := c.ShouldBindJSON(&v); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.BadRequest(err.Error()))
		return nil, false
	}
	return &v, true
}

// parseID reads the :id parameter. Ids are generated from 1, so anything
// that is not a positive integer maps to 0 and matches no row.
func parseID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0
	}
	return id
}
