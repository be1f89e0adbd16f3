package http

import (
	"github.com/gin-gonic/gin"

	"github.com/gauravmalhotra04/raiden-ai/pkg/response"
)

// List godoc
// @Summary     List flashcards
// @Description Returns every saved flashcard, newest first.
// @Tags        Flashcards
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/flashcards [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	cards, err := h.uc.List(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(cards))
}

// Create godoc
// @Summary     Create a flashcard
// @Tags        Flashcards
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Flashcard data"
// @Success     201  {object} flashcardResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/flashcards [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	card, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newFlashcardResp(card))
}

// Delete godoc
// @Summary     Delete a flashcard
// @Description Removes the flashcard and returns it.
// @Tags        Flashcards
// @Produce     json
// @Param       id path string true "Flashcard ID"
// @Success     200 {object} flashcardResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/flashcards/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	card, err := h.uc.Delete(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newFlashcardResp(card))
}
