package http

import (
	"github.com/gin-gonic/gin"

	"notes-to-tasks/internal/suggestion"
	"notes-to-tasks/pkg/response"
)

// Suggest godoc
// @Summary     Suggest tasks from note text
// @Description Extracts task suggestions from free-form note text. AI extraction is tried first; the keyword heuristic is the fallback.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Note text"
// @Success     200  {object} suggestResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggestions [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SuggestFromText(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestFromText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// SuggestImage godoc
// @Summary     Suggest tasks from a note photo
// @Description Extracts task suggestions from an image of a note (max 10 MiB). AI vision is tried first; OCR plus the keyword heuristic is the fallback.
// @Tags        Suggestions
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Note image"
// @Success     200   {object} suggestResp
// @Failure     400   {object} response.Resp "Bad Request"
// @Failure     413   {object} response.Resp "Payload Too Large"
// @Failure     415   {object} response.Resp "Unsupported Media Type"
// @Failure     429   {object} response.Resp "Too Many Requests"
// @Failure     500   {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggestions/image [POST]
func (h *handler) SuggestImage(c *gin.Context) {
	ctx := c.Request.Context()

	image, mimeType, err := h.processImageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SuggestFromImage(ctx, scopeFromRequest(c), suggestion.SuggestImageInput{
		Image:    image,
		MimeType: mimeType,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestFromImage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// Feedback godoc
// @Summary     Submit feedback on suggestions
// @Description Records whether each suggestion was accurate.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body feedbackReq true "Feedback items"
// @Success     200  {object} feedbackResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggestions/feedback [POST]
func (h *handler) Feedback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFeedbackReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SubmitFeedback(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitFeedback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFeedbackResp(output))
}
