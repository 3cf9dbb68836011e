package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"notes-to-tasks/internal/model"
)

// processSuggestReq binds and validates the text suggestion request body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processFeedbackReq binds and validates the feedback request body.
func (h *handler) processFeedbackReq(c *gin.Context) (feedbackReq, error) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processImageReq reads the multipart image field and checks that it is an image.
func (h *handler) processImageReq(c *gin.Context) ([]byte, string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBytes+1<<20)

	fh, err := c.FormFile(imageFormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, "", errImageTooLarge
		}
		return nil, "", errMissingImage
	}
	if fh.Size > maxImageBytes {
		return nil, "", errImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", errMissingImage
	}
	if len(data) > maxImageBytes {
		return nil, "", errImageTooLarge
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, "", errNotAnImage
	}
	return data, mime.String(), nil
}

// scopeFromRequest identifies the caller by header, falling back to the client IP.
func scopeFromRequest(c *gin.Context) model.Scope {
	sc := model.Scope{
		UserID:   c.GetHeader(headerUserID),
		Username: c.GetHeader(headerUserName),
	}
	if sc.UserID == "" {
		sc.UserID = c.ClientIP()
	}
	return sc
}
