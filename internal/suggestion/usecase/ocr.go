package usecase

import (
	"context"

	"notes-to-tasks/internal/model"
	"notes-to-tasks/internal/suggestion"
	"notes-to-tasks/pkg/gvision"
)

type visionOCR struct {
	client gvision.IVision
}

// NewVisionOCR adapts a Cloud Vision client to suggestion.OCR.
func NewVisionOCR(client gvision.IVision) suggestion.OCR {
	return &visionOCR{client: client}
}

func (o *visionOCR) Recognize(ctx context.Context, image []byte) (model.OCRResult, error) {
	res, err := o.client.Recognize(ctx, image)
	if err != nil {
		return model.OCRResult{}, err
	}
	return model.OCRResult{Text: res.Text, Confidence: res.Confidence}, nil
}
