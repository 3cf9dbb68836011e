package gvision

import "context"

// IVision transcribes photographed documents.
// Implementations are safe for concurrent use.
type IVision interface {
	// Recognize returns the text found in image (PNG, JPEG, GIF, WebP...).
	Recognize(ctx context.Context, image []byte) (Result, error)
}
