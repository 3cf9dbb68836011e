package usecase

const (
	DefaultFallbackDescription = "Generated based on your note context"
	FeedbackMessage            = "Feedback received. Thank you for helping us improve!"

	reasonHeuristicOnly  = "heuristic extraction requested"
	reasonOCRUnavailable = "ocr unavailable"

	defaultTag = "personal"
)
