package http

const (
	maxImageBytes   = 10 << 20
	maxTextLength   = 20000
	imageFormField  = "image"
	headerUserID    = "X-User-ID"
	headerUserName  = "X-User-Name"
	maxFeedbackSize = 100
)
