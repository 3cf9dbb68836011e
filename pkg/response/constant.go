package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	BadRequestErrorCode     = 400
	InternalServerErrorCode = 500
)
