package response

const (
	MessageSuccess = "success"

	DefaultErrorMessage     = "internal server error"
	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404
)
