package response

// Response messages and codes.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
)

// DateTimeFormat is the layout of the DateTime marshal type.
const DateTimeFormat = "2006-01-02 15:04"
