package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// LoginPath is where signed-out users are sent.
	LoginPath = "/auth/login"
)
