package response

import (
	"errors"

	"github.com/Boikano11/exercise-tracker/internal"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

func BadRequest(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

func NotFound(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

func InternalError(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

// FromError maps any error to the body and status the caller should write.
// Unrecognized errors become a generic 500 so backend detail never leaks.
func FromError(err error) (int, ErrorBody) {
	var appErr *internal.AppError
	if errors.As(err, &appErr) {
		return appErr.Status, ErrorBody{Error: appErr.Message}
	}
	return 500, InternalError("Internal server error")
}
