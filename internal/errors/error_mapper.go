package errors

import (
	"net/http"
	"strings"
)

// MapError converts a technical error into a user-friendly AppError.
// Unexpected errors become 500s whose body carries MsgInternalError only;
// the technical message is for logs, never the client.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case strings.Contains(technicalMessage, "GIS source"):
		// Scrape-source outages are unexpected failures like any other; only
		// the user message distinguishes them.
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgServiceUnavailable,
			Code:             ErrCodeServiceUnavailable,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "not found"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      technicalMessage,
			Code:             ErrCodeNotFound,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeInternal,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
