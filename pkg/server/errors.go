package server

import (
	"errors"
	"net/http"
	"time"

	relayerrors "github.com/foodsearch/relay/pkg/errors"
	"github.com/foodsearch/relay/pkg/serializer"
	"github.com/google/uuid"
)

// HTTPStatusFromCode maps a structured error code to an HTTP status.
func HTTPStatusFromCode(code relayerrors.ErrorCode) int {
	return code.HTTPStatus()
}

// retryableFromCode reports whether a client may retry after this error.
func retryableFromCode(code relayerrors.ErrorCode) bool {
	switch code {
	case relayerrors.ErrCodeTimeout,
		relayerrors.ErrCodeUnavailable,
		relayerrors.ErrCodeRateLimitExceeded,
		relayerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// WriteError writes error response
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code relayerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes err as an error response. A StructuredError
// supplies the code, message and context; anything else is reported as an
// internal error with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	var se *relayerrors.StructuredError
	if errors.As(err, &se) {
		merged := mergeDetails(se.Context, details)
		if se.Cause != nil {
			merged = mergeDetails(merged, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), merged)
		return
	}

	merged := mergeDetails(details, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, relayerrors.ErrCodeInternal, fallbackMessage,
		retryableFromCode(relayerrors.ErrCodeInternal), merged)
}

// mergeDetails returns the union of a and b, with b winning on conflicts.
// Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
