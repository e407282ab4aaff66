package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/isharehowlabs/yahudim.app/pkg/apperror"
	"github.com/isharehowlabs/yahudim.app/pkg/logger"
)

// ErrInvalidBody is returned by DecodeJSON for a body that is not a JSON object of the expected shape.
var ErrInvalidBody = errors.New("invalid request body")

// RespondJSON writes data as a JSON response
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Sugar.Errorf("Failed to encode response: %v", err)
	}
}

// RespondError writes {"error": message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError answers client errors with their own message. Anything
// else is logged and answered with a generic 500 carrying fallback.
func RespondServiceError(w http.ResponseWriter, err error, fallback string) {
	status := apperror.StatusCode(err)
	if status == http.StatusInternalServerError {
		logger.Sugar.Errorf("%s: %v", fallback, err)
		RespondError(w, status, fallback)
		return
	}
	RespondError(w, status, err.Error())
}

// DecodeJSON decodes the request body into v. An empty body leaves v untouched.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return ErrInvalidBody
}
