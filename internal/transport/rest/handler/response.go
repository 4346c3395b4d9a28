package handler

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/katiamach/xray-contours-api/internal/logger"
)

type errorResponse struct {
	Code    int
	Message string
}

// Respond is a function to send http responses.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error(fmt.Errorf("failed to marshal response: %w", err))

		// errorResponse holds only an int and a string, it always marshals
		code = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{
			Code:    code,
			Message: fmt.Sprintf("can't marshal the given payload: %v", err),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(body); err != nil {
		logger.Error(fmt.Errorf("failed to write response: %w", err))
	}
}

// RespondErr is a function to make http error responses.
func respondErr(w http.ResponseWriter, code int, err error) {
	respErr := errorResponse{
		Code:    code,
		Message: err.Error(),
	}

	respond(w, code, respErr)
}
