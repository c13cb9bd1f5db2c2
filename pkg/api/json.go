package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/amoor/pkg/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("json encode failed", "err", err)
	}
}

type errResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// writeError maps err to a status code and writes it as JSON.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" && status == http.StatusInternalServerError {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errResponse{Error: errors.UserMessage(err), Code: code})
}

func statusFor(err error) int {
	switch {
	case errors.IsInput(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeMissingKey), errors.Is(err, errors.ErrCodeDuplicateKey):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
