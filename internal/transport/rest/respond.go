package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError translates domain outcomes into HTTP statuses. The soft
// not-found outcome becomes 404 without being logged; only unexpected
// failures reach the error log.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var dup *domain.DuplicateNameError
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": toFieldErrors(vErr),
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &dup):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": "name already in use",
			"name":  dup.Name,
		})
	case errors.Is(err, domain.ErrConstraintViolation):
		writeError(w, http.StatusConflict, "constraint violation")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func toFieldErrors(v *domain.ValidationError) []fieldErrorDTO {
	out := make([]fieldErrorDTO, 0, len(v.Errors))
	for _, fe := range v.Errors {
		out = append(out, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
	}
	return out
}
