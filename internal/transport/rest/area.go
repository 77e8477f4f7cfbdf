package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
	"github.com/mfigueiredo/cursos-backend/internal/service/catalog"
)

// areaService defines the minimal interface needed by AreaHandler.
type areaService interface {
	Create(ctx context.Context, a *domain.Area) (*domain.Area, error)
	Update(ctx context.Context, a *domain.Area) (*domain.Area, error)
	PartialUpdate(ctx context.Context, patch catalog.Patch[domain.Area]) (*domain.Area, error)
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Area, error)
	Count(ctx context.Context) (int64, error)
	FindOne(ctx context.Context, id int64) (*domain.Area, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// AreaHandler serves the /api/areas resource.
type AreaHandler struct {
	svc areaService
	log *slog.Logger
}

// NewAreaHandler creates an AreaHandler.
func NewAreaHandler(svc areaService, logger *slog.Logger) *AreaHandler {
	return &AreaHandler{svc: svc, log: logger.With("handler", "area")}
}

// Create handles POST /api/areas.
func (h *AreaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto AreaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.ID != nil {
		writeError(w, http.StatusBadRequest, "a new area cannot already have an id")
		return
	}
	if err := dto.validate(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), dto.toDomain())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/areas/%d", *created.ID))
	writeJSON(w, http.StatusCreated, toAreaDTO(created))
}

// Update handles PUT /api/areas/{id}.
func (h *AreaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var dto AreaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.ID == nil {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if *dto.ID != id {
		writeError(w, http.StatusBadRequest, "id in body does not match path")
		return
	}
	if err := dto.validate(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if !h.exists(w, r, id) {
		return
	}

	updated, err := h.svc.Update(r.Context(), dto.toDomain())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAreaDTO(updated))
}

// PartialUpdate handles PATCH /api/areas/{id} with merge-patch semantics.
func (h *AreaHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var dto AreaPatchDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.ID != nil && *dto.ID != id {
		writeError(w, http.StatusBadRequest, "id in body does not match path")
		return
	}
	if err := dto.validate(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if !h.exists(w, r, id) {
		return
	}

	patched, err := h.svc.PartialUpdate(r.Context(), dto.toDomain(id))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAreaDTO(patched))
}

// List handles GET /api/areas with pagination headers.
func (h *AreaHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePageRequest(r)

	areas, err := h.svc.FindAll(r.Context(), page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	total, err := h.svc.Count(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writePaginationHeaders(w, r, page, total)
	writeJSON(w, http.StatusOK, toAreaDTOs(areas))
}

// Get handles GET /api/areas/{id}.
func (h *AreaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	area, err := h.svc.FindOne(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAreaDTO(area))
}

// Delete handles DELETE /api/areas/{id}.
func (h *AreaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// exists runs the boundary's pre-check and writes 404 when the target is
// missing. The service's own "no result" outcome remains the fallback.
func (h *AreaHandler) exists(w http.ResponseWriter, r *http.Request, id int64) bool {
	found, err := h.svc.Exists(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return false
	}
	if !found {
		writeError(w, http.StatusNotFound, "not found")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
