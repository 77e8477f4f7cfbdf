package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
	"github.com/mfigueiredo/cursos-backend/internal/service/catalog"
)

// cursoService defines the minimal interface needed by CursoHandler.
type cursoService interface {
	Create(ctx context.Context, c *domain.Curso) (*domain.Curso, error)
	Update(ctx context.Context, c *domain.Curso) (*domain.Curso, error)
	PartialUpdate(ctx context.Context, patch catalog.Patch[domain.Curso]) (*domain.Curso, error)
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Curso, error)
	Count(ctx context.Context) (int64, error)
	FindOne(ctx context.Context, id int64) (*domain.Curso, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	FindByArea(ctx context.Context, areaID int64) ([]domain.Curso, error)
	FindWithoutArea(ctx context.Context) ([]domain.Curso, error)
}

// CursoHandler serves the /api/cursos resource.
type CursoHandler struct {
	svc cursoService
	log *slog.Logger
}

// NewCursoHandler creates a CursoHandler.
func NewCursoHandler(svc cursoService, logger *slog.Logger) *CursoHandler {
	return &CursoHandler{svc: svc, log: logger.With("handler", "curso")}
}

// Create handles POST /api/cursos.
func (h *CursoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CursoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.ID != nil {
		writeError(w, http.StatusBadRequest, "a new curso cannot already have an id")
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

	w.Header().Set("Location", fmt.Sprintf("/api/cursos/%d", *created.ID))
	writeJSON(w, http.StatusCreated, toCursoDTO(created))
}

// Update handles PUT /api/cursos/{id}.
func (h *CursoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var dto CursoDTO
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

	writeJSON(w, http.StatusOK, toCursoDTO(updated))
}

// PartialUpdate handles PATCH /api/cursos/{id} with merge-patch semantics.
func (h *CursoHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var dto CursoPatchDTO
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

	writeJSON(w, http.StatusOK, toCursoDTO(patched))
}

// List handles GET /api/cursos with pagination headers. The
// filter=area-is-null query parameter switches to an unpaginated listing
// of cursos with no area.
func (h *CursoHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("filter") == "area-is-null" {
		cursos, err := h.svc.FindWithoutArea(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toCursoDTOs(cursos))
		return
	}

	page := parsePageRequest(r)

	cursos, err := h.svc.FindAll(r.Context(), page)
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
	writeJSON(w, http.StatusOK, toCursoDTOs(cursos))
}

// Get handles GET /api/cursos/{id}.
func (h *CursoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.FindOne(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCursoDTO(c))
}

// ListByArea handles GET /api/areas/{id}/cursos.
func (h *CursoHandler) ListByArea(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	cursos, err := h.svc.FindByArea(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCursoDTOs(cursos))
}

// Delete handles DELETE /api/cursos/{id}.
func (h *CursoHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *CursoHandler) exists(w http.ResponseWriter, r *http.Request, id int64) bool {
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
