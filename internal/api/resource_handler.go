package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/boardgame-api/internal/api/shared"
	"github.com/phrazzld/boardgame-api/internal/domain"
	"github.com/phrazzld/boardgame-api/internal/platform/logger"
	"github.com/phrazzld/boardgame-api/internal/store"
)

// genericErrorDetail replaces error detail outside development.
const genericErrorDetail = "Internal server error"

// ResourceService is the service contract a ResourceHandler drives.
type ResourceService[T any] interface {
	Kind() domain.Kind
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record *T) (string, error)
	Update(ctx context.Context, id string, record *T) (store.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// ResourceHandler serves the CRUD endpoints of one resource kind.
type ResourceHandler[T any] struct {
	service           ResourceService[T]
	kind              domain.Kind
	exposeErrorDetail bool
	logger            *slog.Logger
}

// NewResourceHandler creates a handler for the service's resource kind.
// exposeErrorDetail controls whether store failure messages reach clients.
func NewResourceHandler[T any](
	service ResourceService[T],
	exposeErrorDetail bool,
	logger *slog.Logger,
) *ResourceHandler[T] {
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("service cannot be nil")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil")
	}

	kind := service.Kind()
	return &ResourceHandler[T]{
		service:           service,
		kind:              kind,
		exposeErrorDetail: exposeErrorDetail,
		logger:            logger.With(slog.String("component", kind.Name+"_handler")),
	}
}

// Routes registers the collection and item endpoints on r.
func (h *ResourceHandler[T]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List returns every record of the kind.
//
// @Summary List records
// @Tags resources
// @Produce json
// @Success 200 {object} shared.Envelope
// @Failure 500 {object} shared.Envelope
// @Router /games [get]
// @Router /users [get]
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.GetAll(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "Error retrieving "+h.kind.Plural)
		return
	}

	shared.RespondWithList(w, r, h.kind.PluralTitle()+" retrieved successfully", records, len(records))
}

// Get returns a single record.
//
// @Summary Get a record
// @Tags resources
// @Produce json
// @Param id path string true "record id"
// @Success 200 {object} shared.Envelope
// @Failure 400 {object} shared.Envelope
// @Failure 404 {object} shared.Envelope
// @Failure 500 {object} shared.Envelope
// @Router /games/{id} [get]
// @Router /users/{id} [get]
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "Error retrieving "+h.kind.Name)
		return
	}
	if record == nil {
		h.respondNotFound(w, r)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, h.kind.Title()+" retrieved successfully", record)
}

// Create validates the submission and stores a new record.
//
// @Summary Create a record
// @Tags resources
// @Accept json
// @Produce json
// @Param record body object true "record fields"
// @Success 201 {object} shared.Envelope
// @Failure 400 {object} shared.Envelope
// @Failure 401 {object} shared.Envelope
// @Failure 500 {object} shared.Envelope
// @Security BearerAuth
// @Router /games [post]
// @Router /users [post]
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	record, ok := h.decodeRecord(w, r)
	if !ok {
		return
	}

	id, err := h.service.Create(r.Context(), record)
	if err != nil {
		h.respondServiceError(w, r, err, "Error creating "+h.kind.Name)
		return
	}

	h.auditLogger(r).Info("record created", slog.String("id", id))

	shared.RespondWithSuccess(w, r, http.StatusCreated,
		h.kind.Title()+" created successfully", shared.CreatedData{ID: id})
}

// Update validates the full submission and merges it into the stored record.
//
// @Summary Update a record
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "record id"
// @Param record body object true "record fields"
// @Success 200 {object} shared.Envelope
// @Failure 400 {object} shared.Envelope
// @Failure 401 {object} shared.Envelope
// @Failure 404 {object} shared.Envelope
// @Failure 500 {object} shared.Envelope
// @Security BearerAuth
// @Router /games/{id} [put]
// @Router /users/{id} [put]
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, ok := h.decodeRecord(w, r)
	if !ok {
		return
	}

	result, err := h.service.Update(r.Context(), id, record)
	if err != nil {
		h.respondServiceError(w, r, err, "Error updating "+h.kind.Name)
		return
	}
	if result.MatchedCount == 0 {
		h.respondNotFound(w, r)
		return
	}
	h.auditLogger(r).Info("record updated",
		slog.String("id", id),
		slog.Int64("modified", result.ModifiedCount))

	shared.RespondWithSuccess(w, r, http.StatusOK, h.kind.Title()+" updated successfully",
		shared.UpdatedData{ID: id, ModifiedCount: result.ModifiedCount})
}

// Delete removes a record.
//
// @Summary Delete a record
// @Tags resources
// @Produce json
// @Param id path string true "record id"
// @Success 200 {object} shared.Envelope
// @Failure 400 {object} shared.Envelope
// @Failure 401 {object} shared.Envelope
// @Failure 404 {object} shared.Envelope
// @Failure 500 {object} shared.Envelope
// @Security BearerAuth
// @Router /games/{id} [delete]
// @Router /users/{id} [delete]
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "Error deleting "+h.kind.Name)
		return
	}
	if deleted == 0 {
		h.respondNotFound(w, r)
		return
	}
	h.auditLogger(r).Info("record deleted", slog.String("id", id))

	shared.RespondWithSuccess(w, r, http.StatusOK, h.kind.Title()+" deleted successfully",
		shared.DeletedData{ID: id, DeletedCount: deleted})
}

// decodeRecord turns the request body into a typed record, writing a 400
// response and returning false when it cannot.
func (h *ResourceHandler[T]) decodeRecord(w http.ResponseWriter, r *http.Request) (*T, bool) {
	sub, err := shared.DecodeSubmission(w, r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return nil, false
	}

	if err := h.kind.Validate(sub); err != nil {
		h.respondInvalid(w, r, err)
		return nil, false
	}

	record, err := domain.Decode[T](sub)
	if err != nil {
		h.respondInvalid(w, r, err)
		return nil, false
	}
	return record, true
}

func (h *ResourceHandler[T]) respondInvalid(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		h.respondServiceError(w, r, err, "Invalid "+h.kind.Name)
		return
	}

	var opts []shared.ResponseOption
	if len(verr.MissingFields) > 0 {
		opts = append(opts, shared.WithMissingFields(verr.MissingFields))
	}
	if verr.Detail != "" && h.exposeErrorDetail {
		opts = append(opts, shared.WithDetail(verr.Detail))
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, verr.Message, err, opts...)
}

// auditLogger returns the request logger for write paths, tagged with the
// authenticated subject when the auth gate supplied one.
func (h *ResourceHandler[T]) auditLogger(r *http.Request) *slog.Logger {
	log := logger.FromContextOrDefault(r.Context(), h.logger).With(slog.String("kind", h.kind.Name))
	if subject, ok := shared.GetSubject(r.Context()); ok {
		log = log.With(slog.String("subject", subject))
	}
	return log
}

func (h *ResourceHandler[T]) respondNotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, h.kind.Title()+" not found")
}

// respondServiceError maps a service failure to a response. Malformed ids
// and records that vanished mid-request get their own status; anything else
// is a 500 carrying failureMessage.
func (h *ResourceHandler[T]) respondServiceError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	failureMessage string,
) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Invalid "+h.kind.Name+" ID format", err)
	case errors.Is(err, store.ErrNotFound):
		h.respondNotFound(w, r)
	default:
		detail := genericErrorDetail
		if h.exposeErrorDetail {
			detail = err.Error()
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), failureMessage, err,
			shared.WithDetail(detail))
	}
}
