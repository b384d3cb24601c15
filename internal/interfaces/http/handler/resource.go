package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aims/backend/internal/application/support"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/logger"
	"github.com/aims/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// resourceService is the CRUD surface every entity service exposes
type resourceService[Req, Resp any] interface {
	List(ctx context.Context, req support.ListRequest) (shared.Paginated[Resp], error)
	GetByID(ctx context.Context, id uuid.UUID) (*Resp, error)
	Create(ctx context.Context, req Req) (*Resp, error)
	Update(ctx context.Context, id uuid.UUID, req Req) (*Resp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// keyRecorder is implemented by requests that distinguish absent fields from null ones
type keyRecorder interface {
	SetKeys(keys []string)
}

// resource implements the list, show, create, update and delete endpoints
// of one entity. label names the entity in messages, key is the JSON key
// the record is returned under.
type resource[Req, Resp any] struct {
	BaseHandler
	service resourceService[Req, Resp]
	label   string
	key     string
}

func newResource[Req, Resp any](service resourceService[Req, Resp], label string) resource[Req, Resp] {
	return resource[Req, Resp]{
		service: service,
		label:   label,
		key:     strings.ReplaceAll(strings.ToLower(label), " ", "_"),
	}
}

func (r *resource[Req, Resp]) list(c *gin.Context) {
	req, ok := r.bindList(c)
	if !ok {
		return
	}
	page, err := r.service.List(c.Request.Context(), req)
	if err != nil {
		r.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(page))
}

func (r *resource[Req, Resp]) show(c *gin.Context) {
	id, ok := r.parseID(c, r.label)
	if !ok {
		return
	}
	record, err := r.service.GetByID(c.Request.Context(), id)
	if err != nil {
		r.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (r *resource[Req, Resp]) create(c *gin.Context) {
	var req Req
	if !r.bindJSON(c, &req) {
		return
	}
	record, err := r.service.Create(c.Request.Context(), req)
	if err != nil {
		r.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewMutationResponse(r.label+" created successfully!", r.key, record))
}

func (r *resource[Req, Resp]) update(c *gin.Context) {
	id, ok := r.parseID(c, r.label)
	if !ok {
		return
	}
	var req Req
	keys, ok := r.bindBody(c, &req)
	if !ok {
		return
	}
	if p, ok := any(&req).(keyRecorder); ok {
		p.SetKeys(keys)
	}
	record, err := r.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if isCode(err, shared.ErrUpdateFailed) && record != nil {
			_ = c.Error(err)
			logger.FromContext(c.Request.Context()).Error("Update failed",
				zap.String("entity", r.key),
				zap.String("id", id.String()),
				zap.Error(err),
			)
			c.JSON(http.StatusBadRequest, dto.NewUpdateFailedResponse(err.Error(), r.key, record))
			return
		}
		r.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMutationResponse(r.label+" updated successfully!", r.key, record))
}

func (r *resource[Req, Resp]) destroy(c *gin.Context) {
	id, ok := r.parseID(c, r.label)
	if !ok {
		return
	}
	if err := r.service.Delete(c.Request.Context(), id); err != nil {
		if isCode(err, shared.ErrDeleteFailed) {
			logger.FromContext(c.Request.Context()).Error("Delete failed",
				zap.String("entity", r.key),
				zap.String("id", id.String()),
				zap.Error(errors.Unwrap(err)),
			)
		}
		r.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse(r.label+" deleted successfully."))
}

// handleError names the entity in not-found responses
func (r *resource[Req, Resp]) handleError(c *gin.Context, err error) {
	if isCode(err, shared.ErrNotFound) {
		_ = c.Error(err)
		r.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, r.label+" not found")
		return
	}
	r.HandleError(c, err)
}

// isCode reports whether the outermost domain error in err carries target's code
func isCode(err error, target *shared.DomainError) bool {
	var de *shared.DomainError
	return errors.As(err, &de) && de.Code == target.Code
}
