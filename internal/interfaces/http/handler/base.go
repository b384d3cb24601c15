package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/aims/backend/internal/application/support"
	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/domain/shared/validation"
	"github.com/aims/backend/internal/infrastructure/logger"
	"github.com/aims/backend/internal/interfaces/http/dto"
	"github.com/aims/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(logger.RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(middleware.RequestIDHeader)
}

// getUserID extracts the caller's user ID from JWT claims
func getUserID(c *gin.Context) (uuid.UUID, error) {
	userID := middleware.GetJWTUserID(c)
	if userID == "" {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return uuid.Parse(userID)
}

// Success sends a 200 response wrapping data
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, code, message string) {
	h.Error(c, http.StatusBadRequest, code, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// ValidationError sends a 422 response listing every failed field
func (h *BaseHandler) ValidationError(c *gin.Context, message string, details []dto.ValidationDetail) {
	c.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(message, getRequestID(c), details))
}

// HandleError converts service errors to HTTP responses. Field validation
// failures become 422 and domain errors take the status of their code.
// Anything else is logged and answered with 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	var verr *validation.Error
	if errors.As(err, &verr) {
		h.ValidationError(c, verr.FirstMessage(), validationDetails(verr))
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	logger.FromContext(c.Request.Context()).Error("Unhandled error", zap.Error(err))
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
}

func validationDetails(verr *validation.Error) []dto.ValidationDetail {
	names := verr.Names()
	details := make([]dto.ValidationDetail, 0, len(names))
	for _, name := range names {
		details = append(details, dto.ValidationDetail{Field: name, Message: verr.Fields[name]})
	}
	return details
}

// bindJSON decodes the body into req and writes the error response when it
// cannot. An empty body leaves req zero-valued so missing fields surface as
// validation errors rather than a parse error.
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	_, ok := h.bindBody(c, req)
	return ok
}

// bindBody is bindJSON that also returns the top-level keys the body carried.
func (h *BaseHandler) bindBody(c *gin.Context, req any) ([]string, bool) {
	var body []byte
	if c.Request.Body != nil {
		var err error
		if body, err = io.ReadAll(c.Request.Body); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size")
				return nil, false
			}
			h.BadRequest(c, dto.ErrCodeInvalidJSON, "Unable to read request body")
			return nil, false
		}
	}

	var err error
	if len(bytes.TrimSpace(body)) == 0 {
		err = binding.Validator.ValidateStruct(req)
	} else {
		err = binding.JSON.BindBody(body, req)
	}
	if err == nil {
		return bodyKeys(body), true
	}
	if details, ok := middleware.BindingErrorDetails(err); ok {
		h.ValidationError(c, details[0].Message, details)
		return nil, false
	}
	if field, ok := mistypedField(err, body, req); ok {
		verr := validation.NewFieldError(field.name, field.message())
		h.ValidationError(c, verr.FirstMessage(), validationDetails(verr))
		return nil, false
	}
	h.BadRequest(c, dto.ErrCodeInvalidJSON, "Malformed JSON request body")
	return nil, false
}

func bodyKeys(body []byte) []string {
	var fields map[string]json.RawMessage
	if json.Unmarshal(body, &fields) != nil {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// bindList reads list options from the query string, overlaid by the JSON
// body on POST. Page and other options missing from the body fall back to the query.
func (h *BaseHandler) bindList(c *gin.Context) (support.ListRequest, bool) {
	var req support.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, dto.ErrCodeInvalidInput, "Invalid list parameters")
		return req, false
	}
	if c.Request.Method != http.MethodPost {
		return req, true
	}

	var body support.ListRequest
	if !h.bindJSON(c, &body) {
		return req, false
	}
	if body.SearchText != "" {
		req.SearchText = body.SearchText
	}
	if body.SortField != "" {
		req.SortField = body.SortField
	}
	if body.SortDirection != "" {
		req.SortDirection = body.SortDirection
	}
	if body.PerPage != 0 {
		req.PerPage = body.PerPage
	}
	if body.Page != 0 {
		req.Page = body.Page
	}
	return req, true
}

// parseID reads the :id path parameter
func (h *BaseHandler) parseID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, dto.ErrCodeInvalidID, "Invalid "+entity+" ID")
		return uuid.Nil, false
	}
	return id, true
}
