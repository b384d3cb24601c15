package handler

import (
	identityapp "github.com/aims/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// UserService is the application service behind the user endpoints
type UserService interface {
	resourceService[identityapp.UserRequest, identityapp.UserResponse]
}

// UserHandler handles user-related API endpoints
type UserHandler struct {
	resource[identityapp.UserRequest, identityapp.UserResponse]
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{resource: newResource[identityapp.UserRequest, identityapp.UserResponse](service, "User")}
}

// UserMutationResponse is the body of a user create or update
type UserMutationResponse struct {
	Success bool                     `json:"success" example:"true"`
	Message string                   `json:"message" example:"User created successfully!"`
	User    identityapp.UserResponse `json:"user"`
}

// List godoc
// @ID           listUsers
// @Summary      List users
// @Description  Search matches name, email and role.
// @Tags         users
// @Produce      json
// @Param        searchtext     query string false "Case-insensitive search text"
// @Param        sort_field     query string false "Sort field" default(name)
// @Param        sort_direction query string false "asc or desc" default(asc)
// @Param        per_page       query int    false "Page size (max 100)" default(5)
// @Param        page           query int    false "Page number" default(1)
// @Success      200 {object} ListResponse[identityapp.UserResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	h.list(c)
}

// Search godoc
// @ID           searchUsers
// @Summary      List users with options in the body
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        page    query int                 false "Page number, used when the body has none"
// @Param        request body  support.ListRequest false "List options"
// @Success      200 {object} ListResponse[identityapp.UserResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/list [post]
func (h *UserHandler) Search(c *gin.Context) {
	h.list(c)
}

// Get godoc
// @ID           getUser
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} identityapp.UserResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	h.show(c)
}

// Create godoc
// @ID           createUser
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body identityapp.UserRequest true "User"
// @Success      201 {object} UserMutationResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	h.create(c)
}

// Update godoc
// @ID           updateUser
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path string true "User ID" format(uuid)
// @Param        request body identityapp.UserRequest true "User"
// @Success      200 {object} UserMutationResponse
// @Failure      400 {object} UserMutationResponse "Write failed, body holds the unsaved state"
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	h.update(c)
}

// Delete godoc
// @ID           deleteUser
// @Summary      Delete a user
// @Description  Rejected with 409 while any asset is still assigned to the user.
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	h.destroy(c)
}
