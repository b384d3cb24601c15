package handler

import (
	inventoryapp "github.com/aims/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// CategoryService is the application service behind the category endpoints
type CategoryService interface {
	resourceService[inventoryapp.CategoryRequest, inventoryapp.CategoryResponse]
}

// CategoryHandler handles category-related API endpoints
type CategoryHandler struct {
	resource[inventoryapp.CategoryRequest, inventoryapp.CategoryResponse]
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(service CategoryService) *CategoryHandler {
	return &CategoryHandler{resource: newResource[inventoryapp.CategoryRequest, inventoryapp.CategoryResponse](service, "Category")}
}

// CategoryMutationResponse is the body of a category create or update
// @Description Message plus the stored category
type CategoryMutationResponse struct {
	Success  bool                          `json:"success" example:"true"`
	Message  string                        `json:"message" example:"Category created successfully!"`
	Category inventoryapp.CategoryResponse `json:"category"`
}

// List godoc
// @ID           listCategories
// @Summary      List categories
// @Description  Search, sort and paginate categories. Search matches name and description.
// @Tags         categories
// @Produce      json
// @Param        searchtext     query string false "Case-insensitive search text"
// @Param        sort_field     query string false "name, description, created_at or updated_at" default(name)
// @Param        sort_direction query string false "asc or desc" default(asc)
// @Param        per_page       query int    false "Page size (max 100)" default(5)
// @Param        page           query int    false "Page number" default(1)
// @Success      200 {object} ListResponse[inventoryapp.CategoryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	h.list(c)
}

// Search godoc
// @ID           searchCategories
// @Summary      List categories with options in the body
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        page    query int                 false "Page number, used when the body has none"
// @Param        request body  support.ListRequest false "List options"
// @Success      200 {object} ListResponse[inventoryapp.CategoryResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /categories/list [post]
func (h *CategoryHandler) Search(c *gin.Context) {
	h.list(c)
}

// Get godoc
// @ID           getCategory
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} inventoryapp.CategoryResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	h.show(c)
}

// Create godoc
// @ID           createCategory
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.CategoryRequest true "Category"
// @Success      201 {object} CategoryMutationResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	h.create(c)
}

// Update godoc
// @ID           updateCategory
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id      path string                     true "Category ID" format(uuid)
// @Param        request body inventoryapp.CategoryRequest true "Category"
// @Success      200 {object} CategoryMutationResponse
// @Failure      400 {object} CategoryMutationResponse "Write failed, body holds the unsaved state"
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	h.update(c)
}

// Delete godoc
// @ID           deleteCategory
// @Summary      Delete a category
// @Description  Rejected with 409 while any asset is still in the category.
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	h.destroy(c)
}
