package handler

import (
	inventoryapp "github.com/aims/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// ManufacturerService is the application service behind the manufacturer endpoints
type ManufacturerService interface {
	resourceService[inventoryapp.ManufacturerRequest, inventoryapp.ManufacturerResponse]
}

// ManufacturerHandler handles manufacturer-related API endpoints
type ManufacturerHandler struct {
	resource[inventoryapp.ManufacturerRequest, inventoryapp.ManufacturerResponse]
}

// NewManufacturerHandler creates a new ManufacturerHandler
func NewManufacturerHandler(service ManufacturerService) *ManufacturerHandler {
	return &ManufacturerHandler{resource: newResource[inventoryapp.ManufacturerRequest, inventoryapp.ManufacturerResponse](service, "Manufacturer")}
}

// ManufacturerMutationResponse is the body of a manufacturer create or update
type ManufacturerMutationResponse struct {
	Success      bool                              `json:"success" example:"true"`
	Message      string                            `json:"message" example:"Manufacturer created successfully!"`
	Manufacturer inventoryapp.ManufacturerResponse `json:"manufacturer"`
}

// List godoc
// @ID           listManufacturers
// @Summary      List manufacturers
// @Description  Search matches name, url, support url, support phone and support email.
// @Tags         manufacturers
// @Produce      json
// @Param        searchtext     query string false "Case-insensitive search text"
// @Param        sort_field     query string false "Sort field" default(name)
// @Param        sort_direction query string false "asc or desc" default(asc)
// @Param        per_page       query int    false "Page size (max 100)" default(5)
// @Param        page           query int    false "Page number" default(1)
// @Success      200 {object} ListResponse[inventoryapp.ManufacturerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturers [get]
func (h *ManufacturerHandler) List(c *gin.Context) {
	h.list(c)
}

// Search godoc
// @ID           searchManufacturers
// @Summary      List manufacturers with options in the body
// @Tags         manufacturers
// @Accept       json
// @Produce      json
// @Param        page    query int                 false "Page number, used when the body has none"
// @Param        request body  support.ListRequest false "List options"
// @Success      200 {object} ListResponse[inventoryapp.ManufacturerResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturers/list [post]
func (h *ManufacturerHandler) Search(c *gin.Context) {
	h.list(c)
}

// Get godoc
// @ID           getManufacturer
// @Summary      Get a manufacturer
// @Tags         manufacturers
// @Produce      json
// @Param        id path string true "Manufacturer ID" format(uuid)
// @Success      200 {object} inventoryapp.ManufacturerResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturers/{id} [get]
func (h *ManufacturerHandler) Get(c *gin.Context) {
	h.show(c)
}

// Create godoc
// @ID           createManufacturer
// @Summary      Create a manufacturer
// @Tags         manufacturers
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.ManufacturerRequest true "Manufacturer"
// @Success      201 {object} ManufacturerMutationResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturers [post]
func (h *ManufacturerHandler) Create(c *gin.Context) {
	h.create(c)
}

// Update godoc
// @ID           updateManufacturer
// @Summary      Update a manufacturer
// @Tags         manufacturers
// @Accept       json
// @Produce      json
// @Param        id      path string true "Manufacturer ID" format(uuid)
// @Param        request body inventoryapp.ManufacturerRequest true "Manufacturer"
// @Success      200 {object} ManufacturerMutationResponse
// @Failure      400 {object} ManufacturerMutationResponse "Write failed, body holds the unsaved state"
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturers/{id} [put]
func (h *ManufacturerHandler) Update(c *gin.Context) {
	h.update(c)
}

// Delete godoc
// @ID           deleteManufacturer
// @Summary      Delete a manufacturer
// @Description  Rejected with 409 while any asset still references the manufacturer.
// @Tags         manufacturers
// @Produce      json
// @Param        id path string true "Manufacturer ID" format(uuid)
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /manufacturers/{id} [delete]
func (h *ManufacturerHandler) Delete(c *gin.Context) {
	h.destroy(c)
}
