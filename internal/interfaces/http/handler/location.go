package handler

import (
	inventoryapp "github.com/aims/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// LocationService is the application service behind the location endpoints
type LocationService interface {
	resourceService[inventoryapp.LocationRequest, inventoryapp.LocationResponse]
}

// LocationHandler handles location-related API endpoints
type LocationHandler struct {
	resource[inventoryapp.LocationRequest, inventoryapp.LocationResponse]
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(service LocationService) *LocationHandler {
	return &LocationHandler{resource: newResource[inventoryapp.LocationRequest, inventoryapp.LocationResponse](service, "Location")}
}

// LocationMutationResponse is the body of a location create or update
type LocationMutationResponse struct {
	Success  bool                          `json:"success" example:"true"`
	Message  string                        `json:"message" example:"Location created successfully!"`
	Location inventoryapp.LocationResponse `json:"location"`
}

// List godoc
// @ID           listLocations
// @Summary      List locations
// @Description  Search matches name and address.
// @Tags         locations
// @Produce      json
// @Param        searchtext     query string false "Case-insensitive search text"
// @Param        sort_field     query string false "Sort field" default(name)
// @Param        sort_direction query string false "asc or desc" default(asc)
// @Param        per_page       query int    false "Page size (max 100)" default(5)
// @Param        page           query int    false "Page number" default(1)
// @Success      200 {object} ListResponse[inventoryapp.LocationResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	h.list(c)
}

// Search godoc
// @ID           searchLocations
// @Summary      List locations with options in the body
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        page    query int                 false "Page number, used when the body has none"
// @Param        request body  support.ListRequest false "List options"
// @Success      200 {object} ListResponse[inventoryapp.LocationResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /locations/list [post]
func (h *LocationHandler) Search(c *gin.Context) {
	h.list(c)
}

// Get godoc
// @ID           getLocation
// @Summary      Get a location
// @Tags         locations
// @Produce      json
// @Param        id path string true "Location ID" format(uuid)
// @Success      200 {object} inventoryapp.LocationResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /locations/{id} [get]
func (h *LocationHandler) Get(c *gin.Context) {
	h.show(c)
}

// Create godoc
// @ID           createLocation
// @Summary      Create a location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.LocationRequest true "Location"
// @Success      201 {object} LocationMutationResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	h.create(c)
}

// Update godoc
// @ID           updateLocation
// @Summary      Update a location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        id      path string true "Location ID" format(uuid)
// @Param        request body inventoryapp.LocationRequest true "Location"
// @Success      200 {object} LocationMutationResponse
// @Failure      400 {object} LocationMutationResponse "Write failed, body holds the unsaved state"
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /locations/{id} [put]
func (h *LocationHandler) Update(c *gin.Context) {
	h.update(c)
}

// Delete godoc
// @ID           deleteLocation
// @Summary      Delete a location
// @Description  Rejected with 409 while any asset is still at the location.
// @Tags         locations
// @Produce      json
// @Param        id path string true "Location ID" format(uuid)
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /locations/{id} [delete]
func (h *LocationHandler) Delete(c *gin.Context) {
	h.destroy(c)
}
