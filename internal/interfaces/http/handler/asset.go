package handler

import (
	"context"
	"net/http"

	inventoryapp "github.com/aims/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// AssetService is the application service behind the asset endpoints
type AssetService interface {
	resourceService[inventoryapp.AssetRequest, inventoryapp.AssetResponse]
	Options(ctx context.Context) (*inventoryapp.AssetOptionsResponse, error)
}

// AssetHandler handles asset-related API endpoints
type AssetHandler struct {
	resource[inventoryapp.AssetRequest, inventoryapp.AssetResponse]
	assets AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(service AssetService) *AssetHandler {
	return &AssetHandler{
		resource: newResource[inventoryapp.AssetRequest, inventoryapp.AssetResponse](service, "Asset"),
		assets:   service,
	}
}

// AssetMutationResponse is the body of an asset create or update
type AssetMutationResponse struct {
	Success bool                       `json:"success" example:"true"`
	Message string                     `json:"message" example:"Asset created successfully!"`
	Asset   inventoryapp.AssetResponse `json:"asset"`
}

// List godoc
// @ID           listAssets
// @Summary      List assets
// @Description  Search matches the asset's own fields and the names of its category, manufacturer, location and assigned user. Sort also accepts category, manufacturer, location and assigned_to_user.
// @Tags         assets
// @Produce      json
// @Param        searchtext     query string false "Case-insensitive search text"
// @Param        sort_field     query string false "Own field, or category, manufacturer, location, assigned_to_user" default(name)
// @Param        sort_direction query string false "asc or desc" default(asc)
// @Param        per_page       query int    false "Page size (max 100)" default(5)
// @Param        page           query int    false "Page number" default(1)
// @Success      200 {object} ListResponse[inventoryapp.AssetResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	h.list(c)
}

// Search godoc
// @ID           searchAssets
// @Summary      List assets with options in the body
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        page    query int                 false "Page number, used when the body has none"
// @Param        request body  support.ListRequest false "List options"
// @Success      200 {object} ListResponse[inventoryapp.AssetResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets/list [post]
func (h *AssetHandler) Search(c *gin.Context) {
	h.list(c)
}

// Get godoc
// @ID           getAsset
// @Summary      Get an asset
// @Tags         assets
// @Produce      json
// @Param        id path string true "Asset ID" format(uuid)
// @Success      200 {object} inventoryapp.AssetResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets/{id} [get]
func (h *AssetHandler) Get(c *gin.Context) {
	h.show(c)
}

// Create godoc
// @ID           createAsset
// @Summary      Create an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.AssetRequest true "Asset"
// @Success      201 {object} AssetMutationResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets [post]
func (h *AssetHandler) Create(c *gin.Context) {
	h.create(c)
}

// Update godoc
// @ID           updateAsset
// @Summary      Update an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id      path string true "Asset ID" format(uuid)
// @Param        request body inventoryapp.AssetRequest true "Asset"
// @Success      200 {object} AssetMutationResponse
// @Failure      400 {object} AssetMutationResponse "Write failed, body holds the unsaved state"
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets/{id} [put]
func (h *AssetHandler) Update(c *gin.Context) {
	h.update(c)
}

// Delete godoc
// @ID           deleteAsset
// @Summary      Delete an asset
// @Description  Assets are hard deleted.
// @Tags         assets
// @Produce      json
// @Param        id path string true "Asset ID" format(uuid)
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	h.destroy(c)
}

// Options godoc
// @ID           getAssetOptions
// @Summary      Pick lists for asset forms
// @Description  Categories, manufacturers, locations and users as id and name, each sorted by name.
// @Tags         assets
// @Produce      json
// @Success      200 {object} inventoryapp.AssetOptionsResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /assets/options [get]
func (h *AssetHandler) Options(c *gin.Context) {
	options, err := h.assets.Options(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}
