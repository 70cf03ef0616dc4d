package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/signaldeck/signaldeck-backend-go/internal/dataset"
	"github.com/signaldeck/signaldeck-backend-go/internal/models"
	"github.com/signaldeck/signaldeck-backend-go/internal/service"
	"github.com/signaldeck/signaldeck-backend-go/pkg/response"
)

// MetaHandler serves the fixed enums and per-region values backing the
// dashboard's filter controls.
type MetaHandler struct {
	dashboardService *service.DashboardService
}

// NewMetaHandler creates a new meta handler.
func NewMetaHandler(dashboardService *service.DashboardService) *MetaHandler {
	return &MetaHandler{dashboardService: dashboardService}
}

// ListRegions handles GET /api/v1/regions
func (h *MetaHandler) ListRegions(c *gin.Context) {
	response.Success(c, gin.H{
		"regions": models.Regions(),
	})
}

// ListBuckets handles GET /api/v1/buckets
func (h *MetaHandler) ListBuckets(c *gin.Context) {
	buckets := make([]gin.H, 0, 3)
	for _, b := range models.Buckets() {
		buckets = append(buckets, gin.H{
			"value": b,
			"label": b.Glyph(),
		})
	}
	response.Success(c, gin.H{
		"buckets": buckets,
	})
}

// ListSectors handles GET /api/v1/regions/:region/sectors
func (h *MetaHandler) ListSectors(c *gin.Context) {
	region, ok := models.ParseRegion(c.Param("region"))
	if !ok {
		response.BadRequest(c, "Invalid region parameter")
		return
	}

	sectors, err := h.dashboardService.Sectors(region)
	if err != nil {
		var missing *dataset.MissingDataError
		if errors.As(err, &missing) {
			response.NotFound(c, missing.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"region":  region,
		"sectors": sectors,
	})
}
