package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/signaldeck/signaldeck-backend-go/internal/config"
	"github.com/signaldeck/signaldeck-backend-go/internal/dataset"
	"github.com/signaldeck/signaldeck-backend-go/internal/models"
	"github.com/signaldeck/signaldeck-backend-go/internal/service"
	"github.com/signaldeck/signaldeck-backend-go/pkg/response"
)

// DashboardHandler handles HTTP requests for dashboard render models.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	cfg              *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService *service.DashboardService, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		cfg:              cfg,
	}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	req, err := h.parseRequest(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	model, err := h.dashboardService.Dashboard(req)
	if err != nil {
		var missing *dataset.MissingDataError
		if errors.As(err, &missing) {
			response.NotFound(c, missing.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, model)
}

// ReloadRegion handles POST /api/v1/regions/:region/reload
func (h *DashboardHandler) ReloadRegion(c *gin.Context) {
	region, ok := models.ParseRegion(c.Param("region"))
	if !ok {
		response.BadRequest(c, "Invalid region parameter")
		return
	}

	count, err := h.dashboardService.ReloadRegion(region)
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
		"records": count,
	})
}

// parseRequest builds the immutable request object for one render cycle.
func (h *DashboardHandler) parseRequest(c *gin.Context) (models.DashboardRequest, error) {
	var req models.DashboardRequest

	region, ok := models.ParseRegion(c.Query("region"))
	if !ok {
		return req, fmt.Errorf("invalid region %q", c.Query("region"))
	}

	view, ok := models.ParseViewMode(c.DefaultQuery("view", string(models.ViewFounder)))
	if !ok {
		return req, fmt.Errorf("invalid view %q", c.Query("view"))
	}

	// Absent bucket params keep the preselected Hot+Warm default; explicit
	// params replace it entirely.
	fs := models.DefaultFilterState(h.cfg.DefaultMinScore)
	fs.Sectors = c.QueryArray("sector")
	if raws := c.QueryArray("bucket"); len(raws) > 0 {
		fs.Buckets = nil
		for _, raw := range raws {
			bucket, ok := models.ParseIntentBucket(raw)
			if !ok {
				return req, fmt.Errorf("invalid bucket %q", raw)
			}
			fs.Buckets = append(fs.Buckets, bucket)
		}
	}
	if raw := c.Query("minScore"); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil || score < 0 || score > 1 {
			return req, fmt.Errorf("invalid minScore %q", raw)
		}
		fs.MinScore = score
	}

	req.Region = region
	req.View = view
	req.Filter = fs
	req.Query = c.Query("q")
	return req, nil
}
