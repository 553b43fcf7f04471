package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterAPIRoutes registers the REST API, metrics and swagger routes
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine) {
	api := router.Group("/api")

	tools := api.Group("/tools")
	{
		tools.GET("", h.GetTools)
		tools.GET("/:id", h.GetTool)
	}

	filters := api.Group("/filters")
	{
		filters.GET("", h.GetFilters)
		filters.POST("/toggle", h.ToggleFilter)
	}

	api.GET("/roles", h.GetRoles)
	api.GET("/roles/:id/access", h.GetRoleAccess)
	api.GET("/systems", h.GetSystems)
	api.GET("/policies", h.GetPolicies)
	api.GET("/processes", h.GetProcesses)

	procurement := api.Group("/procurement")
	{
		procurement.GET("", h.GetProcurementFlows)
		procurement.GET("/:id", h.GetProcurementFlow)
	}

	api.GET("/export", h.ExportTools)

	gatherer := h.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", h.Ping)
}

// Ping checks that the API is up
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
