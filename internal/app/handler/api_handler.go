package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"navigator/internal/app/analytics"
	"navigator/internal/app/dto"
	"navigator/internal/app/filter"
	"navigator/internal/app/repository"
)

// APIHandler contains the REST API handlers
type APIHandler struct {
	Repository *repository.Repository
	Tracker    *analytics.Tracker
	Reports    *Reports
	Gatherer   prometheus.Gatherer
}

func NewAPIHandler(r *repository.Repository, tracker *analytics.Tracker, reports *Reports, gatherer prometheus.Gatherer) *APIHandler {
	return &APIHandler{
		Repository: r,
		Tracker:    tracker,
		Reports:    reports,
		Gatherer:   gatherer,
	}
}

// ============ Helpers ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// bindState reads the filter state from the query string and answers 400 on failure.
func (h *APIHandler) bindState(c *gin.Context) (filter.State, bool) {
	var query dto.ToolQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logrus.Warn("invalid tool query: ", err)
		h.errorResponse(c, http.StatusBadRequest, "Ungültige Filterparameter")
		return filter.State{}, false
	}

	state, err := query.State()
	if err != nil {
		logrus.Warn(err)
		h.errorResponse(c, http.StatusBadRequest, "Ungültige Filterparameter")
		return filter.State{}, false
	}
	return state, true
}

func (h *APIHandler) notFound(c *gin.Context, err error, message string) {
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, message)
		return
	}
	logrus.Error(err)
	h.errorResponse(c, http.StatusInternalServerError, "Interner Fehler")
}

// ============ Tools ============

// GetTools returns the filtered catalog
// @Summary Filtered tool list
// @Description Applies all given filters as a conjunction. Catalog order is preserved.
// @Tags Tools
// @Produce json
// @Param q query string false "Search in name, functions and type"
// @Param lizenz query string false "License category" Enums(Kantonslizenz, BBW-Schullizenz, BBW-Schullizenz begrenzt, Einzellizenz BBW, Kostenlos)
// @Param ki query bool false "true: with AI, false: without AI"
// @Param lernende query bool false "Only tools for students"
// @Param lp query bool false "Only tools for teachers"
// @Param typ query string false "Tool type tag"
// @Success 200 {object} dto.ToolListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/tools [get]
func (h *APIHandler) GetTools(c *gin.Context) {
	state, ok := h.bindState(c)
	if !ok {
		return
	}

	catalog := h.Repository.Tools()
	tools := filter.Apply(catalog, state)

	c.JSON(http.StatusOK, dto.ToolListResponse{
		Tools:  tools,
		Labels: state.Labels(),
		Count:  len(tools),
		Total:  len(catalog),
	})
}

// GetTool returns one tool
// @Summary Tool details
// @Tags Tools
// @Produce json
// @Param id path string true "Tool ID"
// @Success 200 {object} ds.Tool
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/tools/{id} [get]
func (h *APIHandler) GetTool(c *gin.Context) {
	tool, err := h.Repository.ToolByID(c.Param("id"))
	if err != nil {
		h.notFound(c, err, "Tool nicht gefunden")
		return
	}
	c.JSON(http.StatusOK, tool)
}

// ============ Filters ============

// GetFilters returns the available filter values
// @Summary Filter options and catalog statistics
// @Tags Filters
// @Produce json
// @Success 200 {object} dto.FiltersResponse
// @Router /api/filters [get]
func (h *APIHandler) GetFilters(c *gin.Context) {
	tools := h.Repository.Tools()
	c.JSON(http.StatusOK, dto.FiltersResponse{
		LicenseCategories: filter.LicenseCategories(),
		ToolTypes:         filter.ToolTypes(tools),
		Stats:             filter.CatalogStats(tools),
	})
}

// ToggleFilter applies a toggle event to a filter state
// @Summary Toggle a filter
// @Description Selecting the currently selected value clears it. The search key replaces the search text.
// @Tags Filters
// @Accept json
// @Produce json
// @Param request body dto.ToggleRequest true "Current state and toggle event"
// @Success 200 {object} dto.ToggleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/filters/toggle [post]
func (h *APIHandler) ToggleFilter(c *gin.Context) {
	var req dto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Warn("invalid toggle request: ", err)
		h.errorResponse(c, http.StatusBadRequest, "Ungültige Anfrage")
		return
	}

	state, err := req.State.State()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Ungültiger Filterzustand")
		return
	}

	key := filter.Key(req.Key)
	next, err := state.Toggle(key, req.Value)
	if err != nil {
		logrus.Warn(err)
		h.errorResponse(c, http.StatusBadRequest, "Ungültiger Filterwert")
		return
	}
	h.Tracker.FilterApplied(key, next.Value(key))

	c.JSON(http.StatusOK, dto.ToggleResponse{
		State:  dto.NewFilterStateDTO(next),
		Labels: next.Labels(),
		Active: next.Active(),
		Query:  next.Encode(),
	})
}

// ============ Access ============

// GetRoles returns all roles
// @Summary Roles
// @Tags Access
// @Produce json
// @Success 200 {object} dto.RoleListResponse
// @Router /api/roles [get]
func (h *APIHandler) GetRoles(c *gin.Context) {
	roles := h.Repository.Roles()
	c.JSON(http.StatusOK, dto.RoleListResponse{Roles: roles, Total: len(roles)})
}

// GetRoleAccess returns the systems a role can access
// @Summary Access of one role
// @Tags Access
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.RoleAccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/roles/{id}/access [get]
func (h *APIHandler) GetRoleAccess(c *gin.Context) {
	role, err := h.Repository.RoleByID(c.Param("id"))
	if err != nil {
		h.notFound(c, err, "Rolle nicht gefunden")
		return
	}

	systems, err := h.Repository.AccessForRole(role.ID)
	if err != nil {
		h.notFound(c, err, "Rolle nicht gefunden")
		return
	}
	c.JSON(http.StatusOK, dto.RoleAccessResponse{Role: role, Systems: systems})
}

// GetSystems returns the permission matrix
// @Summary System categories with access matrix
// @Tags Access
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]ds.SystemCategory}
// @Router /api/systems [get]
func (h *APIHandler) GetSystems(c *gin.Context) {
	h.successResponse(c, http.StatusOK, "", h.Repository.SystemCategories())
}

// GetPolicies returns the permission rules
// @Summary Permission rules
// @Tags Access
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]ds.PolicyRule}
// @Router /api/policies [get]
func (h *APIHandler) GetPolicies(c *gin.Context) {
	h.successResponse(c, http.StatusOK, "", h.Repository.PolicyRules())
}

// GetProcesses returns the permission processes
// @Summary Permission processes
// @Tags Access
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]ds.Process}
// @Router /api/processes [get]
func (h *APIHandler) GetProcesses(c *gin.Context) {
	h.successResponse(c, http.StatusOK, "", h.Repository.Processes())
}

// ============ Procurement ============

// GetProcurementFlows returns all procurement flows
// @Summary Procurement flows
// @Tags Procurement
// @Produce json
// @Success 200 {object} dto.ProcurementListResponse
// @Router /api/procurement [get]
func (h *APIHandler) GetProcurementFlows(c *gin.Context) {
	flows := h.Repository.ProcurementFlows()
	c.JSON(http.StatusOK, dto.ProcurementListResponse{Flows: flows, Total: len(flows)})
}

// GetProcurementFlow returns one procurement flow
// @Summary Procurement flow details
// @Tags Procurement
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} ds.ProcurementFlow
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/procurement/{id} [get]
func (h *APIHandler) GetProcurementFlow(c *gin.Context) {
	flow, err := h.Repository.ProcurementFlow(c.Param("id"))
	if err != nil {
		h.notFound(c, err, "Ablauf nicht gefunden")
		return
	}
	c.JSON(http.StatusOK, flow)
}

// ============ Export ============

// ExportTools returns the filtered catalog as PDF
// @Summary PDF license report
// @Description Same filters as /api/tools. When report archiving is enabled the X-Report-URL header holds a download link valid for one hour.
// @Tags Export
// @Produce application/pdf
// @Param q query string false "Search in name, functions and type"
// @Param lizenz query string false "License category"
// @Param ki query bool false "true: with AI, false: without AI"
// @Param lernende query bool false "Only tools for students"
// @Param lp query bool false "Only tools for teachers"
// @Param typ query string false "Tool type tag"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/export [get]
func (h *APIHandler) ExportTools(c *gin.Context) {
	state, ok := h.bindState(c)
	if !ok {
		return
	}

	report, err := h.Reports.build(c.Request.Context(), filter.Apply(h.Repository.Tools(), state), state)
	if err != nil {
		logrus.Error(err)
		h.errorResponse(c, http.StatusInternalServerError, "PDF konnte nicht erstellt werden")
		return
	}
	writeReport(c, report)
}
