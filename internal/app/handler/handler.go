package handler

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"navigator/internal/app/analytics"
	"navigator/internal/app/ds"
	"navigator/internal/app/export"
	"navigator/internal/app/filter"
	"navigator/internal/app/repository"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler serves the server-rendered pages.
type Handler struct {
	Repository *repository.Repository
	Tracker    *analytics.Tracker
	Reports    *Reports
}

func NewHandler(r *repository.Repository, tracker *analytics.Tracker, reports *Reports) *Handler {
	return &Handler{
		Repository: r,
		Tracker:    tracker,
		Reports:    reports,
	}
}

var templateFuncs = template.FuncMap{
	"licenseCategory": func(t ds.Tool) string {
		return string(filter.ClassifyLicense(t.License))
	},
	"yesNo": func(v bool) string {
		if v {
			return "Ja"
		}
		return "Nein"
	},
}

// RegisterStatic installs the embedded page templates.
func (h *Handler) RegisterStatic(router *gin.Engine) {
	tmpl := template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.GetIndex)
	router.GET(catalogPath, h.GetLicenses)
	router.GET(togglePath, h.ToggleFilter)
	router.GET(exportPath, h.ExportLicenses)
	router.GET("/zugang", h.GetAccess)
	router.GET("/abklaerung", h.GetProcurement)
}

func (h *Handler) errorPage(ctx *gin.Context, status int, message string) {
	ctx.HTML(status, "error.html", gin.H{
		"title":   "Fehler",
		"status":  status,
		"message": message,
	})
}

// GetIndex shows the start page with catalog statistics.
func (h *Handler) GetIndex(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"title":      "Start",
		"stats":      filter.CatalogStats(h.Repository.Tools()),
		"categories": filter.LicenseCategories(),
	})
}

// GetLicenses shows the catalog filtered by the state in the query string.
func (h *Handler) GetLicenses(ctx *gin.Context) {
	state, err := filter.Decode(ctx.Request.URL.Query())
	if err != nil {
		logrus.Warn(err)
		h.errorPage(ctx, http.StatusBadRequest, "Ungültiger Filter")
		return
	}

	catalog := h.Repository.Tools()
	ctx.HTML(http.StatusOK, "lizenzen.html", gin.H{
		"title": "Lizenzen",
		"view":  newCatalogView(state, catalog, filter.Apply(catalog, state)),
	})
}

// ToggleFilter applies one toggle event and redirects to the resulting state.
func (h *Handler) ToggleFilter(ctx *gin.Context) {
	query := ctx.Request.URL.Query()
	state, err := filter.Decode(query)
	if err != nil {
		logrus.Warn(err)
		h.errorPage(ctx, http.StatusBadRequest, "Ungültiger Filter")
		return
	}

	key := filter.Key(query.Get(paramKey))
	next, err := state.Toggle(key, query.Get(paramValue))
	if err != nil {
		logrus.Warn(err)
		h.errorPage(ctx, http.StatusBadRequest, "Ungültiger Filter")
		return
	}

	h.Tracker.FilterApplied(key, next.Value(key))
	ctx.Redirect(http.StatusSeeOther, catalogPath+next.Encode())
}

// ExportLicenses downloads the filtered view as PDF.
func (h *Handler) ExportLicenses(ctx *gin.Context) {
	state, err := filter.Decode(ctx.Request.URL.Query())
	if err != nil {
		logrus.Warn(err)
		h.errorPage(ctx, http.StatusBadRequest, "Ungültiger Filter")
		return
	}

	report, err := h.Reports.build(ctx.Request.Context(), filter.Apply(h.Repository.Tools(), state), state)
	if err != nil {
		logrus.Error(err)
		h.errorPage(ctx, http.StatusInternalServerError, "PDF konnte nicht erstellt werden")
		return
	}

	writeReport(ctx, report)
}

func writeReport(ctx *gin.Context, report renderedReport) {
	if report.url != "" {
		ctx.Header(ReportURLHeader, report.url)
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	ctx.Data(http.StatusOK, export.ContentType, report.data)
}

// GetAccess shows roles, the access matrix, rules and processes.
// With ?rolle=<id> the systems available to that role are listed as well.
func (h *Handler) GetAccess(ctx *gin.Context) {
	roles := h.Repository.Roles()
	data := gin.H{
		"title":    "Zugang",
		"roles":    roles,
		"matrix":   accessMatrix(roles, h.Repository.SystemCategories()),
		"policies": h.Repository.PolicyRules(),
		"process":  h.Repository.Processes(),
	}

	if roleID := ctx.Query("rolle"); roleID != "" {
		role, err := h.Repository.RoleByID(roleID)
		if err != nil {
			h.notFoundOrError(ctx, err, "Rolle nicht gefunden")
			return
		}
		access, err := h.Repository.AccessForRole(roleID)
		if err != nil {
			h.notFoundOrError(ctx, err, "Rolle nicht gefunden")
			return
		}
		data["selectedRole"] = role
		data["roleAccess"] = access
	}

	ctx.HTML(http.StatusOK, "zugang.html", data)
}

// GetProcurement shows the procurement flows, optionally one of them in detail.
func (h *Handler) GetProcurement(ctx *gin.Context) {
	data := gin.H{
		"title": "Abklärung",
		"flows": h.Repository.ProcurementFlows(),
	}

	if flowID := ctx.Query("flow"); flowID != "" {
		flow, err := h.Repository.ProcurementFlow(flowID)
		if err != nil {
			h.notFoundOrError(ctx, err, "Ablauf nicht gefunden")
			return
		}
		data["selected"] = flow
	}

	ctx.HTML(http.StatusOK, "abklaerung.html", data)
}

func (h *Handler) notFoundOrError(ctx *gin.Context, err error, message string) {
	if errors.Is(err, repository.ErrNotFound) {
		h.errorPage(ctx, http.StatusNotFound, message)
		return
	}
	logrus.Error(err)
	h.errorPage(ctx, http.StatusInternalServerError, "Interner Fehler")
}
