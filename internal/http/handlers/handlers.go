package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/dc6084/backend/internal/db"
	"github.com/dc6084/backend/internal/importer"
	"github.com/dc6084/backend/internal/models"
	"github.com/dc6084/backend/internal/service"
	"github.com/dc6084/backend/internal/state"
)

type Handler struct {
	Store     *db.Store
	State     *state.State
	Validator *validator.Validate
	Logger    zerolog.Logger
	AdminKey  string
}

type RosterImportSummary struct {
	Loaded     int    `json:"loaded"`
	UploadedAt string `json:"uploadedAt"`
	Status     string `json:"status"`
}

type MetricsImportSummary struct {
	Orderfillers int                   `json:"orderfillers"`
	LiftDrivers  int                   `json:"liftDrivers"`
	ReportDate   string                `json:"reportDate,omitempty"`
	Enrichment   service.EnrichSummary `json:"enrichment"`
	Messages     []string              `json:"messages"`
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Import roster
// @Description Upload a roster spreadsheet; replaces the whole roster
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param roster formData file true "roster.xlsx or roster.csv"
// @Success 200 {object} RosterImportSummary
// @Failure 400 {object} map[string]any
// @Router /api/roster/import [post]
func (h *Handler) RosterImport(c *gin.Context) {
	fh, err := c.FormFile("roster")
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "roster file required", nil)
		return
	}

	if err := h.State.BeginImport(); err != nil {
		writeError(c, http.StatusConflict, "IMPORT_IN_FLIGHT", err.Error(), nil)
		return
	}
	defer h.State.EndImport()

	rows, err := importer.DecodeFile(fh)
	if err != nil {
		writeError(c, http.StatusBadRequest, "FILE_FORMAT_ERROR", "Roster upload failed", err.Error())
		return
	}
	parsed, err := importer.ParseRoster(rows)
	if err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Roster: no valid rows found. Check column headers.", err.Error())
		return
	}

	uploadedAt := time.Now().UTC().Format(time.RFC3339)
	h.State.ReplaceRoster(parsed, uploadedAt)

	// Persistence problems never fail the import; the roster is live in
	// memory either way.
	if err := h.Store.SaveRoster(c.Request.Context(), parsed, uploadedAt); err != nil {
		h.Logger.Warn().Err(err).Msg("could not persist roster")
	}

	c.JSON(http.StatusOK, RosterImportSummary{
		Loaded:     len(parsed),
		UploadedAt: uploadedAt,
		Status:     fmt.Sprintf("Roster saved! %d associates loaded. This will persist until you upload a new one.", len(parsed)),
	})
}

// @Summary Reset roster
// @Description Clear the persisted roster and restore the built-in sample
// @Tags import
// @Produce json
// @Success 200 {object} RosterImportSummary
// @Router /api/roster/reset [post]
func (h *Handler) RosterReset(c *gin.Context) {
	if err := h.Store.ResetRoster(c.Request.Context()); err != nil {
		h.Logger.Warn().Err(err).Msg("could not clear persisted roster")
	}
	sample := service.SampleRoster()
	h.State.ReplaceRoster(sample, "")
	c.JSON(http.StatusOK, RosterImportSummary{
		Loaded: len(sample),
		Status: "Reset to sample roster. Upload a real roster when ready.",
	})
}

func (h *Handler) RosterList(c *gin.Context) {
	roster, uploadedAt := h.State.Roster()
	criteria := h.State.Filter()

	filtered := make([]models.RosterEntry, 0, len(roster))
	for _, e := range roster {
		if (criteria.Area == models.FilterAll || e.Area == criteria.Area) &&
			(criteria.Shift == models.FilterAll || e.Shift == criteria.Shift) &&
			(criteria.Role == models.FilterAll || e.Role == criteria.Role) {
			filtered = append(filtered, e)
		}
	}

	status := "Using sample roster. Upload a real roster to get started."
	if uploadedAt != "" {
		status = fmt.Sprintf("Roster loaded (uploaded %s), %d associates", uploadedAt, len(roster))
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      filtered,
		"total":      len(roster),
		"uploadedAt": uploadedAt,
		"status":     status,
	})
}

// @Summary Import FPA/LPA reports
// @Description Upload up to two report files; slot decides the role
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param fpaof formData file false "orderfiller report"
// @Param fpald formData file false "lift driver report"
// @Success 200 {object} MetricsImportSummary
// @Failure 400 {object} map[string]any
// @Router /api/metrics/import [post]
func (h *Handler) MetricsImport(c *gin.Context) {
	fpaofFile, errOF := c.FormFile("fpaof")
	fpaldFile, errLD := c.FormFile("fpald")
	if errOF != nil && errLD != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "No files selected.", nil)
		return
	}

	if err := h.State.BeginImport(); err != nil {
		writeError(c, http.StatusConflict, "IMPORT_IN_FLIGHT", err.Error(), nil)
		return
	}
	defer h.State.EndImport()

	// Parse everything before replacing anything so a bad second file cannot
	// leave a half-imported metric set behind.
	summary := MetricsImportSummary{}
	var records []models.MetricEntry
	var reportDate string

	if errOF == nil {
		rows, err := importer.DecodeFile(fpaofFile)
		if err != nil {
			writeError(c, http.StatusBadRequest, "FILE_FORMAT_ERROR", "FPAOF import failed", err.Error())
			return
		}
		parsed, err := importer.ParseMetrics(rows, models.RoleOrderfiller)
		if err != nil {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "FPAOF: no valid rows found. Check column headers.", err.Error())
			return
		}
		records = append(records, parsed...)
		summary.Orderfillers = len(parsed)
		summary.Messages = append(summary.Messages, fmt.Sprintf("FPAOF: %d orderfiller records loaded", len(parsed)))
		if reportDate == "" {
			reportDate = importer.ScanFilenameDate(fpaofFile.Filename)
		}
	}

	if errLD == nil {
		rows, err := importer.DecodeFile(fpaldFile)
		if err != nil {
			writeError(c, http.StatusBadRequest, "FILE_FORMAT_ERROR", "FPALD import failed", err.Error())
			return
		}
		parsed, err := importer.ParseMetrics(rows, models.RoleLiftDriver)
		if err != nil {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "FPALD: no valid rows found. Check column headers.", err.Error())
			return
		}
		records = append(records, parsed...)
		summary.LiftDrivers = len(parsed)
		summary.Messages = append(summary.Messages, fmt.Sprintf("FPALD: %d lift driver records loaded", len(parsed)))
		if reportDate == "" {
			reportDate = importer.ScanFilenameDate(fpaldFile.Filename)
		}
	}

	h.State.ReplaceMetrics(records, reportDate)
	summary.ReportDate = reportDate

	roster, _ := h.State.Roster()
	_, enrichSummary := service.Enrich(records, roster, h.Logger)
	summary.Enrichment = enrichSummary
	summary.Messages = append(summary.Messages,
		fmt.Sprintf("%d of %d records matched to roster (names, area, shift, role populated)",
			enrichSummary.Matched, enrichSummary.TotalIncoming))
	if enrichSummary.Unmatched > 0 {
		summary.Messages = append(summary.Messages,
			fmt.Sprintf("%d user ID(s) not in roster: %v", enrichSummary.Unmatched, enrichSummary.UnmatchedIDs))
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) FiltersGet(c *gin.Context) {
	c.JSON(http.StatusOK, h.State.Filter())
}

func (h *Handler) FiltersPut(c *gin.Context) {
	var req models.FilterCriteria
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	roster, _ := h.State.Roster()
	areas, shifts, roles := service.FilterOptions(roster)
	if !allowedFilterValue(req.Area, areas) || !allowedFilterValue(req.Shift, shifts) || !allowedFilterValue(req.Role, roles) {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Filter value not present in roster", req)
		return
	}

	h.State.SetFilter(req)
	c.JSON(http.StatusOK, req)
}

func (h *Handler) FilterOptions(c *gin.Context) {
	roster, _ := h.State.Roster()
	areas, shifts, roles := service.FilterOptions(roster)
	c.JSON(http.StatusOK, gin.H{"areas": areas, "shifts": shifts, "roles": roles})
}

func (h *Handler) SortToggle(c *gin.Context) {
	column := c.Param("column")
	if !service.ValidSortColumn(column) {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown sort column", column)
		return
	}
	next := service.ToggleSort(h.State.Sort(), column)
	h.State.SetSort(next)
	c.JSON(http.StatusOK, next)
}

// recordView is an EnrichedRecord annotated with goal outcomes for the table.
type recordView struct {
	models.EnrichedRecord
	FPAGoal   int  `json:"fpaGoal"`
	FPAOnGoal bool `json:"fpaOnGoal"`
	LPAOnGoal bool `json:"lpaOnGoal"`
	OnGoal    bool `json:"onGoal"`
}

func (h *Handler) RecordsList(c *gin.Context) {
	filtered := h.filteredRecords()
	service.SortRecords(filtered, h.State.Sort())

	views := make([]recordView, 0, len(filtered))
	for _, r := range filtered {
		views = append(views, recordView{
			EnrichedRecord: r,
			FPAGoal:        service.ResolveFPAGoal(r.Area),
			FPAOnGoal:      service.FPAPasses(r.FPAMinutes, r.Area),
			LPAOnGoal:      service.LPAPasses(r.LPAMinutes),
			OnGoal:         service.OverallOnGoal(r),
		})
	}

	_, reportDate := h.State.Metrics()
	c.JSON(http.StatusOK, gin.H{
		"items":      views,
		"sort":       h.State.Sort(),
		"reportDate": reportDate,
	})
}

// @Summary Summary stats
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/dashboard/summary [get]
func (h *Handler) DashboardSummary(c *gin.Context) {
	filtered := h.filteredRecords()
	c.JSON(http.StatusOK, gin.H{
		"stats":     service.CalcStats(filtered),
		"hoursLost": service.SumHoursLost(filtered),
	})
}

func (h *Handler) DashboardBreakdown(c *gin.Context) {
	filtered := h.filteredRecords()
	c.JSON(http.StatusOK, gin.H{"groups": service.AreaBreakdown(filtered)})
}

type scorecard struct {
	Area          string               `json:"area"`
	Shift         string               `json:"shift"`
	Stats         models.Stats         `json:"stats"`
	HoursLost     models.HoursLost     `json:"hoursLost"`
	BottomFPAOF   []models.RankedEntry `json:"bottomFpaOrderfillers"`
	BottomLPAOF   []models.RankedEntry `json:"bottomLpaOrderfillers"`
	BottomFPALD   []models.RankedEntry `json:"bottomFpaLiftDrivers"`
	BottomLPALD   []models.RankedEntry `json:"bottomLpaLiftDrivers"`
	AllClearFPAOF bool                 `json:"allClearFpaOrderfillers"`
	AllClearLPAOF bool                 `json:"allClearLpaOrderfillers"`
	AllClearFPALD bool                 `json:"allClearFpaLiftDrivers"`
	AllClearLPALD bool                 `json:"allClearLpaLiftDrivers"`
}

// @Summary Per-area scorecards
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/dashboard/scorecards [get]
func (h *Handler) DashboardScorecards(c *gin.Context) {
	filtered := h.filteredRecords()

	groups := service.AreaBreakdown(filtered)
	cards := make([]scorecard, 0, len(groups))
	for _, g := range groups {
		members := service.ApplyFilters(filtered, models.FilterCriteria{
			Area: g.Area, Shift: g.Shift, Role: models.FilterAll,
		})
		card := scorecard{
			Area:        g.Area,
			Shift:       g.Shift,
			Stats:       g.Stats,
			HoursLost:   service.SumHoursLost(members),
			BottomFPAOF: service.BottomFive(members, models.RoleOrderfiller, service.MetricFPA),
			BottomLPAOF: service.BottomFive(members, models.RoleOrderfiller, service.MetricLPA),
			BottomFPALD: service.BottomFive(members, models.RoleLiftDriver, service.MetricFPA),
			BottomLPALD: service.BottomFive(members, models.RoleLiftDriver, service.MetricLPA),
		}
		card.AllClearFPAOF = card.BottomFPAOF == nil
		card.AllClearLPAOF = card.BottomLPAOF == nil
		card.AllClearFPALD = card.BottomFPALD == nil
		card.AllClearLPALD = card.BottomLPALD == nil
		cards = append(cards, card)
	}

	c.JSON(http.StatusOK, gin.H{"scorecards": cards})
}

// @Summary Building-wide summary
// @Description Compliance under the flat building thresholds, ignoring area goals
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/dashboard/building [get]
func (h *Handler) DashboardBuilding(c *gin.Context) {
	filtered := h.filteredRecords()
	c.JSON(http.StatusOK, gin.H{
		"stats":     service.BuildingStats(filtered),
		"hoursLost": service.SumHoursLost(filtered),
		"goals": gin.H{
			"fpaMinutes": service.BuildingFPAGoal,
			"lpaMinutes": service.BuildingLPAGoal,
		},
	})
}

// filteredRecords rebuilds the full pipeline from fresh snapshots: metrics
// joined against the current roster, then the active filter applied. Nothing
// here is cached across calls.
func (h *Handler) filteredRecords() []models.EnrichedRecord {
	metrics, _ := h.State.Metrics()
	roster, _ := h.State.Roster()
	enriched, _ := service.Enrich(metrics, roster, h.Logger)
	return service.ApplyFilters(enriched, h.State.Filter())
}

func allowedFilterValue(v string, options []string) bool {
	if v == models.FilterAll {
		return true
	}
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
