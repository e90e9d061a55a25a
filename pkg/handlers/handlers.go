package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"

	apperrors "github.com/arnavshah/duty-planner-go/internal/errors"
	"github.com/arnavshah/duty-planner-go/internal/logger"
	"github.com/arnavshah/duty-planner-go/pkg/service"

	"github.com/gin-gonic/gin"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	Personnel      service.PersonnelServiceInterface
	Unavailability service.UnavailabilityServiceInterface
	Schedule       service.ScheduleServiceInterface
}

// respondError maps service errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "details": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": err.Error()})
	default:
		logger.FromContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": err.Error()})
	}
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body, answering 400 on malformed input
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return false
	}
	return true
}

// Dashboard godoc
// @Summary      Overview of the roster and the next two days
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  service.DashboardResponse
// @Router       /api/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	dash, err := h.Schedule.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// ListPersonnel returns the roster ordered by name
func (h *Handler) ListPersonnel(c *gin.Context) {
	persons, err := h.Personnel.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"personnel": persons, "total": len(persons)})
}

// GetPerson returns one person
func (h *Handler) GetPerson(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	person, err := h.Personnel.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

// CreatePerson godoc
// @Summary      Add a person to the roster
// @Tags         personnel
// @Accept       json
// @Produce      json
// @Param        person  body      service.CreatePersonRequest  true  "Person"
// @Success      201     {object}  models.Person
// @Failure      400     {object}  map[string]string
// @Router       /api/personnel [post]
func (h *Handler) CreatePerson(c *gin.Context) {
	var req service.CreatePersonRequest
	if !bindJSON(c, &req) {
		return
	}
	person, err := h.Personnel.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, person)
}

// UpdatePerson changes rank, role or availability
func (h *Handler) UpdatePerson(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.UpdatePersonRequest
	if !bindJSON(c, &req) {
		return
	}
	person, err := h.Personnel.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

// DeletePerson removes a person with their assignments and unavailability
func (h *Handler) DeletePerson(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Personnel.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Person deleted"})
}

// ImportPersonnel handles CSV roster uploads. The file is read from the
// "file" form field, or from the raw body when no form is sent.
func (h *Handler) ImportPersonnel(c *gin.Context) {
	var src io.Reader = c.Request.Body
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file", "details": err.Error()})
			return
		}
		defer f.Close()
		src = f
	}

	result, err := h.Personnel.Import(c.Request.Context(), src)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListUnavailability returns records from the "from" query date, today by default
func (h *Handler) ListUnavailability(c *gin.Context) {
	records, err := h.Unavailability.List(c.Request.Context(), c.Query("from"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unavailability": records, "total": len(records)})
}

// CreateUnavailability records that a person cannot serve on a date
func (h *Handler) CreateUnavailability(c *gin.Context) {
	var req service.CreateUnavailabilityRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.Unavailability.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// DeleteUnavailability removes an unavailability record
func (h *Handler) DeleteUnavailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Unavailability.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unavailability deleted"})
}

// ViewSchedule returns the assignments of a date
func (h *Handler) ViewSchedule(c *gin.Context) {
	view, err := h.Schedule.View(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GenerateSchedule godoc
// @Summary      Fill the open slots of a date
// @Description  Slots filled earlier are kept. Slots nobody can take are reported, not failed.
// @Tags         schedule
// @Produce      json
// @Param        date  path      string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  models.GenerateResult
// @Failure      400   {object}  map[string]string
// @Router       /api/schedule/{date}/generate [post]
func (h *Handler) GenerateSchedule(c *gin.Context) {
	result, err := h.Schedule.Generate(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":           result.Date,
		"assignments":    result.Assignments,
		"outcomes":       result.Outcomes,
		"complete":       result.Complete(),
		"partial":        result.PartialSuccess(),
		"filled":         result.Filled(),
		"already_filled": result.AlreadyFilled(),
		"unfilled":       result.Unfilled(),
		"failed":         result.Failed(),
	})
}

// ConfirmSchedule marks every assignment of a date as confirmed
func (h *Handler) ConfirmSchedule(c *gin.Context) {
	date := c.Param("date")
	n, err := h.Schedule.Confirm(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "confirmed": n})
}

// ExportSchedule returns the schedule of a date as a CSV download
func (h *Handler) ExportSchedule(c *gin.Context) {
	date := c.Param("date")
	var out bytes.Buffer
	if err := h.Schedule.ExportCSV(c.Request.Context(), date, &out); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=schedule-%s.csv", date))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out.Bytes())
}

// ListSlots returns the daily slot catalog
func (h *Handler) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.Schedule.Slots()})
}
