package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckCoverage reports, without writing anything, whether each slot of a
// date can be staffed
func (h *Handler) CheckCoverage(c *gin.Context) {
	date := c.Param("date")
	coverage, err := h.Schedule.Coverage(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	var open, uncoverable []string
	for _, slot := range coverage {
		if slot.Filled {
			continue
		}
		open = append(open, slot.Slot)
		if slot.Eligible == 0 {
			uncoverable = append(uncoverable, slot.Slot)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":        date,
		"valid":       len(uncoverable) == 0,
		"slots":       coverage,
		"open":        open,
		"uncoverable": uncoverable,
	})
}
