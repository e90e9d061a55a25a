package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats returns service counts per person, their fairness and the
// recent generation history
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.Schedule.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var runs, filled int
	for _, g := range stats.Generations {
		runs += g.Runs
		filled += g.Filled
	}

	c.JSON(http.StatusOK, gin.H{
		"fairness_score":     stats.FairnessScore,
		"persons":            stats.Persons,
		"generation_history": stats.Generations,
		"totals": gin.H{
			"persons":  stats.TotalPersons,
			"services": stats.TotalServices,
			"runs":     runs,
			"filled":   filled,
		},
	})
}
