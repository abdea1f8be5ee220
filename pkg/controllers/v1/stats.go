package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/pkg/httputil"
	"github.com/kakeibo/backend/pkg/models"
)

// RegisterStatsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", GetStats)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statistics
// @Description	Returns the number of months, categories, fixed expenses and category memos
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Failure		500	{object}	StatsResponse
// @Router			/v1/stats [get]
func GetStats(c *gin.Context) {
	book, err := models.LoadBook(c.Request.Context(), now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatsResponse{
			Error: &s,
		})
		return
	}

	stats := book.Stats()
	c.JSON(http.StatusOK, StatsResponse{Data: &stats})
}
