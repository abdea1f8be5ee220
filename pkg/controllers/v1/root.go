package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/pkg/httputil"
	"github.com/kakeibo/backend/pkg/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Months string `json:"months" example:"https://example.com/api/v1/months"` // URL of Month collection endpoint
	Memo   string `json:"memo" example:"https://example.com/api/v1/memo"`     // URL of memo evaluation endpoint
	Backup string `json:"backup" example:"https://example.com/api/v1/backup"` // URL of backup endpoint
	Stats  string `json:"stats" example:"https://example.com/api/v1/stats"`   // URL of statistics endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Months: url + "/v1/months",
			Memo:   url + "/v1/memo",
			Backup: url + "/v1/backup",
			Stats:  url + "/v1/stats",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all data. The next request starts with a new seed month
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all data. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	err = models.ResetBook(c.Request.Context())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
