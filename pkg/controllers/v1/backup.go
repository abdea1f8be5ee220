package v1

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/pkg/httputil"
	"github.com/kakeibo/backend/pkg/models"
)

type StatsResponse struct {
	Data  *models.Stats `json:"data"`  // Statistics of the stored data
	Error *string       `json:"error"` // The error, if any occurred
}

// RegisterBackupRoutes registers the routes for backups with
// the RouterGroup that is passed.
func RegisterBackupRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBackup)
	r.GET("", GetBackup)
	r.POST("", RestoreBackup)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Backup
// @Success		204
// @Router			/v1/backup [options]
func OptionsBackup(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Download backup
// @Description	Returns a snapshot of all data as a JSON file
// @Tags			Backup
// @Produce		json
// @Success		200	{object}	models.Backup
// @Failure		500	{object}	httpError
// @Router			/v1/backup [get]
func GetBackup(c *gin.Context) {
	book, err := models.LoadBook(c.Request.Context(), now())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	backup := book.Backup(now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", backup.FileName()))
	c.JSON(http.StatusOK, backup)
}

// @Summary		Restore backup
// @Description	Replaces all data with the contents of a backup. Backups without extra income or textarea heights are supported
// @Tags			Backup
// @Accept			json
// @Produce		json
// @Success		200		{object}	StatsResponse
// @Failure		400		{object}	StatsResponse
// @Failure		500		{object}	StatsResponse
// @Param			backup	body		models.Backup	true	"Backup"
// @Router			/v1/backup [post]
func RestoreBackup(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s := errBackupReadFailed.Error()
		c.JSON(http.StatusBadRequest, StatsResponse{
			Error: &s,
		})
		return
	}

	if len(data) == 0 {
		s := httputil.ErrRequestBodyEmpty.Error()
		c.JSON(http.StatusBadRequest, StatsResponse{
			Error: &s,
		})
		return
	}

	restored, err := models.RestoreBackup(data, now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatsResponse{
			Error: &s,
		})
		return
	}

	book, err := models.UpdateBook(c.Request.Context(), now(), func(b *models.Book) error {
		*b = restored
		return nil
	})
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
