package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/pkg/httputil"
	"github.com/shopspring/decimal"
)

type MemoEvaluation struct {
	Text  string `json:"text" example:"スーパー 1200\n100×3\n(家族分 3000)"` // Memo text
	Round *bool  `json:"round" example:"false"`                       // Round the total to the nearest integer. Defaults to the server setting
}

type MemoTotal struct {
	Total decimal.Decimal `json:"total" example:"1500"` // Sum of all amounts in the memo
}

type MemoResponse struct {
	Data  *MemoTotal `json:"data"`  // The evaluated memo
	Error *string    `json:"error"` // The error, if any occurred
}

// RegisterMemoRoutes registers the routes for memo evaluation with
// the RouterGroup that is passed.
func RegisterMemoRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMemo)
	r.POST("", EvaluateMemo)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Memo
// @Success		204
// @Router			/v1/memo [options]
func OptionsMemo(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Evaluate memo
// @Description	Calculates the total of a free text memo without storing it
// @Tags			Memo
// @Produce		json
// @Success		200		{object}	MemoResponse
// @Failure		400		{object}	MemoResponse
// @Param			data	body		MemoEvaluation	true	"Memo"
// @Router			/v1/memo [post]
func EvaluateMemo(c *gin.Context) {
	var data MemoEvaluation
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemoResponse{
			Error: &s,
		})
		return
	}

	p := QueryRound{Round: data.Round}.parser(c)
	c.JSON(http.StatusOK, MemoResponse{
		Data: &MemoTotal{Total: p.Total(data.Text)},
	})
}
