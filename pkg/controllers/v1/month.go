package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/internal/types"
	"github.com/kakeibo/backend/pkg/httputil"
	"github.com/kakeibo/backend/pkg/models"
	"github.com/kakeibo/backend/pkg/report"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMonthList)
		r.GET("", GetMonths)
		r.POST("", CreateMonth)
	}

	// Month with ID
	{
		r.OPTIONS("/:month", OptionsMonthDetail)
		r.GET("/:month", GetMonth)
		r.PATCH("/:month", UpdateMonth)
		r.DELETE("/:month", DeleteMonth)

		r.OPTIONS("/:month/position", OptionsMonthPosition)
		r.POST("/:month/position", MoveMonth)

		r.OPTIONS("/:month/summary", OptionsMonthSummary)
		r.GET("/:month/summary", GetMonthSummary)

		r.OPTIONS("/:month/report", OptionsMonthReport)
		r.GET("/:month/report", GetMonthReport)
	}

	RegisterFixedExpenseRoutes(r.Group("/:month/fixed-expenses"))
	RegisterCategoryRoutes(r.Group("/:month/categories"))
}

// monthFromURI parses the month in the request path.
func monthFromURI(c *gin.Context) (types.Month, error) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return types.Month{}, err
	}

	return uri.month()
}

// mutateMonth applies fn to the stored book and responds with the month
// with the ID fn returns.
func mutateMonth(c *gin.Context, successStatus int, fn func(*models.Book) (types.Month, error)) {
	var id types.Month
	book, err := models.UpdateBook(c.Request.Context(), now(), func(b *models.Book) error {
		var err error
		id, err = fn(b)
		return err
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	m, err := book.Month(id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonth(c, book, *m, parsers(c).Live)
	c.JSON(successStatus, MonthResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonthList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [options]
func OptionsMonthDetail(c *gin.Context) {
	if _, ok := loadMonth(c); !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/position [options]
func OptionsMonthPosition(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/summary [options]
func OptionsMonthSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/report [options]
func OptionsMonthReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// loadedMonth is a month together with the book it was loaded from.
type loadedMonth struct {
	book  models.Book
	month models.MonthRecord
}

// loadMonth loads the book and the month in the request path. If that fails,
// the error is written to the response and ok is false.
func loadMonth(c *gin.Context) (result loadedMonth, ok bool) {
	id, err := monthFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return result, false
	}

	book, err := models.LoadBook(c.Request.Context(), now())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return result, false
	}

	m, err := book.Month(id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return result, false
	}

	result.book = book
	result.month = *m
	return result, true
}

// @Summary		List months
// @Description	Returns all months in display order together with their summaries
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthListResponse
// @Failure		400		{object}	MonthListResponse
// @Failure		500		{object}	MonthListResponse
// @Param			month	query		string	false	"Filter by month ID. Supports * as wildcard, e.g. 2025-*"
// @Router			/v1/months [get]
func GetMonths(c *gin.Context) {
	var filter MonthQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthListResponse{
			Error: &s,
		})
		return
	}

	book, err := models.LoadBook(c.Request.Context(), now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthListResponse{
			Error: &s,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]Month, 0)
	for _, m := range book.Months {
		if filter.Month != "" && !glob.Glob(filter.Month, m.MonthID.String()) {
			continue
		}

		data = append(data, newMonth(c, book, m, parsers(c).Live))
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: data})
}

// @Summary		Create month
// @Description	Creates the month after the latest month. Income, savings, fixed expenses and categories are copied from the latest month, category history is applied
// @Tags			Months
// @Produce		json
// @Success		201	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Failure		500	{object}	MonthResponse
// @Router			/v1/months [post]
func CreateMonth(c *gin.Context) {
	mutateMonth(c, http.StatusCreated, func(b *models.Book) (types.Month, error) {
		m, err := b.AddMonth()
		return m.MonthID, err
	})
}

// @Summary		Get month
// @Description	Returns a specific month with its summary
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func GetMonth(c *gin.Context) {
	r, ok := loadMonth(c)
	if !ok {
		return
	}

	data := newMonth(c, r.book, r.month, parsers(c).Live)
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Update month
// @Description	Updates income, extra income, preemptive savings and the memo of a month. Setting monthId renames the month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string					true	"The month in YYYY-MM format"
// @Param			data	body		models.MonthEditable	true	"Month fields to update"
// @Router			/v1/months/{month} [patch]
func UpdateMonth(c *gin.Context) {
	id, err := monthFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	var data models.MonthEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	mutateMonth(c, http.StatusOK, func(b *models.Book) (types.Month, error) {
		return b.UpdateMonth(id, data)
	})
}

// @Summary		Delete month
// @Description	Deletes a month together with the memos of its categories. The last month cannot be deleted
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [delete]
func DeleteMonth(c *gin.Context) {
	id, err := monthFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.UpdateBook(c.Request.Context(), now(), func(b *models.Book) error {
		return b.DeleteMonth(id)
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Move month
// @Description	Moves a month to a new position in the list of months
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthListResponse
// @Failure		400		{object}	MonthListResponse
// @Failure		404		{object}	MonthListResponse
// @Failure		500		{object}	MonthListResponse
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			data	body		MonthPosition	true	"New position"
// @Router			/v1/months/{month}/position [post]
func MoveMonth(c *gin.Context) {
	id, err := monthFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthListResponse{
			Error: &s,
		})
		return
	}

	var data MonthPosition
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthListResponse{
			Error: &s,
		})
		return
	}

	book, err := models.UpdateBook(c.Request.Context(), now(), func(b *models.Book) error {
		return b.MoveMonth(id, data.Position)
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthListResponse{
			Error: &s,
		})
		return
	}

	months := make([]Month, 0, len(book.Months))
	for _, m := range book.Months {
		months = append(months, newMonth(c, book, m, parsers(c).Live))
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: months})
}

// @Summary		Get month summary
// @Description	Returns the summary of a month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		404		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Param			round	query		bool	false	"Round memo totals to the nearest integer. Defaults to the server setting"
// @Router			/v1/months/{month}/summary [get]
func GetMonthSummary(c *gin.Context) {
	var query QueryRound
	if err := c.BindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &s,
		})
		return
	}

	r, ok := loadMonth(c)
	if !ok {
		return
	}

	data := r.book.Summarize(r.month, query.parser(c))
	c.JSON(http.StatusOK, SummaryResponse{Data: &data})
}

// @Summary		Get month report
// @Description	Returns the month as a self-contained HTML document for download
// @Tags			Months
// @Produce		html
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/report [get]
func GetMonthReport(c *gin.Context) {
	r, ok := loadMonth(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := report.Render(&buf, r.book, r.month.MonthID, parsers(c).Report)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(report.FileName(r.month.MonthID))))
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
