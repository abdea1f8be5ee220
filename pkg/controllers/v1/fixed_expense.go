package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/internal/types"
	"github.com/kakeibo/backend/pkg/httputil"
	"github.com/kakeibo/backend/pkg/models"
)

// RegisterFixedExpenseRoutes registers the routes for fixed expenses with
// the RouterGroup that is passed.
func RegisterFixedExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFixedExpenseList)
		r.POST("", CreateFixedExpense)
	}

	// Fixed expense with ID
	{
		r.OPTIONS("/:id", OptionsFixedExpenseDetail)
		r.PATCH("/:id", UpdateFixedExpense)
		r.DELETE("/:id", DeleteFixedExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Fixed Expenses
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/fixed-expenses [options]
func OptionsFixedExpenseList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Fixed Expenses
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Param			id		path	string	true	"ID of the fixed expense"
// @Router			/v1/months/{month}/fixed-expenses/{id} [options]
func OptionsFixedExpenseDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Create fixed expense
// @Description	Adds a fixed expense to a month
// @Tags			Fixed Expenses
// @Produce		json
// @Success		201		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string					true	"The month in YYYY-MM format"
// @Param			data	body		FixedExpenseEditable	true	"Fixed expense"
// @Router			/v1/months/{month}/fixed-expenses [post]
func CreateFixedExpense(c *gin.Context) {
	id, err := monthFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	var data FixedExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	mutateMonth(c, http.StatusCreated, func(b *models.Book) (types.Month, error) {
		m, err := b.Month(id)
		if err != nil {
			return id, err
		}

		m.AddFixedExpense(values(data.Name, data.Amount))
		return id, nil
	})
}

// @Summary		Update fixed expense
// @Description	Updates name and amount of a fixed expense. Only values to be updated need to be specified
// @Tags			Fixed Expenses
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string					true	"The month in YYYY-MM format"
// @Param			id		path		string					true	"ID of the fixed expense"
// @Param			data	body		FixedExpenseEditable	true	"Fixed expense"
// @Router			/v1/months/{month}/fixed-expenses/{id} [patch]
func UpdateFixedExpense(c *gin.Context) {
	var uri URIMonthID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	id, err := uri.month()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	var data FixedExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	mutateMonth(c, http.StatusOK, func(b *models.Book) (types.Month, error) {
		m, err := b.Month(id)
		if err != nil {
			return id, err
		}

		_, err = m.UpdateFixedExpense(uri.ID, data.Name, decimalPtr(data.Amount))
		return id, err
	})
}

// @Summary		Delete fixed expense
// @Description	Deletes a fixed expense from a month
// @Tags			Fixed Expenses
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Param			id		path		string	true	"ID of the fixed expense"
// @Router			/v1/months/{month}/fixed-expenses/{id} [delete]
func DeleteFixedExpense(c *gin.Context) {
	var uri URIMonthID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	id, err := uri.month()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	mutateMonth(c, http.StatusOK, func(b *models.Book) (types.Month, error) {
		m, err := b.Month(id)
		if err != nil {
			return id, err
		}

		return id, m.RemoveFixedExpense(uri.ID)
	})
}
