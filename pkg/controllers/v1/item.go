package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/internal/types"
	"github.com/kakeibo/backend/pkg/httputil"
	"github.com/kakeibo/backend/pkg/models"
)

// RegisterItemRoutes registers the routes for line items of a category
// with the RouterGroup that is passed.
func RegisterItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsItemList)
		r.POST("", CreateItem)
	}

	// Item with ID
	{
		r.OPTIONS("/:itemId", OptionsItemDetail)
		r.PATCH("/:itemId", UpdateItem)
		r.DELETE("/:itemId", DeleteItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Items
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Param			id		path	string	true	"ID of the category"
// @Router			/v1/months/{month}/categories/{id}/items [options]
func OptionsItemList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Items
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Param			id		path	string	true	"ID of the category"
// @Param			itemId	path	string	true	"ID of the item"
// @Router			/v1/months/{month}/categories/{id}/items/{itemId} [options]
func OptionsItemDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Create item
// @Description	Adds a line item to a category
// @Tags			Items
// @Produce		json
// @Success		201		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			id		path		string			true	"ID of the category"
// @Param			data	body		ItemEditable	true	"Item"
// @Router			/v1/months/{month}/categories/{id}/items [post]
func CreateItem(c *gin.Context) {
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

	var data ItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	name, amount := values(data.Name, data.Amount)
	mutateMonth(c, http.StatusCreated, func(b *models.Book) (types.Month, error) {
		m, err := b.Month(id)
		if err != nil {
			return id, err
		}

		_, err = m.AddItem(uri.ID, name, amount)
		return id, err
	})
}

// @Summary		Update item
// @Description	Updates name and amount of a line item. Only values to be updated need to be specified
// @Tags			Items
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			id		path		string			true	"ID of the category"
// @Param			itemId	path		string			true	"ID of the item"
// @Param			data	body		ItemEditable	true	"Item"
// @Router			/v1/months/{month}/categories/{id}/items/{itemId} [patch]
func UpdateItem(c *gin.Context) {
	var uri URIMonthItem
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

	var data ItemEditable
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

		_, err = m.UpdateItem(uri.ID, uri.ItemID, data.Name, decimalPtr(data.Amount))
		return id, err
	})
}

// @Summary		Delete item
// @Description	Deletes a line item from a category
// @Tags			Items
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Param			id		path		string	true	"ID of the category"
// @Param			itemId	path		string	true	"ID of the item"
// @Router			/v1/months/{month}/categories/{id}/items/{itemId} [delete]
func DeleteItem(c *gin.Context) {
	var uri URIMonthItem
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

		return id, m.RemoveItem(uri.ID, uri.ItemID)
	})
}
