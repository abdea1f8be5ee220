package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/internal/types"
	"github.com/kakeibo/backend/pkg/httputil"
	"github.com/kakeibo/backend/pkg/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}

	RegisterItemRoutes(r.Group("/:id/items"))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Param			id		path	string	true	"ID of the category"
// @Router			/v1/months/{month}/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Create category
// @Description	Adds a category to a month. The category is also added to months created later
// @Tags			Categories
// @Produce		json
// @Success		201		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			data	body		CategoryCreate	true	"Category"
// @Router			/v1/months/{month}/categories [post]
func CreateCategory(c *gin.Context) {
	id, err := monthFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	var data CategoryCreate
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	mutateMonth(c, http.StatusCreated, func(b *models.Book) (types.Month, error) {
		_, err := b.AddCategory(id, data.Title, data.Budget.Decimal)
		return id, err
	})
}

// @Summary		Update category
// @Description	Updates a category. Renames are applied to months created later. Setting a memo switches the category to memo based totals, an empty memo switches back to items
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string				true	"The month in YYYY-MM format"
// @Param			id		path		string				true	"ID of the category"
// @Param			data	body		CategoryEditable	true	"Category"
// @Router			/v1/months/{month}/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
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

	var data CategoryEditable
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

		if _, err := m.Category(uri.ID); err != nil {
			return id, err
		}

		if data.Title != nil {
			if err := b.RenameCategory(id, uri.ID, *data.Title); err != nil {
				return id, err
			}
		}

		if data.Budget != nil {
			if err := m.SetBudget(uri.ID, data.Budget.Decimal); err != nil {
				return id, err
			}
		}

		if data.Memo != nil {
			if err := b.SetCategoryMemo(id, uri.ID, *data.Memo); err != nil {
				return id, err
			}
		}

		if data.TextareaHeight != nil {
			if err := b.SetTextareaHeight(id, uri.ID, *data.TextareaHeight); err != nil {
				return id, err
			}
		}

		return id, nil
	})
}

// @Summary		Delete category
// @Description	Deletes a category and its memo. The category is not added to months created later
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Param			id		path		string	true	"ID of the category"
// @Router			/v1/months/{month}/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
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
		return id, b.RemoveCategory(id, uri.ID)
	})
}
