package models_test

import (
	"context"
	"errors"

	"github.com/kakeibo/backend/internal/types"
	"github.com/kakeibo/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestLoadBookEmpty() {
	b, err := models.LoadBook(context.Background(), now)
	suite.Require().Nil(err)

	suite.Require().Len(b.Months, 1)
	suite.Assert().Equal("2025-10", b.Months[0].MonthID.String())
	suite.Assert().NotNil(b.CategoryMemos)
}

func (suite *TestSuiteStandard) TestSaveAndLoadBook() {
	ctx := context.Background()

	b := models.NewBook(now)
	_, err := b.AddMonth()
	suite.Require().Nil(err)
	suite.Require().Nil(b.SetCategoryMemo(types.NewMonth(2025, 10), "cat1", "100×3"))
	suite.Require().Nil(b.SetTextareaHeight(types.NewMonth(2025, 10), "cat1", 150))

	suite.Require().Nil(models.SaveBook(ctx, b))

	// Saving twice updates the entries in place
	suite.Require().Nil(models.SaveBook(ctx, b))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Entry{}).Count(&count).Error)
	suite.Assert().Equal(int64(len(models.Keys)), count)

	loaded, err := models.LoadBook(ctx, now)
	suite.Require().Nil(err)
	suite.Assert().Equal(monthIDs(b), monthIDs(loaded))
	suite.Assert().Equal("100×3", loaded.CategoryMemos["cat1"])
	suite.Assert().Equal(150, loaded.TextareaHeights["cat1"])
	suite.Assert().Equal(b.Months[1].Categories[0].ID, loaded.Months[1].Categories[0].ID)
}

func (suite *TestSuiteStandard) TestLoadBookCorruptValue() {
	ctx := context.Background()
	suite.Require().Nil(models.SaveBook(ctx, models.NewBook(now)))

	err := models.DB.Model(&models.Entry{}).Where("key = ?", models.KeyCategoryMemos).Update("value", []byte("{not json")).Error
	suite.Require().Nil(err)

	b, err := models.LoadBook(ctx, now)
	suite.Require().Nil(err)
	suite.Assert().Empty(b.CategoryMemos)
	suite.Assert().Len(b.Months, 1, "other keys must still be loaded")

	// The stored value is not touched
	var entry models.Entry
	suite.Require().Nil(models.DB.First(&entry, "key = ?", models.KeyCategoryMemos).Error)
	suite.Assert().Equal("{not json", string(entry.Value))
}

func (suite *TestSuiteStandard) TestUpdateBook() {
	ctx := context.Background()

	b, err := models.UpdateBook(ctx, now, func(b *models.Book) error {
		m, err := b.Month(types.NewMonth(2025, 10))
		if err != nil {
			return err
		}
		m.Income = decimal.NewFromInt(250000)
		return nil
	})
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(250000).Equal(b.Months[0].Income))

	loaded, err := models.LoadBook(ctx, now)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(250000).Equal(loaded.Months[0].Income))
}

func (suite *TestSuiteStandard) TestUpdateBookError() {
	ctx := context.Background()
	errTest := errors.New("test error")

	_, err := models.UpdateBook(ctx, now, func(b *models.Book) error {
		b.Months[0].Income = decimal.NewFromInt(1)
		return errTest
	})
	suite.Assert().ErrorIs(err, errTest)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Entry{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count, "nothing must be saved when the update fails")
}

func (suite *TestSuiteStandard) TestResetBook() {
	ctx := context.Background()
	suite.Require().Nil(models.SaveBook(ctx, models.NewBook(now)))
	suite.Require().Nil(models.ResetBook(ctx))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Entry{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestStoreClosedDatabase() {
	suite.CloseDB()

	_, err := models.LoadBook(context.Background(), now)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = models.SaveBook(context.Background(), models.NewBook(now))
	suite.Assert().NotNil(err)
}
