// Package report renders a month of the household budget as a
// self-contained HTML document.
package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/kakeibo/backend/internal/types"
	"github.com/kakeibo/backend/pkg/memo"
	"github.com/kakeibo/backend/pkg/models"
	"github.com/kakeibo/backend/pkg/summary"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

var tmpl = template.Must(template.New("report.html").Funcs(template.FuncMap{
	"yen": FormatYen,
}).ParseFS(templatesFS, "templates/report.html"))

// FormatYen formats an amount as yen with grouped thousands and at most
// three fraction digits, e.g. ¥1,234 or ¥-500. The amount is never
// converted to a float.
func FormatYen(d decimal.Decimal) string {
	s := d.Round(3).String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	integer, fraction, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString("¥")
	b.WriteString(sign)
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if fraction != "" {
		b.WriteByte('.')
		b.WriteString(fraction)
	}

	return b.String()
}

// FileName returns the file name of the report for a month.
func FileName(month types.Month) string {
	return fmt.Sprintf("家計簿-%s.html", month)
}

type view struct {
	Title       string
	Year        int
	Month       int
	Record      models.MonthRecord
	Summary     summary.Summary
	Categories  []categoryView
	HasExtra    bool
	MemoPresent bool
}

type categoryView struct {
	Title   string
	Budget  decimal.Decimal
	HasMemo bool
	Memo    string
	Items   []models.LineItem
	Total   decimal.Decimal
	Overrun bool
}

// Render writes the report for a month of the book.
//
// Category totals and the summary are calculated with the parser, which
// decides on full-width normalization and rounding.
func Render(w io.Writer, book models.Book, id types.Month, p memo.Parser) error {
	m, err := book.Month(id)
	if err != nil {
		return err
	}

	v := view{
		Title:       fmt.Sprintf("家計簿 - %d年%d月", id.Year(), id.Month()),
		Year:        id.Year(),
		Month:       int(id.Month()),
		Record:      *m,
		Summary:     book.Summarize(*m, p),
		HasExtra:    m.ExtraIncome.IsPositive(),
		MemoPresent: m.Memo != "",
		Categories:  make([]categoryView, 0, len(m.Categories)),
	}

	for _, c := range m.Categories {
		cv := categoryView{
			Title:  c.Title,
			Budget: c.Budget,
		}

		spending := book.Spending(c)
		switch s := spending.(type) {
		case models.MemoSpending:
			cv.HasMemo = true
			cv.Memo = s.Text
		case models.ItemSpending:
			cv.Items = s.Items
		}

		cv.Total = spending.Total(p)
		cv.Overrun = c.Budget.IsPositive() && cv.Total.GreaterThan(c.Budget)

		v.Categories = append(v.Categories, cv)
	}

	return tmpl.Execute(w, v)
}
