package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/internal/types"
	"github.com/kakeibo/backend/pkg/memo"
)

// Parsers decide how memos are evaluated for API responses (Live)
// and for reports (Report).
type Parsers struct {
	Live   memo.Parser
	Report memo.Parser
}

// DefaultParsers returns unrounded live totals and rounded report totals.
func DefaultParsers() Parsers {
	return Parsers{
		Live:   memo.NewParser(),
		Report: memo.Parser{NormalizeFullWidth: true, Round: true},
	}
}

const parsersKey = "kakeibo-memo-parsers"

// ParsersMiddleware makes the parsers available to the handlers of the request.
func ParsersMiddleware(p Parsers) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(parsersKey, p)
		c.Next()
	}
}

// parsers returns the parsers for the request, the defaults if none are set.
func parsers(c *gin.Context) Parsers {
	if v, ok := c.Get(parsersKey); ok {
		if p, ok := v.(Parsers); ok {
			return p
		}
	}

	return DefaultParsers()
}

// now is replaced in tests.
var now = time.Now

type URIMonth struct {
	Month string `uri:"month" binding:"required" example:"2025-10"` // Year and month
}

// month parses the month of the URI.
func (uri URIMonth) month() (types.Month, error) {
	return types.ParseMonth(uri.Month)
}

type URIMonthID struct {
	URIMonth
	ID string `uri:"id" binding:"required"` // The ID of the resource
}

type URIMonthItem struct {
	URIMonthID
	ItemID string `uri:"itemId" binding:"required"` // The ID of the item
}

type QueryRound struct {
	Round *bool `form:"round"` // Round totals to the nearest integer. Defaults to the server setting
}

// parser returns the live parser of the request with the rounding of the query applied.
func (q QueryRound) parser(c *gin.Context) memo.Parser {
	p := parsers(c).Live
	if q.Round != nil {
		p.Round = *q.Round
	}
	return p
}
