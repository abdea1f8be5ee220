package types

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a money amount as sent by clients.
//
// It accepts JSON numbers and strings. Anything that does not parse as a
// number, including NaN and infinities, is coerced to zero so that no
// invalid value reaches stored records.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns an Amount for a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d}
}

// ParseAmount coerces user input to an amount. Surrounding white space is
// ignored, unparseable input yields zero.
func ParseAmount(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{decimal.Zero}
	}

	return Amount{d}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = ParseAmount(s)
		return nil
	}

	// null, numbers and everything else that is not a JSON string
	*a = ParseAmount(string(data))
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Decimal.MarshalJSON()
}
