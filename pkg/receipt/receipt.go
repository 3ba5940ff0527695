package receipt

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/timelogger/timelogger/pkg/currency"
)

// Receipt is an expense attached to a project, in its original currency.
type Receipt struct {
	Id              int
	ProjectId       int
	ReceiptTypeId   int
	ReceiptTypeName string
	Date            time.Time
	FileName        string
	Cost            decimal.Decimal
	Currency        currency.Code
	CreatedDate     time.Time
	ModifiedDate    *time.Time
}
