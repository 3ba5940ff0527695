package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Decimal converts a scanned numeric column into a decimal. NULL and NaN become an invalid NullDecimal.
func Decimal(n pgtype.Numeric) decimal.NullDecimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromBigInt(n.Int, n.Exp), Valid: true}
}

// RequiredDecimal converts a NOT NULL numeric column.
func RequiredDecimal(n pgtype.Numeric) decimal.Decimal {
	d := Decimal(n)
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// DecimalParam renders a decimal as a query argument for a numeric column.
func DecimalParam(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.String()
}

// TimeOfDay converts a scanned time column into the offset from midnight.
func TimeOfDay(t pgtype.Time) *time.Duration {
	if !t.Valid {
		return nil
	}
	d := time.Duration(t.Microseconds) * time.Microsecond
	return &d
}
