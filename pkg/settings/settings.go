package settings

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrSettingsNotConfigured = errors.New("settings are not configured")
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the single active rate configuration. It is absent until saved the first time.
type Settings struct {
	// SekToEurRate is the number of SEK per EUR.
	SekToEurRate        decimal.Decimal
	HourlyRateEur       decimal.Decimal
	TravelHourlyRateEur decimal.Decimal
	KmCost              decimal.Decimal
	CreatedDate         time.Time
	ModifiedDate        *time.Time
}

func (s Settings) Validate() error {
	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"sekToEurRate", s.SekToEurRate},
		{"hourlyRateEur", s.HourlyRateEur},
		{"travelHourlyRateEur", s.TravelHourlyRateEur},
		{"kmCost", s.KmCost},
	}
	var errs []error
	for _, rate := range rates {
		if !rate.value.IsPositive() {
			errs = append(errs, errors.New(rate.name+" must be greater than 0"))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidSettings}, errs...)...)
	}
	return nil
}
