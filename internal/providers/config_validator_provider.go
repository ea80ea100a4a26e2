package providers

import (
	"fmt"
	"github.com/gookit/validate"
	"gritd/internal/structures"
	"time"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}
	if tz := cv.conf.Tracker.TimeZone; tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("tracker.timeZone: %w", err)
		}
	}
	if cv.conf.Tracker.TrendDays < 0 {
		return fmt.Errorf("tracker.trendDays must not be negative")
	}
	return nil
}
