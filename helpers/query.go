package helpers

import (
	"time"

	"banksampah/services"

	"github.com/gofiber/fiber/v2"
)

// ParseHistoryFilter reads the common history query params. Scope (unit,
// nasabah) is applied by the caller from the session, not parsed here.
func ParseHistoryFilter(c *fiber.Ctx) services.HistoryFilter {
	f := services.HistoryFilter{
		Page:    c.QueryInt("page", 1),
		Limit:   c.QueryInt("limit", 20),
		TrxType: c.Query("type"),
	}

	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.From = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.Add(24 * time.Hour)
			f.To = &end
		}
	}
	if v := c.QueryInt("nasabah_id", 0); v > 0 {
		id := uint(v)
		f.NasabahID = &id
	}
	if v := c.QueryInt("before_id", 0); v > 0 {
		id := uint(v)
		f.BeforeID = &id
	}

	return f
}
