package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"picnicapi/server/internal/errs"
)

// respondError отдает *errs.HTTPError как есть; любая другая ошибка
// логируется и превращается в 500 без подробностей
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		c.AbortWithStatusJSON(httpErr.Status, httpErr)
		return
	}

	log.Error().
		Err(err).
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	internal := errs.NewInternalServerError()
	c.AbortWithStatusJSON(internal.Status, internal)
}

// dateTimeLayouts - форматы параметра datetime. Время без зоны считается UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

func parseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q: expected ISO 8601, e.g. 2026-06-01T12:00:00Z", value)
}
