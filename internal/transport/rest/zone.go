package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

// requestZone resolves the local-day zone from the tz (IANA name) or offset
// (minutes, positive west of UTC) query parameters.
func requestZone(r *http.Request, fallback *time.Location) (*time.Location, error) {
	q := r.URL.Query()

	var offset *int
	if raw := q.Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domain.NewValidationError("offset", "must be an integer number of minutes")
		}
		offset = &v
	}

	return domain.ResolveZone(q.Get("tz"), offset, fallback)
}
