package dto

import (
	"net/http"
	"reception/internal/domains/clock/model"
	"reception/shared/constant"
	"strconv"
)

type ClockRequest struct {
	ServerTime  string `json:"server_time"`
	Format      string `json:"format"       validate:"omitempty,oneof=12h 24h"`
	ShowSeconds bool   `json:"show_seconds"`
}

// FromRequest reads ?server_time=&format=12h|24h&seconds=true|false.
func (c *ClockRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	c.ServerTime = query.Get(constant.RequestParamServerTS)
	c.Format = query.Get(constant.RequestParamFormat)

	if seconds, err := strconv.ParseBool(query.Get(constant.RequestParamSeconds)); err == nil {
		c.ShowSeconds = seconds
	}
}

func (c *ClockRequest) Options() model.Options {
	return model.Options{
		Hour24:      c.Format == model.Format24h,
		ShowSeconds: c.ShowSeconds,
	}
}

type ClockResponse struct {
	LocalTime    string `json:"local_time"`
	Display      string `json:"display"`
	Date         string `json:"date"`
	Timezone     string `json:"timezone"`
	ServerTime   string `json:"server_time,omitempty"`
	DriftMinutes *int   `json:"drift_minutes,omitempty"`
	DriftStatus  string `json:"drift_status,omitempty"`
}

// Tick is pushed to dashboards once a second.
type Tick struct {
	LocalTime string `json:"local_time"`
	Unix      int64  `json:"unix"`
}
