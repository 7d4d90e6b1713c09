package dto

import (
	"net/http"
	"reception/shared/constant"
	"strconv"
)

type QueryParams struct {
	Limit int `json:"limit" validate:"omitempty,min=1"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, a missing or invalid limit falls back to the configured history size.
// The limit is always capped at MaxValueHistoryLimit.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool, defaultLimit int) {
	queryParams := r.URL.Query()

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest && q.Limit == 0 {
		q.Limit = defaultLimit
		if q.Limit <= 0 {
			q.Limit = constant.DefaultValueHistoryLimit
		}
	}

	if q.Limit > constant.MaxValueHistoryLimit {
		q.Limit = constant.MaxValueHistoryLimit
	}
}
