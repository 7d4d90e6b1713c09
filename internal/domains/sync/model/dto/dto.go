package dto

import (
	billingDto "reception/internal/domains/billing/model/dto"
	"reception/internal/domains/sync/model"
)

type Snapshot struct {
	Status          model.Status              `json:"status"`
	Stats           *billingDto.StatsResponse `json:"stats,omitempty"`
	Error           string                    `json:"error,omitempty"`
	Warning         string                    `json:"warning,omitempty"`
	AutoSync        bool                      `json:"auto_sync"`
	Running         bool                      `json:"running"`
	IntervalSeconds int                       `json:"interval_seconds"`
	LastSyncedAt    string                    `json:"last_synced_at,omitempty"`
	LastAttemptAt   string                    `json:"last_attempt_at,omitempty"`
	Sequence        uint64                    `json:"sequence"`
}

type AutoSyncRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
