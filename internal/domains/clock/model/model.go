package model

import (
	"time"
)

type DriftStatus string

const (
	DriftInSync DriftStatus = "in_sync"
	DriftAhead  DriftStatus = "ahead"
	DriftBehind DriftStatus = "behind"
)

const (
	Format12h = "12h"
	Format24h = "24h"
)

const (
	layout12h        = "3:04 PM"
	layout12hSeconds = "3:04:05 PM"
	layout24h        = "15:04"
	layout24hSeconds = "15:04:05"
	layoutDate       = "Monday, January 2, 2006"
)

// Options are per-request display toggles.
type Options struct {
	Hour24      bool
	ShowSeconds bool
}

// Drift is local minus server in whole minutes, truncated toward zero.
func Drift(local, server time.Time) int {
	return int(local.Sub(server) / time.Minute)
}

func Classify(driftMinutes int) DriftStatus {
	switch {
	case driftMinutes > 0:
		return DriftAhead
	case driftMinutes < 0:
		return DriftBehind
	default:
		return DriftInSync
	}
}

func FormatTime(t time.Time, opts Options) string {
	switch {
	case opts.Hour24 && opts.ShowSeconds:
		return t.Format(layout24hSeconds)
	case opts.Hour24:
		return t.Format(layout24h)
	case opts.ShowSeconds:
		return t.Format(layout12hSeconds)
	default:
		return t.Format(layout12h)
	}
}

func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}
