// Package timezone pins every wall-clock value to the hotel's timezone.
//
// The hotel API reports times as "2006-01-02 15:04:05" without an offset;
// ParseAPITime reads those in the configured APP_TIMEZONE and also accepts RFC3339.
//
//	now := timezone.Now()
//	serverTime, err := timezone.ParseAPITime(stats.ServerTime)
//
// The timezone is loaded once when the package is imported.
package timezone
