// Package market computes stock and fund analytics from provider data.
package market

import "time"

// Window pairs a provider interval label with the lookback it spans.
type Window struct {
	Interval string
	Lookback time.Duration
}

const day = 24 * time.Hour

// ResolveWindow maps a user window (size, unit) to a provider chart request.
// Each unit has a fixed granularity; the provider offers no yearly bucket, so
// years use its coarsest interval. An unrecognized unit falls back to daily
// bars over size days.
func ResolveWindow(size int, unit string) Window {
	if size < 1 {
		size = 1
	}

	switch unit {
	case "years":
		return Window{Interval: "3mo", Lookback: time.Duration(365*size) * day}
	case "months":
		return Window{Interval: "1mo", Lookback: time.Duration(30*size) * day}
	case "weeks":
		return Window{Interval: "1wk", Lookback: time.Duration(7*size) * day}
	case "days":
		return Window{Interval: "1d", Lookback: time.Duration(size) * day}
	default:
		return Window{Interval: "1d", Lookback: time.Duration(size) * day}
	}
}
