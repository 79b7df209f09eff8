package markethours

import (
	"fmt"
	"strings"
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30).
var IST = time.FixedZone("IST", 5*3600+30*60)

// NSE trading hours in IST. Both boundaries are inclusive.
const (
	OpenHour    = 9
	OpenMinute  = 15
	CloseHour   = 15
	CloseMinute = 30
)

// regionalSuffix marks symbols listed on the NSE; everything else
// (crypto pairs, US tickers) is treated as always tradeable.
const regionalSuffix = ".NS"

// IsOpen reports whether the market for symbol is open at t.
// NSE symbols trade Mon-Fri 9:15-15:30 IST; holidays are not modeled.
func IsOpen(symbol string, t time.Time) bool {
	if !strings.HasSuffix(symbol, regionalSuffix) {
		return true
	}
	ist := t.In(IST)
	wd := ist.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	hm := ist.Hour()*60 + ist.Minute()
	return hm >= OpenHour*60+OpenMinute && hm <= CloseHour*60+CloseMinute
}

// Status returns a human-readable market status line for symbol at t.
func Status(symbol string, t time.Time) string {
	if !strings.HasSuffix(symbol, regionalSuffix) {
		return fmt.Sprintf("%s: always open", symbol)
	}
	if IsOpen(symbol, t) {
		return fmt.Sprintf("%s: open (NSE, closes %02d:%02d IST)", symbol, CloseHour, CloseMinute)
	}
	return fmt.Sprintf("%s: closed (NSE hours %02d:%02d-%02d:%02d IST, Mon-Fri)",
		symbol, OpenHour, OpenMinute, CloseHour, CloseMinute)
}
