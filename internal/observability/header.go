package observability

import (
	"fmt"
	"net/http"
)

// Timing is one Server-Timing metric. Zero or negative durations and empty
// descriptions are left out of the header value.
type Timing struct {
	Name  string
	DurMs float64
	Desc  string
}

func (t Timing) String() string {
	switch {
	case t.DurMs > 0 && t.Desc != "":
		return fmt.Sprintf("%s;dur=%.2f;desc=%q", t.Name, t.DurMs, t.Desc)
	case t.DurMs > 0:
		return fmt.Sprintf("%s;dur=%.2f", t.Name, t.DurMs)
	case t.Desc != "":
		return fmt.Sprintf("%s;desc=%q", t.Name, t.Desc)
	default:
		return ""
	}
}

func AppendServerTiming(w http.ResponseWriter, timings ...Timing) {
	for _, t := range timings {
		if v := t.String(); v != "" {
			w.Header().Add("Server-Timing", v)
		}
	}
}

func SetIfPos(w http.ResponseWriter, key string, ms float64) {
	if ms > 0 {
		w.Header().Set(key, fmt.Sprintf("%.2f", ms))
	}
}
