package service

import "time"

type UpsertStats struct {
	DBWriteMs float64
}

type MatchStats struct {
	LoadMs  float64
	MatchMs float64
}

type BackfillStats struct {
	Total    int `json:"total"`
	Resolved int `json:"resolved"`
	Failed   int `json:"failed"`

	// restaurants whose address was edited while the old one was geocoded
	Superseded int `json:"superseded"`
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
