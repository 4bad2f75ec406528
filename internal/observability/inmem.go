package observability

import "sync"

type Observation struct {
	Kind   string  `json:"kind"`
	Label  string  `json:"label,omitempty"`
	Status int     `json:"status,omitempty"`
	Count  int     `json:"count,omitempty"`
	OK     bool    `json:"ok"`
	DurMs  float64 `json:"dur_ms"`
}

type Totals struct {
	CacheHits      int `json:"cache_hits"`
	CacheMisses    int `json:"cache_misses"`
	GeocodeOK      int `json:"geocode_ok"`
	GeocodeFailed  int `json:"geocode_failed"`
	Matches        int `json:"matches"`
	UnresolvedAddr int `json:"unresolved_addresses"`
}

type Snapshot struct {
	Totals Totals        `json:"totals"`
	Last   []Observation `json:"last"`
}

// Inmem keeps running totals and a ring of the last max observations.
type Inmem struct {
	mu     sync.Mutex
	last   []Observation
	max    int
	totals Totals
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(o Observation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pushLocked(o)
}

func (m *Inmem) pushLocked(o Observation) {
	if m.max <= 0 {
		return
	}
	m.last = append(m.last, o)
	if len(m.last) > m.max {
		m.last = m.last[len(m.last)-m.max:]
	}
}

func (m *Inmem) ObserveLookup(source string, durMs float64) {
	m.push(Observation{Kind: "lookup", Label: source, OK: true, DurMs: durMs})
}

func (m *Inmem) ObserveGeocode(ok bool, durMs float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ok {
		m.totals.GeocodeOK++
	} else {
		m.totals.GeocodeFailed++
	}
	m.pushLocked(Observation{Kind: "geocode", OK: ok, DurMs: durMs})
}

func (m *Inmem) ObserveMatch(outcome string, candidates int, durMs float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totals.Matches++
	if outcome == "address_unresolved" {
		m.totals.UnresolvedAddr++
	}
	m.pushLocked(Observation{Kind: "match", Label: outcome, Count: candidates, OK: true, DurMs: durMs})
}

func (m *Inmem) ObserveUpsert(dbWriteMs float64) {
	m.push(Observation{Kind: "upsert", OK: true, DurMs: dbWriteMs})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(Observation{Kind: "http", Label: method + " " + route, Status: status, OK: status < 500, DurMs: durMs})
}

func (m *Inmem) ObserveKafka(processMs float64, ok bool) {
	m.push(Observation{Kind: "kafka", OK: ok, DurMs: processMs})
}

func (m *Inmem) IncCacheHit() {
	m.mu.Lock()
	m.totals.CacheHits++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss() {
	m.mu.Lock()
	m.totals.CacheMisses++
	m.mu.Unlock()
}

func (m *Inmem) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	last := make([]Observation, len(m.last))
	copy(last, m.last)
	return Snapshot{Totals: m.totals, Last: last}
}
