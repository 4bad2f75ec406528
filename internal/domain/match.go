package domain

import "encoding/json"

type MatchOutcome uint8

const (
	// OutcomeRanked carries a (possibly empty) list ordered by distance.
	OutcomeRanked MatchOutcome = iota
	// OutcomeAddressUnresolved means the delivery address could not be
	// geocoded; the list is always empty.
	OutcomeAddressUnresolved
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomeRanked:
		return "ranked"
	case OutcomeAddressUnresolved:
		return "address_unresolved"
	default:
		return "unknown"
	}
}

type RankedRestaurant struct {
	Restaurant Restaurant `json:"restaurant"`
	DistanceKm float64    `json:"distance_km"`
}

// MatchResult is built only through Ranked or AddressUnresolved so that the
// outcome and the list never disagree.
type MatchResult struct {
	outcome     MatchOutcome
	restaurants []RankedRestaurant
}

func Ranked(list []RankedRestaurant) MatchResult {
	if list == nil {
		list = []RankedRestaurant{}
	}
	return MatchResult{outcome: OutcomeRanked, restaurants: list}
}

func AddressUnresolved() MatchResult {
	return MatchResult{outcome: OutcomeAddressUnresolved, restaurants: []RankedRestaurant{}}
}

func (r MatchResult) Outcome() MatchOutcome { return r.outcome }

func (r MatchResult) AddressUnresolved() bool { return r.outcome == OutcomeAddressUnresolved }

func (r MatchResult) Restaurants() []RankedRestaurant { return r.restaurants }

type matchResultJSON struct {
	AddressUnresolved bool               `json:"address_unresolved"`
	Restaurants       []RankedRestaurant `json:"restaurants"`
}

func (r MatchResult) MarshalJSON() ([]byte, error) {
	list := r.restaurants
	if list == nil {
		list = []RankedRestaurant{}
	}
	return json.Marshal(matchResultJSON{
		AddressUnresolved: r.AddressUnresolved(),
		Restaurants:       list,
	})
}

func (r *MatchResult) UnmarshalJSON(b []byte) error {
	var raw matchResultJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.AddressUnresolved {
		*r = AddressUnresolved()
		return nil
	}
	*r = Ranked(raw.Restaurants)
	return nil
}
