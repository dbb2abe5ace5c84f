package core

import (
	"fmt"
	"regexp"
	"slices"
)

const (
	MinTripDays = 1
	MaxTripDays = 30
)

var startMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Validate checks the invariants the flight compiler relies on. It belongs to
// the caller side of the pipeline; the compiler never calls it.
func (p SearchParams) Validate() error {
	if !slices.Contains(Departures, p.Departure) {
		return NewValidationError("departure", fmt.Sprintf("unsupported airport %q", p.Departure))
	}
	if !slices.Contains(Destinations, p.Destination) {
		return NewValidationError("destination", fmt.Sprintf("unsupported destination %q", p.Destination))
	}
	if !startMonthPattern.MatchString(p.StartMonth) {
		return NewValidationError("startMonth", "must look like YYYY-MM")
	}
	if p.MinDays < MinTripDays || p.MinDays > MaxTripDays {
		return NewValidationError("minDays", fmt.Sprintf("must be between %d and %d", MinTripDays, MaxTripDays))
	}
	if p.MaxDays < MinTripDays || p.MaxDays > MaxTripDays {
		return NewValidationError("maxDays", fmt.Sprintf("must be between %d and %d", MinTripDays, MaxTripDays))
	}
	if p.MaxDays < p.MinDays {
		return NewValidationError("maxDays", "must not be less than minDays")
	}
	if err := p.OutboundTime.validate("outboundTime"); err != nil {
		return err
	}
	if err := p.ReturnTime.validate("returnTime"); err != nil {
		return err
	}
	if _, ok := cabinDirectives[p.CabinClass]; !ok {
		return NewValidationError("cabinClass", fmt.Sprintf("unsupported cabin class %q", p.CabinClass))
	}
	if !isCanonical(airlineCodes, p.Airline) {
		return NewValidationError("airline", fmt.Sprintf("unsupported airline %q", p.Airline))
	}
	return nil
}

// Normalize rewrites short codes and aliases ("TPE", "any", "KE") to the
// display values the compiler matches on. Values it cannot parse are left
// untouched for Validate to reject.
func (p *SearchParams) Normalize() {
	if d, err := ParseDeparture(string(p.Departure)); err == nil {
		p.Departure = d
	}
	if d, err := ParseDestination(string(p.Destination)); err == nil {
		p.Destination = d
	}
	if p.CabinClass != "" {
		if c, err := ParseCabinClass(string(p.CabinClass)); err == nil {
			p.CabinClass = c
		}
	}
	if p.Airline != "" {
		if a, err := ParseAirline(string(p.Airline)); err == nil {
			p.Airline = a
		}
	}
}

func (r TimeRange) validate(field string) error {
	if r.Start < 0 || r.Start > 24 || r.End < 0 || r.End > 24 {
		return NewValidationError(field, "hours must be between 0 and 24")
	}
	if r.Start >= r.End {
		return NewValidationError(field, "start must be earlier than end")
	}
	return nil
}

// Validate checks the mode-specific fields of a guide query.
func (p TravelParams) Validate() error {
	switch p.Mode {
	case ModeInspiration, ModeAccommodation, ModeExplore:
	default:
		return NewValidationError("mode", fmt.Sprintf("unknown travel mode %q", p.Mode))
	}
	if !slices.Contains(Destinations, p.Destination) {
		return NewValidationError("destination", fmt.Sprintf("unsupported destination %q", p.Destination))
	}
	switch p.Mode {
	case ModeAccommodation:
		if p.AccomType != "" && !isCanonical(accommodationCodes, p.AccomType) {
			return NewValidationError("accomType", fmt.Sprintf("unsupported accommodation type %q", p.AccomType))
		}
		if p.PriceLevel != "" && !isCanonical(priceCodes, p.PriceLevel) {
			return NewValidationError("priceLevel", fmt.Sprintf("unsupported price level %q", p.PriceLevel))
		}
	case ModeExplore:
		if p.Category != "" && !isCanonical(categoryCodes, p.Category) {
			return NewValidationError("category", fmt.Sprintf("unsupported category %q", p.Category))
		}
		if p.FoodTag != "" && !slices.Contains(FoodTags, p.FoodTag) {
			return NewValidationError("foodTag", fmt.Sprintf("unsupported food tag %q", p.FoodTag))
		}
	}
	return nil
}

// Normalize rewrites aliases ("Accommodation", "any", "food") in the guide
// params to their display values.
func (p *TravelParams) Normalize() {
	if m, err := ParseTravelMode(string(p.Mode)); err == nil {
		p.Mode = m
	}
	if d, err := ParseDestination(string(p.Destination)); err == nil {
		p.Destination = d
	}
	if p.AccomType != "" {
		if v, err := ParseAccommodationType(string(p.AccomType)); err == nil {
			p.AccomType = v
		}
	}
	if p.PriceLevel != "" {
		if v, err := ParsePriceLevel(string(p.PriceLevel)); err == nil {
			p.PriceLevel = v
		}
	}
	if p.Category != "" {
		if v, err := ParseCategory(string(p.Category)); err == nil {
			p.Category = v
		}
	}
	if p.FoodTag != "" {
		if v, err := ParseFoodTag(p.FoodTag); err == nil {
			p.FoodTag = v
		}
	}
}

// isCanonical reports whether v is one of the display values in codes,
// rejecting the short codes themselves.
func isCanonical[T ~string](codes map[string]T, v T) bool {
	for _, c := range codes {
		if c == v {
			return true
		}
	}
	return false
}
