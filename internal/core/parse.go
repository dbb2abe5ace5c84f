package core

import (
	"fmt"
	"strings"
)

// The Parse functions accept either a short code ("TPE", "osaka", "CI",
// "near-subway") or the full display value, case-insensitively.

var airlineCodes = map[string]Airline{
	"ALL": AirlineAll,
	"CI":  AirlineCI,
	"BR":  AirlineBR,
	"JX":  AirlineJX,
	"IT":  AirlineIT,
	"AE":  AirlineAE,
	"MM":  AirlineMM,
	"TR":  AirlineTR,
	"GK":  AirlineGK,
	"OD":  AirlineOD,
	"VZ":  AirlineVZ,
	"AK":  AirlineAK,
	"KE":  AirlineKE,
	"OZ":  AirlineOZ,
	"7C":  Airline7C,
	"TW":  AirlineTW,
	"LJ":  AirlineLJ,
	"BX":  AirlineBX,
	"CX":  AirlineCX,
	"JL":  AirlineJL,
	"NH":  AirlineNH,
}

var cabinCodes = map[string]CabinClass{
	"economy":  CabinEconomy,
	"business": CabinBusiness,
	"mixed":    CabinMixed,
}

var accommodationCodes = map[string]AccommodationType{
	"budget":       AccomBudgetHotel,
	"homestay":     AccomHomestay,
	"near-subway":  AccomNearSubway,
	"near-airport": AccomNearAirport,
	"resort":       AccomResort,
	"capsule":      AccomCapsule,
	"luxury":       AccomLuxury,
}

var priceCodes = map[string]PriceLevel{
	"any":  PriceAny,
	"low":  PriceLow,
	"mid":  PriceMid,
	"high": PriceHigh,
}

var categoryCodes = map[string]TravelCategory{
	"food":        CategoryFood,
	"spot":        CategorySpot,
	"attractions": CategorySpot,
	"shopping":    CategoryShopping,
}

var foodTagCodes = map[string]string{
	"any":         FoodTags[0],
	"yakiniku":    FoodTags[1],
	"hotpot":      FoodTags[2],
	"ramen":       FoodTags[3],
	"sushi":       FoodTags[4],
	"izakaya":     FoodTags[5],
	"cafe":        FoodTags[6],
	"street-food": FoodTags[7],
}

func ParseDeparture(s string) (Departure, error) {
	s = strings.TrimSpace(s)
	for _, d := range Departures {
		if strings.EqualFold(s, string(d)) || strings.EqualFold(s, AirportCode(string(d))) || strings.EqualFold(s, CityName(string(d))) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown departure airport %q", s)
}

func ParseDestination(s string) (Destination, error) {
	s = strings.TrimSpace(s)
	for _, d := range Destinations {
		if strings.EqualFold(s, string(d)) || strings.EqualFold(s, d.City()) {
			return d, nil
		}
		for _, code := range destinationCodes(d) {
			if strings.EqualFold(s, code) {
				return d, nil
			}
		}
	}
	return "", fmt.Errorf("unknown destination %q", s)
}

func destinationCodes(d Destination) []string {
	name := string(d)
	open := strings.Index(name, "(")
	end := strings.LastIndex(name, ")")
	if open < 0 || end <= open {
		return nil
	}
	return strings.Split(name[open+1:end], "/")
}

func ParseAirline(s string) (Airline, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "any") {
		return AirlineAll, nil
	}
	if a, ok := airlineCodes[strings.ToUpper(s)]; ok {
		return a, nil
	}
	for _, a := range airlineCodes {
		if strings.EqualFold(s, string(a)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown airline %q", s)
}

func ParseCabinClass(s string) (CabinClass, error) {
	return lookup(cabinCodes, s, "cabin class")
}

func ParseAccommodationType(s string) (AccommodationType, error) {
	return lookup(accommodationCodes, s, "accommodation type")
}

func ParsePriceLevel(s string) (PriceLevel, error) {
	return lookup(priceCodes, s, "price level")
}

func ParseCategory(s string) (TravelCategory, error) {
	return lookup(categoryCodes, s, "category")
}

func ParseFoodTag(s string) (string, error) {
	return lookup(foodTagCodes, s, "food tag")
}

func ParseTravelMode(s string) (TravelMode, error) {
	switch m := TravelMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeInspiration, ModeAccommodation, ModeExplore:
		return m, nil
	}
	return "", fmt.Errorf("unknown travel mode %q", s)
}

func lookup[T ~string](codes map[string]T, s, what string) (T, error) {
	s = strings.TrimSpace(s)
	if v, ok := codes[strings.ToLower(s)]; ok {
		return v, nil
	}
	for _, v := range codes {
		if s == string(v) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", what, s)
}
