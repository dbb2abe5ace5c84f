package core

import (
	"fmt"
	"strings"
)

const (
	defaultStayKeyword    = "clean and well reviewed"
	defaultExploreKeyword = "popular local picks"
)

// CompileGuideQuery turns validated TravelParams into the provider
// instruction for one of the three guide modes.
func CompileGuideQuery(p TravelParams) Query {
	city := p.Destination.City()
	switch p.Mode {
	case ModeAccommodation:
		return compileAccommodation(p, city)
	case ModeExplore:
		return compileExplore(p, city)
	default:
		return compileInspiration(city)
	}
}

func compileInspiration(city string) Query {
	var b strings.Builder
	fmt.Fprintf(&b, "Role: You are a veteran travel blogger based in %s.\n\n", city)
	fmt.Fprintf(&b, "Task: Put together a \"must-see and must-eat\" starter guide for a first-time independent traveller to %s.\n\n", city)
	b.WriteString("Search strategy:\n")
	fmt.Fprintf(&b, "1. Search for the 5 most popular sights and the 5 most talked-about food experiences in %s right now.\n", city)
	b.WriteString("2. Do not personalize and ignore any user keyword; list the classic must-visit picks.\n")
	b.WriteString("3. Return 8-10 items in total, mixing sights and food.")

	return Query{
		Instruction: b.String(),
		SchemaHint:  guideSchemaHint(city, "Sight (or Food)", false),
	}
}

func compileAccommodation(p TravelParams, city string) Query {
	accom := p.AccomType
	if accom == "" {
		accom = AccomBudgetHotel
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Role: You are a local hotel-booking expert in %s.\n\n", city)
	fmt.Fprintf(&b, "Task: Recommend 5-6 places to stay in %s of the type %q.\n", city, accom)
	fmt.Fprintf(&b, "User keyword: %q\n", keywordOr(p.Keyword, defaultStayKeyword))
	if p.PriceLevel != "" && p.PriceLevel != PriceAny {
		fmt.Fprintf(&b, "[Strict budget] The nightly rate must be within %s.\n", p.PriceLevel)
	}
	if req := AccommodationRequirement(accom); req != "" {
		b.WriteString(req + "\n")
	}
	b.WriteString("\nRequirements:\n")
	b.WriteString("1. Focus on good value and genuinely well-reviewed options.\n")
	b.WriteString("2. Give a nightly price range for each option.\n")
	b.WriteString("3. Suggest a booking platform for each option (e.g. Booking, Agoda, Airbnb).")

	return Query{
		Instruction: b.String(),
		SchemaHint:  guideSchemaHint(city+" Station", string(accom), true),
	}
}

// ExploreAnchor is the point explore recommendations are centred on: the
// chosen lodging when there is one, else the city's main station.
func ExploreAnchor(p TravelParams) string {
	if strings.TrimSpace(p.CenterLocation) != "" {
		return strings.TrimSpace(p.CenterLocation)
	}
	return p.Destination.City() + " Station"
}

func compileExplore(p TravelParams, city string) Query {
	center := ExploreAnchor(p)
	category := p.Category
	if category == "" {
		category = CategoryFood
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Role: You are a local guide in %s.\n\n", city)
	fmt.Fprintf(&b, "Task: Recommend 5-6 %q places around %q.\n", category, center)
	if category == CategoryFood && p.FoodTag != "" && p.FoodTag != FoodTagAny {
		fmt.Fprintf(&b, "Only recommend places of the type %q.\n", p.FoodTag)
	}
	fmt.Fprintf(&b, "User keyword: %q\n", keywordOr(p.Keyword, defaultExploreKeyword))
	b.WriteString("\nRequirements:\n")
	fmt.Fprintf(&b, "1. [Location limit] Every place must be within walking distance or a short transit ride of %q. Do not recommend anything far away.\n", center)
	n := 2
	if category == CategoryFood {
		fmt.Fprintf(&b, "%d. Include the average price per person.\n", n)
		n++
	}
	fmt.Fprintf(&b, "%d. Give coordinates or a precise place name that Google Maps can find.", n)

	return Query{
		Instruction: b.String(),
		SchemaHint:  guideSchemaHint(center, string(category), false),
	}
}

func keywordOr(keyword, fallback string) string {
	if k := strings.TrimSpace(keyword); k != "" {
		return k
	}
	return fallback
}

func guideSchemaHint(mapCenter, category string, withBooking bool) string {
	var b strings.Builder
	b.WriteString("Output format:\n")
	b.WriteString("You must output exactly one JSON object wrapped in a ```json ... ``` code block.\n")
	fmt.Fprintf(&b, "All keys must be exactly the English keys shown below; all values must be written in %s.\n", DisplayLanguage)
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"mapCenter\": %q,\n", mapCenter)
	b.WriteString("  \"recommendations\": [\n")
	b.WriteString("    {\n")
	b.WriteString("      \"name\": \"Place name (Traditional Chinese + original name)\",\n")
	fmt.Fprintf(&b, "      \"category\": %q,\n", category)
	b.WriteString("      \"description\": \"One-sentence highlight\",\n")
	b.WriteString("      \"location\": \"Address or precise map search name\",\n")
	b.WriteString("      \"subway\": \"Nearest station and walking time\",\n")
	b.WriteString("      \"priceLevel\": \"Estimated cost\",\n")
	b.WriteString("      \"rating\": \"Rating (e.g. 4.5)\",\n")
	if withBooking {
		b.WriteString("      \"tags\": [\"...\"],\n")
		b.WriteString("      \"bookingPlatform\": \"Suggested booking platform (Agoda/Booking/Airbnb)\"\n")
	} else {
		b.WriteString("      \"tags\": [\"...\"]\n")
	}
	b.WriteString("    }\n")
	b.WriteString("  ]\n")
	b.WriteString("}")
	return b.String()
}
