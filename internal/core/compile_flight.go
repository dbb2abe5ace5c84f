package core

import (
	"fmt"
	"strings"
)

// DisplayLanguage is the language the provider must write values in.
const DisplayLanguage = "Traditional Chinese"

// SearchWindowMonths is how far past the start month fares are searched.
const SearchWindowMonths = 3

// Query is a compiled instruction plus the description of the output block
// the provider is asked to return.
type Query struct {
	Instruction string
	SchemaHint  string
}

// Prompt is the single text sent to the provider.
func (q Query) Prompt() string {
	return q.Instruction + "\n\n" + q.SchemaHint
}

const flightSchemaHint = "Output format:\n" +
	"You must output exactly one JSON object wrapped in a ```json ... ``` code block.\n" +
	"All keys must be exactly the English keys shown below; all values must be written in " + DisplayLanguage + ".\n" +
	"{\n" +
	"  \"summary\": \"One-sentence market overview. If the cabin is mixed, explain the combination. If the list is empty, explain why.\",\n" +
	"  \"flights\": [\n" +
	"    {\n" +
	"      \"airline\": \"Airline name\",\n" +
	"      \"price\": \"Price (e.g. NT$8,500)\",\n" +
	"      \"dates\": \"Display date range (e.g. 5/12 - 5/16)\",\n" +
	"      \"outboundDate\": \"Outbound date, YYYY-MM-DD\",\n" +
	"      \"returnDate\": \"Return date, YYYY-MM-DD\",\n" +
	"      \"duration\": \"Flight time (e.g. 3h 20m)\",\n" +
	"      \"type\": \"直飛\",\n" +
	"      \"tags\": [\"最低價\", \"早去晚回\"],\n" +
	"      \"notes\": \"Notes (e.g. economy out / business back / bag included)\"\n" +
	"    }\n" +
	"  ]\n" +
	"}"

// CompileFlightQuery turns validated SearchParams into the provider
// instruction. It is pure: the same params always produce the same text.
func CompileFlightQuery(p SearchParams) Query {
	var b strings.Builder

	fmt.Fprintf(&b, "Role: You are Taiwan's most thorough airfare comparison specialist.\n\n")
	fmt.Fprintf(&b, "Task: Find the cheapest round-trip NONSTOP (direct, non-stop) fares from %q to %q.\n\n", p.Departure, p.Destination)

	b.WriteString("Hard rules:\n")
	b.WriteString("1. Nonstop only. Never return an itinerary with a transfer or layover.\n")
	b.WriteString("2. If there is no nonstop service for this combination, or the requested airline does not fly this route, explain it honestly in \"summary\" and return an empty \"flights\" list.\n\n")

	b.WriteString("Search criteria:\n")
	fmt.Fprintf(&b, "1. Departure airport: %s.\n", p.Departure)
	fmt.Fprintf(&b, "2. Airlines: %s\n", airlineDirective(p))
	fmt.Fprintf(&b, "3. Start month: %s. Search fares departing within the %d months starting from this month.\n", p.StartMonth, SearchWindowMonths)
	fmt.Fprintf(&b, "4. Trip length: between %d and %d days, inclusive.\n", p.MinDays, p.MaxDays)
	fmt.Fprintf(&b, "5. Baggage: %s\n", baggageDirective(p.HasLuggage))
	fmt.Fprintf(&b, "6. Departure times: %s\n", timeDirective(p.OutboundTime, p.ReturnTime))
	fmt.Fprintf(&b, "7. Cabin: %s\n\n", cabinDirectives[p.CabinClass])

	b.WriteString("Search strategy:\n")
	b.WriteString("1. Use Google Search to find real fares from this airport for this period.\n")
	b.WriteString("2. Filter strictly on departure airport, nonstop, trip length, time windows, airline and cabin.\n")
	b.WriteString("3. Return the 4-5 best nonstop options on different dates.")

	return Query{Instruction: b.String(), SchemaHint: flightSchemaHint}
}

func airlineDirective(p SearchParams) string {
	if p.Airline != AirlineAll {
		return fmt.Sprintf("[Strict airline restriction] Only search and show flights operated by %q. Do not substitute any other carrier, codeshare partner or subsidiary. If this airline has no nonstop service on this route, return an empty \"flights\" list and explain why in \"summary\".", p.Airline)
	}
	if IsKoreaRoute(p.Destination) {
		return KoreaCarrierShortlist
	}
	return originCarrierShortlists[p.Departure] + " " + originExclusion(p.Departure)
}

func originExclusion(origin Departure) string {
	var others []string
	for _, d := range Departures {
		if d != origin {
			others = append(others, string(d))
		}
	}
	return fmt.Sprintf("Strictly exclude flights departing from %s.", strings.Join(others, ", "))
}

func baggageDirective(hasLuggage bool) string {
	if hasLuggage {
		return "Quoted prices MUST include one 20kg checked bag."
	}
	return "Quoted prices should be basic fares with carry-on baggage only."
}

func timeDirective(outbound, inbound TimeRange) string {
	return fmt.Sprintf("[Strict time windows] Outbound flights must depart within %s. Return flights must depart within %s. Discard any flight departing outside these windows.",
		formatWindow(outbound), formatWindow(inbound))
}

func formatWindow(r TimeRange) string {
	return formatHour(r.Start) + "-" + formatHour(r.End)
}

func formatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}
