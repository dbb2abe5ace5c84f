package core

import (
	"context"
	"strings"

	"github.com/beetlebot/flyguide/internal/config"
)

type Capability string

const (
	CapFlightsSearch Capability = "flights.search"
	CapGuideSearch   Capability = "guide.search"
	CapWebGrounding  Capability = "web.grounding"
)

type ProviderTier string

const TierEasySignup ProviderTier = "easySignup"

type Departure string

const (
	DepartureTPE Departure = "Taoyuan (TPE)"
	DepartureTSA Departure = "Taipei Songshan (TSA)"
	DepartureRMQ Departure = "Taichung (RMQ)"
	DepartureKHH Departure = "Kaohsiung (KHH)"
)

// Departures lists the supported origin airports in display order.
var Departures = []Departure{DepartureTPE, DepartureTSA, DepartureRMQ, DepartureKHH}

type Destination string

const (
	DestinationOsaka     Destination = "Osaka (KIX)"
	DestinationTokyo     Destination = "Tokyo (NRT/HND)"
	DestinationFukuoka   Destination = "Fukuoka (FUK)"
	DestinationOkinawa   Destination = "Okinawa (OKA)"
	DestinationSapporo   Destination = "Sapporo (CTS)"
	DestinationNagoya    Destination = "Nagoya (NGO)"
	DestinationKumamoto  Destination = "Kumamoto (KMJ)"
	DestinationSendai    Destination = "Sendai (SDJ)"
	DestinationHakodate  Destination = "Hakodate (HKD)"
	DestinationHiroshima Destination = "Hiroshima (HIJ)"
	DestinationSeoul     Destination = "Seoul (ICN/GMP)"
	DestinationBusan     Destination = "Busan (PUS)"
	DestinationJeju      Destination = "Jeju (CJU)"
)

var Destinations = []Destination{
	DestinationOsaka, DestinationTokyo, DestinationFukuoka, DestinationOkinawa,
	DestinationSapporo, DestinationNagoya, DestinationKumamoto, DestinationSendai,
	DestinationHakodate, DestinationHiroshima, DestinationSeoul, DestinationBusan,
	DestinationJeju,
}

// City strips the parenthetical airport suffix: "Osaka (KIX)" -> "Osaka".
func (d Destination) City() string {
	return CityName(string(d))
}

// CityName returns the part of a display name before its first "(".
func CityName(name string) string {
	return strings.TrimSpace(strings.SplitN(name, "(", 2)[0])
}

// AirportCode returns the first airport code inside the parentheses of a
// display name, or "" when there is none: "Tokyo (NRT/HND)" -> "NRT".
func AirportCode(name string) string {
	open := strings.Index(name, "(")
	if open < 0 {
		return ""
	}
	rest := name[open+1:]
	end := strings.Index(rest, ")")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(rest[:end], "/", 2)[0])
}

type CabinClass string

const (
	CabinEconomy  CabinClass = "Economy (全程經濟)"
	CabinBusiness CabinClass = "Business (全程商務)"
	CabinMixed    CabinClass = "Mixed (去程經濟/回程商務)"
)

type Airline string

const (
	AirlineAll Airline = "All (所有航空公司)"
	AirlineCI  Airline = "China Airlines (中華航空)"
	AirlineBR  Airline = "EVA Air (長榮航空)"
	AirlineJX  Airline = "Starlux (星宇航空)"
	AirlineIT  Airline = "Tigerair Taiwan (台灣虎航)"
	AirlineAE  Airline = "Mandarin Airlines (華信航空)"
	AirlineMM  Airline = "Peach Aviation (樂桃航空)"
	AirlineTR  Airline = "Scoot (酷航)"
	AirlineGK  Airline = "Jetstar (捷星航空)"
	AirlineOD  Airline = "Batik Air (巴澤航空)"
	AirlineVZ  Airline = "Thai Vietjet (泰越捷航空)"
	AirlineAK  Airline = "AirAsia (亞洲航空)"
	AirlineKE  Airline = "Korean Air (大韓航空)"
	AirlineOZ  Airline = "Asiana Airlines (韓亞航空)"
	Airline7C  Airline = "Jeju Air (濟州航空)"
	AirlineTW  Airline = "T'way Air (德威航空)"
	AirlineLJ  Airline = "Jin Air (真航空)"
	AirlineBX  Airline = "Air Busan (釜山航空)"
	AirlineCX  Airline = "Cathay Pacific (國泰航空)"
	AirlineJL  Airline = "Japan Airlines (日航)"
	AirlineNH  Airline = "All Nippon Airways (全日空)"
)

type TimeRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// SearchParams is the flight query input. Callers validate it before the
// pipeline runs; the compiler assumes the invariants hold.
type SearchParams struct {
	Departure    Departure   `json:"departure"`
	Destination  Destination `json:"destination"`
	StartMonth   string      `json:"startMonth"`
	MinDays      int         `json:"minDays"`
	MaxDays      int         `json:"maxDays"`
	HasLuggage   bool        `json:"hasLuggage"`
	OutboundTime TimeRange   `json:"outboundTime"`
	ReturnTime   TimeRange   `json:"returnTime"`
	CabinClass   CabinClass  `json:"cabinClass"`
	Airline      Airline     `json:"airline"`
}

type FlightOption struct {
	ID           string   `json:"id"`
	Airline      string   `json:"airline"`
	Price        string   `json:"price"`
	Dates        string   `json:"dates"`
	OutboundDate string   `json:"outboundDate,omitempty"`
	ReturnDate   string   `json:"returnDate,omitempty"`
	Duration     string   `json:"duration"`
	Type         string   `json:"type"`
	Tags         []string `json:"tags"`
	Notes        string   `json:"notes"`
}

type FlightResponse struct {
	Flights []FlightOption `json:"flights"`
	Summary string         `json:"summary"`
}

type TravelMode string

const (
	ModeInspiration   TravelMode = "inspiration"
	ModeAccommodation TravelMode = "accommodation"
	ModeExplore       TravelMode = "explore"
)

type TravelCategory string

const (
	CategoryFood     TravelCategory = "美食 (Food)"
	CategorySpot     TravelCategory = "景點 (Attractions)"
	CategoryShopping TravelCategory = "購物 (Shopping)"
)

type AccommodationType string

const (
	AccomBudgetHotel AccommodationType = "平價商旅"
	AccomHomestay    AccommodationType = "特色民宿/Airbnb"
	AccomNearSubway  AccommodationType = "近地鐵站 (交通便利)"
	AccomNearAirport AccommodationType = "近機場 (早晚班機)"
	AccomResort      AccommodationType = "溫泉/度假飯店"
	AccomCapsule     AccommodationType = "膠囊旅館"
	AccomLuxury      AccommodationType = "高級飯店"
)

type PriceLevel string

const (
	PriceAny  PriceLevel = "不限預算"
	PriceLow  PriceLevel = "經濟 ($2000以下/晚)"
	PriceMid  PriceLevel = "舒適 ($2000-$4000/晚)"
	PriceHigh PriceLevel = "豪華 ($4000以上/晚)"
)

// FoodTagAny is the "no preference" food tag.
const FoodTagAny = "不限"

var FoodTags = []string{
	FoodTagAny,
	"燒肉 (Yakiniku)",
	"火鍋/壽喜燒 (Hotpot)",
	"拉麵 (Ramen)",
	"壽司/海鮮 (Sushi)",
	"居酒屋 (Izakaya)",
	"甜點/咖啡 (Cafe)",
	"街頭小吃 (Street Food)",
}

// TravelParams is the guide query input. Which fields matter depends on Mode.
type TravelParams struct {
	Mode           TravelMode        `json:"mode"`
	Destination    Destination       `json:"destination"`
	AccomType      AccommodationType `json:"accomType,omitempty"`
	PriceLevel     PriceLevel        `json:"priceLevel,omitempty"`
	Category       TravelCategory    `json:"category,omitempty"`
	FoodTag        string            `json:"foodTag,omitempty"`
	CenterLocation string            `json:"centerLocation,omitempty"`
	Keyword        string            `json:"keyword,omitempty"`
}

type TravelRecommendation struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	Subway          string   `json:"subway"`
	PriceLevel      string   `json:"priceLevel"`
	Rating          string   `json:"rating"`
	Tags            []string `json:"tags"`
	BookingPlatform string   `json:"bookingPlatform,omitempty"`
}

type TravelResponse struct {
	Recommendations []TravelRecommendation `json:"recommendations"`
	MapCenter       string                 `json:"mapCenter"`
}

type ProviderInfo struct {
	Name         string       `json:"name"`
	Capabilities []Capability `json:"capabilities"`
	Tier         ProviderTier `json:"tier"`
	Status       string       `json:"status"`
	Reason       string       `json:"reason,omitempty"`
}

type DoctorReport struct {
	Mode      config.Mode    `json:"mode"`
	Providers []ProviderInfo `json:"providers"`
	Healthy   bool           `json:"healthy"`
	Summary   string         `json:"summary"`
}

// Generator is the single call the pipeline makes: one instruction in, the
// provider's full text answer out.
type Generator interface {
	Generate(ctx context.Context, instruction string) (string, error)
}

// Provider is a Generator the router can register and report on.
type Provider interface {
	Generator
	Name() string
	Tier() ProviderTier
	Capabilities() []Capability
	Available() (bool, string)
}
