package mock

import (
	"fmt"
	"math/rand"
	"regexp"
)

var (
	mapCenterRe = regexp.MustCompile(`"mapCenter": "([^"]*)"`)
	categoryRe  = regexp.MustCompile(`"category": "([^"]*)"`)
	bookingRe   = regexp.MustCompile(`"bookingPlatform"`)
)

type mockPlaceTemplate struct {
	Name   string
	Subway string
	Price  string
	Tags   []string
}

var mockPlaceTemplates = []mockPlaceTemplate{
	{"車站前商務旅館", "步行 3 分鐘", "$2,400/晚", []string{"交通便利"}},
	{"老街拉麵店", "步行 5 分鐘", "¥1,200/人", []string{"在地人推薦"}},
	{"河畔市場", "步行 8 分鐘", "¥2,000/人", []string{"海鮮", "早市"}},
	{"城市展望台", "步行 6 分鐘", "¥1,800", []string{"夜景"}},
	{"百年神社", "步行 10 分鐘", "免費", []string{"文化"}},
	{"地下街購物中心", "直結", "依店家", []string{"雨天備案"}},
	{"溫泉旅館", "接駁車 15 分鐘", "$5,600/晚", []string{"大浴場"}},
	{"咖啡甜點店", "步行 4 分鐘", "¥900/人", []string{"甜點"}},
}

var mockPlatforms = []string{"Booking", "Agoda", "Airbnb"}

type mockPlace struct {
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

type mockGuidePayload struct {
	MapCenter       string      `json:"mapCenter"`
	Recommendations []mockPlace `json:"recommendations"`
}

func mockGuide(instruction string, rng *rand.Rand) mockGuidePayload {
	center := "City Center"
	if m := mapCenterRe.FindStringSubmatch(instruction); m != nil && m[1] != "" {
		center = m[1]
	}
	category := "景點"
	if m := categoryRe.FindStringSubmatch(instruction); m != nil {
		category = m[1]
	}
	withBooking := bookingRe.MatchString(instruction)

	count := 5 + rng.Intn(2)
	perm := rng.Perm(len(mockPlaceTemplates))
	recs := make([]mockPlace, 0, count)
	for i := 0; i < count; i++ {
		tpl := mockPlaceTemplates[perm[i%len(perm)]]
		rec := mockPlace{
			Name:        tpl.Name,
			Category:    category,
			Description: fmt.Sprintf("%s附近的模擬推薦。", center),
			Location:    fmt.Sprintf("%s %s", center, tpl.Name),
			Subway:      tpl.Subway,
			PriceLevel:  tpl.Price,
			Rating:      fmt.Sprintf("%.1f", 3.8+float64(rng.Intn(12))/10),
			Tags:        tpl.Tags,
		}
		if withBooking {
			rec.BookingPlatform = mockPlatforms[rng.Intn(len(mockPlatforms))]
		}
		recs = append(recs, rec)
	}

	return mockGuidePayload{MapCenter: center, Recommendations: recs}
}
