package mock

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"time"
)

var (
	startMonthRe = regexp.MustCompile(`Start month: (\d{4}-\d{2})`)
	tripDaysRe   = regexp.MustCompile(`between (\d+) and (\d+) days`)
	onlyAirline  = regexp.MustCompile(`flights operated by "([^"]+)"`)
)

var mockCarriers = []string{
	"星宇航空", "長榮航空", "中華航空", "台灣虎航", "樂桃航空", "酷航", "捷星航空",
}

type mockFlight struct {
	Airline      string   `json:"airline"`
	Price        string   `json:"price"`
	Dates        string   `json:"dates"`
	OutboundDate string   `json:"outboundDate"`
	ReturnDate   string   `json:"returnDate"`
	Duration     string   `json:"duration"`
	Type         string   `json:"type"`
	Tags         []string `json:"tags"`
	Notes        string   `json:"notes"`
}

type mockFlightPayload struct {
	Summary string       `json:"summary"`
	Flights []mockFlight `json:"flights"`
}

func mockFlights(instruction string, rng *rand.Rand) mockFlightPayload {
	start := time.Now().UTC().AddDate(0, 1, 0)
	if m := startMonthRe.FindStringSubmatch(instruction); m != nil {
		if t, err := time.Parse("2006-01", m[1]); err == nil {
			start = t
		}
	}
	minDays, maxDays := 3, 5
	if m := tripDaysRe.FindStringSubmatch(instruction); m != nil {
		minDays, _ = strconv.Atoi(m[1])
		maxDays, _ = strconv.Atoi(m[2])
	}
	carriers := mockCarriers
	if m := onlyAirline.FindStringSubmatch(instruction); m != nil {
		carriers = []string{m[1]}
	}

	count := 4 + rng.Intn(2)
	flights := make([]mockFlight, 0, count)
	cheapest := 0
	prices := make([]int, 0, count)
	for i := 0; i < count; i++ {
		out := start.AddDate(0, 0, rng.Intn(85))
		days := minDays
		if maxDays > minDays {
			days += rng.Intn(maxDays - minDays + 1)
		}
		back := out.AddDate(0, 0, days-1)
		price := 5200 + rng.Intn(90)*100
		prices = append(prices, price)
		if price < prices[cheapest] {
			cheapest = i
		}
		mins := 150 + rng.Intn(120)

		flights = append(flights, mockFlight{
			Airline:      carriers[rng.Intn(len(carriers))],
			Price:        formatTWD(price),
			Dates:        fmt.Sprintf("%d/%d - %d/%d", out.Month(), out.Day(), back.Month(), back.Day()),
			OutboundDate: out.Format("2006-01-02"),
			ReturnDate:   back.Format("2006-01-02"),
			Duration:     fmt.Sprintf("%dh %dm", mins/60, mins%60),
			Type:         "直飛",
			Tags:         []string{},
			Notes:        "模擬資料",
		})
	}
	flights[cheapest].Tags = append(flights[cheapest].Tags, "最低價")

	return mockFlightPayload{
		Summary: fmt.Sprintf("模擬模式：共 %d 個直飛選項，最低 %s。", count, formatTWD(prices[cheapest])),
		Flights: flights,
	}
}

func formatTWD(n int) string {
	return fmt.Sprintf("NT$%d,%03d", n/1000, n%1000)
}
