package pricing

import (
	"strings"
	"time"

	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
)

type RegionClass string

const (
	RegionCanada  RegionClass = "canada"
	RegionUS      RegionClass = "us"
	RegionDefault RegionClass = "default"
)

// Holiday é um feriado de data fixa (mês/dia) tratado como evento sintético
type Holiday struct {
	Month  time.Month
	Day    int
	Name   string
	Impact domain.Impact
}

// SeasonalCalendar guarda as tabelas de sazonalidade, dia da semana e feriados
type SeasonalCalendar struct {
	Seasonal  map[RegionClass]map[time.Month]float64
	DayOfWeek map[time.Weekday]float64
	Weekend   []time.Weekday
	Holidays  []Holiday
}

func DefaultCalendar() SeasonalCalendar {
	northAmerica := map[time.Month]float64{
		time.June: 1.15, time.July: 1.15, time.August: 1.15, time.December: 1.15,
		time.January: 0.90, time.February: 0.90,
	}

	return SeasonalCalendar{
		Seasonal: map[RegionClass]map[time.Month]float64{
			RegionCanada: {
				time.June: 1.20, time.July: 1.20, time.August: 1.20,
				time.December: 1.15, time.January: 1.15,
				time.March: 1.10, time.April: 1.10,
				time.February: 0.85, time.November: 0.85,
			},
			RegionUS:      northAmerica,
			RegionDefault: northAmerica,
		},
		DayOfWeek: map[time.Weekday]float64{
			time.Monday:    0.95,
			time.Tuesday:   0.98,
			time.Wednesday: 1.00,
			time.Thursday:  1.05,
			time.Friday:    1.20,
			time.Saturday:  1.25,
			time.Sunday:    1.10,
		},
		Weekend: []time.Weekday{time.Friday, time.Saturday},
		Holidays: []Holiday{
			{Month: time.January, Day: 1, Name: "New Year's Day", Impact: domain.ImpactMedium},
			{Month: time.July, Day: 1, Name: "Canada Day", Impact: domain.ImpactMedium},
			{Month: time.July, Day: 4, Name: "Independence Day", Impact: domain.ImpactMedium},
			{Month: time.December, Day: 24, Name: "Christmas Eve", Impact: domain.ImpactHigh},
			{Month: time.December, Day: 25, Name: "Christmas Day", Impact: domain.ImpactMedium},
			{Month: time.December, Day: 31, Name: "New Year's Eve", Impact: domain.ImpactHigh},
		},
	}
}

func (c SeasonalCalendar) RegionClass(loc domain.Location) RegionClass {
	for _, raw := range []string{loc.Region, loc.Country} {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "canada", "ca":
			return RegionCanada
		case "usa", "us", "united states", "united states of america":
			return RegionUS
		}
	}
	return RegionDefault
}

// SeasonalMultiplier retorna 1.0 quando o mês não consta na tabela da região
func (c SeasonalCalendar) SeasonalMultiplier(loc domain.Location, month time.Month) float64 {
	table, ok := c.Seasonal[c.RegionClass(loc)]
	if !ok {
		table = c.Seasonal[RegionDefault]
	}
	if m, ok := table[month]; ok {
		return m
	}
	return 1.0
}

func (c SeasonalCalendar) DayOfWeekMultiplier(day time.Weekday) float64 {
	if m, ok := c.DayOfWeek[day]; ok {
		return m
	}
	return 1.0
}

func (c SeasonalCalendar) IsWeekend(date time.Time) bool {
	for _, wd := range c.Weekend {
		if date.Weekday() == wd {
			return true
		}
	}
	return false
}

// Holiday devolve o feriado fixo da data como evento de mercado
func (c SeasonalCalendar) Holiday(date time.Time) (domain.MarketEvent, bool) {
	for _, h := range c.Holidays {
		if date.Month() == h.Month && date.Day() == h.Day {
			return domain.MarketEvent{
				Name:   h.Name,
				Date:   date,
				Impact: h.Impact,
				Source: "calendar",
				Type:   "holiday",
			}, true
		}
	}
	return domain.MarketEvent{}, false
}
