// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"strings"
	"time"
)

type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Region  string `json:"region,omitempty"`
}

// Key é a forma normalizada usada como chave de cache e de histórico (ex: "toronto,canada")
func (l Location) Key() string {
	city := strings.ToLower(strings.TrimSpace(l.City))
	country := strings.ToLower(strings.TrimSpace(l.Country))
	if country == "" {
		return city
	}
	return fmt.Sprintf("%s,%s", city, country)
}

func (l Location) String() string {
	if l.Country == "" {
		return l.City
	}
	return fmt.Sprintf("%s, %s", l.City, l.Country)
}

// ParseLocation aceita "Cidade, País" ou apenas "Cidade"
func ParseLocation(raw string) Location {
	parts := strings.SplitN(raw, ",", 2)
	loc := Location{City: strings.TrimSpace(parts[0])}
	if len(parts) == 2 {
		loc.Country = strings.TrimSpace(parts[1])
	}
	return loc
}

type HotelConfig struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      Location  `json:"location"`
	TotalRooms    int       `json:"total_rooms"`
	BaseOccupancy float64   `json:"base_occupancy"`
	MinPrice      float64   `json:"min_price"`
	MaxPrice      float64   `json:"max_price"`
	StarRating    int       `json:"star_rating"`
	AutoMode      bool      `json:"auto_mode"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// HotelSettings é a configuração de hotel recebida do cliente. Campos numéricos nil
// foram omitidos e recebem o valor padrão; zero explícito é mantido e validado.
type HotelSettings struct {
	Name          string   `json:"name"`
	Location      Location `json:"location"`
	TotalRooms    *int     `json:"total_rooms"`
	BaseOccupancy *float64 `json:"base_occupancy"`
	MinPrice      *float64 `json:"min_price"`
	MaxPrice      *float64 `json:"max_price"`
	StarRating    *int     `json:"star_rating"`
}

type CreateHotelRequest struct {
	HotelSettings
	AutoMode bool `json:"auto_mode"`
}

type UpdateHotelRequest struct {
	ID            string    `json:"id"`
	Name          *string   `json:"name"`
	Location      *Location `json:"location"`
	TotalRooms    *int      `json:"total_rooms"`
	BaseOccupancy *float64  `json:"base_occupancy"`
	MinPrice      *float64  `json:"min_price"`
	MaxPrice      *float64  `json:"max_price"`
	StarRating    *int      `json:"star_rating"`
	Active        *bool     `json:"active"`
}

// Apply copia para o hotel apenas os campos informados na requisição
func (r *UpdateHotelRequest) Apply(h *HotelConfig) {
	if r.Name != nil {
		h.Name = *r.Name
	}
	if r.Location != nil {
		h.Location = *r.Location
	}
	if r.TotalRooms != nil {
		h.TotalRooms = *r.TotalRooms
	}
	if r.BaseOccupancy != nil {
		h.BaseOccupancy = *r.BaseOccupancy
	}
	if r.MinPrice != nil {
		h.MinPrice = *r.MinPrice
	}
	if r.MaxPrice != nil {
		h.MaxPrice = *r.MaxPrice
	}
	if r.StarRating != nil {
		h.StarRating = *r.StarRating
	}
	if r.Active != nil {
		h.Active = *r.Active
	}
}

// Valores usados quando a configuração enviada na requisição omite campos
const (
	DefaultTotalRooms    = 100
	DefaultBaseOccupancy = 65.0
	DefaultMinPrice      = 80.0
	DefaultMaxPrice      = 500.0
	DefaultStarRating    = 3
)

// Config monta a configuração preenchendo apenas as chaves ausentes com os valores padrão
func (s HotelSettings) Config() HotelConfig {
	h := HotelConfig{
		Name:          s.Name,
		Location:      s.Location,
		TotalRooms:    DefaultTotalRooms,
		BaseOccupancy: DefaultBaseOccupancy,
		MinPrice:      DefaultMinPrice,
		MaxPrice:      DefaultMaxPrice,
		StarRating:    DefaultStarRating,
	}
	if s.TotalRooms != nil {
		h.TotalRooms = *s.TotalRooms
	}
	if s.BaseOccupancy != nil {
		h.BaseOccupancy = *s.BaseOccupancy
	}
	if s.MinPrice != nil {
		h.MinPrice = *s.MinPrice
	}
	if s.MaxPrice != nil {
		h.MaxPrice = *s.MaxPrice
	}
	if s.StarRating != nil {
		h.StarRating = *s.StarRating
	}
	return h
}

// DefaultHotelConfig é o hotel padrão de uma localização, usado nas consultas sem hotel cadastrado
func DefaultHotelConfig(location Location) HotelConfig {
	return HotelSettings{Location: location}.Config()
}

type AutoModeRequest struct {
	Enabled *bool `json:"enabled"`
}
