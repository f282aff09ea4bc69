package models

import "fmt"

// LocationSummary is a single row returned by a location search
type LocationSummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	URL       string  `json:"url"`
}

// Details formats the region/country line shown under a suggestion
func (l LocationSummary) Details() string {
	if l.Region == "" {
		return l.Country
	}
	return fmt.Sprintf("%s, %s", l.Region, l.Country)
}
