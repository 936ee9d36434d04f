package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Location: зона доставки со стоимостью доставки.
type Location struct {
	ID     string
	Name   string
	Cost   decimal.Decimal
	Active bool
}

// FindLocation ищет активную зону доставки по имени.
func FindLocation(locations []Location, name string) (*Location, bool) {
	name = strings.TrimSpace(name)
	for i := range locations {
		if locations[i].Active && locations[i].Name == name {
			return &locations[i], true
		}
	}

	return nil, false
}
