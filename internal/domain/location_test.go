package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFindLocation(t *testing.T) {
	locations := []Location{
		{ID: "1", Name: "Centro", Cost: decimal.NewFromInt(5), Active: true},
		{ID: "2", Name: "Norte", Cost: decimal.NewFromInt(8), Active: false},
	}

	loc, ok := FindLocation(locations, " Centro ")
	assert.True(t, ok)
	assert.Equal(t, "1", loc.ID)

	_, ok = FindLocation(locations, "Norte")
	assert.False(t, ok)
}

func TestNewImage(t *testing.T) {
	img, ok := NewImage("products", "milk.jpg")
	assert.True(t, ok)
	assert.Equal(t, "milk.jpg", img.ObjectKey)

	for _, bad := range []string{"", "..", "a/b.jpg", "../x.png", `a\b.png`} {
		_, ok := NewImage("products", bad)
		assert.False(t, ok, bad)
	}
}
