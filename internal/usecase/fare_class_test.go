package usecase

import (
	"testing"

	"travel-ledger-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCabinForFareClass(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"first", "F", entity.CabinFirst},
		{"lower case first", "p", entity.CabinFirst},
		{"padded business", " J ", entity.CabinBusiness},
		{"premium economy", "W", entity.CabinPremiumEconomy},
		{"economy", "K", entity.CabinEconomy},
		{"multi letter code is not read by its first letter", "PE", entity.CabinEconomy},
		{"unknown code", "ZZ", entity.CabinEconomy},
		{"blank", "", entity.CabinEconomy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CabinForFareClass(tt.code))
		})
	}
}

func TestIsEconomyFareClass(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"discount economy", "H", true},
		{"full fare economy", "Y", true},
		{"lower case padded", " q ", true},
		{"business", "J", false},
		{"multi letter code", "YB", false},
		{"blank", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEconomyFareClass(tt.code))
		})
	}
}
