package usecase

import (
	"strings"

	"travel-ledger-service/internal/domain/entity"
)

var fareClassCabins = map[string]string{
	"F": entity.CabinFirst, "A": entity.CabinFirst, "P": entity.CabinFirst,
	"J": entity.CabinBusiness, "R": entity.CabinBusiness, "D": entity.CabinBusiness,
	"I": entity.CabinBusiness, "C": entity.CabinBusiness,
	"W": entity.CabinPremiumEconomy, "E": entity.CabinPremiumEconomy,
}

// Economy booking classes eligible for upgrade detection
var economyFareClasses = map[string]bool{
	"Y": true, "B": true, "M": true, "H": true, "K": true, "L": true, "G": true, "V": true,
	"S": true, "N": true, "Q": true, "O": true, "T": true, "U": true, "X": true, "Z": true,
}

func normalizeFareClass(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CabinForFareClass maps a booking class to its cabin. Unknown or blank
// codes are economy.
func CabinForFareClass(code string) string {
	if cabin, ok := fareClassCabins[normalizeFareClass(code)]; ok {
		return cabin
	}
	return entity.CabinEconomy
}

// IsEconomyFareClass reports whether code is a discount or full-fare economy class
func IsEconomyFareClass(code string) bool {
	return economyFareClasses[normalizeFareClass(code)]
}

// IsPremiumCabin reports whether cabin is First or Business
func IsPremiumCabin(cabin string) bool {
	return cabin == entity.CabinFirst || cabin == entity.CabinBusiness
}
