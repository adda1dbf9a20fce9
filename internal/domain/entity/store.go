// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"fieldforce/internal/domain/geo"

	"github.com/google/uuid"
)

// StoreType distinguishes organized retail chains from independent shops.
type StoreType string

const (
	// StoreTypeOrganized indicates an organized retail store (chains, large format).
	StoreTypeOrganized StoreType = "OR"
	// StoreTypeIndependent indicates an independent retail store.
	StoreTypeIndependent StoreType = "IR"
)

// String returns the string representation of the StoreType.
func (t StoreType) String() string {
	return string(t)
}

// IsValid checks if the StoreType is a valid value.
func (t StoreType) IsValid() bool {
	switch t {
	case StoreTypeOrganized, StoreTypeIndependent:
		return true
	default:
		return false
	}
}

// Store is a retail location promoters are scheduled to. Immutable from the
// scheduling core's perspective; its coordinates anchor the visit geofence.
type Store struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the store.
	Name      string    // The store's display name.
	Type      StoreType // OR (organized) or IR (independent) retail.
	City      string    // City the store is located in.
	Latitude  float64   // The geographic latitude of the storefront.
	Longitude float64   // The geographic longitude of the storefront.
	Address   string    // The full street address.
	CreatedAt time.Time // Timestamp of when this store was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Location returns the store coordinates used as the geofence center.
func (s *Store) Location() geo.Coordinates {
	return geo.Coordinates{Latitude: s.Latitude, Longitude: s.Longitude}
}
