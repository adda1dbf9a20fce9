// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"fieldforce/internal/domain/geo"

	"github.com/google/uuid"
)

// VisitStatus represents the review state of a submitted visit.
type VisitStatus string

const (
	// VisitStatusPlanned indicates the visit has been scheduled but not performed.
	VisitStatusPlanned VisitStatus = "PLANNED"
	// VisitStatusCompleted indicates the field user submitted the visit.
	VisitStatusCompleted VisitStatus = "COMPLETED"
	// VisitStatusValidated indicates a supervisor accepted the visit.
	VisitStatusValidated VisitStatus = "VALIDATED"
	// VisitStatusRejected indicates a supervisor rejected the visit.
	VisitStatusRejected VisitStatus = "REJECTED"
)

// String returns the string representation of the VisitStatus.
func (s VisitStatus) String() string {
	return string(s)
}

// IsValid checks if the VisitStatus is a valid value.
func (s VisitStatus) IsValid() bool {
	switch s {
	case VisitStatusPlanned, VisitStatusCompleted, VisitStatusValidated, VisitStatusRejected:
		return true
	default:
		return false
	}
}

// Visit records field work actually performed at a store, optionally linked
// to the assignment that scheduled it. Check-in coordinates, when present,
// are classified against the store geofence at submission time; the outcome
// is advisory metadata and never blocks the visit.
type Visit struct {
	ID               uuid.UUID   // The Global Unique Identifier (GUID) for the visit.
	VisitDate        time.Time   // When the visit was submitted.
	Status           VisitStatus // COMPLETED on submission, VALIDATED/REJECTED after review.
	SalesAmount      *float64    // Reported sales, when captured.
	ShelfShare       *float64    // Shelf-share metric, when captured.
	InteractionCount *int        // Number of customer interactions, when captured.
	Comment          string      // Free-text comment, possibly extended with a geofence warning.
	CheckInLatitude  *float64    // Latitude reported by the mobile client at check-in.
	CheckInLongitude *float64    // Longitude reported by the mobile client at check-in.
	UserID           uuid.UUID   // The user who performed the visit.
	StoreID          uuid.UUID   // The visited store.
	AssignmentID     *uuid.UUID  // The originating assignment, when the visit was scheduled.
	CreatedAt        time.Time   // Timestamp of when this visit was persisted.
	UpdatedAt        time.Time   // Timestamp of the last modification.
}

// CheckInLocation returns the reported check-in coordinates, or nil when the
// client did not report a position.
func (v *Visit) CheckInLocation() *geo.Coordinates {
	if v.CheckInLatitude == nil || v.CheckInLongitude == nil {
		return nil
	}

	return &geo.Coordinates{Latitude: *v.CheckInLatitude, Longitude: *v.CheckInLongitude}
}
