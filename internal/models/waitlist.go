package models

import "time"

// Waitlist categories. Each category is a separate list with its own page.
const (
	WaitlistTransientDocking    = "Transient Docking"
	WaitlistIndoorWinterStorage = "Indoor Winter Storage"
	WaitlistOutdoorWinter       = "Outdoor Winter Storage"
	WaitlistJetSkiDockage       = "Jet Ski Dockage"
	WaitlistSeasonalBoatDockage = "Seasonal Boat Dockage"
)

// WaitlistTypes lists every known waitlist category.
var WaitlistTypes = []string{
	WaitlistTransientDocking,
	WaitlistIndoorWinterStorage,
	WaitlistOutdoorWinter,
	WaitlistJetSkiDockage,
	WaitlistSeasonalBoatDockage,
}

// Waitlist entry statuses, in rough lifecycle order.
const (
	WaitlistStatusWaiting   = "Waiting"
	WaitlistStatusContacted = "Contacted"
	WaitlistStatusOfferMade = "Offer Made"
	WaitlistStatusAccepted  = "Accepted - Pending"
	WaitlistStatusFulfilled = "Fulfilled"
	WaitlistStatusDeclined  = "Declined"
	WaitlistStatusArchived  = "Archived"
)

// WaitlistStatuses lists the accepted status labels.
var WaitlistStatuses = []string{
	WaitlistStatusWaiting,
	WaitlistStatusContacted,
	WaitlistStatusOfferMade,
	WaitlistStatusAccepted,
	WaitlistStatusFulfilled,
	WaitlistStatusDeclined,
	WaitlistStatusArchived,
}

// VesselTypes lists the vessel type options on the waitlist form.
var VesselTypes = []string{"Boat", "Jet Ski", "PWC", "Dinghy", "Other"}

// WaitlistEntry is a request for dockage or storage that cannot be
// satisfied yet. Name is the only required field.
type WaitlistEntry struct {
	ID                  int64     `json:"id"`
	WaitlistType        string    `json:"waitlist_type"`
	Name                string    `json:"name"`
	Phone               string    `json:"phone,omitempty"`
	Email               string    `json:"email,omitempty"`
	Address             string    `json:"address,omitempty"`
	BoatName            string    `json:"boat_name,omitempty"`
	BoatLicense         string    `json:"boat_license,omitempty"`
	TrailerLicensePlate string    `json:"trailer_license_plate,omitempty"`
	BoatOrJetSki        string    `json:"boat_or_jet_ski,omitempty"`
	BoatWidth           string    `json:"boat_width,omitempty"`
	BoatLength          string    `json:"boat_length,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

// ValidWaitlistType reports whether t is a known waitlist category.
func ValidWaitlistType(t string) bool {
	for _, known := range WaitlistTypes {
		if known == t {
			return true
		}
	}
	return false
}

// ValidWaitlistStatus reports whether s is a known status label.
func ValidWaitlistStatus(s string) bool {
	for _, known := range WaitlistStatuses {
		if known == s {
			return true
		}
	}
	return false
}
