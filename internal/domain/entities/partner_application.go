package entities

import "time"

type PartnerApplicationStatus string

const (
	PartnerApplicationSubmitted PartnerApplicationStatus = "submitted"
	PartnerApplicationCompleted PartnerApplicationStatus = "completed"
)

// DocumentSlot names one file a partner uploads.
type DocumentSlot string

const (
	SlotToolsPhoto      DocumentSlot = "tools_photo"
	SlotIDDocument      DocumentSlot = "id_document"
	SlotProofOfAddress  DocumentSlot = "proof_of_address"
	SlotRightToWork     DocumentSlot = "right_to_work"
	SlotPublicLiability DocumentSlot = "public_liability"
	SlotDBS             DocumentSlot = "dbs"
	SlotProfilePhoto    DocumentSlot = "profile_photo"
)

// DocumentSlots is the upload order presented to applicants.
var DocumentSlots = []DocumentSlot{
	SlotToolsPhoto,
	SlotIDDocument,
	SlotProofOfAddress,
	SlotRightToWork,
	SlotPublicLiability,
	SlotDBS,
	SlotProfilePhoto,
}

// PartnerApplication is a tradesperson applying to join the network.
type PartnerApplication struct {
	ID                string
	FullName          string
	Email             string
	Phone             string
	Street            string
	City              string
	State             string
	PostalCode        string
	Country           string
	BusinessStructure string
	WorkTypes         []string
	AreaCoverage      []string
	Vehicle           string
	TeamSize          string
	Declaration       bool
	Status            PartnerApplicationStatus
	DocumentURLs      map[DocumentSlot]string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UploadURL is a pre-signed upload target for one document slot.
type UploadURL struct {
	URL       string
	Method    string
	Path      string
	ExpiresAt time.Time
}
