package models

// CarePackageRecord is a confirmed care-package session as returned by the
// backend. It only carries a start instant; the end is synthesized.
type CarePackageRecord struct {
	ID                  int    `json:"id"`
	ProviderID          int    `json:"providerId"`
	AppointmentDatetime string `json:"appointmentDatetime"`
	PackageID           int    `json:"packageId"`
	CarePackageName     string `json:"carePackageName"`
	RoomID              string `json:"roomId"`
	UserEmail           string `json:"userEmail"`
	UserNote            string `json:"userNote"`
	DoctorNote          string `json:"doctorNote"`
}
