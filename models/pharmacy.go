package models

// Pharmacy is the provider profile. Location is free text ("Cairo, Egypt")
// and drives timezone resolution.
type Pharmacy struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	PhoneNumber        string   `json:"phoneNumber"`
	Location           string   `json:"location"`
	Nationality        string   `json:"nationality,omitempty"`
	LogoURL            string   `json:"logoUrl,omitempty"`
	InsuranceProviders []string `json:"insuranceProviders,omitempty"`
	InsuranceDocument  string   `json:"insuranceDocument,omitempty"`
}
