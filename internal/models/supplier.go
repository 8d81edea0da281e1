package models

// Supplier represents an onboarded vendor that can bid on RFPs.
type Supplier struct {
	ID                 int64  `db:"id" json:"id"`
	Name               string `db:"name" json:"name"`
	RegistrationNumber string `db:"registration_number" json:"registrationNumber"`
	Address            string `db:"address" json:"address"`
}
