package models

// BanRecord is an access restriction keyed by client network identifier
// (an IP or forwarded-for address). At most one record exists per
// identifier; re-banning reactivates the existing record.
type BanRecord struct {
	Identifier string `json:"identifier"` // Client network identifier
	Active     bool   `json:"active"`     // False once unbanned; the record is kept
	Reason     string `json:"reason"`     // Reason given when the ban was placed
	CreatedAt  string `json:"created_at"` // Timestamp when the record was created
	UpdatedAt  string `json:"updated_at"` // Timestamp of the last ban/unban
}
