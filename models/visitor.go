package models

// Visit is one tracked page request.
type Visit struct {
	Path string `json:"path"` // Request path
	At   string `json:"at"`   // Timestamp of the request
}

// Visitor is one entry per distinct tracking-cookie identifier.
type Visitor struct {
	ID         string  `json:"id"`          // Cookie identifier
	FirstSeen  string  `json:"first_seen"`  // Timestamp of the first tracked request
	LastSeen   string  `json:"last_seen"`   // Timestamp of the latest tracked request
	VisitCount int     `json:"visit_count"` // Total tracked requests since first seen
	RemoteAddr string  `json:"remote_addr"` // Client network address at last visit
	LastPath   string  `json:"last_path"`   // Path of the latest tracked request
	Visits     []Visit `json:"visits"`      // Most recent visits, capped at 10
}

// VisitorSummary aggregates the visitor store for the admin dashboard.
type VisitorSummary struct {
	TotalVisitors     int `json:"total_visitors"`
	ReturningVisitors int `json:"returning_visitors"`
	TotalVisits       int `json:"total_visits"`
}
