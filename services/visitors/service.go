// Package visitors projects the site-traffic store for tracking and
// the admin dashboard.
package visitors

import (
	"sort"

	"pawsitive/models"
	"pawsitive/store"
	"pawsitive/utils"
)

// Overview is the admin-facing traffic report.
type Overview struct {
	Summary  models.VisitorSummary `json:"summary"`
	Visitors []models.Visitor      `json:"visitors"`
}

type DefaultVisitorService struct {
	Store *store.VisitorStore
}

// Track records one page request for the given cookie identifier.
func (s *DefaultVisitorService) Track(id, path, addr string) models.Visitor {
	return s.Store.Track(id, path, addr, utils.Timestamp())
}

// Overview lists all tracked visitors sorted by last-seen descending,
// with aggregate counts.
func (s *DefaultVisitorService) Overview() Overview {
	visitors := s.Store.All()
	sort.Slice(visitors, func(i, j int) bool {
		if visitors[i].LastSeen != visitors[j].LastSeen {
			return visitors[i].LastSeen > visitors[j].LastSeen
		}
		return visitors[i].ID < visitors[j].ID
	})

	summary := models.VisitorSummary{TotalVisitors: len(visitors)}
	for _, visitor := range visitors {
		summary.TotalVisits += visitor.VisitCount
		if visitor.VisitCount > 1 {
			summary.ReturningVisitors++
		}
	}
	return Overview{Summary: summary, Visitors: visitors}
}
