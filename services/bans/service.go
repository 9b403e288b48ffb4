// Package bans owns access restrictions keyed by client network
// identifier, enforced by the ban-check middleware on every request.
package bans

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"pawsitive/models"
	"pawsitive/store"
	"pawsitive/utils"
)

type DefaultBanService struct {
	Store  *store.BanStore
	Logger *zap.Logger
}

// Ban creates or reactivates the ban for identifier. The bool reports
// whether a new record was created.
func (s *DefaultBanService) Ban(identifier, reason string) (models.BanRecord, bool, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return models.BanRecord{}, false, utils.ValidationError("Identifier is required.")
	}
	record, created := s.Store.Upsert(identifier, strings.TrimSpace(reason), utils.Timestamp())
	s.Logger.Info("visitor banned",
		zap.String("identifier", identifier),
		zap.Bool("created", created),
	)
	return record, created, nil
}

// Unban lifts the ban for identifier, keeping the record inactive.
func (s *DefaultBanService) Unban(identifier string) (models.BanRecord, error) {
	record, err := s.Store.Deactivate(strings.TrimSpace(identifier), utils.Timestamp())
	if err != nil {
		if errors.Is(err, store.ErrBanNotFound) {
			return models.BanRecord{}, utils.NotFoundError("No ban found for that identifier.")
		}
		return models.BanRecord{}, err
	}
	s.Logger.Info("visitor unbanned", zap.String("identifier", record.Identifier))
	return record, nil
}

// IsBanned reports whether identifier holds an active ban.
func (s *DefaultBanService) IsBanned(identifier string) bool {
	return s.Store.IsBanned(identifier)
}

// List returns every ban record, most recently updated first.
func (s *DefaultBanService) List() []models.BanRecord {
	return s.Store.All()
}
