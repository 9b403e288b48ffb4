// Package enquiries owns the contact-form submission lifecycle.
package enquiries

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"pawsitive/models"
	"pawsitive/store"
	"pawsitive/utils"
)

// Input carries a contact-form submission. All fields are required.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Update carries an administrative enquiry change. Nil fields are left
// untouched; supplying nothing is an error. Completed is the legacy
// flag, mapped onto the status enumeration.
type Update struct {
	Status    *string `json:"status"`
	Completed *bool   `json:"completed"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Message   *string `json:"message"`
}

type DefaultEnquiryService struct {
	Store  *store.EnquiryStore
	Logger *zap.Logger
}

// Submit validates and stores a new enquiry with status new.
func (s *DefaultEnquiryService) Submit(input Input) (models.Enquiry, error) {
	for _, field := range []struct{ name, value string }{
		{"Name", input.Name},
		{"Email", input.Email},
		{"Phone", input.Phone},
		{"Message", input.Message},
	} {
		if strings.TrimSpace(field.value) == "" {
			return models.Enquiry{}, utils.ValidationError("%s is required.", field.name)
		}
	}

	now := utils.Timestamp()
	enquiry := s.Store.Add(models.Enquiry{
		ID:        utils.NewID(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Message:   strings.TrimSpace(input.Message),
		Status:    models.StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	})
	s.Logger.Info("enquiry submitted", zap.String("enquiry_id", enquiry.ID))
	return enquiry, nil
}

// UpdateEnquiry applies an administrative change: a status change, the
// legacy completed flag, or edits to the contact fields.
func (s *DefaultEnquiryService) UpdateEnquiry(id string, update Update) (models.Enquiry, error) {
	if update.Status == nil && update.Completed == nil &&
		update.Name == nil && update.Email == nil &&
		update.Phone == nil && update.Message == nil {
		return models.Enquiry{}, utils.ValidationError("No changes supplied.")
	}

	var status models.Status
	if update.Status != nil {
		parsed, ok := models.ParseStatus(*update.Status)
		if !ok {
			return models.Enquiry{}, utils.ValidationError("Status must be one of new, in_progress or complete.")
		}
		status = parsed
	}
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"Name", update.Name},
		{"Email", update.Email},
		{"Phone", update.Phone},
		{"Message", update.Message},
	} {
		if field.value != nil && strings.TrimSpace(*field.value) == "" {
			return models.Enquiry{}, utils.ValidationError("%s cannot be empty.", field.name)
		}
	}

	now := utils.Timestamp()
	enquiry, err := s.Store.Update(id, func(e *models.Enquiry) {
		if update.Status != nil {
			setStatus(e, status, now)
		}
		if update.Completed != nil {
			if *update.Completed {
				setStatus(e, models.StatusComplete, now)
			} else {
				setStatus(e, models.StatusNew, now)
			}
		}
		if update.Name != nil {
			e.Name = strings.TrimSpace(*update.Name)
		}
		if update.Email != nil {
			e.Email = strings.TrimSpace(*update.Email)
		}
		if update.Phone != nil {
			e.Phone = strings.TrimSpace(*update.Phone)
		}
		if update.Message != nil {
			e.Message = strings.TrimSpace(*update.Message)
		}
		e.UpdatedAt = now
	})
	if err != nil {
		if errors.Is(err, store.ErrEnquiryNotFound) {
			return models.Enquiry{}, utils.NotFoundError("No enquiry found with that id.")
		}
		return models.Enquiry{}, err
	}

	s.Logger.Info("enquiry updated",
		zap.String("enquiry_id", enquiry.ID),
		zap.String("status", string(enquiry.Status)),
	)
	return enquiry, nil
}

// setStatus keeps the legacy completed flag and its timestamp in step
// with the status enumeration.
func setStatus(e *models.Enquiry, status models.Status, now string) {
	e.Status = status
	if status == models.StatusComplete {
		if !e.Completed {
			e.CompletedAt = now
		}
		e.Completed = true
	} else {
		e.Completed = false
		e.CompletedAt = ""
	}
}

// Delete removes an enquiry permanently.
func (s *DefaultEnquiryService) Delete(id string) error {
	if err := s.Store.Remove(id); err != nil {
		if errors.Is(err, store.ErrEnquiryNotFound) {
			return utils.NotFoundError("No enquiry found with that id.")
		}
		return err
	}
	s.Logger.Info("enquiry deleted", zap.String("enquiry_id", id))
	return nil
}

// List returns every enquiry, newest first.
func (s *DefaultEnquiryService) List() []models.Enquiry {
	return s.Store.All()
}
