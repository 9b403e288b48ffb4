// Package store holds the process-lifetime state of the site. Each
// store owns one semantic container behind a single mutex, so every
// read-then-write (the booking check-then-set above all) is one
// critical section. Nothing here survives a restart.
package store

import "errors"

// Sentinel errors returned by store operations. Services translate
// these into client-facing errors with proper messages.
var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrSlotBooked      = errors.New("slot already booked")
	ErrBookingNotFound = errors.New("booking not found")
	ErrBanNotFound     = errors.New("ban record not found")
	ErrEnquiryNotFound = errors.New("enquiry not found")
)
