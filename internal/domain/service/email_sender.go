package service

import (
	"context"
	"time"
)

// DropAlertEmail carries everything the drop alert template needs.
type DropAlertEmail struct {
	FishermanName string
	DropTitle     string
	LocationName  string
	SpeciesNames  []string
	SaleStartAt   time.Time
	DropURL       string
}

// EmailSender defines the interface for sending transactional email.
type EmailSender interface {
	// Send delivers one HTML email to a single recipient.
	Send(ctx context.Context, to, subject, htmlBody string) error

	// SendDropAlert renders and delivers a drop alert email to one recipient.
	SendDropAlert(ctx context.Context, to string, alert *DropAlertEmail) error
}
