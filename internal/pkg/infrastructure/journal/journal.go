// Package journal receives the tracking events that the emulated tracker
// dispatches, in place of the Piwik PRO collection endpoint.
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	SiteID     string         `json:"siteId"`
	VisitorID  string         `json:"visitorId"`
	UserID     string         `json:"userId,omitempty"`
	UserEmail  string         `json:"userEmail,omitempty"`
	NewSession bool           `json:"newSession,omitempty"`
	Anonymized bool           `json:"anonymized,omitempty"`
	Params     map[string]any `json:"params,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// NewEventID returns a lexically sortable id for an event recorded at t.
func NewEventID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}

type Journal interface {
	Write(ctx context.Context, events []Event) error
}

type tee []Journal

// Tee returns a Journal that writes every batch to all of journals.
func Tee(journals ...Journal) Journal {
	return tee(journals)
}

func (t tee) Write(ctx context.Context, events []Event) error {
	var errs []error

	for _, j := range t {
		if err := j.Write(ctx, events); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
