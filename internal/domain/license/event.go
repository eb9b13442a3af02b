package license

import (
	"fmt"
	"strings"
	"time"

	"github.com/corpit/licensedesk/internal/shared/biztime"
)

const (
	EventTypeIssued   = "issued"
	EventTypeUpgraded = "upgraded"
	EventTypeRenewed  = "renewed"
	EventTypeDeleted  = "deleted"
)

var ValidEventTypes = map[string]bool{
	EventTypeIssued:   true,
	EventTypeUpgraded: true,
	EventTypeRenewed:  true,
	EventTypeDeleted:  true,
}

// Event is one row of the append-only lifecycle log. Events outlive the
// license they describe; the deleted event is its tombstone.
type Event struct {
	id         uint
	licenseID  uint
	eventType  string
	actor      string
	occurredAt time.Time
	before     *Snapshot
	after      *Snapshot
}

func NewEvent(licenseID uint, eventType, actor string, before, after *Snapshot) (*Event, error) {
	if licenseID == 0 {
		return nil, fmt.Errorf("license ID cannot be zero")
	}
	if !ValidEventTypes[eventType] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEventType, eventType)
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = "system"
	}

	return &Event{
		licenseID:  licenseID,
		eventType:  eventType,
		actor:      actor,
		occurredAt: biztime.NowUTC(),
		before:     before,
		after:      after,
	}, nil
}

func ReconstructEvent(id, licenseID uint, eventType, actor string, occurredAt time.Time, before, after *Snapshot) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if !ValidEventTypes[eventType] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEventType, eventType)
	}
	return &Event{
		id:         id,
		licenseID:  licenseID,
		eventType:  eventType,
		actor:      actor,
		occurredAt: occurredAt,
		before:     before,
		after:      after,
	}, nil
}

func (e *Event) ID() uint              { return e.id }
func (e *Event) LicenseID() uint       { return e.licenseID }
func (e *Event) EventType() string     { return e.eventType }
func (e *Event) Actor() string         { return e.actor }
func (e *Event) OccurredAt() time.Time { return e.occurredAt }
func (e *Event) Before() *Snapshot     { return e.before }
func (e *Event) After() *Snapshot      { return e.after }

func (e *Event) SetID(id uint) {
	e.id = id
}
