package request

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	licensevo "github.com/corpit/licensedesk/internal/domain/license/valueobjects"
	sharedvo "github.com/corpit/licensedesk/internal/domain/shared/valueobjects"
	"github.com/corpit/licensedesk/internal/shared/biztime"
)

const (
	maxNameLength  = 100
	maxTopicLength = 200
)

// Request is a purchase or service request raised by a user and settled by an admin.
type Request struct {
	id          uint
	name        string
	date        time.Time
	topic       string
	description string
	currency    string
	amount      decimal.Decimal
	status      Status
	requestedBy uint
	processedBy string
	createdAt   time.Time
	processedAt *time.Time
}

type Submission struct {
	Name        string
	Date        time.Time
	Topic       string
	Description string
	Currency    string
	Amount      decimal.Decimal
	RequestedBy uint
}

func NewRequest(s Submission) (*Request, error) {
	name, err := sharedvo.RequiredText("name", s.Name, maxNameLength)
	if err != nil {
		return nil, err
	}
	topic, err := sharedvo.RequiredText("topic", s.Topic, maxTopicLength)
	if err != nil {
		return nil, err
	}
	description := strings.TrimSpace(s.Description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if s.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}
	if s.RequestedBy == 0 {
		return nil, fmt.Errorf("requester is required")
	}
	if s.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative")
	}

	currency := ""
	if strings.TrimSpace(s.Currency) != "" {
		if currency, err = licensevo.NormalizeCurrency(s.Currency); err != nil {
			return nil, err
		}
	} else if s.Amount.IsPositive() {
		return nil, fmt.Errorf("currency is required when an amount is given")
	}

	return &Request{
		name:        name,
		date:        biztime.Date(s.Date),
		topic:       topic,
		description: description,
		currency:    currency,
		amount:      s.Amount,
		status:      StatusPending,
		requestedBy: s.RequestedBy,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructRequest(
	id uint,
	name string,
	date time.Time,
	topic, description, currency string,
	amount decimal.Decimal,
	status Status,
	requestedBy uint,
	processedBy string,
	createdAt time.Time,
	processedAt *time.Time,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid request status: %s", status)
	}
	return &Request{
		id:          id,
		name:        name,
		date:        date,
		topic:       topic,
		description: description,
		currency:    currency,
		amount:      amount,
		status:      status,
		requestedBy: requestedBy,
		processedBy: processedBy,
		createdAt:   createdAt,
		processedAt: processedAt,
	}, nil
}

func (r *Request) ID() uint                { return r.id }
func (r *Request) Name() string            { return r.name }
func (r *Request) Date() time.Time         { return r.date }
func (r *Request) Topic() string           { return r.topic }
func (r *Request) Description() string     { return r.description }
func (r *Request) Currency() string        { return r.currency }
func (r *Request) Amount() decimal.Decimal { return r.amount }
func (r *Request) Status() Status          { return r.status }
func (r *Request) RequestedBy() uint       { return r.requestedBy }
func (r *Request) ProcessedBy() string     { return r.processedBy }
func (r *Request) CreatedAt() time.Time    { return r.createdAt }
func (r *Request) ProcessedAt() *time.Time { return r.processedAt }

// SetID sets the request ID after persistence
func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// Process moves the request to target. Reaching a terminal status stamps
// processedBy and processedAt, which never change afterwards.
func (r *Request) Process(target Status, by string, at time.Time) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid request status: %s", target)
	}
	if !r.status.CanTransitionTo(target) {
		return ErrInvalidTransition(r.status, target)
	}
	by = strings.TrimSpace(by)
	if by == "" {
		return fmt.Errorf("processor is required")
	}

	r.status = target
	if target.IsTerminal() {
		at = at.UTC()
		r.processedBy = by
		r.processedAt = &at
	}
	return nil
}
