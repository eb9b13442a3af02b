package customer

import (
	"fmt"
	"time"

	sharedvo "github.com/corpit/licensedesk/internal/domain/shared/valueobjects"
	"github.com/corpit/licensedesk/internal/shared/biztime"
)

const (
	maxNameLength     = 100
	maxLocationLength = 100
	maxPhoneLength    = 20
)

// Customer is a client organisation that holds licenses.
type Customer struct {
	id            uint
	name          string
	contactPerson string
	email         string
	phone         string
	location      string
	createdAt     time.Time
	updatedAt     time.Time
}

// Details carries the editable customer fields. All are required.
type Details struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Location      string
}

func (d Details) normalize() (Details, error) {
	var err error
	out := Details{}
	if out.Name, err = sharedvo.RequiredText("name", d.Name, maxNameLength); err != nil {
		return out, err
	}
	if out.ContactPerson, err = sharedvo.RequiredText("contact person", d.ContactPerson, maxNameLength); err != nil {
		return out, err
	}
	if out.Email, err = sharedvo.NormalizeEmail(d.Email); err != nil {
		return out, err
	}
	if out.Phone, err = sharedvo.RequiredText("phone", d.Phone, maxPhoneLength); err != nil {
		return out, err
	}
	if out.Location, err = sharedvo.RequiredText("location", d.Location, maxLocationLength); err != nil {
		return out, err
	}
	return out, nil
}

func NewCustomer(details Details) (*Customer, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Customer{
		name:          d.Name,
		contactPerson: d.ContactPerson,
		email:         d.Email,
		phone:         d.Phone,
		location:      d.Location,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructCustomer(id uint, details Details, createdAt, updatedAt time.Time) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	return &Customer{
		id:            id,
		name:          details.Name,
		contactPerson: details.ContactPerson,
		email:         details.Email,
		phone:         details.Phone,
		location:      details.Location,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Customer) ID() uint              { return c.id }
func (c *Customer) Name() string          { return c.name }
func (c *Customer) ContactPerson() string { return c.contactPerson }
func (c *Customer) Email() string         { return c.email }
func (c *Customer) Phone() string         { return c.phone }
func (c *Customer) Location() string      { return c.location }
func (c *Customer) CreatedAt() time.Time  { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time  { return c.updatedAt }

// SetID sets the customer ID after persistence
func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

// Update replaces every editable field.
func (c *Customer) Update(details Details) error {
	d, err := details.normalize()
	if err != nil {
		return err
	}
	c.name = d.Name
	c.contactPerson = d.ContactPerson
	c.email = d.Email
	c.phone = d.Phone
	c.location = d.Location
	c.updatedAt = biztime.NowUTC()
	return nil
}
