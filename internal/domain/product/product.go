package product

import (
	"fmt"
	"strings"
	"time"

	sharedvo "github.com/corpit/licensedesk/internal/domain/shared/valueobjects"
	"github.com/corpit/licensedesk/internal/shared/biztime"
)

type Type string

const (
	TypeSoftware Type = "Software"
	TypeOS       Type = "OS"
	TypeHardware Type = "Hardware"
)

var typesByKey = map[string]Type{
	"software": TypeSoftware,
	"os":       TypeOS,
	"hardware": TypeHardware,
}

// ParseType matches case-insensitively.
func ParseType(s string) (Type, error) {
	t, ok := typesByKey[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("invalid product type: %s", s)
	}
	return t, nil
}

type LicenseUnit string

const (
	UnitUser   LicenseUnit = "User"
	UnitDevice LicenseUnit = "Device"
)

var validUnits = map[LicenseUnit]bool{
	UnitUser:   true,
	UnitDevice: true,
}

func ParseLicenseUnit(s string) (LicenseUnit, error) {
	unit := LicenseUnit(sharedvo.TitleToken(s))
	if !validUnits[unit] {
		return "", fmt.Errorf("invalid license unit: %s", s)
	}
	return unit, nil
}

const (
	MinValidityMonths = 1
	MaxValidityMonths = 120
	maxNameLength     = 100
)

// Product is a catalog entry licenses are issued against.
type Product struct {
	id                    uint
	name                  string
	productType           Type
	licenseUnit           LicenseUnit
	defaultValidityMonths int
	createdAt             time.Time
	updatedAt             time.Time
}

type Details struct {
	Name                  string
	Type                  string
	LicenseUnit           string
	DefaultValidityMonths int
}

type normalized struct {
	name     string
	typ      Type
	unit     LicenseUnit
	validity int
}

func (d Details) normalize() (normalized, error) {
	name, err := sharedvo.RequiredText("name", d.Name, maxNameLength)
	if err != nil {
		return normalized{}, err
	}
	typ, err := ParseType(d.Type)
	if err != nil {
		return normalized{}, err
	}
	unit, err := ParseLicenseUnit(d.LicenseUnit)
	if err != nil {
		return normalized{}, err
	}
	if d.DefaultValidityMonths < MinValidityMonths || d.DefaultValidityMonths > MaxValidityMonths {
		return normalized{}, fmt.Errorf("default validity must be between %d and %d months", MinValidityMonths, MaxValidityMonths)
	}
	return normalized{name: name, typ: typ, unit: unit, validity: d.DefaultValidityMonths}, nil
}

func NewProduct(details Details) (*Product, error) {
	n, err := details.normalize()
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Product{
		name:                  n.name,
		productType:           n.typ,
		licenseUnit:           n.unit,
		defaultValidityMonths: n.validity,
		createdAt:             now,
		updatedAt:             now,
	}, nil
}

func ReconstructProduct(
	id uint,
	name string,
	productType Type,
	licenseUnit LicenseUnit,
	defaultValidityMonths int,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	return &Product{
		id:                    id,
		name:                  name,
		productType:           productType,
		licenseUnit:           licenseUnit,
		defaultValidityMonths: defaultValidityMonths,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}, nil
}

func (p *Product) ID() uint                   { return p.id }
func (p *Product) Name() string               { return p.name }
func (p *Product) Type() Type                 { return p.productType }
func (p *Product) LicenseUnit() LicenseUnit   { return p.licenseUnit }
func (p *Product) DefaultValidityMonths() int { return p.defaultValidityMonths }
func (p *Product) CreatedAt() time.Time       { return p.createdAt }
func (p *Product) UpdatedAt() time.Time       { return p.updatedAt }

// SetID sets the product ID after persistence
func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Product) Update(details Details) error {
	n, err := details.normalize()
	if err != nil {
		return err
	}
	p.name = n.name
	p.productType = n.typ
	p.licenseUnit = n.unit
	p.defaultValidityMonths = n.validity
	p.updatedAt = biztime.NowUTC()
	return nil
}
