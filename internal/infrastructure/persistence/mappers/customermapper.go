package mappers

import (
	"github.com/corpit/licensedesk/internal/domain/customer"
	"github.com/corpit/licensedesk/internal/domain/product"
	"github.com/corpit/licensedesk/internal/infrastructure/persistence/models"
)

func CustomerToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:            c.ID(),
		Name:          c.Name(),
		ContactPerson: c.ContactPerson(),
		Email:         c.Email(),
		Phone:         c.Phone(),
		Location:      c.Location(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func CustomerToDomain(m *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(m.ID, customer.Details{
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Email:         m.Email,
		Phone:         m.Phone,
		Location:      m.Location,
	}, m.CreatedAt.UTC(), m.UpdatedAt.UTC())
}

func ProductToModel(p *product.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:                    p.ID(),
		Name:                  p.Name(),
		ProductType:           string(p.Type()),
		LicenseUnit:           string(p.LicenseUnit()),
		DefaultValidityMonths: p.DefaultValidityMonths(),
		CreatedAt:             p.CreatedAt(),
		UpdatedAt:             p.UpdatedAt(),
	}
}

func ProductToDomain(m *models.ProductModel) (*product.Product, error) {
	typ, err := product.ParseType(m.ProductType)
	if err != nil {
		return nil, err
	}
	unit, err := product.ParseLicenseUnit(m.LicenseUnit)
	if err != nil {
		return nil, err
	}
	return product.ReconstructProduct(m.ID, m.Name, typ, unit, m.DefaultValidityMonths, m.CreatedAt.UTC(), m.UpdatedAt.UTC())
}
