package dto

import (
	"time"

	"github.com/corpit/licensedesk/internal/domain/product"
)

// ProductRequest is the body for creating or replacing a catalog product.
type ProductRequest struct {
	Name                  string `json:"name" binding:"required,max=100"`
	Type                  string `json:"type" binding:"required"`
	LicenseUnit           string `json:"license_unit" binding:"required"`
	DefaultValidityMonths int    `json:"default_validity_months" binding:"required,gte=1,lte=120"`
}

func (r ProductRequest) Details() product.Details {
	return product.Details{
		Name:                  r.Name,
		Type:                  r.Type,
		LicenseUnit:           r.LicenseUnit,
		DefaultValidityMonths: r.DefaultValidityMonths,
	}
}

type ListProductsRequest struct {
	Type     string `form:"type"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

type ProductResponse struct {
	ID                    uint      `json:"id"`
	Name                  string    `json:"name"`
	Type                  string    `json:"type"`
	LicenseUnit           string    `json:"license_unit"`
	DefaultValidityMonths int       `json:"default_validity_months"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type ListProductsResponse struct {
	Items    []ProductResponse `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:                    p.ID(),
		Name:                  p.Name(),
		Type:                  string(p.Type()),
		LicenseUnit:           string(p.LicenseUnit()),
		DefaultValidityMonths: p.DefaultValidityMonths(),
		CreatedAt:             p.CreatedAt(),
		UpdatedAt:             p.UpdatedAt(),
	}
}
