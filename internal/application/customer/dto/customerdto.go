package dto

import (
	"time"

	"github.com/corpit/licensedesk/internal/domain/customer"
)

// CustomerRequest is the body for creating or replacing a customer.
type CustomerRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	ContactPerson string `json:"contact_person" binding:"required,max=100"`
	Email         string `json:"email" binding:"required,email,max=100"`
	Phone         string `json:"phone" binding:"required,max=20"`
	Location      string `json:"location" binding:"required,max=100"`
}

func (r CustomerRequest) Details() customer.Details {
	return customer.Details{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Location:      r.Location,
	}
}

type ListCustomersRequest struct {
	Search   string `form:"search"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

type CustomerResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Location      string    `json:"location"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ListCustomersResponse struct {
	Items    []CustomerResponse `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
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
