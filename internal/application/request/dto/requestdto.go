package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/corpit/licensedesk/internal/domain/request"
	"github.com/corpit/licensedesk/internal/shared/biztime"
)

type SubmitRequestRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Topic       string          `json:"topic" binding:"required,max=200"`
	Description string          `json:"description" binding:"required"`
	Currency    string          `json:"currency" binding:"omitempty,len=3"`
	Amount      decimal.Decimal `json:"amount"`
}

type ProcessRequestRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListRequestsRequest struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=20" binding:"min=1,max=100"`
}

type RequestResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Date        string     `json:"date"`
	Topic       string     `json:"topic"`
	Description string     `json:"description"`
	Currency    string     `json:"currency,omitempty"`
	Amount      string     `json:"amount"`
	Status      string     `json:"status"`
	RequestedBy uint       `json:"requested_by"`
	ProcessedBy string     `json:"processed_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

type ListRequestsResponse struct {
	Items    []RequestResponse `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

func ToRequestResponse(r *request.Request) RequestResponse {
	return RequestResponse{
		ID:          r.ID(),
		Name:        r.Name(),
		Date:        biztime.FormatDate(r.Date()),
		Topic:       r.Topic(),
		Description: r.Description(),
		Currency:    r.Currency(),
		Amount:      r.Amount().StringFixed(2),
		Status:      r.Status().String(),
		RequestedBy: r.RequestedBy(),
		ProcessedBy: r.ProcessedBy(),
		CreatedAt:   r.CreatedAt(),
		ProcessedAt: r.ProcessedAt(),
	}
}
