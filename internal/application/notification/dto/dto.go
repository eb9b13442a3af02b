package dto

import (
	licensedto "github.com/corpit/licensedesk/internal/application/license/dto"
)

type ListExpiringRequest struct {
	Within *int `form:"within" binding:"omitempty,gte=0,lte=3650"`
}

type ExpiringLicensesResponse struct {
	Within   int                     `json:"within"`
	AsOf     string                  `json:"as_of"`
	Licenses []licensedto.LicenseDTO `json:"licenses"`
}

type SendRemindersRequest struct {
	LicenseIDs []uint `json:"license_ids" binding:"required,min=1,max=500"`
	// Note is Markdown added to every reminder.
	Note string `json:"note" binding:"max=5000"`
}

type SendTestReminderRequest struct {
	LicenseID uint   `json:"license_id" binding:"required"`
	To        string `json:"to" binding:"required,email"`
	Note      string `json:"note" binding:"max=5000"`
}

type ReminderOutcome struct {
	LicenseID uint   `json:"license_id"`
	Recipient string `json:"recipient,omitempty"`
	Type      string `json:"type,omitempty"`
	Sent      bool   `json:"sent"`
	Skipped   bool   `json:"skipped,omitempty"`
	Error     string `json:"error,omitempty"`
}

type SendRemindersResponse struct {
	Total    int               `json:"total"`
	Sent     int               `json:"sent"`
	Failed   int               `json:"failed"`
	Skipped  int               `json:"skipped"`
	Message  string            `json:"message"`
	Outcomes []ReminderOutcome `json:"outcomes"`
}
