package permission

import "github.com/corpit/licensedesk/internal/shared/authorization"

const (
	ResourceCustomer     = "customer"
	ResourceProduct      = "product"
	ResourceLicense      = "license"
	ResourceDashboard    = "dashboard"
	ResourceNotification = "notification"
	ResourceRequest      = "request"
	ResourceSettings     = "settings"
)

const (
	ActionRead    = "read"
	ActionWrite   = "write"
	ActionDelete  = "delete"
	ActionSend    = "send"
	ActionCreate  = "create"
	ActionReadOwn = "read_own"
	ActionProcess = "process"
	ActionUpdate  = "update"
)

// DefaultPolicies grants admins everything and regular users read access to
// the license desk plus their own requests and account settings.
var DefaultPolicies = [][3]string{
	{authorization.RoleAdmin.String(), "*", "*"},

	{authorization.RoleUser.String(), ResourceCustomer, ActionRead},
	{authorization.RoleUser.String(), ResourceProduct, ActionRead},
	{authorization.RoleUser.String(), ResourceLicense, ActionRead},
	{authorization.RoleUser.String(), ResourceDashboard, ActionRead},
	{authorization.RoleUser.String(), ResourceRequest, ActionCreate},
	{authorization.RoleUser.String(), ResourceRequest, ActionReadOwn},
	{authorization.RoleUser.String(), ResourceSettings, ActionUpdate},
}
