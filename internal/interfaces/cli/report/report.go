package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	licensedto "github.com/corpit/licensedesk/internal/application/license/dto"
	notificationdto "github.com/corpit/licensedesk/internal/application/notification/dto"
)

const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

type Summary struct {
	TotalCustomers       int64 `yaml:"total_customers"`
	ActiveLicenses       int64 `yaml:"active_licenses"`
	ExpiringSoonLicenses int64 `yaml:"expiring_soon_licenses"`
	ExpiredLicenses      int64 `yaml:"expired_licenses"`
	IssuedLast7Days      int64 `yaml:"issued_last_7_days"`
	RenewedLast7Days     int64 `yaml:"renewed_last_7_days"`
}

type LicenseRow struct {
	ID            uint   `yaml:"id"`
	Customer      string `yaml:"customer"`
	Product       string `yaml:"product"`
	Quantity      string `yaml:"quantity"`
	ExpiryDate    string `yaml:"expiry_date"`
	DaysRemaining int    `yaml:"days_remaining"`
	Status        string `yaml:"status"`
}

// Report is the desk overview printed by the report command.
type Report struct {
	AsOf            string       `yaml:"as_of"`
	Within          int          `yaml:"within"`
	NextReminderRun string       `yaml:"next_reminder_run,omitempty"`
	Summary         Summary      `yaml:"summary"`
	Licenses        []LicenseRow `yaml:"licenses"`
}

// Build combines the dashboard counters with the expiring-license list.
func Build(stats *licensedto.DashboardStatsDTO, expiring *notificationdto.ExpiringLicensesResponse, nextRun string) *Report {
	r := &Report{
		AsOf:            stats.AsOf,
		Within:          expiring.Within,
		NextReminderRun: nextRun,
		Summary: Summary{
			TotalCustomers:       stats.TotalCustomers,
			ActiveLicenses:       stats.ActiveLicenses,
			ExpiringSoonLicenses: stats.ExpiringSoonLicenses,
			ExpiredLicenses:      stats.ExpiredLicenses,
			IssuedLast7Days:      stats.IssuedLast7Days,
			RenewedLast7Days:     stats.RenewedLast7Days,
		},
		Licenses: make([]LicenseRow, 0, len(expiring.Licenses)),
	}

	for _, l := range expiring.Licenses {
		quantity := strconv.Itoa(l.Quantity)
		if l.LicenseUnit != "" {
			quantity += " " + l.LicenseUnit
		}
		r.Licenses = append(r.Licenses, LicenseRow{
			ID:            l.ID,
			Customer:      l.CustomerName,
			Product:       l.ProductName,
			Quantity:      quantity,
			ExpiryDate:    l.ExpiryDate,
			DaysRemaining: l.DaysRemaining,
			Status:        l.Status,
		})
	}
	return r
}

// Render writes r to w as a table or as YAML.
func Render(w io.Writer, format string, r *Report) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	case FormatTable, "":
		return renderTable(w, r)
	default:
		return fmt.Errorf("unsupported format %q (want %s or %s)", format, FormatTable, FormatYAML)
	}
}

func renderTable(w io.Writer, r *Report) error {
	fmt.Fprintf(w, "License desk report as of %s\n", r.AsOf)
	if r.NextReminderRun != "" {
		fmt.Fprintf(w, "Next reminder run: %s\n", r.NextReminderRun)
	}
	fmt.Fprintln(w)

	summary := tablewriter.NewWriter(w)
	summary.Header("Customers", "Active", "Expiring soon", "Expired", "Issued (7d)", "Renewed (7d)")
	if err := summary.Append([]string{
		strconv.FormatInt(r.Summary.TotalCustomers, 10),
		strconv.FormatInt(r.Summary.ActiveLicenses, 10),
		strconv.FormatInt(r.Summary.ExpiringSoonLicenses, 10),
		strconv.FormatInt(r.Summary.ExpiredLicenses, 10),
		strconv.FormatInt(r.Summary.IssuedLast7Days, 10),
		strconv.FormatInt(r.Summary.RenewedLast7Days, 10),
	}); err != nil {
		return err
	}
	if err := summary.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nLicenses expired or expiring within %d days: %d\n", r.Within, len(r.Licenses))
	if len(r.Licenses) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Customer", "Product", "Quantity", "Expiry", "Days", "Status")
	for _, l := range r.Licenses {
		if err := table.Append([]string{
			strconv.FormatUint(uint64(l.ID), 10),
			l.Customer,
			l.Product,
			l.Quantity,
			l.ExpiryDate,
			strconv.Itoa(l.DaysRemaining),
			l.Status,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
