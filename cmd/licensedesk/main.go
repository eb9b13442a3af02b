package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/corpit/licensedesk/internal/interfaces/cli/migrate"
	"github.com/corpit/licensedesk/internal/interfaces/cli/notify"
	"github.com/corpit/licensedesk/internal/interfaces/cli/report"
	"github.com/corpit/licensedesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "licensedesk",
		Short: "Corporate IT Solutions license desk",
		Long: `licensedesk tracks customer software, OS and hardware licenses, computes their
expiry, records renewals and emails renewal reminders.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		report.NewCommand(),
		notify.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
