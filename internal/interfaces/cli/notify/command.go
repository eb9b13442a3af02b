// Package notify runs the renewal reminder sweep once from the command line.
package notify

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	notificationdto "github.com/corpit/licensedesk/internal/application/notification/dto"
	notificationUsecases "github.com/corpit/licensedesk/internal/application/notification/usecases"
	"github.com/corpit/licensedesk/internal/infrastructure/database"
	"github.com/corpit/licensedesk/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/corpit/licensedesk/internal/interfaces/http"
)

var (
	env    string
	within int
	dryRun bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send renewal reminders now",
		Long: `Email every expired or expiring-soon license that has not already received
the same reminder today. Use --dry-run to list the reminders without sending them.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().IntVarP(&within, "within", "w", -1, "Expiring-soon threshold in days (default: license.expiring_soon_days)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be sent without sending or recording anything")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	command := notificationUsecases.RunRemindersCommand{DryRun: dryRun}
	if cmd.Flags().Changed("within") {
		if within < 0 {
			return fmt.Errorf("--within must not be negative")
		}
		command.Within = &within
	}

	env = bootstrap.ResolveEnv(env)
	cfg, log, err := bootstrap.Init(env, false)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Minute)
	defer cancel()

	container, err := httpRouter.NewContainer(ctx, database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()

	result, err := container.RunReminders().Execute(ctx, command)
	if err != nil {
		return fmt.Errorf("reminder run failed: %w", err)
	}

	return printResult(cmd.OutOrStdout(), result, dryRun)
}

func printResult(w io.Writer, result *notificationdto.SendRemindersResponse, dryRun bool) error {
	if result.Message != "" {
		fmt.Fprintln(w, result.Message)
	}
	if dryRun {
		fmt.Fprintln(w, "Dry run: nothing was sent.")
	}
	if len(result.Outcomes) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("License", "Recipient", "Reminder", "Result")
	for _, o := range result.Outcomes {
		if err := table.Append([]string{
			strconv.FormatUint(uint64(o.LicenseID), 10),
			o.Recipient,
			o.Type,
			outcomeLabel(o, dryRun),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func outcomeLabel(o notificationdto.ReminderOutcome, dryRun bool) string {
	switch {
	case o.Error != "":
		return "failed: " + o.Error
	case o.Skipped:
		return "skipped"
	case o.Sent:
		return "sent"
	case dryRun:
		return "would send"
	default:
		return "pending"
	}
}
