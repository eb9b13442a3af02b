// Package report prints the license desk overview from the command line.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	notificationdto "github.com/corpit/licensedesk/internal/application/notification/dto"
	"github.com/corpit/licensedesk/internal/infrastructure/database"
	"github.com/corpit/licensedesk/internal/infrastructure/scheduler"
	"github.com/corpit/licensedesk/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/corpit/licensedesk/internal/interfaces/http"
)

var (
	env    string
	within int
	format string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the license desk overview",
		Long:  `Print the dashboard counters and every license that is expired or expires within the threshold.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().IntVarP(&within, "within", "w", -1, "Expiring-soon threshold in days (default: license.expiring_soon_days)")
	cmd.Flags().StringVarP(&format, "format", "f", FormatTable, "Output format (table, yaml)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if format != FormatTable && format != FormatYAML {
		return fmt.Errorf("unsupported format %q (want %s or %s)", format, FormatTable, FormatYAML)
	}

	env = bootstrap.ResolveEnv(env)
	cfg, log, err := bootstrap.Init(env, false)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	container, err := httpRouter.NewContainer(ctx, database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()

	stats, err := container.DashboardStats().Execute(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	req := notificationdto.ListExpiringRequest{}
	if cmd.Flags().Changed("within") {
		if within < 0 {
			return fmt.Errorf("--within must not be negative")
		}
		req.Within = &within
	}
	expiring, err := container.ListExpiring().Execute(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list expiring licenses: %w", err)
	}

	var nextRun string
	if cfg.Notification.Scheduler.Enabled {
		next, err := scheduler.NextRun(cfg.Notification.Scheduler.Spec, time.Now())
		if err != nil {
			log.Warnw("failed to compute next reminder run", "error", err)
		} else {
			nextRun = next.Format(time.RFC3339)
		}
	}

	return Render(cmd.OutOrStdout(), format, Build(stats, expiring, nextRun))
}
