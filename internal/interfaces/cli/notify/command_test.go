package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notificationdto "github.com/corpit/licensedesk/internal/application/notification/dto"
)

func TestOutcomeLabel(t *testing.T) {
	tests := []struct {
		name    string
		outcome notificationdto.ReminderOutcome
		dryRun  bool
		want    string
	}{
		{"sent", notificationdto.ReminderOutcome{Sent: true}, false, "sent"},
		{"failed", notificationdto.ReminderOutcome{Error: "smtp timeout"}, false, "failed: smtp timeout"},
		{"skipped", notificationdto.ReminderOutcome{Skipped: true}, true, "skipped"},
		{"dry run", notificationdto.ReminderOutcome{}, true, "would send"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcomeLabel(tt.outcome, tt.dryRun))
		})
	}
}

func TestPrintResult(t *testing.T) {
	result := &notificationdto.SendRemindersResponse{
		Total:   2,
		Sent:    1,
		Skipped: 1,
		Message: "sent 1 of 2 reminders",
		Outcomes: []notificationdto.ReminderOutcome{
			{LicenseID: 7, Recipient: "it@acme.example", Type: "expiring_soon", Sent: true},
			{LicenseID: 8, Recipient: "ops@globex.example", Type: "expired", Skipped: true},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, result, false))

	out := buf.String()
	assert.Contains(t, out, "sent 1 of 2 reminders")
	assert.Contains(t, out, "it@acme.example")
	assert.Contains(t, out, "skipped")
	assert.NotContains(t, out, "Dry run")
}

func TestPrintResult_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, &notificationdto.SendRemindersResponse{Message: "would send 0 of 0 reminders"}, true))
	assert.Contains(t, buf.String(), "Dry run: nothing was sent.")
}

func TestNewCommand_Flags(t *testing.T) {
	cmd := NewCommand()
	assert.NotNil(t, cmd.Flags().Lookup("within"))
	assert.NotNil(t, cmd.Flags().Lookup("dry-run"))
	assert.Equal(t, "-1", cmd.Flags().Lookup("within").DefValue)
}
