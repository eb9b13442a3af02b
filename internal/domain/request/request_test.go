package request

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(t *testing.T) *Request {
	t.Helper()
	r, err := NewRequest(Submission{
		Name:        "Laptop refresh",
		Date:        time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Topic:       "Hardware",
		Description: "Replace **five** laptops",
		Currency:    "inr",
		Amount:      decimal.NewFromInt(250000),
		RequestedBy: 7,
	})
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	r := newTestRequest(t)
	assert.Equal(t, StatusPending, r.Status())
	assert.Equal(t, "INR", r.Currency())
	assert.Nil(t, r.ProcessedAt())
}

func TestNewRequest_Validation(t *testing.T) {
	base := Submission{Name: "n", Date: time.Now(), Topic: "t", Description: "d", RequestedBy: 1}

	tests := []struct {
		name   string
		mutate func(s *Submission)
	}{
		{"missing name", func(s *Submission) { s.Name = "" }},
		{"missing topic", func(s *Submission) { s.Topic = "" }},
		{"missing description", func(s *Submission) { s.Description = "  " }},
		{"missing date", func(s *Submission) { s.Date = time.Time{} }},
		{"negative amount", func(s *Submission) { s.Amount = decimal.NewFromInt(-1); s.Currency = "USD" }},
		{"amount without currency", func(s *Submission) { s.Amount = decimal.NewFromInt(5) }},
		{"bad currency", func(s *Submission) { s.Currency = "ZZZ" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			_, err := NewRequest(s)
			assert.Error(t, err)
		})
	}

	_, err := NewRequest(base)
	assert.NoError(t, err)
}

func TestRequest_Process(t *testing.T) {
	at := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)

	r := newTestRequest(t)
	require.NoError(t, r.Process(StatusInProgress, "admin", at))
	assert.Equal(t, StatusInProgress, r.Status())
	assert.Nil(t, r.ProcessedAt(), "non-terminal statuses do not stamp the processor")

	require.NoError(t, r.Process(StatusApproved, "admin", at))
	require.NotNil(t, r.ProcessedAt())
	assert.Equal(t, at, *r.ProcessedAt())
	assert.Equal(t, "admin", r.ProcessedBy())

	err := r.Process(StatusRejected, "other", at.Add(time.Hour))
	assert.True(t, errors.Is(err, ErrInvalidStatusTransition))
	assert.Equal(t, "admin", r.ProcessedBy())
	assert.Equal(t, at, *r.ProcessedAt())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusRejected))
	assert.True(t, StatusInProgress.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusInProgress.CanTransitionTo(StatusPending))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusRejected))
	assert.False(t, StatusPending.CanTransitionTo(StatusPending))
}

func TestParseStatus(t *testing.T) {
	tests := map[string]Status{
		"pending":     StatusPending,
		"In Progress": StatusInProgress,
		"in_progress": StatusInProgress,
		"APPROVED":    StatusApproved,
	}
	for input, want := range tests {
		got, err := ParseStatus(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseStatus("archived")
	assert.Error(t, err)
}
