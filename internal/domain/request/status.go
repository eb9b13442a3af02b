package request

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusApproved   Status = "Approved"
	StatusCompleted  Status = "Completed"
	StatusRejected   Status = "Rejected"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusApproved:   true,
	StatusCompleted:  true,
	StatusRejected:   true,
}

var statusTransitions = map[Status][]Status{
	StatusPending: {
		StatusInProgress,
		StatusApproved,
		StatusCompleted,
		StatusRejected,
	},
	StatusInProgress: {
		StatusApproved,
		StatusCompleted,
		StatusRejected,
	},
	StatusApproved:  {},
	StatusCompleted: {},
	StatusRejected:  {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusCompleted || s == StatusRejected
}

func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	for _, candidate := range allowed {
		if candidate == target {
			return true
		}
	}
	return false
}

// ParseStatus accepts any casing and "in_progress" for In Progress.
func ParseStatus(s string) (Status, error) {
	key := strings.ToLower(strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(s)))
	for status := range validStatuses {
		if strings.ToLower(string(status)) == key {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid request status: %s", s)
}
