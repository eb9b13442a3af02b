package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpit/licensedesk/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser(" alice ", "Alice@CorpIT.example", "$2a$hash", authorization.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username())
	assert.Equal(t, "alice@corpit.example", u.Email())
	assert.False(t, u.IsAdmin())
}

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser("al", "a@b.example", "h", authorization.RoleUser)
	assert.Error(t, err)

	_, err = NewUser("alice smith", "a@b.example", "h", authorization.RoleUser)
	assert.Error(t, err)

	_, err = NewUser("alice", "nope", "h", authorization.RoleUser)
	assert.Error(t, err)

	_, err = NewUser("alice", "a@b.example", "", authorization.RoleUser)
	assert.Error(t, err)

	_, err = NewUser("alice", "a@b.example", "h", authorization.UserRole("root"))
	assert.Error(t, err)
}

func TestUser_ChangeUsername(t *testing.T) {
	u, err := NewUser("alice", "a@b.example", "h", authorization.RoleAdmin)
	require.NoError(t, err)

	err = u.ChangeUsername("alice")
	assert.True(t, errors.Is(err, ErrSameUsername))

	require.NoError(t, u.ChangeUsername("alice.r"))
	assert.Equal(t, "alice.r", u.Username())
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"secret12", false},
		{"short1", true},
		{"allletters", true},
		{"12345678", true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := ValidatePassword(tt.password, 8)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
