package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpit/licensedesk/internal/application/request/dto"
	"github.com/corpit/licensedesk/internal/application/request/usecases"
	"github.com/corpit/licensedesk/internal/interfaces/http/handlers/testutil"
	"github.com/corpit/licensedesk/internal/shared/authorization"
	"github.com/corpit/licensedesk/internal/shared/errors"
)

type mockSubmitRequestUC struct {
	result        *dto.RequestResponse
	err           error
	lastRequester uint
}

func (m *mockSubmitRequestUC) Execute(ctx context.Context, requesterID uint, req dto.SubmitRequestRequest) (*dto.RequestResponse, error) {
	m.lastRequester = requesterID
	return m.result, m.err
}

type mockListRequestsUC struct {
	result    *dto.ListRequestsResponse
	err       error
	lastQuery usecases.ListRequestsQuery
}

func (m *mockListRequestsUC) Execute(ctx context.Context, query usecases.ListRequestsQuery) (*dto.ListRequestsResponse, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockProcessRequestUC struct {
	result  *dto.RequestResponse
	err     error
	lastCmd usecases.ProcessRequestCommand
}

func (m *mockProcessRequestUC) Execute(ctx context.Context, cmd usecases.ProcessRequestCommand) (*dto.RequestResponse, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

func TestRequestHandler_SubmitRequest(t *testing.T) {
	uc := &mockSubmitRequestUC{result: &dto.RequestResponse{ID: 1, Status: "Pending"}}
	handler := NewRequestHandler(uc, nil, nil, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPost, "/requests", map[string]interface{}{
		"name":        "Bob",
		"date":        "2025-02-01",
		"topic":       "Extra seats",
		"description": "Need **5** more seats",
		"currency":    "USD",
		"amount":      "250.00",
	})
	testutil.SetAuthContext(c, 12)

	handler.SubmitRequest(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(12), uc.lastRequester)
}

func TestRequestHandler_SubmitRequest_MissingTopic(t *testing.T) {
	uc := &mockSubmitRequestUC{}
	handler := NewRequestHandler(uc, nil, nil, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPost, "/requests", map[string]interface{}{
		"name":        "Bob",
		"date":        "2025-02-01",
		"description": "Need more seats",
	})
	testutil.SetAuthContext(c, 12)

	handler.SubmitRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, uc.lastRequester)
}

func TestRequestHandler_ListScopes(t *testing.T) {
	tests := []struct {
		name  string
		call  func(h *RequestHandler) func(c *gin.Context)
		scope usecases.Scope
	}{
		{"mine", func(h *RequestHandler) func(c *gin.Context) { return h.ListMine }, usecases.ScopeMine},
		{"pending", func(h *RequestHandler) func(c *gin.Context) { return h.ListPending }, usecases.ScopePending},
		{"processed", func(h *RequestHandler) func(c *gin.Context) { return h.ListProcessed }, usecases.ScopeProcessed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockListRequestsUC{result: &dto.ListRequestsResponse{Items: []dto.RequestResponse{}, Page: 1, PageSize: 20}}
			handler := NewRequestHandler(nil, uc, nil, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodGet, "/requests/"+tt.name, nil)
			testutil.SetAuthContext(c, 5)

			tt.call(handler)(c)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.scope, uc.lastQuery.Scope)
			assert.Equal(t, uint(5), uc.lastQuery.UserID)
			assert.Equal(t, 20, uc.lastQuery.PageSize)
		})
	}
}

func TestRequestHandler_UpdateStatus(t *testing.T) {
	t.Run("approved by admin", func(t *testing.T) {
		uc := &mockProcessRequestUC{result: &dto.RequestResponse{ID: 3, Status: "Approved", ProcessedBy: "alice"}}
		handler := NewRequestHandler(nil, nil, uc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPatch, "/requests/3/status", map[string]string{"status": "Approved"})
		testutil.SetURLParam(c, "id", "3")
		testutil.SetAuthContextWithRole(c, 1, "alice", authorization.RoleAdmin)

		handler.UpdateStatus(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, usecases.ProcessRequestCommand{RequestID: 3, Status: "Approved", ProcessedBy: "alice"}, uc.lastCmd)
	})

	t.Run("illegal transition", func(t *testing.T) {
		uc := &mockProcessRequestUC{err: errors.NewConflictError("cannot move request from Completed to Pending")}
		handler := NewRequestHandler(nil, nil, uc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPatch, "/requests/3/status", map[string]string{"status": "Pending"})
		testutil.SetURLParam(c, "id", "3")

		handler.UpdateStatus(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing request", func(t *testing.T) {
		uc := &mockProcessRequestUC{err: errors.NewNotFoundError("request not found")}
		handler := NewRequestHandler(nil, nil, uc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPatch, "/requests/77/status", map[string]string{"status": "Approved"})
		testutil.SetURLParam(c, "id", "77")

		handler.UpdateStatus(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
