package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"signflow/internal/dto"
	apperrors "signflow/internal/errors"
	"signflow/internal/permission"
	"signflow/internal/workflow"
)

type mockViews struct {
	ListFunc     func(ctx context.Context, userID uint) ([]dto.OrderSummary, error)
	DetailFunc   func(ctx context.Context, orderID uint) (*dto.OrderDetail, error)
	ProgressFunc func(ctx context.Context, orderID uint) ([]dto.PhaseInfo, error)
}

func (m *mockViews) List(ctx context.Context, userID uint) ([]dto.OrderSummary, error) {
	return m.ListFunc(ctx, userID)
}

func (m *mockViews) Detail(ctx context.Context, orderID uint) (*dto.OrderDetail, error) {
	return m.DetailFunc(ctx, orderID)
}

func (m *mockViews) Progress(ctx context.Context, orderID uint) ([]dto.PhaseInfo, error) {
	return m.ProgressFunc(ctx, orderID)
}

type mockExecutor struct {
	ExecuteFunc func(ctx context.Context, req workflow.ActionRequest) workflow.Outcome
}

func (m *mockExecutor) Execute(ctx context.Context, req workflow.ActionRequest) workflow.Outcome {
	return m.ExecuteFunc(ctx, req)
}

func newTestRouter(views OrderViews, executor ActionExecutor) http.Handler {
	ctrl := NewOrderController(views, executor, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/orders", ctrl.List)
	r.Get("/orders/{orderId}", ctrl.Detail)
	r.Post("/orders/{orderId}/actions", ctrl.ExecuteAction)
	return r
}

func TestList_RejectsMissingUserID(t *testing.T) {
	router := newTestRouter(&mockViews{}, &mockExecutor{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDetail_MapsErrorTaxonomyToStatusCodes(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"unauthorized", apperrors.NewUnauthorizedError("session expired"), http.StatusUnauthorized},
		{"forbidden", apperrors.NewForbiddenError("not your order"), http.StatusForbidden},
		{"not found", apperrors.NewNotFoundError("order not found"), http.StatusNotFound},
		{"network", apperrors.NewNetworkUnavailableError("no response", nil), http.StatusBadGateway},
		{"server", apperrors.NewServerError("upstream error", 500, nil), http.StatusBadGateway},
		{"internal", apperrors.NewInternalError("boom", nil), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			views := &mockViews{
				DetailFunc: func(ctx context.Context, orderID uint) (*dto.OrderDetail, error) {
					return nil, tc.err
				},
			}
			router := newTestRouter(views, &mockExecutor{})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}

func TestDetail_ReturnsViewModel(t *testing.T) {
	views := &mockViews{
		DetailFunc: func(ctx context.Context, orderID uint) (*dto.OrderDetail, error) {
			return &dto.OrderDetail{ID: orderID, Actions: []string{"DEPOSIT_ORDER"}}, nil
		},
	}
	router := newTestRouter(views, &mockExecutor{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var detail dto.OrderDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	assert.Equal(t, uint(42), detail.ID)
	assert.Equal(t, []string{"DEPOSIT_ORDER"}, detail.Actions)
}

func TestExecuteAction_ForwardsOrderIDAndPayload(t *testing.T) {
	var captured workflow.ActionRequest
	executor := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, req workflow.ActionRequest) workflow.Outcome {
			captured = req
			return workflow.Outcome{Success: true, Message: "order cancelled"}
		},
	}
	router := newTestRouter(&mockViews{}, executor)

	body := strings.NewReader(`{"action":"CANCEL_ORDER"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/42/actions", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, permission.ActionCancelOrder, captured.Action)
	assert.Equal(t, uint(42), captured.OrderID)

	var outcome workflow.Outcome
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&outcome))
	assert.True(t, outcome.Success)
}

func TestExecuteAction_RequiresAction(t *testing.T) {
	router := newTestRouter(&mockViews{}, &mockExecutor{})

	body := strings.NewReader(`{}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/42/actions", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
