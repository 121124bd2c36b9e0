package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"signflow/internal/dto"
	apperrors "signflow/internal/errors"
	"signflow/internal/permission"
	"signflow/internal/workflow"
)

type DesignRequestViews interface {
	List(ctx context.Context, customerID uint) ([]dto.DesignRequestSummary, error)
	Detail(ctx context.Context, requestID uint) (*dto.DesignRequestDetail, error)
}

type ActionExecutor interface {
	Execute(ctx context.Context, req workflow.ActionRequest) workflow.Outcome
}

type DesignRequestController struct {
	views    DesignRequestViews
	executor ActionExecutor
	logger   *zap.Logger
}

func NewDesignRequestController(views DesignRequestViews, executor ActionExecutor, logger *zap.Logger) *DesignRequestController {
	return &DesignRequestController{
		views:    views,
		executor: executor,
		logger:   logger,
	}
}

func (c *DesignRequestController) List(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	customerID, err := parseUintQuery(r, "customerId")
	if err != nil {
		logger.Warn("invalid customerId", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid customerId", apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId must be a positive integer",
		})
		return
	}

	summaries, err := c.views.List(r.Context(), customerID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, summaries)
}

func (c *DesignRequestController) Detail(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	requestID, err := parseUintParam(r, "requestId")
	if err != nil {
		logger.Warn("invalid requestId in path", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid requestId", apperrors.ValidationDetail{
			Field:   "requestId",
			Message: "requestId must be a positive integer",
		})
		return
	}

	detail, err := c.views.Detail(r.Context(), requestID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, detail)
}

// ExecuteAction runs one request-scoped user action (demo review, proposal
// negotiation, construction choice). The outcome is always a 200 with
// success/message.
func (c *DesignRequestController) ExecuteAction(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	requestID, err := parseUintParam(r, "requestId")
	if err != nil {
		logger.Warn("invalid requestId in path", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid requestId", apperrors.ValidationDetail{
			Field:   "requestId",
			Message: "requestId must be a positive integer",
		})
		return
	}

	var body dto.ActionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if body.Action == "" {
		c.writeValidationError(w, traceID, "action is required", apperrors.ValidationDetail{
			Field:   "action",
			Message: "action is required",
		})
		return
	}

	req := workflow.ActionRequest{
		Action:               permission.ActionKind(body.Action),
		DesignRequestID:      requestID,
		DemoID:               body.DemoID,
		ProposalID:           body.ProposalID,
		Feedback:             body.Feedback,
		FeedbackImages:       body.FeedbackImages,
		Reason:               body.Reason,
		OfferedTotalPrice:    body.OfferedTotalPrice,
		OfferedDepositAmount: body.OfferedDepositAmount,
		NeedSupport:          body.NeedSupport,
	}

	outcome := c.executor.Execute(r.Context(), req)
	c.writeJSON(w, http.StatusOK, outcome)
}

func parseUintParam(r *http.Request, name string) (uint, error) {
	value, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

func parseUintQuery(r *http.Request, name string) (uint, error) {
	value, err := strconv.ParseUint(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

type errorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *DesignRequestController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	message := "an unexpected error occurred"

	if _, ok := apperrors.IsUnauthorizedError(err); ok {
		status, code, message = http.StatusUnauthorized, "UNAUTHORIZED", err.Error()
	} else if _, ok := apperrors.IsForbiddenError(err); ok {
		status, code, message = http.StatusForbidden, "FORBIDDEN", err.Error()
	} else if _, ok := apperrors.IsNotFoundError(err); ok {
		status, code, message = http.StatusNotFound, "NOT_FOUND", err.Error()
	} else if _, ok := apperrors.IsValidationError(err); ok {
		status, code, message = http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	} else if _, ok := apperrors.IsNetworkUnavailableError(err); ok {
		status, code, message = http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "upstream service is unreachable"
	} else if _, ok := apperrors.IsServerError(err); ok {
		status, code, message = http.StatusBadGateway, "UPSTREAM_ERROR", err.Error()
	} else {
		logger.Error("unexpected error", zap.Error(err))
	}

	response := errorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	c.writeJSON(w, status, response)
}

type validationErrorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *DesignRequestController) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	response := validationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}
	c.writeJSON(w, http.StatusBadRequest, response)
}

func (c *DesignRequestController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
