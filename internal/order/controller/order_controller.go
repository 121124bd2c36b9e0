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

const maxSignedContractSize = 20 << 20 // 20 MiB

type OrderViews interface {
	List(ctx context.Context, userID uint) ([]dto.OrderSummary, error)
	Detail(ctx context.Context, orderID uint) (*dto.OrderDetail, error)
	Progress(ctx context.Context, orderID uint) ([]dto.PhaseInfo, error)
}

type ActionExecutor interface {
	Execute(ctx context.Context, req workflow.ActionRequest) workflow.Outcome
}

type OrderController struct {
	views    OrderViews
	executor ActionExecutor
	logger   *zap.Logger
}

func NewOrderController(views OrderViews, executor ActionExecutor, logger *zap.Logger) *OrderController {
	return &OrderController{
		views:    views,
		executor: executor,
		logger:   logger,
	}
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	userID, err := parseUintQuery(r, "userId")
	if err != nil {
		logger.Warn("invalid userId", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid userId", apperrors.ValidationDetail{
			Field:   "userId",
			Message: "userId must be a positive integer",
		})
		return
	}

	summaries, err := c.views.List(r.Context(), userID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, summaries)
}

func (c *OrderController) Detail(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, err := parseUintParam(r, "orderId")
	if err != nil {
		logger.Warn("invalid orderId in path", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return
	}

	detail, err := c.views.Detail(r.Context(), orderID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, detail)
}

func (c *OrderController) Progress(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, err := parseUintParam(r, "orderId")
	if err != nil {
		logger.Warn("invalid orderId in path", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return
	}

	phases, err := c.views.Progress(r.Context(), orderID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, phases)
}

// ExecuteAction runs one order-scoped user action. The outcome is always a
// 200 with success/message; transport-level problems (bad ids, bad JSON) are
// the only 4xx paths here.
func (c *OrderController) ExecuteAction(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, err := parseUintParam(r, "orderId")
	if err != nil {
		logger.Warn("invalid orderId in path", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
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

	req := actionRequestFromBody(body)
	req.OrderID = orderID

	outcome := c.executor.Execute(r.Context(), req)
	c.writeJSON(w, http.StatusOK, outcome)
}

// UploadSignedContract accepts the signed contract scan as multipart form
// data under the "file" field.
func (c *OrderController) UploadSignedContract(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, err := parseUintParam(r, "orderId")
	if err != nil {
		logger.Warn("invalid orderId in path", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return
	}

	contractID, err := parseUintQuery(r, "contractId")
	if err != nil {
		logger.Warn("invalid contractId", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid contractId", apperrors.ValidationDetail{
			Field:   "contractId",
			Message: "contractId must be a positive integer",
		})
		return
	}

	if err := r.ParseMultipartForm(maxSignedContractSize); err != nil {
		logger.Warn("invalid multipart body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid multipart body", apperrors.ValidationDetail{
			Field:   "file",
			Message: "request must be multipart form data",
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		c.writeValidationError(w, traceID, "file is required", apperrors.ValidationDetail{
			Field:   "file",
			Message: "file is required",
		})
		return
	}
	defer file.Close()

	outcome := c.executor.Execute(r.Context(), workflow.ActionRequest{
		Action:         permission.ActionUploadSignedContract,
		OrderID:        orderID,
		ContractID:     contractID,
		SignedFile:     file,
		SignedFileName: header.Filename,
	})
	c.writeJSON(w, http.StatusOK, outcome)
}

func actionRequestFromBody(body dto.ActionBody) workflow.ActionRequest {
	return workflow.ActionRequest{
		Action:               permission.ActionKind(body.Action),
		DemoID:               body.DemoID,
		ProposalID:           body.ProposalID,
		ContractID:           body.ContractID,
		Feedback:             body.Feedback,
		FeedbackImages:       body.FeedbackImages,
		Reason:               body.Reason,
		OfferedTotalPrice:    body.OfferedTotalPrice,
		OfferedDepositAmount: body.OfferedDepositAmount,
		NeedSupport:          body.NeedSupport,
		Rating:               body.Rating,
		Comment:              body.Comment,
		ImageKey:             body.ImageKey,
		Message:              body.Message,
	}
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

func (c *OrderController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
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

func (c *OrderController) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	response := validationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}
	c.writeJSON(w, http.StatusBadRequest, response)
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
