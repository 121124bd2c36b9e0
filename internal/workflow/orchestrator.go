package workflow

import (
	"context"
	"io"
	"sync"

	"go.uber.org/zap"

	apperrors "signflow/internal/errors"
	"signflow/internal/permission"
	"signflow/internal/upstream"
)

const genericFailureMessage = "something went wrong, please try again"

// ActionRequest carries a user action and the entity ids/payloads it needs.
// Only the fields relevant to the action are read.
type ActionRequest struct {
	Action permission.ActionKind

	OrderID         uint
	DesignRequestID uint
	DemoID          uint
	ProposalID      uint
	ContractID      uint

	// REJECT_DEMO
	Feedback       string
	FeedbackImages []string

	// COUNTER_OFFER
	Reason               string
	OfferedTotalPrice    int64
	OfferedDepositAmount int64

	// CHOOSE_CONSTRUCTION
	NeedSupport *bool

	// SUBMIT_IMPRESSION
	Rating   int
	Comment  string
	ImageKey *string

	// REQUEST_CONTRACT_DISCUSSION
	Message string

	// UPLOAD_SIGNED_CONTRACT
	SignedFile     io.Reader
	SignedFileName string
}

// Outcome is what the UI shows after an action: a success or error
// notification, and for payment/contract-view actions the URL to open.
type Outcome struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

// Orchestrator maps each action kind to the concrete upstream call and the
// cache entries to invalidate on success. Actions are fire-and-forget from
// the UI's perspective: no optimistic state exists, so nothing is ever
// rolled back.
type Orchestrator struct {
	state  *State
	api    UpstreamAPI
	logger *zap.Logger

	mu      sync.Mutex
	running map[permission.ActionKind]bool
}

func NewOrchestrator(state *State, api UpstreamAPI, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		state:   state,
		api:     api,
		logger:  logger,
		running: make(map[permission.ActionKind]bool),
	}
}

// InProgress reports whether an action of this kind is currently running.
func (o *Orchestrator) InProgress(kind permission.ActionKind) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running[kind]
}

func (o *Orchestrator) begin(kind permission.ActionKind) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.running[kind] {
		return false
	}
	o.running[kind] = true
	return true
}

func (o *Orchestrator) finish(kind permission.ActionKind) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.running, kind)
}

// Execute runs one user action end to end: the upstream call, then the
// cache invalidations that force dependent views to refetch.
func (o *Orchestrator) Execute(ctx context.Context, req ActionRequest) Outcome {
	if !o.begin(req.Action) {
		return Outcome{Success: false, Message: "action already in progress"}
	}
	defer o.finish(req.Action)

	outcome := o.dispatch(ctx, req)
	if !outcome.Success {
		o.logger.Warn("action failed",
			zap.String("action", string(req.Action)),
			zap.String("message", outcome.Message))
	} else {
		o.logger.Info("action completed", zap.String("action", string(req.Action)))
	}
	return outcome
}

func (o *Orchestrator) dispatch(ctx context.Context, req ActionRequest) Outcome {
	switch req.Action {
	case permission.ActionDepositOrder:
		return o.payment(ctx, req.OrderID, upstream.PaymentPurposeDeposit)
	case permission.ActionDepositDesign:
		return o.payment(ctx, req.OrderID, upstream.PaymentPurposeDesignDeposit)
	case permission.ActionPayDesignRemaining:
		return o.payment(ctx, req.OrderID, upstream.PaymentPurposeDesignRemaining)
	case permission.ActionPayOrderRemaining:
		return o.payment(ctx, req.OrderID, upstream.PaymentPurposeRemaining)

	case permission.ActionCancelOrder:
		if err := o.api.CancelOrder(ctx, req.OrderID); err != nil {
			return failure(err)
		}
		o.invalidateOrder(req.OrderID)
		return success("order cancelled")

	case permission.ActionViewContract:
		contract, err := o.state.Contract(ctx, req.OrderID)
		if err != nil {
			return failure(err)
		}
		return Outcome{Success: true, Message: "contract ready", RedirectURL: contract.ContractURL}

	case permission.ActionUploadSignedContract:
		if err := o.api.UploadSignedContract(ctx, req.ContractID, req.SignedFileName, req.SignedFile); err != nil {
			return failure(err)
		}
		o.invalidateContract(req.OrderID)
		return success("signed contract uploaded")

	case permission.ActionRequestContractDiscussion:
		if err := o.api.RequestContractDiscussion(ctx, req.ContractID, req.Message); err != nil {
			return failure(err)
		}
		o.invalidateContract(req.OrderID)
		return success("discussion requested")

	case permission.ActionApproveDemo:
		if err := o.api.ApproveDemo(ctx, req.DemoID); err != nil {
			return failure(err)
		}
		// Approving the demo moves the request forward and may surface a
		// new order, so the order list goes stale too.
		o.invalidateDesignRequest(req.DesignRequestID)
		o.state.cache.InvalidateCollection(CollectionOrders)
		return success("demo approved")

	case permission.ActionRejectDemo:
		if err := o.api.RejectDemo(ctx, req.DemoID, req.Feedback, req.FeedbackImages); err != nil {
			return failure(err)
		}
		o.invalidateDesignRequest(req.DesignRequestID)
		return success("revision requested")

	case permission.ActionApproveProposal:
		if err := o.api.ApproveProposal(ctx, req.ProposalID); err != nil {
			return failure(err)
		}
		o.invalidateProposals(req.DesignRequestID)
		return success("proposal approved")

	case permission.ActionCounterOffer:
		if err := o.api.CounterOfferProposal(ctx, req.ProposalID, req.Reason, req.OfferedTotalPrice, req.OfferedDepositAmount); err != nil {
			return failure(err)
		}
		o.invalidateProposals(req.DesignRequestID)
		return success("counter-offer sent")

	case permission.ActionChooseConstruction:
		return o.chooseConstruction(ctx, req)

	case permission.ActionSubmitImpression:
		if err := o.api.SubmitImpression(ctx, req.OrderID, req.Rating, req.Comment, req.ImageKey); err != nil {
			return failure(err)
		}
		o.state.cache.Invalidate(CollectionOrderDetails, idKey(req.OrderID))
		return success("thank you for your feedback")
	}

	return Outcome{Success: false, Message: "unsupported action"}
}

func (o *Orchestrator) payment(ctx context.Context, orderID uint, purpose upstream.PaymentPurpose) Outcome {
	checkoutURL, err := o.api.CreatePaymentLink(ctx, orderID, purpose)
	if err != nil {
		return failure(err)
	}
	o.invalidateOrder(orderID)
	return Outcome{Success: true, Message: "payment link created", RedirectURL: checkoutURL}
}

func (o *Orchestrator) chooseConstruction(ctx context.Context, req ActionRequest) Outcome {
	if req.NeedSupport == nil {
		return Outcome{Success: false, Message: "construction choice is required"}
	}

	if *req.NeedSupport {
		// Choosing construction support creates the production order from
		// the completed design request.
		if _, err := o.api.CreateOrderFromDesignRequest(ctx, req.DesignRequestID); err != nil {
			return failure(err)
		}
		o.invalidateDesignRequest(req.DesignRequestID)
		o.state.cache.InvalidateCollection(CollectionOrders)
		return success("order created from design request")
	}

	if err := o.api.SetNeedSupport(ctx, req.DesignRequestID, false); err != nil {
		return failure(err)
	}
	o.invalidateDesignRequest(req.DesignRequestID)
	return success("choice saved")
}

func (o *Orchestrator) invalidateOrder(orderID uint) {
	o.state.cache.Invalidate(CollectionOrderDetails, idKey(orderID))
	o.state.cache.InvalidateCollection(CollectionOrders)
}

func (o *Orchestrator) invalidateContract(orderID uint) {
	o.state.cache.Invalidate(CollectionContracts, idKey(orderID))
	o.state.cache.Invalidate(CollectionOrderDetails, idKey(orderID))
}

func (o *Orchestrator) invalidateDesignRequest(requestID uint) {
	o.state.cache.Invalidate(CollectionDemos, idKey(requestID))
	o.state.cache.Invalidate(CollectionDesignRequestDetails, idKey(requestID))
	o.state.cache.InvalidateCollection(CollectionDesignRequests)
}

func (o *Orchestrator) invalidateProposals(requestID uint) {
	o.state.cache.Invalidate(CollectionProposals, idKey(requestID))
	o.state.cache.Invalidate(CollectionDesignRequestDetails, idKey(requestID))
}

func success(message string) Outcome {
	return Outcome{Success: true, Message: message}
}

func failure(err error) Outcome {
	return Outcome{Success: false, Message: apperrors.UserMessage(err, genericFailureMessage)}
}
