package permission

import (
	"sort"

	"signflow/internal/domain"
)

type ActionKind string

const (
	ActionDepositOrder              ActionKind = "DEPOSIT_ORDER"
	ActionDepositDesign             ActionKind = "DEPOSIT_DESIGN"
	ActionPayDesignRemaining        ActionKind = "PAY_DESIGN_REMAINING"
	ActionPayOrderRemaining         ActionKind = "PAY_ORDER_REMAINING"
	ActionCancelOrder               ActionKind = "CANCEL_ORDER"
	ActionViewContract              ActionKind = "VIEW_CONTRACT"
	ActionUploadSignedContract      ActionKind = "UPLOAD_SIGNED_CONTRACT"
	ActionRequestContractDiscussion ActionKind = "REQUEST_CONTRACT_DISCUSSION"
	ActionApproveDemo               ActionKind = "APPROVE_DEMO"
	ActionRejectDemo                ActionKind = "REJECT_DEMO"
	ActionApproveProposal           ActionKind = "APPROVE_PROPOSAL"
	ActionCounterOffer              ActionKind = "COUNTER_OFFER"
	ActionChooseConstruction        ActionKind = "CHOOSE_CONSTRUCTION"
	ActionSubmitImpression          ActionKind = "SUBMIT_IMPRESSION"
)

type ActionSet map[ActionKind]bool

func (s ActionSet) Add(kind ActionKind) {
	s[kind] = true
}

func (s ActionSet) Has(kind ActionKind) bool {
	return s[kind]
}

// Kinds returns the enabled actions in a stable order.
func (s ActionSet) Kinds() []ActionKind {
	kinds := make([]ActionKind, 0, len(s))
	for kind, enabled := range s {
		if enabled {
			kinds = append(kinds, kind)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Snapshot is the entity constellation a derivation runs against. Any part
// may be nil/empty; missing data simply contributes no actions.
type Snapshot struct {
	Order         *domain.Order
	DesignRequest *domain.CustomDesignRequest
	Contract      *domain.Contract
	Proposals     []domain.PriceProposal
}

// Decision is the derived outcome: the currently valid user actions, the
// outstanding payment (nil when none), and the concrete targets for the
// demo/proposal actions.
type Decision struct {
	Actions         ActionSet
	PaymentDue      *int64
	EligibleDemoID  *uint
	OpenProposalIDs []uint
}

// Derive is a pure function from snapshot to decision. Each rule is
// evaluated independently and the results are unioned; unknown status
// values contribute no actions rather than erroring.
func Derive(snapshot Snapshot) Decision {
	decision := Decision{Actions: ActionSet{}}

	deriveOrderActions(snapshot.Order, &decision)
	deriveContractActions(contractOf(snapshot), &decision)
	deriveDesignRequestActions(snapshot.DesignRequest, &decision)
	deriveProposalActions(proposalsOf(snapshot), &decision)

	return decision
}

func contractOf(snapshot Snapshot) *domain.Contract {
	if snapshot.Contract != nil {
		return snapshot.Contract
	}
	if snapshot.Order != nil {
		return snapshot.Order.Contract
	}
	return nil
}

func proposalsOf(snapshot Snapshot) []domain.PriceProposal {
	if len(snapshot.Proposals) > 0 {
		return snapshot.Proposals
	}
	if snapshot.DesignRequest != nil {
		return snapshot.DesignRequest.Proposals
	}
	return nil
}

func deriveOrderActions(order *domain.Order, decision *Decision) {
	if order == nil {
		return
	}

	switch order.Status {
	case domain.OrderStatusApproved,
		domain.OrderStatusConfirmed,
		domain.OrderStatusPending,
		domain.OrderStatusContractConfirmed:
		decision.Actions.Add(ActionDepositOrder)
		deposit := order.DepositAmount
		decision.PaymentDue = &deposit

	case domain.OrderStatusNeedDepositDesign:
		decision.Actions.Add(ActionDepositDesign)

	case domain.OrderStatusNeedFullyPaidDesign:
		decision.Actions.Add(ActionPayDesignRemaining)

	case domain.OrderStatusInstalled:
		if order.RemainingAmount > 0 {
			decision.Actions.Add(ActionPayOrderRemaining)
			remaining := order.RemainingAmount
			decision.PaymentDue = &remaining
		}

	case domain.OrderStatusPendingContract:
		decision.Actions.Add(ActionCancelOrder)

	case domain.OrderStatusCompleted:
		decision.Actions.Add(ActionSubmitImpression)
	}

	switch order.Status {
	case domain.OrderStatusContractSent,
		domain.OrderStatusContractSigned,
		domain.OrderStatusContractResigned,
		domain.OrderStatusContractConfirmed:
		decision.Actions.Add(ActionViewContract)
	}
}

func deriveContractActions(contract *domain.Contract, decision *Decision) {
	if contract == nil {
		return
	}

	if contract.AwaitsSignature() {
		decision.Actions.Add(ActionUploadSignedContract)
	}
	if contract.Status == domain.ContractStatusSent {
		decision.Actions.Add(ActionRequestContractDiscussion)
	}
}

func deriveDesignRequestActions(request *domain.CustomDesignRequest, decision *Decision) {
	if request == nil {
		return
	}

	if request.Status.InDemoLoop() {
		// Only the latest demo by creation order is reviewable.
		if latest := request.LatestDemo(); latest != nil {
			decision.Actions.Add(ActionApproveDemo)
			decision.Actions.Add(ActionRejectDemo)
			id := latest.ID
			decision.EligibleDemoID = &id
		}
	}

	// Once the construction choice is made it never comes back, even on a
	// refreshed snapshot.
	if request.Status == domain.DesignRequestStatusCompleted && request.NeedSupport == nil {
		decision.Actions.Add(ActionChooseConstruction)
	}
}

func deriveProposalActions(proposals []domain.PriceProposal, decision *Decision) {
	for i := range proposals {
		if proposals[i].Open() {
			decision.Actions.Add(ActionApproveProposal)
			decision.Actions.Add(ActionCounterOffer)
			decision.OpenProposalIDs = append(decision.OpenProposalIDs, proposals[i].ID)
		}
	}
}
