package usecase

import (
	"context"

	"go.uber.org/zap"

	"signflow/internal/domain"
	"signflow/internal/dto"
	"signflow/internal/permission"
	"signflow/internal/progress"
	"signflow/internal/status"
)

// WorkflowState is the slice of the session state the order views read.
// Everything goes through the entity cache, so repeated view builds never
// refetch resolved data.
type WorkflowState interface {
	Orders(ctx context.Context, userID uint) ([]domain.Order, error)
	Order(ctx context.Context, orderID uint) (*domain.Order, error)
	Contract(ctx context.Context, orderID uint) (*domain.Contract, error)
	DesignRequest(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error)
	Proposals(ctx context.Context, requestID uint) ([]domain.PriceProposal, error)
	ProgressLogs(ctx context.Context, orderID uint) ([]domain.ProgressLog, error)
	ProgressLogImages(ctx context.Context, logID uint) ([]domain.ProgressLogImage, error)
	ImageURL(ctx context.Context, key string) (string, error)
	Registry() *status.Registry
}

type OrderViewUseCase struct {
	state  WorkflowState
	logger *zap.Logger
}

func NewOrderViewUseCase(state WorkflowState, logger *zap.Logger) *OrderViewUseCase {
	return &OrderViewUseCase{
		state:  state,
		logger: logger,
	}
}

func (uc *OrderViewUseCase) List(ctx context.Context, userID uint) ([]dto.OrderSummary, error) {
	orders, err := uc.state.Orders(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.OrderSummary, len(orders))
	for i, order := range orders {
		summaries[i] = dto.OrderSummary{
			ID:          order.ID,
			Status:      uc.describe(status.KindOrder, string(order.Status)),
			OrderType:   string(order.OrderType),
			TotalAmount: order.TotalAmount,
			CreatedAt:   order.CreatedAt,
		}
	}
	return summaries, nil
}

// Detail builds the full order view model: described status, valid actions,
// outstanding payment and the progress timeline. Sub-entities that fail to
// load are treated as missing, not as empty; the view renders without them.
func (uc *OrderViewUseCase) Detail(ctx context.Context, orderID uint) (*dto.OrderDetail, error) {
	order, err := uc.state.Order(ctx, orderID)
	if err != nil {
		return nil, err
	}

	snapshot := permission.Snapshot{Order: order}

	if contract, err := uc.state.Contract(ctx, orderID); err == nil {
		snapshot.Contract = contract
	}

	if order.DesignRequestID != nil {
		if request, err := uc.state.DesignRequest(ctx, *order.DesignRequestID); err == nil {
			snapshot.DesignRequest = request
			if proposals, err := uc.state.Proposals(ctx, request.ID); err == nil {
				snapshot.Proposals = proposals
			}
		}
	}

	decision := permission.Derive(snapshot)

	detail := &dto.OrderDetail{
		ID:                    order.ID,
		Status:                uc.describe(status.KindOrder, string(order.Status)),
		OrderType:             string(order.OrderType),
		TotalAmount:           order.TotalAmount,
		DepositAmount:         order.DepositAmount,
		RemainingAmount:       order.RemainingAmount,
		TotalDesignAmount:     order.TotalDesignAmount,
		DepositDesignAmount:   order.DepositDesignAmount,
		RemainingDesignAmount: order.RemainingDesignAmount,
		DesignRequestID:       order.DesignRequestID,
		Actions:               actionNames(decision.Actions),
		PaymentDue:            decision.PaymentDue,
		CreatedAt:             order.CreatedAt,
	}

	if snapshot.Contract != nil {
		detail.Contract = &dto.ContractInfo{
			ID:                    snapshot.Contract.ID,
			Status:                uc.describe(status.KindContract, string(snapshot.Contract.Status)),
			ContractURL:           snapshot.Contract.ContractURL,
			SignedContractURL:     snapshot.Contract.SignedContractURL,
			DepositPercentChanged: snapshot.Contract.DepositPercentChanged,
		}
	}

	if phases, err := uc.Progress(ctx, orderID); err == nil {
		detail.Progress = phases
	}

	return detail, nil
}

// Progress aggregates the order's progress logs into per-phase views.
func (uc *OrderViewUseCase) Progress(ctx context.Context, orderID uint) ([]dto.PhaseInfo, error) {
	order, err := uc.state.Order(ctx, orderID)
	if err != nil {
		return nil, err
	}

	logs, err := uc.state.ProgressLogs(ctx, orderID)
	if err != nil {
		return nil, err
	}

	input := progress.Input{
		Logs:   logs,
		Images: make(map[uint][]progress.Image),
		Legacy: make(map[domain.ProgressStatus]progress.Image),
	}

	for _, log := range logs {
		images, err := uc.state.ProgressLogImages(ctx, log.ID)
		if err != nil {
			// Failed image lists count as "no data", never as empty data.
			continue
		}
		if len(images) == 0 {
			continue
		}
		resolved := make([]progress.Image, 0, len(images))
		for _, image := range images {
			url, err := uc.state.ImageURL(ctx, image.ImageKey)
			if err != nil {
				resolved = append(resolved, progress.Image{Failed: true})
				continue
			}
			resolved = append(resolved, progress.Image{URL: url})
		}
		input.Images[log.ID] = resolved
	}

	for _, phase := range domain.ProductionPhases() {
		key := order.LegacyPhaseImage(phase)
		if key == nil {
			continue
		}
		url, err := uc.state.ImageURL(ctx, *key)
		if err != nil {
			input.Legacy[phase] = progress.Image{Failed: true}
			continue
		}
		input.Legacy[phase] = progress.Image{URL: url}
	}

	views := progress.Aggregate(input)

	phases := make([]dto.PhaseInfo, len(views))
	for i, view := range views {
		info := dto.PhaseInfo{
			Phase:       uc.describe(status.KindProgressLog, string(view.Phase)),
			Description: view.Description,
			Mode:        string(view.Mode),
			Clickable:   view.Clickable,
			LoadFailed:  view.LoadFailed,
		}
		for _, image := range view.Images {
			if image.Failed {
				continue
			}
			info.Images = append(info.Images, image.URL)
		}
		phases[i] = info
	}
	return phases, nil
}

func (uc *OrderViewUseCase) describe(kind status.Kind, value string) dto.StatusInfo {
	d := uc.state.Registry().Describe(kind, value)
	return dto.StatusInfo{
		Value:    value,
		Label:    d.Label,
		Severity: string(d.Severity),
	}
}

func actionNames(actions permission.ActionSet) []string {
	kinds := actions.Kinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return names
}
