package usecase

import (
	"context"

	"go.uber.org/zap"

	"signflow/internal/domain"
	"signflow/internal/dto"
	"signflow/internal/permission"
	"signflow/internal/status"
)

// WorkflowState is the slice of the session state the design-request views
// read. Demos, proposals and sub-images are separate cache collections so a
// rejected demo invalidates only what actually changed.
type WorkflowState interface {
	DesignRequests(ctx context.Context, customerID uint) ([]domain.CustomDesignRequest, error)
	DesignRequest(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error)
	Demos(ctx context.Context, requestID uint) ([]domain.DemoDesign, error)
	DemoSubImages(ctx context.Context, demoID uint) ([]domain.DemoSubImage, error)
	Proposals(ctx context.Context, requestID uint) ([]domain.PriceProposal, error)
	ImageURL(ctx context.Context, key string) (string, error)
	Registry() *status.Registry
}

type DesignRequestViewUseCase struct {
	state  WorkflowState
	logger *zap.Logger
}

func NewDesignRequestViewUseCase(state WorkflowState, logger *zap.Logger) *DesignRequestViewUseCase {
	return &DesignRequestViewUseCase{
		state:  state,
		logger: logger,
	}
}

func (uc *DesignRequestViewUseCase) List(ctx context.Context, customerID uint) ([]dto.DesignRequestSummary, error) {
	requests, err := uc.state.DesignRequests(ctx, customerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.DesignRequestSummary, len(requests))
	for i, request := range requests {
		summaries[i] = dto.DesignRequestSummary{
			ID:          request.ID,
			Status:      uc.describe(status.KindDesignRequest, string(request.Status)),
			CompanyName: request.CompanyName,
			CreatedAt:   request.CreatedAt,
		}
	}
	return summaries, nil
}

// Detail builds the full design-request view: demos with resolved images,
// proposals, and the currently valid actions. Demo and proposal lists that
// fail to load are treated as missing and simply absent from the view.
func (uc *DesignRequestViewUseCase) Detail(ctx context.Context, requestID uint) (*dto.DesignRequestDetail, error) {
	request, err := uc.state.DesignRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	// The cached entity is shared between concurrent requests; assemble the
	// snapshot on a shallow copy so it is never written in place.
	view := *request
	if demos, err := uc.state.Demos(ctx, requestID); err == nil && len(demos) > 0 {
		// The fetched list supersedes whatever was embedded in the request.
		view.Demos = demos
	}

	snapshot := permission.Snapshot{DesignRequest: &view}

	if proposals, err := uc.state.Proposals(ctx, requestID); err == nil {
		snapshot.Proposals = proposals
	}

	decision := permission.Derive(snapshot)

	detail := &dto.DesignRequestDetail{
		ID:          view.ID,
		Status:      uc.describe(status.KindDesignRequest, string(view.Status)),
		Requirement: view.Requirement,
		CompanyName: view.CompanyName,
		NeedSupport: view.NeedSupport,
		Demos:       uc.demoViews(ctx, view.Demos, decision),
		Proposals:   uc.proposalViews(snapshot.Proposals),
		Actions:     actionNames(decision.Actions),
		CreatedAt:   view.CreatedAt,
	}

	if view.FinalDesignImage != nil {
		if url, err := uc.state.ImageURL(ctx, *view.FinalDesignImage); err == nil {
			detail.FinalDesignImage = &url
		}
	}

	return detail, nil
}

func (uc *DesignRequestViewUseCase) demoViews(ctx context.Context, demos []domain.DemoDesign, decision permission.Decision) []dto.DemoInfo {
	views := make([]dto.DemoInfo, len(demos))
	for i, demo := range demos {
		view := dto.DemoInfo{
			ID:          demo.ID,
			Status:      uc.describe(status.KindDemo, string(demo.Status)),
			Description: demo.DesignerDescription,
		}
		if decision.EligibleDemoID != nil && *decision.EligibleDemoID == demo.ID {
			view.Reviewable = true
		}
		if demo.Image != "" {
			if url, err := uc.state.ImageURL(ctx, demo.Image); err == nil {
				view.ImageURL = url
			}
		}
		if subImages, err := uc.state.DemoSubImages(ctx, demo.ID); err == nil {
			for _, sub := range subImages {
				url, err := uc.state.ImageURL(ctx, sub.ImageKey)
				if err != nil {
					// Unresolvable sub-images are dropped, same as gallery tiles.
					continue
				}
				view.SubImages = append(view.SubImages, url)
			}
		}
		views[i] = view
	}
	return views
}

func (uc *DesignRequestViewUseCase) proposalViews(proposals []domain.PriceProposal) []dto.ProposalInfo {
	views := make([]dto.ProposalInfo, len(proposals))
	for i := range proposals {
		p := &proposals[i]
		views[i] = dto.ProposalInfo{
			ID:                   p.ID,
			Status:               uc.describe(status.KindProposal, string(p.Status)),
			TotalPrice:           p.TotalPrice,
			DepositAmount:        p.DepositAmount,
			OfferedTotalPrice:    p.OfferedTotalPrice,
			OfferedDepositAmount: p.OfferedDepositAmount,
			Open:                 p.Open(),
		}
	}
	return views
}

func (uc *DesignRequestViewUseCase) describe(kind status.Kind, value string) dto.StatusInfo {
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
