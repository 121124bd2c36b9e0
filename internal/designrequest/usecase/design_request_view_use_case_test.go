package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"signflow/internal/domain"
	apperrors "signflow/internal/errors"
	"signflow/internal/status"
)

type mockState struct {
	DesignRequestsFunc func(ctx context.Context, customerID uint) ([]domain.CustomDesignRequest, error)
	DesignRequestFunc  func(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error)
	DemosFunc          func(ctx context.Context, requestID uint) ([]domain.DemoDesign, error)
	DemoSubImagesFunc  func(ctx context.Context, demoID uint) ([]domain.DemoSubImage, error)
	ProposalsFunc      func(ctx context.Context, requestID uint) ([]domain.PriceProposal, error)
	ImageURLFunc       func(ctx context.Context, key string) (string, error)

	registry *status.Registry
}

func newMockState() *mockState {
	return &mockState{
		DesignRequestsFunc: func(ctx context.Context, customerID uint) ([]domain.CustomDesignRequest, error) {
			return nil, nil
		},
		DesignRequestFunc: func(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
			return &domain.CustomDesignRequest{ID: requestID, Status: domain.DesignRequestStatusPending}, nil
		},
		DemosFunc: func(ctx context.Context, requestID uint) ([]domain.DemoDesign, error) {
			return nil, nil
		},
		DemoSubImagesFunc: func(ctx context.Context, demoID uint) ([]domain.DemoSubImage, error) {
			return nil, nil
		},
		ProposalsFunc: func(ctx context.Context, requestID uint) ([]domain.PriceProposal, error) {
			return nil, nil
		},
		ImageURLFunc: func(ctx context.Context, key string) (string, error) {
			return "https://cdn.example.com/" + key, nil
		},
		registry: status.NewRegistry(),
	}
}

func (m *mockState) DesignRequests(ctx context.Context, customerID uint) ([]domain.CustomDesignRequest, error) {
	return m.DesignRequestsFunc(ctx, customerID)
}

func (m *mockState) DesignRequest(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
	return m.DesignRequestFunc(ctx, requestID)
}

func (m *mockState) Demos(ctx context.Context, requestID uint) ([]domain.DemoDesign, error) {
	return m.DemosFunc(ctx, requestID)
}

func (m *mockState) DemoSubImages(ctx context.Context, demoID uint) ([]domain.DemoSubImage, error) {
	return m.DemoSubImagesFunc(ctx, demoID)
}

func (m *mockState) Proposals(ctx context.Context, requestID uint) ([]domain.PriceProposal, error) {
	return m.ProposalsFunc(ctx, requestID)
}

func (m *mockState) ImageURL(ctx context.Context, key string) (string, error) {
	return m.ImageURLFunc(ctx, key)
}

func (m *mockState) Registry() *status.Registry {
	return m.registry
}

func TestList_MapsStatusMetadata(t *testing.T) {
	state := newMockState()
	state.DesignRequestsFunc = func(ctx context.Context, customerID uint) ([]domain.CustomDesignRequest, error) {
		return []domain.CustomDesignRequest{
			{ID: 1, Status: domain.DesignRequestStatusDemoSubmitted, CompanyName: "Pho 24"},
		}, nil
	}

	uc := NewDesignRequestViewUseCase(state, zap.NewNop())

	summaries, err := uc.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "DEMO_SUBMITTED", summaries[0].Status.Value)
	assert.NotEmpty(t, summaries[0].Status.Label)
	assert.Equal(t, "Pho 24", summaries[0].CompanyName)
}

func TestDetail_OnlyLatestDemoIsReviewable(t *testing.T) {
	state := newMockState()
	state.DesignRequestFunc = func(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
		return &domain.CustomDesignRequest{
			ID:     requestID,
			Status: domain.DesignRequestStatusRevisionRequested,
		}, nil
	}
	state.DemosFunc = func(ctx context.Context, requestID uint) ([]domain.DemoDesign, error) {
		return []domain.DemoDesign{
			{ID: 3, Status: domain.DemoStatusRejected, Image: "v1.png"},
			{ID: 4, Status: domain.DemoStatusPending, Image: "v2.png"},
		}, nil
	}

	uc := NewDesignRequestViewUseCase(state, zap.NewNop())

	detail, err := uc.Detail(context.Background(), 11)
	require.NoError(t, err)

	require.Len(t, detail.Demos, 2)
	assert.False(t, detail.Demos[0].Reviewable)
	assert.True(t, detail.Demos[1].Reviewable)
	assert.Contains(t, detail.Actions, "APPROVE_DEMO")
	assert.Contains(t, detail.Actions, "REJECT_DEMO")
	assert.Equal(t, "https://cdn.example.com/v2.png", detail.Demos[1].ImageURL)
}

func TestDetail_OpenProposalsEnableNegotiation(t *testing.T) {
	state := newMockState()
	state.DesignRequestFunc = func(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
		return &domain.CustomDesignRequest{
			ID:     requestID,
			Status: domain.DesignRequestStatusPricingNotified,
		}, nil
	}
	state.ProposalsFunc = func(ctx context.Context, requestID uint) ([]domain.PriceProposal, error) {
		return []domain.PriceProposal{
			{ID: 7, Status: domain.ProposalStatusRejected, TotalPrice: 8_000_000},
			{ID: 8, Status: domain.ProposalStatusNegotiating, TotalPrice: 7_500_000, DepositAmount: 2_000_000},
		}, nil
	}

	uc := NewDesignRequestViewUseCase(state, zap.NewNop())

	detail, err := uc.Detail(context.Background(), 11)
	require.NoError(t, err)

	require.Len(t, detail.Proposals, 2)
	assert.False(t, detail.Proposals[0].Open)
	assert.True(t, detail.Proposals[1].Open)
	assert.Contains(t, detail.Actions, "APPROVE_PROPOSAL")
	assert.Contains(t, detail.Actions, "COUNTER_OFFER")
}

func TestDetail_CompletedWithoutChoiceOffersConstruction(t *testing.T) {
	finalImage := "final.png"
	state := newMockState()
	state.DesignRequestFunc = func(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
		return &domain.CustomDesignRequest{
			ID:               requestID,
			Status:           domain.DesignRequestStatusCompleted,
			FinalDesignImage: &finalImage,
		}, nil
	}

	uc := NewDesignRequestViewUseCase(state, zap.NewNop())

	detail, err := uc.Detail(context.Background(), 11)
	require.NoError(t, err)

	assert.Contains(t, detail.Actions, "CHOOSE_CONSTRUCTION")
	require.NotNil(t, detail.FinalDesignImage)
	assert.Equal(t, "https://cdn.example.com/final.png", *detail.FinalDesignImage)
}

func TestDetail_ChoiceMadeNeverComesBack(t *testing.T) {
	decided := false
	state := newMockState()
	state.DesignRequestFunc = func(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
		return &domain.CustomDesignRequest{
			ID:          requestID,
			Status:      domain.DesignRequestStatusCompleted,
			NeedSupport: &decided,
		}, nil
	}

	uc := NewDesignRequestViewUseCase(state, zap.NewNop())

	detail, err := uc.Detail(context.Background(), 11)
	require.NoError(t, err)

	assert.NotContains(t, detail.Actions, "CHOOSE_CONSTRUCTION")
}

func TestDetail_SubImageResolutionFailureDropsTile(t *testing.T) {
	state := newMockState()
	state.DesignRequestFunc = func(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
		return &domain.CustomDesignRequest{
			ID:     requestID,
			Status: domain.DesignRequestStatusDemoSubmitted,
		}, nil
	}
	state.DemosFunc = func(ctx context.Context, requestID uint) ([]domain.DemoDesign, error) {
		return []domain.DemoDesign{{ID: 3, Status: domain.DemoStatusPending, Image: "main.png"}}, nil
	}
	state.DemoSubImagesFunc = func(ctx context.Context, demoID uint) ([]domain.DemoSubImage, error) {
		return []domain.DemoSubImage{
			{ID: 1, DemoID: demoID, ImageKey: "good.png"},
			{ID: 2, DemoID: demoID, ImageKey: "broken.png"},
		}, nil
	}
	state.ImageURLFunc = func(ctx context.Context, key string) (string, error) {
		if key == "broken.png" {
			return "", apperrors.NewServerError("resolver down", 500, nil)
		}
		return "https://cdn.example.com/" + key, nil
	}

	uc := NewDesignRequestViewUseCase(state, zap.NewNop())

	detail, err := uc.Detail(context.Background(), 11)
	require.NoError(t, err)

	require.Len(t, detail.Demos, 1)
	assert.Equal(t, []string{"https://cdn.example.com/good.png"}, detail.Demos[0].SubImages)
}

func TestDetail_DemoListFailureFallsBackToEmbeddedDemos(t *testing.T) {
	state := newMockState()
	state.DesignRequestFunc = func(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
		return &domain.CustomDesignRequest{
			ID:     requestID,
			Status: domain.DesignRequestStatusDemoSubmitted,
			Demos:  []domain.DemoDesign{{ID: 5, Status: domain.DemoStatusPending}},
		}, nil
	}
	state.DemosFunc = func(ctx context.Context, requestID uint) ([]domain.DemoDesign, error) {
		return nil, apperrors.NewNetworkUnavailableError("no response", nil)
	}

	uc := NewDesignRequestViewUseCase(state, zap.NewNop())

	detail, err := uc.Detail(context.Background(), 11)
	require.NoError(t, err)

	require.Len(t, detail.Demos, 1)
	assert.True(t, detail.Demos[0].Reviewable)
}

func TestDetail_DoesNotMutateCachedRequest(t *testing.T) {
	shared := &domain.CustomDesignRequest{
		ID:     11,
		Status: domain.DesignRequestStatusDemoSubmitted,
	}
	state := newMockState()
	state.DesignRequestFunc = func(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
		return shared, nil
	}
	state.DemosFunc = func(ctx context.Context, requestID uint) ([]domain.DemoDesign, error) {
		return []domain.DemoDesign{{ID: 3, Status: domain.DemoStatusPending}}, nil
	}

	uc := NewDesignRequestViewUseCase(state, zap.NewNop())

	// Every caller receives the same pointer, the way the session cache
	// hands entities out. Detail must never write through it.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			detail, err := uc.Detail(context.Background(), 11)
			assert.NoError(t, err)
			assert.Len(t, detail.Demos, 1)
		}()
	}
	wg.Wait()

	assert.Empty(t, shared.Demos)
}

func TestDetail_PropagatesRequestLoadError(t *testing.T) {
	state := newMockState()
	state.DesignRequestFunc = func(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
		return nil, apperrors.NewNotFoundError("design request not found")
	}

	uc := NewDesignRequestViewUseCase(state, zap.NewNop())

	_, err := uc.Detail(context.Background(), 11)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
