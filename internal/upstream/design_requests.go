package upstream

import (
	"context"
	"net/http"

	"signflow/internal/domain"
)

type CreateDesignRequestInput struct {
	CustomerID  uint   `json:"customerId"`
	Requirement string `json:"requirement"`
	CompanyName string `json:"companyName"`
}

func (c *Client) ListDesignRequests(ctx context.Context, customerID uint) ([]domain.CustomDesignRequest, error) {
	var requests []domain.CustomDesignRequest
	_, err := c.doJSON(ctx, http.MethodGet, c.apiURL("/api/design-requests/customer/%d", customerID), nil, &requests)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) GetDesignRequest(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
	var request domain.CustomDesignRequest
	_, err := c.doJSON(ctx, http.MethodGet, c.apiURL("/api/design-requests/%d", requestID), nil, &request)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *Client) CreateDesignRequest(ctx context.Context, input CreateDesignRequestInput) (*domain.CustomDesignRequest, error) {
	var request domain.CustomDesignRequest
	_, err := c.doJSON(ctx, http.MethodPost, c.apiURL("/api/design-requests"), input, &request)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

type needSupportRequest struct {
	NeedSupport bool `json:"isNeedSupport"`
}

// SetNeedSupport records the construction choice. The upstream rejects this
// unless the request is COMPLETED and the flag is still undecided.
func (c *Client) SetNeedSupport(ctx context.Context, requestID uint, needSupport bool) error {
	_, err := c.doJSON(ctx, http.MethodPatch, c.apiURL("/api/design-requests/%d/need-support", requestID), needSupportRequest{NeedSupport: needSupport}, nil)
	return err
}

func (c *Client) ListDemos(ctx context.Context, requestID uint) ([]domain.DemoDesign, error) {
	var demos []domain.DemoDesign
	_, err := c.doJSON(ctx, http.MethodGet, c.apiURL("/api/design-requests/%d/demos", requestID), nil, &demos)
	if err != nil {
		return nil, err
	}
	return demos, nil
}

func (c *Client) ApproveDemo(ctx context.Context, demoID uint) error {
	_, err := c.doJSON(ctx, http.MethodPatch, c.apiURL("/api/demo-designs/%d/approve", demoID), nil, nil)
	return err
}

type rejectDemoRequest struct {
	CustomerNote   string   `json:"customerNote"`
	FeedbackImages []string `json:"feedbackImages,omitempty"`
}

func (c *Client) RejectDemo(ctx context.Context, demoID uint, note string, feedbackImages []string) error {
	body := rejectDemoRequest{CustomerNote: note, FeedbackImages: feedbackImages}
	_, err := c.doJSON(ctx, http.MethodPatch, c.apiURL("/api/demo-designs/%d/reject", demoID), body, nil)
	return err
}

func (c *Client) ListDemoSubImages(ctx context.Context, demoID uint) ([]domain.DemoSubImage, error) {
	var images []domain.DemoSubImage
	_, err := c.doJSON(ctx, http.MethodGet, c.apiURL("/api/demo-designs/%d/sub-images", demoID), nil, &images)
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (c *Client) ListProposals(ctx context.Context, requestID uint) ([]domain.PriceProposal, error) {
	var proposals []domain.PriceProposal
	_, err := c.doJSON(ctx, http.MethodGet, c.apiURL("/api/design-requests/%d/price-proposals", requestID), nil, &proposals)
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

func (c *Client) ApproveProposal(ctx context.Context, proposalID uint) error {
	_, err := c.doJSON(ctx, http.MethodPatch, c.apiURL("/api/price-proposals/%d/approve", proposalID), nil, nil)
	return err
}

type counterOfferRequest struct {
	RejectionReason      string `json:"rejectionReason"`
	OfferedTotalPrice    int64  `json:"offeredTotalPrice"`
	OfferedDepositAmount int64  `json:"offeredDepositAmount"`
}

func (c *Client) CounterOfferProposal(ctx context.Context, proposalID uint, reason string, offeredTotal, offeredDeposit int64) error {
	body := counterOfferRequest{
		RejectionReason:      reason,
		OfferedTotalPrice:    offeredTotal,
		OfferedDepositAmount: offeredDeposit,
	}
	_, err := c.doJSON(ctx, http.MethodPatch, c.apiURL("/api/price-proposals/%d/offer", proposalID), body, nil)
	return err
}
