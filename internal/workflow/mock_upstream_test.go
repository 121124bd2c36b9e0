package workflow

import (
	"context"
	"io"

	"signflow/internal/domain"
	"signflow/internal/upstream"
)

// mockUpstream implements UpstreamAPI with overridable functions. A method
// whose function is nil panics, which surfaces unexpected calls in tests.
type mockUpstream struct {
	ListOrdersFunc                   func(ctx context.Context, userID uint) ([]domain.Order, error)
	GetOrderFunc                     func(ctx context.Context, orderID uint) (*domain.Order, error)
	CancelOrderFunc                  func(ctx context.Context, orderID uint) error
	CreateOrderFromDesignRequestFunc func(ctx context.Context, requestID uint) (*domain.Order, error)
	CreatePaymentLinkFunc            func(ctx context.Context, orderID uint, purpose upstream.PaymentPurpose) (string, error)
	SubmitImpressionFunc             func(ctx context.Context, orderID uint, rating int, comment string, imageKey *string) error
	ListDesignRequestsFunc           func(ctx context.Context, customerID uint) ([]domain.CustomDesignRequest, error)
	GetDesignRequestFunc             func(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error)
	SetNeedSupportFunc               func(ctx context.Context, requestID uint, needSupport bool) error
	ListDemosFunc                    func(ctx context.Context, requestID uint) ([]domain.DemoDesign, error)
	ApproveDemoFunc                  func(ctx context.Context, demoID uint) error
	RejectDemoFunc                   func(ctx context.Context, demoID uint, note string, feedbackImages []string) error
	ListDemoSubImagesFunc            func(ctx context.Context, demoID uint) ([]domain.DemoSubImage, error)
	ListProposalsFunc                func(ctx context.Context, requestID uint) ([]domain.PriceProposal, error)
	ApproveProposalFunc              func(ctx context.Context, proposalID uint) error
	CounterOfferProposalFunc         func(ctx context.Context, proposalID uint, reason string, offeredTotal, offeredDeposit int64) error
	GetContractByOrderFunc           func(ctx context.Context, orderID uint) (*domain.Contract, error)
	UploadSignedContractFunc         func(ctx context.Context, contractID uint, filename string, file io.Reader) error
	RequestContractDiscussionFunc    func(ctx context.Context, contractID uint, message string) error
	ListProgressLogsFunc             func(ctx context.Context, orderID uint) ([]domain.ProgressLog, error)
	ListProgressLogImagesFunc        func(ctx context.Context, logID uint) ([]domain.ProgressLogImage, error)
	ResolveImageURLFunc              func(ctx context.Context, key string) (string, error)
}

func (m *mockUpstream) ListOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	return m.ListOrdersFunc(ctx, userID)
}

func (m *mockUpstream) GetOrder(ctx context.Context, orderID uint) (*domain.Order, error) {
	return m.GetOrderFunc(ctx, orderID)
}

func (m *mockUpstream) CancelOrder(ctx context.Context, orderID uint) error {
	return m.CancelOrderFunc(ctx, orderID)
}

func (m *mockUpstream) CreateOrderFromDesignRequest(ctx context.Context, requestID uint) (*domain.Order, error) {
	return m.CreateOrderFromDesignRequestFunc(ctx, requestID)
}

func (m *mockUpstream) CreatePaymentLink(ctx context.Context, orderID uint, purpose upstream.PaymentPurpose) (string, error) {
	return m.CreatePaymentLinkFunc(ctx, orderID, purpose)
}

func (m *mockUpstream) SubmitImpression(ctx context.Context, orderID uint, rating int, comment string, imageKey *string) error {
	return m.SubmitImpressionFunc(ctx, orderID, rating, comment, imageKey)
}

func (m *mockUpstream) ListDesignRequests(ctx context.Context, customerID uint) ([]domain.CustomDesignRequest, error) {
	return m.ListDesignRequestsFunc(ctx, customerID)
}

func (m *mockUpstream) GetDesignRequest(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
	return m.GetDesignRequestFunc(ctx, requestID)
}

func (m *mockUpstream) SetNeedSupport(ctx context.Context, requestID uint, needSupport bool) error {
	return m.SetNeedSupportFunc(ctx, requestID, needSupport)
}

func (m *mockUpstream) ListDemos(ctx context.Context, requestID uint) ([]domain.DemoDesign, error) {
	return m.ListDemosFunc(ctx, requestID)
}

func (m *mockUpstream) ApproveDemo(ctx context.Context, demoID uint) error {
	return m.ApproveDemoFunc(ctx, demoID)
}

func (m *mockUpstream) RejectDemo(ctx context.Context, demoID uint, note string, feedbackImages []string) error {
	return m.RejectDemoFunc(ctx, demoID, note, feedbackImages)
}

func (m *mockUpstream) ListDemoSubImages(ctx context.Context, demoID uint) ([]domain.DemoSubImage, error) {
	return m.ListDemoSubImagesFunc(ctx, demoID)
}

func (m *mockUpstream) ListProposals(ctx context.Context, requestID uint) ([]domain.PriceProposal, error) {
	return m.ListProposalsFunc(ctx, requestID)
}

func (m *mockUpstream) ApproveProposal(ctx context.Context, proposalID uint) error {
	return m.ApproveProposalFunc(ctx, proposalID)
}

func (m *mockUpstream) CounterOfferProposal(ctx context.Context, proposalID uint, reason string, offeredTotal, offeredDeposit int64) error {
	return m.CounterOfferProposalFunc(ctx, proposalID, reason, offeredTotal, offeredDeposit)
}

func (m *mockUpstream) GetContractByOrder(ctx context.Context, orderID uint) (*domain.Contract, error) {
	return m.GetContractByOrderFunc(ctx, orderID)
}

func (m *mockUpstream) UploadSignedContract(ctx context.Context, contractID uint, filename string, file io.Reader) error {
	return m.UploadSignedContractFunc(ctx, contractID, filename, file)
}

func (m *mockUpstream) RequestContractDiscussion(ctx context.Context, contractID uint, message string) error {
	return m.RequestContractDiscussionFunc(ctx, contractID, message)
}

func (m *mockUpstream) ListProgressLogs(ctx context.Context, orderID uint) ([]domain.ProgressLog, error) {
	return m.ListProgressLogsFunc(ctx, orderID)
}

func (m *mockUpstream) ListProgressLogImages(ctx context.Context, logID uint) ([]domain.ProgressLogImage, error) {
	return m.ListProgressLogImagesFunc(ctx, logID)
}

func (m *mockUpstream) ResolveImageURL(ctx context.Context, key string) (string, error) {
	return m.ResolveImageURLFunc(ctx, key)
}
