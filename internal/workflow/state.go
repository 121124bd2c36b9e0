package workflow

import (
	"context"
	"io"
	"strconv"

	"go.uber.org/zap"

	"signflow/internal/cache"
	"signflow/internal/domain"
	apperrors "signflow/internal/errors"
	"signflow/internal/status"
	"signflow/internal/upstream"
)

// Cache collections. Each sub-entity is fetched lazily and keyed by the id
// of its owner.
const (
	CollectionOrders               = "orders"               // by user id
	CollectionOrderDetails         = "orderDetails"         // by order id
	CollectionDesignRequests       = "designRequests"       // by customer id
	CollectionDesignRequestDetails = "designRequestDetails" // by request id
	CollectionDemos                = "demos"                // by request id
	CollectionDemoSubImages        = "demoSubImages"        // by demo id
	CollectionProposals            = "proposals"            // by request id
	CollectionContracts            = "contracts"            // by order id
	CollectionProgressLogs         = "progressLogs"         // by order id
	CollectionProgressLogImages    = "progressLogImages"    // by log id
	CollectionImageURLs            = "imageURLs"            // by storage key
)

// UpstreamAPI is the slice of the upstream client the workflow layer uses.
type UpstreamAPI interface {
	ListOrders(ctx context.Context, userID uint) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID uint) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID uint) error
	CreateOrderFromDesignRequest(ctx context.Context, requestID uint) (*domain.Order, error)
	CreatePaymentLink(ctx context.Context, orderID uint, purpose upstream.PaymentPurpose) (string, error)
	SubmitImpression(ctx context.Context, orderID uint, rating int, comment string, imageKey *string) error

	ListDesignRequests(ctx context.Context, customerID uint) ([]domain.CustomDesignRequest, error)
	GetDesignRequest(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error)
	SetNeedSupport(ctx context.Context, requestID uint, needSupport bool) error

	ListDemos(ctx context.Context, requestID uint) ([]domain.DemoDesign, error)
	ApproveDemo(ctx context.Context, demoID uint) error
	RejectDemo(ctx context.Context, demoID uint, note string, feedbackImages []string) error
	ListDemoSubImages(ctx context.Context, demoID uint) ([]domain.DemoSubImage, error)

	ListProposals(ctx context.Context, requestID uint) ([]domain.PriceProposal, error)
	ApproveProposal(ctx context.Context, proposalID uint) error
	CounterOfferProposal(ctx context.Context, proposalID uint, reason string, offeredTotal, offeredDeposit int64) error

	GetContractByOrder(ctx context.Context, orderID uint) (*domain.Contract, error)
	UploadSignedContract(ctx context.Context, contractID uint, filename string, file io.Reader) error
	RequestContractDiscussion(ctx context.Context, contractID uint, message string) error

	ListProgressLogs(ctx context.Context, orderID uint) ([]domain.ProgressLog, error)
	ListProgressLogImages(ctx context.Context, logID uint) ([]domain.ProgressLogImage, error)
	ResolveImageURL(ctx context.Context, key string) (string, error)
}

// State is the constructor-injected session state: the entity cache, the
// status registry and the upstream client. Consumers receive it by
// reference; there are no ambient globals.
type State struct {
	cache    *cache.Store
	registry *status.Registry
	api      UpstreamAPI
	logger   *zap.Logger
}

func NewState(store *cache.Store, registry *status.Registry, api UpstreamAPI, logger *zap.Logger) *State {
	return &State{
		cache:    store,
		registry: registry,
		api:      api,
		logger:   logger,
	}
}

func (s *State) Registry() *status.Registry {
	return s.registry
}

// Peek reads a cache entry without fetching.
func (s *State) Peek(collection, id string) cache.Entry {
	return s.cache.Get(collection, id)
}

// Teardown drops the whole cache; used on logout.
func (s *State) Teardown() {
	s.cache.Clear()
}

func idKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// ensure is the typed bridge onto the cache: one loader per key, shared by
// concurrent callers, re-invoked only after failure or invalidation.
func ensure[T any](ctx context.Context, s *State, collection, id string, loader func(context.Context) (T, error)) (T, error) {
	value, err := s.cache.Ensure(ctx, collection, id, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, apperrors.NewInternalError("unexpected cached value type for "+collection, nil)
	}
	return typed, nil
}

func (s *State) Orders(ctx context.Context, userID uint) ([]domain.Order, error) {
	return ensure(ctx, s, CollectionOrders, idKey(userID), func(ctx context.Context) ([]domain.Order, error) {
		return s.api.ListOrders(ctx, userID)
	})
}

func (s *State) Order(ctx context.Context, orderID uint) (*domain.Order, error) {
	return ensure(ctx, s, CollectionOrderDetails, idKey(orderID), func(ctx context.Context) (*domain.Order, error) {
		return s.api.GetOrder(ctx, orderID)
	})
}

func (s *State) DesignRequests(ctx context.Context, customerID uint) ([]domain.CustomDesignRequest, error) {
	return ensure(ctx, s, CollectionDesignRequests, idKey(customerID), func(ctx context.Context) ([]domain.CustomDesignRequest, error) {
		return s.api.ListDesignRequests(ctx, customerID)
	})
}

func (s *State) DesignRequest(ctx context.Context, requestID uint) (*domain.CustomDesignRequest, error) {
	return ensure(ctx, s, CollectionDesignRequestDetails, idKey(requestID), func(ctx context.Context) (*domain.CustomDesignRequest, error) {
		return s.api.GetDesignRequest(ctx, requestID)
	})
}

func (s *State) Demos(ctx context.Context, requestID uint) ([]domain.DemoDesign, error) {
	return ensure(ctx, s, CollectionDemos, idKey(requestID), func(ctx context.Context) ([]domain.DemoDesign, error) {
		return s.api.ListDemos(ctx, requestID)
	})
}

func (s *State) DemoSubImages(ctx context.Context, demoID uint) ([]domain.DemoSubImage, error) {
	return ensure(ctx, s, CollectionDemoSubImages, idKey(demoID), func(ctx context.Context) ([]domain.DemoSubImage, error) {
		return s.api.ListDemoSubImages(ctx, demoID)
	})
}

func (s *State) Proposals(ctx context.Context, requestID uint) ([]domain.PriceProposal, error) {
	return ensure(ctx, s, CollectionProposals, idKey(requestID), func(ctx context.Context) ([]domain.PriceProposal, error) {
		return s.api.ListProposals(ctx, requestID)
	})
}

func (s *State) Contract(ctx context.Context, orderID uint) (*domain.Contract, error) {
	return ensure(ctx, s, CollectionContracts, idKey(orderID), func(ctx context.Context) (*domain.Contract, error) {
		return s.api.GetContractByOrder(ctx, orderID)
	})
}

func (s *State) ProgressLogs(ctx context.Context, orderID uint) ([]domain.ProgressLog, error) {
	return ensure(ctx, s, CollectionProgressLogs, idKey(orderID), func(ctx context.Context) ([]domain.ProgressLog, error) {
		return s.api.ListProgressLogs(ctx, orderID)
	})
}

func (s *State) ProgressLogImages(ctx context.Context, logID uint) ([]domain.ProgressLogImage, error) {
	return ensure(ctx, s, CollectionProgressLogImages, idKey(logID), func(ctx context.Context) ([]domain.ProgressLogImage, error) {
		return s.api.ListProgressLogImages(ctx, logID)
	})
}

func (s *State) ImageURL(ctx context.Context, key string) (string, error) {
	return ensure(ctx, s, CollectionImageURLs, key, func(ctx context.Context) (string, error) {
		return s.api.ResolveImageURL(ctx, key)
	})
}
