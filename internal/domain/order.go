package domain

import "time"

type OrderType string

const (
	OrderTypeTemplate                  OrderType = "TEMPLATE"
	OrderTypeCustomWithConstruction    OrderType = "CUSTOM_WITH_CONSTRUCTION"
	OrderTypeCustomWithoutConstruction OrderType = "CUSTOM_WITHOUT_CONSTRUCTION"
	OrderTypeAIDesign                  OrderType = "AI_DESIGN"
)

type OrderStatus string

const (
	OrderStatusPending             OrderStatus = "PENDING"
	OrderStatusApproved            OrderStatus = "APPROVED"
	OrderStatusConfirmed           OrderStatus = "CONFIRMED"
	OrderStatusRejected            OrderStatus = "REJECTED"
	OrderStatusPendingDesign       OrderStatus = "PENDING_DESIGN"
	OrderStatusNeedDepositDesign   OrderStatus = "NEED_DEPOSIT_DESIGN"
	OrderStatusDepositedDesign     OrderStatus = "DEPOSITED_DESIGN"
	OrderStatusNeedFullyPaidDesign OrderStatus = "NEED_FULLY_PAID_DESIGN"
	OrderStatusFullyPaidDesign     OrderStatus = "FULLY_PAID_DESIGN"
	OrderStatusProcessingDesign    OrderStatus = "PROCESSING_DESIGN"
	OrderStatusCompletedDesign     OrderStatus = "COMPLETED_DESIGN"
	OrderStatusPendingContract     OrderStatus = "PENDING_CONTRACT"
	OrderStatusContractSent        OrderStatus = "CONTRACT_SENT"
	OrderStatusContractSigned      OrderStatus = "CONTRACT_SIGNED"
	OrderStatusContractResigned    OrderStatus = "CONTRACT_RESIGNED"
	OrderStatusContractConfirmed   OrderStatus = "CONTRACT_CONFIRMED"
	OrderStatusContractRejected    OrderStatus = "CONTRACT_REJECTED"
	OrderStatusDeposited           OrderStatus = "DEPOSITED"
	OrderStatusInProgress          OrderStatus = "IN_PROGRESS"
	OrderStatusProducing           OrderStatus = "PRODUCING"
	OrderStatusProductionCompleted OrderStatus = "PRODUCTION_COMPLETED"
	OrderStatusDelivering          OrderStatus = "DELIVERING"
	OrderStatusInstalled           OrderStatus = "INSTALLED"
	OrderStatusCompleted           OrderStatus = "ORDER_COMPLETED"
	OrderStatusCancelled           OrderStatus = "CANCELLED"
)

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

type Order struct {
	ID        uint        `json:"id"`
	UserID    uint        `json:"userId"`
	Status    OrderStatus `json:"status"`
	OrderType OrderType   `json:"orderType"`

	TotalAmount           int64 `json:"totalAmount"`
	DepositAmount         int64 `json:"depositAmount"`
	RemainingAmount       int64 `json:"remainingAmount"`
	TotalDesignAmount     int64 `json:"totalDesignAmount"`
	DepositDesignAmount   int64 `json:"depositDesignAmount"`
	RemainingDesignAmount int64 `json:"remainingDesignAmount"`

	DesignRequestID *uint         `json:"designRequestId,omitempty"`
	Contract        *Contract     `json:"contract,omitempty"`
	ProgressLogs    []ProgressLog `json:"progressLogs,omitempty"`
	Impressions     []Impression  `json:"impressions,omitempty"`
	Address         *string       `json:"address,omitempty"`
	Note            *string       `json:"note,omitempty"`

	// Legacy per-phase image keys kept by orders created before progress
	// logs carried their own photos.
	ProducingImage           *string `json:"producingImage,omitempty"`
	ProductionCompletedImage *string `json:"productionCompletedImage,omitempty"`
	DeliveringImage          *string `json:"deliveringImage,omitempty"`
	InstalledImage           *string `json:"installedImage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LegacyPhaseImage returns the order-level image key for a production phase,
// or nil when the order has none for that phase.
func (o *Order) LegacyPhaseImage(phase ProgressStatus) *string {
	switch phase {
	case ProgressStatusProducing:
		return o.ProducingImage
	case ProgressStatusProductionCompleted:
		return o.ProductionCompletedImage
	case ProgressStatusDelivering:
		return o.DeliveringImage
	case ProgressStatusInstalled:
		return o.InstalledImage
	}
	return nil
}
