package dto

import "time"

type OrderSummary struct {
	ID          uint       `json:"id"`
	Status      StatusInfo `json:"status"`
	OrderType   string     `json:"orderType"`
	TotalAmount int64      `json:"totalAmount"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type ContractInfo struct {
	ID                    uint       `json:"id"`
	Status                StatusInfo `json:"status"`
	ContractURL           string     `json:"contractUrl"`
	SignedContractURL     *string    `json:"signedContractUrl,omitempty"`
	DepositPercentChanged bool       `json:"depositPercentChanged"`
}

// PhaseInfo is the presentation of one production phase indicator.
type PhaseInfo struct {
	Phase       StatusInfo `json:"phase"`
	Description string     `json:"description,omitempty"`
	Mode        string     `json:"mode"`
	Clickable   bool       `json:"clickable"`
	LoadFailed  bool       `json:"loadFailed,omitempty"`
	Images      []string   `json:"images,omitempty"`
}

type OrderDetail struct {
	ID        uint       `json:"id"`
	Status    StatusInfo `json:"status"`
	OrderType string     `json:"orderType"`

	TotalAmount           int64 `json:"totalAmount"`
	DepositAmount         int64 `json:"depositAmount"`
	RemainingAmount       int64 `json:"remainingAmount"`
	TotalDesignAmount     int64 `json:"totalDesignAmount,omitempty"`
	DepositDesignAmount   int64 `json:"depositDesignAmount,omitempty"`
	RemainingDesignAmount int64 `json:"remainingDesignAmount,omitempty"`

	DesignRequestID *uint         `json:"designRequestId,omitempty"`
	Contract        *ContractInfo `json:"contract,omitempty"`

	Actions    []string    `json:"actions"`
	PaymentDue *int64      `json:"paymentDue,omitempty"`
	Progress   []PhaseInfo `json:"progress,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
