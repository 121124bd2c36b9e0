package domain

import "time"

type ContractStatus string

const (
	ContractStatusSent         ContractStatus = "SENT"
	ContractStatusDiscussing   ContractStatus = "DISCUSSING"
	ContractStatusSigned       ContractStatus = "SIGNED"
	ContractStatusNeedResigned ContractStatus = "NEED_RESIGNED"
	ContractStatusConfirmed    ContractStatus = "CONFIRMED"
	ContractStatusRejected     ContractStatus = "REJECTED"
)

type Contract struct {
	ID      uint           `json:"id"`
	OrderID uint           `json:"orderId"`
	Status  ContractStatus `json:"status"`

	ContractURL       string  `json:"contractUrl"`
	SignedContractURL *string `json:"signedContractUrl,omitempty"`

	DepositPercentChanged bool `json:"depositPercentChanged"`

	CreatedAt time.Time `json:"createdAt"`
}

// AwaitsSignature reports whether uploading a signed copy is currently valid.
func (c *Contract) AwaitsSignature() bool {
	return c.Status == ContractStatusSent || c.Status == ContractStatusNeedResigned
}
