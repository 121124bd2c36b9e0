package dto

// ActionBody is the JSON payload for executing a user action. Only the
// fields the named action uses are read.
type ActionBody struct {
	Action string `json:"action"`

	DemoID     uint `json:"demoId,omitempty"`
	ProposalID uint `json:"proposalId,omitempty"`
	ContractID uint `json:"contractId,omitempty"`

	Feedback       string   `json:"feedback,omitempty"`
	FeedbackImages []string `json:"feedbackImages,omitempty"`

	Reason               string `json:"reason,omitempty"`
	OfferedTotalPrice    int64  `json:"offeredTotalPrice,omitempty"`
	OfferedDepositAmount int64  `json:"offeredDepositAmount,omitempty"`

	NeedSupport *bool `json:"isNeedSupport,omitempty"`

	Rating   int     `json:"rating,omitempty"`
	Comment  string  `json:"comment,omitempty"`
	ImageKey *string `json:"image,omitempty"`

	Message string `json:"message,omitempty"`
}
