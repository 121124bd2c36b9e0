package dto

import "time"

type DesignRequestSummary struct {
	ID          uint       `json:"id"`
	Status      StatusInfo `json:"status"`
	CompanyName string     `json:"companyName,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type DemoInfo struct {
	ID          uint       `json:"id"`
	Status      StatusInfo `json:"status"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Description string     `json:"description,omitempty"`
	SubImages   []string   `json:"subImages,omitempty"`
	Reviewable  bool       `json:"reviewable"`
}

type ProposalInfo struct {
	ID                   uint       `json:"id"`
	Status               StatusInfo `json:"status"`
	TotalPrice           int64      `json:"totalPrice"`
	DepositAmount        int64      `json:"depositAmount"`
	OfferedTotalPrice    *int64     `json:"offeredTotalPrice,omitempty"`
	OfferedDepositAmount *int64     `json:"offeredDepositAmount,omitempty"`
	Open                 bool       `json:"open"`
}

type DesignRequestDetail struct {
	ID          uint       `json:"id"`
	Status      StatusInfo `json:"status"`
	Requirement string     `json:"requirement,omitempty"`
	CompanyName string     `json:"companyName,omitempty"`

	NeedSupport *bool `json:"isNeedSupport"`

	Demos     []DemoInfo     `json:"demos"`
	Proposals []ProposalInfo `json:"proposals"`

	FinalDesignImage *string `json:"finalDesignImage,omitempty"`

	Actions []string `json:"actions"`

	CreatedAt time.Time `json:"createdAt"`
}
