package status

import "signflow/internal/domain"

// Kind identifies which status domain a value belongs to.
type Kind string

const (
	KindOrder         Kind = "order"
	KindDesignRequest Kind = "designRequest"
	KindDemo          Kind = "demo"
	KindProposal      Kind = "proposal"
	KindContract      Kind = "contract"
	KindProgressLog   Kind = "progressLog"
)

type Severity string

const (
	SeverityNeutral Severity = "neutral"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Descriptor is the display metadata for one status value.
type Descriptor struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// Registry maps (kind, status value) to display metadata. It is populated
// once at startup and never mutated afterwards.
type Registry struct {
	entries map[Kind]map[string]Descriptor
}

// Describe fails closed: an unrecognized value still renders, using the raw
// value as label and neutral severity.
func (r *Registry) Describe(kind Kind, value string) Descriptor {
	if byValue, ok := r.entries[kind]; ok {
		if d, ok := byValue[value]; ok {
			return d
		}
	}
	return Descriptor{Label: value, Severity: SeverityNeutral}
}

// NewRegistry builds the canonical process-wide registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[Kind]map[string]Descriptor{
		KindOrder: {
			string(domain.OrderStatusPending):             {Label: "Pending review", Severity: SeverityInfo},
			string(domain.OrderStatusApproved):            {Label: "Approved, deposit required", Severity: SeverityWarning},
			string(domain.OrderStatusConfirmed):           {Label: "Confirmed, deposit required", Severity: SeverityWarning},
			string(domain.OrderStatusRejected):            {Label: "Rejected", Severity: SeverityDanger},
			string(domain.OrderStatusPendingDesign):       {Label: "Waiting for design", Severity: SeverityInfo},
			string(domain.OrderStatusNeedDepositDesign):   {Label: "Design deposit required", Severity: SeverityWarning},
			string(domain.OrderStatusDepositedDesign):     {Label: "Design deposit paid", Severity: SeveritySuccess},
			string(domain.OrderStatusNeedFullyPaidDesign): {Label: "Design balance due", Severity: SeverityWarning},
			string(domain.OrderStatusFullyPaidDesign):     {Label: "Design fully paid", Severity: SeveritySuccess},
			string(domain.OrderStatusProcessingDesign):    {Label: "Design in progress", Severity: SeverityInfo},
			string(domain.OrderStatusCompletedDesign):     {Label: "Design completed", Severity: SeveritySuccess},
			string(domain.OrderStatusPendingContract):     {Label: "Preparing contract", Severity: SeverityInfo},
			string(domain.OrderStatusContractSent):        {Label: "Contract sent", Severity: SeverityWarning},
			string(domain.OrderStatusContractSigned):      {Label: "Contract signed", Severity: SeverityInfo},
			string(domain.OrderStatusContractResigned):    {Label: "Contract needs re-signing", Severity: SeverityWarning},
			string(domain.OrderStatusContractConfirmed):   {Label: "Contract confirmed", Severity: SeveritySuccess},
			string(domain.OrderStatusContractRejected):    {Label: "Contract rejected", Severity: SeverityDanger},
			string(domain.OrderStatusDeposited):           {Label: "Deposit received", Severity: SeveritySuccess},
			string(domain.OrderStatusInProgress):          {Label: "In progress", Severity: SeverityInfo},
			string(domain.OrderStatusProducing):           {Label: "In production", Severity: SeverityInfo},
			string(domain.OrderStatusProductionCompleted): {Label: "Production completed", Severity: SeveritySuccess},
			string(domain.OrderStatusDelivering):          {Label: "Out for delivery", Severity: SeverityInfo},
			string(domain.OrderStatusInstalled):           {Label: "Installed", Severity: SeveritySuccess},
			string(domain.OrderStatusCompleted):           {Label: "Completed", Severity: SeveritySuccess},
			string(domain.OrderStatusCancelled):           {Label: "Cancelled", Severity: SeverityDanger},
		},
		KindDesignRequest: {
			string(domain.DesignRequestStatusPending):            {Label: "Pending review", Severity: SeverityInfo},
			string(domain.DesignRequestStatusPricingNotified):    {Label: "Pricing sent", Severity: SeverityWarning},
			string(domain.DesignRequestStatusNegotiating):        {Label: "Negotiating price", Severity: SeverityWarning},
			string(domain.DesignRequestStatusApprovedPricing):    {Label: "Pricing approved", Severity: SeveritySuccess},
			string(domain.DesignRequestStatusRejectedPricing):    {Label: "Pricing rejected", Severity: SeverityDanger},
			string(domain.DesignRequestStatusDeposited):          {Label: "Deposit received", Severity: SeveritySuccess},
			string(domain.DesignRequestStatusAssignedDesigner):   {Label: "Designer assigned", Severity: SeverityInfo},
			string(domain.DesignRequestStatusDesignerRejected):   {Label: "Declined by designer", Severity: SeverityDanger},
			string(domain.DesignRequestStatusProcessing):         {Label: "Design in progress", Severity: SeverityInfo},
			string(domain.DesignRequestStatusDemoSubmitted):      {Label: "Demo ready for review", Severity: SeverityWarning},
			string(domain.DesignRequestStatusRevisionRequested):  {Label: "Revision requested", Severity: SeverityWarning},
			string(domain.DesignRequestStatusWaitingFullPayment): {Label: "Waiting for full payment", Severity: SeverityWarning},
			string(domain.DesignRequestStatusFullyPaid):          {Label: "Fully paid", Severity: SeveritySuccess},
			string(domain.DesignRequestStatusCompleted):          {Label: "Completed", Severity: SeveritySuccess},
			string(domain.DesignRequestStatusCancelled):          {Label: "Cancelled", Severity: SeverityDanger},
		},
		KindDemo: {
			string(domain.DemoStatusPending):  {Label: "Awaiting review", Severity: SeverityWarning},
			string(domain.DemoStatusApproved): {Label: "Approved", Severity: SeveritySuccess},
			string(domain.DemoStatusRejected): {Label: "Rejected", Severity: SeverityDanger},
		},
		KindProposal: {
			string(domain.ProposalStatusPending):     {Label: "Awaiting response", Severity: SeverityWarning},
			string(domain.ProposalStatusNegotiating): {Label: "Under negotiation", Severity: SeverityWarning},
			string(domain.ProposalStatusApproved):    {Label: "Approved", Severity: SeveritySuccess},
			string(domain.ProposalStatusRejected):    {Label: "Rejected", Severity: SeverityDanger},
		},
		KindContract: {
			string(domain.ContractStatusSent):         {Label: "Sent for signing", Severity: SeverityWarning},
			string(domain.ContractStatusDiscussing):   {Label: "Under discussion", Severity: SeverityInfo},
			string(domain.ContractStatusSigned):       {Label: "Signed", Severity: SeverityInfo},
			string(domain.ContractStatusNeedResigned): {Label: "Needs re-signing", Severity: SeverityWarning},
			string(domain.ContractStatusConfirmed):    {Label: "Confirmed", Severity: SeveritySuccess},
			string(domain.ContractStatusRejected):     {Label: "Rejected", Severity: SeverityDanger},
		},
		KindProgressLog: {
			string(domain.ProgressStatusProducing):           {Label: "Producing", Severity: SeverityInfo},
			string(domain.ProgressStatusProductionCompleted): {Label: "Production completed", Severity: SeveritySuccess},
			string(domain.ProgressStatusDelivering):          {Label: "Delivering", Severity: SeverityInfo},
			string(domain.ProgressStatusInstalled):           {Label: "Installed", Severity: SeveritySuccess},
		},
	}}
}
