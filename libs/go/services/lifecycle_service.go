package services

import (
	"github.com/cyphera/cyphera-expense/libs/go/types/business"
)

// QuotationAction is a user action on an expense quotation
type QuotationAction string

const (
	QuotationActionSave      QuotationAction = "save"
	QuotationActionDraft     QuotationAction = "draft"
	QuotationActionValidated QuotationAction = "validated"
	QuotationActionSent      QuotationAction = "sent"
	QuotationActionAccepted  QuotationAction = "accepted"
	QuotationActionRejected  QuotationAction = "rejected"
	QuotationActionInvoiced  QuotationAction = "invoiced"
	QuotationActionDuplicate QuotationAction = "duplicate"
	QuotationActionDownload  QuotationAction = "download"
	QuotationActionDelete    QuotationAction = "delete"
	QuotationActionArchive   QuotationAction = "archive"
	QuotationActionReset     QuotationAction = "reset"
)

// statusMembership says whether an action is offered for statuses inside or
// outside its set
type statusMembership int

const (
	membershipIn statusMembership = iota
	membershipOut
)

type actionRule struct {
	action     QuotationAction
	membership statusMembership
	statuses   []business.ExpenseQuotationStatus
}

// noStatus is a quotation that has not been saved yet
const noStatus business.ExpenseQuotationStatus = ""

var quotationActionRules = []actionRule{
	{QuotationActionSave, membershipOut, []business.ExpenseQuotationStatus{noStatus}},
	{QuotationActionDraft, membershipIn, []business.ExpenseQuotationStatus{noStatus}},
	{QuotationActionValidated, membershipIn, []business.ExpenseQuotationStatus{
		noStatus, business.ExpenseQuotationStatusDraft, business.ExpenseQuotationStatusSent,
	}},
	{QuotationActionSent, membershipIn, []business.ExpenseQuotationStatus{
		noStatus, business.ExpenseQuotationStatusDraft, business.ExpenseQuotationStatusValidated,
	}},
	{QuotationActionAccepted, membershipIn, []business.ExpenseQuotationStatus{business.ExpenseQuotationStatusSent}},
	{QuotationActionRejected, membershipIn, []business.ExpenseQuotationStatus{business.ExpenseQuotationStatusSent}},
	{QuotationActionInvoiced, membershipIn, []business.ExpenseQuotationStatus{
		business.ExpenseQuotationStatusAccepted, business.ExpenseQuotationStatusInvoiced,
	}},
	{QuotationActionDuplicate, membershipOut, []business.ExpenseQuotationStatus{noStatus}},
	{QuotationActionDownload, membershipOut, []business.ExpenseQuotationStatus{noStatus}},
	{QuotationActionDelete, membershipOut, []business.ExpenseQuotationStatus{noStatus, business.ExpenseQuotationStatusSent}},
	{QuotationActionArchive, membershipOut, []business.ExpenseQuotationStatus{}},
	{QuotationActionReset, membershipOut, []business.ExpenseQuotationStatus{noStatus}},
}

// LifecycleService decides which document actions are available for a status
type LifecycleService struct{}

// NewLifecycleService creates a new lifecycle service
func NewLifecycleService() *LifecycleService {
	return &LifecycleService{}
}

// AvailableQuotationActions lists, in display order, the actions offered for
// a quotation in the given status. An empty status is an unsaved quotation.
func (s *LifecycleService) AvailableQuotationActions(status business.ExpenseQuotationStatus) []QuotationAction {
	actions := make([]QuotationAction, 0, len(quotationActionRules))
	for _, rule := range quotationActionRules {
		if rule.allows(status) {
			actions = append(actions, rule.action)
		}
	}
	return actions
}

// IsQuotationActionAvailable reports whether one action is offered for status
func (s *LifecycleService) IsQuotationActionAvailable(status business.ExpenseQuotationStatus, action QuotationAction) bool {
	for _, rule := range quotationActionRules {
		if rule.action == action {
			return rule.allows(status)
		}
	}
	return false
}

func (r actionRule) allows(status business.ExpenseQuotationStatus) bool {
	member := false
	for _, s := range r.statuses {
		if s == status {
			member = true
			break
		}
	}
	if r.membership == membershipIn {
		return member
	}
	return !member
}

// IsPayableStatus reports whether an invoice in this status can receive a payment
func IsPayableStatus(status business.ExpenseInvoiceStatus) bool {
	for _, payable := range PayableInvoiceStatuses {
		if status == payable {
			return true
		}
	}
	return false
}

// PayableStatusStrings returns the payable statuses as stored in the database
func PayableStatusStrings() []string {
	statuses := make([]string, 0, len(PayableInvoiceStatuses))
	for _, status := range PayableInvoiceStatuses {
		statuses = append(statuses, string(status))
	}
	return statuses
}
