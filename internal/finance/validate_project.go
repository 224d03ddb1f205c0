package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/morshedkoli/personal-finance/internal/models"
)

// ProjectInput is the create payload for a project.
type ProjectInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	Budget      *decimal.Decimal `json:"budget"`
	Cost        *LenientDecimal  `json:"cost"`
	PaidAmount  *LenientDecimal  `json:"paidAmount"`
	Progress    *LenientInt      `json:"progress"`
	AgentName   string           `json:"agentName"`
	PhoneNumber string           `json:"phoneNumber"`
}

// ProjectRecord is a normalized project create.
type ProjectRecord struct {
	Name        string
	Description string
	Category    string
	Status      string
	Priority    string
	StartDate   time.Time
	EndDate     time.Time
	Budget      decimal.Decimal
	Cost        decimal.Decimal
	PaidAmount  decimal.Decimal
	Progress    int
	AgentName   string
	PhoneNumber string
}

// ValidateProject checks a project create payload. Each violated rule
// contributes its own field-level error. Cost, paidAmount and progress
// default to zero when absent; a project created already completed
// starts at 100% progress.
func ValidateProject(in ProjectInput) (ProjectRecord, error) {
	var errs ValidationErrors
	if in.Name == "" {
		errs = append(errs, &ValidationError{Field: "name", Detail: "name is required"})
	}
	if in.Description == "" {
		errs = append(errs, &ValidationError{Field: "description", Detail: "description is required"})
	}
	if in.Status == "" {
		errs = append(errs, &ValidationError{Field: "status", Detail: "status is required"})
	} else if !models.ValidProjectStatus(in.Status) {
		errs = append(errs, &ValidationError{Field: "status", Detail: "unknown status"})
	}
	if in.Priority == "" {
		errs = append(errs, &ValidationError{Field: "priority", Detail: "priority is required"})
	} else if !models.ValidProjectPriority(in.Priority) {
		errs = append(errs, &ValidationError{Field: "priority", Detail: "unknown priority"})
	}

	var start, end time.Time
	var startOK, endOK bool
	if in.StartDate == "" {
		errs = append(errs, &ValidationError{Field: "startDate", Detail: "startDate is required"})
	} else if start, startOK = parseDate(in.StartDate); !startOK {
		errs = append(errs, &ValidationError{Field: "startDate", Detail: "invalid date format"})
	}
	if in.EndDate == "" {
		errs = append(errs, &ValidationError{Field: "endDate", Detail: "endDate is required"})
	} else if end, endOK = parseDate(in.EndDate); !endOK {
		errs = append(errs, &ValidationError{Field: "endDate", Detail: "invalid date format"})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, &ValidationError{Field: "endDate", Detail: "end date must be after start date"})
	}

	var budget decimal.Decimal
	if in.Budget == nil {
		errs = append(errs, &ValidationError{Field: "budget", Detail: "budget is required"})
	} else if in.Budget.IsNegative() {
		errs = append(errs, &ValidationError{Field: "budget", Detail: "budget must be a positive number"})
	} else {
		budget = *in.Budget
	}

	if len(errs) > 0 {
		return ProjectRecord{}, errs
	}

	rec := ProjectRecord{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Status:      in.Status,
		Priority:    in.Priority,
		StartDate:   start,
		EndDate:     end,
		Budget:      budget,
		AgentName:   in.AgentName,
		PhoneNumber: in.PhoneNumber,
	}
	if in.Cost != nil {
		rec.Cost = in.Cost.Decimal
	}
	if in.PaidAmount != nil {
		rec.PaidAmount = in.PaidAmount.Decimal
	}
	if in.Progress != nil {
		rec.Progress = int(*in.Progress)
	}
	if rec.Status == models.ProjectStatusCompleted {
		rec.Progress = 100
	}
	return rec, nil
}

// ProjectUpdate is the partial-update payload for a project. Nil fields
// are left untouched; numeric fields use the lenient coercion policy.
type ProjectUpdate struct {
	Name            *string         `json:"name"`
	Description     *string         `json:"description"`
	Category        *string         `json:"category"`
	Status          *string         `json:"status"`
	Priority        *string         `json:"priority"`
	StartDate       *string         `json:"startDate"`
	EndDate         *string         `json:"endDate"`
	Budget          *LenientDecimal `json:"budget"`
	Cost            *LenientDecimal `json:"cost"`
	PaidAmount      *LenientDecimal `json:"paidAmount"`
	Progress        *LenientInt     `json:"progress"`
	AgentName       *string         `json:"agentName"`
	PhoneNumber     *string         `json:"phoneNumber"`
	IncomeGenerated *bool           `json:"incomeGenerated"`
}

// touchesOtherThanPayment reports whether the update supplies any field
// besides paidAmount. Completed projects accept only payment-related
// updates; status may ride along with a payment to pin the derivation,
// but never on its own.
func (u ProjectUpdate) touchesOtherThanPayment() bool {
	if u.Name != nil || u.Description != nil || u.Category != nil ||
		u.Priority != nil || u.StartDate != nil || u.EndDate != nil ||
		u.Budget != nil || u.Cost != nil || u.Progress != nil ||
		u.AgentName != nil || u.PhoneNumber != nil || u.IncomeGenerated != nil {
		return true
	}
	return u.Status != nil && u.PaidAmount == nil
}

// Fields normalizes the supplied fields into a column map.
func (u ProjectUpdate) Fields() (map[string]interface{}, error) {
	var errs ValidationErrors
	fields := make(map[string]interface{})
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Status != nil {
		if !models.ValidProjectStatus(*u.Status) {
			errs = append(errs, &ValidationError{Field: "status", Detail: "unknown status"})
		} else {
			fields["status"] = *u.Status
		}
	}
	if u.Priority != nil {
		if !models.ValidProjectPriority(*u.Priority) {
			errs = append(errs, &ValidationError{Field: "priority", Detail: "unknown priority"})
		} else {
			fields["priority"] = *u.Priority
		}
	}
	if u.StartDate != nil {
		if t, ok := parseDate(*u.StartDate); ok {
			fields["start_date"] = t
		} else {
			errs = append(errs, &ValidationError{Field: "startDate", Detail: "invalid date format"})
		}
	}
	if u.EndDate != nil {
		if t, ok := parseDate(*u.EndDate); ok {
			fields["end_date"] = t
		} else {
			errs = append(errs, &ValidationError{Field: "endDate", Detail: "invalid date format"})
		}
	}
	if u.Budget != nil {
		fields["budget"] = u.Budget.Decimal
	}
	if u.Cost != nil {
		fields["cost"] = u.Cost.Decimal
	}
	if u.PaidAmount != nil {
		fields["paid_amount"] = u.PaidAmount.Decimal
	}
	if u.Progress != nil {
		fields["progress"] = int(*u.Progress)
	}
	if u.AgentName != nil {
		fields["agent_name"] = *u.AgentName
	}
	if u.PhoneNumber != nil {
		fields["phone_number"] = *u.PhoneNumber
	}
	if u.IncomeGenerated != nil {
		fields["income_generated"] = *u.IncomeGenerated
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return fields, nil
}
