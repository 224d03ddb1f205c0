package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Accepted date layouts for incoming payloads.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LenientDecimal treats an unparseable JSON value as zero instead of
// failing the request. The upstream system coerced bad numeric input to
// 0 on update paths; the behavior is preserved on purpose and the type
// name is the warning label. See DESIGN.md before relying on it.
type LenientDecimal struct {
	decimal.Decimal
}

func (d *LenientDecimal) UnmarshalJSON(b []byte) error {
	if err := d.Decimal.UnmarshalJSON(b); err != nil {
		d.Decimal = decimal.Zero
	}
	return nil
}

// LenientInt is the integer counterpart of LenientDecimal, used for the
// project progress field.
type LenientInt int

func (n *LenientInt) UnmarshalJSON(b []byte) error {
	d := LenientDecimal{}
	_ = d.UnmarshalJSON(b)
	*n = LenientInt(d.IntPart())
	return nil
}

// LedgerInput is the create payload for Income and Expense records.
type LedgerInput struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// LedgerRecord is a normalized ledger create, ready to persist.
type LedgerRecord struct {
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// ValidateLedger checks an Income/Expense create payload. All four
// fields are required; a zero amount counts as missing.
func ValidateLedger(in LedgerInput) (LedgerRecord, error) {
	var errs ValidationErrors
	if in.Amount.IsZero() {
		errs = append(errs, &ValidationError{Field: "amount", Detail: "amount is required"})
	} else if in.Amount.IsNegative() {
		errs = append(errs, &ValidationError{Field: "amount", Detail: "amount must not be negative"})
	}
	if in.Description == "" {
		errs = append(errs, &ValidationError{Field: "description", Detail: "description is required"})
	}
	if in.Category == "" {
		errs = append(errs, &ValidationError{Field: "category", Detail: "category is required"})
	}
	var date time.Time
	if in.Date == "" {
		errs = append(errs, &ValidationError{Field: "date", Detail: "date is required"})
	} else {
		var ok bool
		if date, ok = parseDate(in.Date); !ok {
			errs = append(errs, &ValidationError{Field: "date", Detail: "invalid date format"})
		}
	}
	if len(errs) > 0 {
		return LedgerRecord{}, errs
	}
	return LedgerRecord{
		Amount:      in.Amount,
		Description: in.Description,
		Category:    in.Category,
		Date:        date,
	}, nil
}

// LedgerUpdate is the partial-update payload for Income and Expense.
// Nil fields are left untouched.
type LedgerUpdate struct {
	Amount      *LenientDecimal `json:"amount"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Date        *string         `json:"date"`
}

// Fields normalizes the supplied fields into a column map for a partial
// update. An invalid date is still a hard error; numeric leniency only
// covers the amount.
func (u LedgerUpdate) Fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if u.Amount != nil {
		fields["amount"] = u.Amount.Decimal
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Date != nil {
		date, ok := parseDate(*u.Date)
		if !ok {
			return nil, ValidationErrors{{Field: "date", Detail: "invalid date format"}}
		}
		fields["date"] = date
	}
	return fields, nil
}

// PayableInput is the create payload for Payable and Receivable
// records (they share a shape).
type PayableInput struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	DueDate     string          `json:"dueDate"`
}

// PayableRecord is a normalized Payable/Receivable create.
type PayableRecord struct {
	Name        string
	Amount      decimal.Decimal
	Description string
	DueDate     time.Time
}

// ValidatePayable checks a Payable/Receivable create payload.
func ValidatePayable(in PayableInput) (PayableRecord, error) {
	var errs ValidationErrors
	if in.Name == "" {
		errs = append(errs, &ValidationError{Field: "name", Detail: "name is required"})
	}
	if in.Amount.IsZero() {
		errs = append(errs, &ValidationError{Field: "amount", Detail: "amount is required"})
	} else if in.Amount.IsNegative() {
		errs = append(errs, &ValidationError{Field: "amount", Detail: "amount must not be negative"})
	}
	if in.Description == "" {
		errs = append(errs, &ValidationError{Field: "description", Detail: "description is required"})
	}
	var due time.Time
	if in.DueDate == "" {
		errs = append(errs, &ValidationError{Field: "dueDate", Detail: "dueDate is required"})
	} else {
		var ok bool
		if due, ok = parseDate(in.DueDate); !ok {
			errs = append(errs, &ValidationError{Field: "dueDate", Detail: "invalid date format"})
		}
	}
	if len(errs) > 0 {
		return PayableRecord{}, errs
	}
	return PayableRecord{
		Name:        in.Name,
		Amount:      in.Amount,
		Description: in.Description,
		DueDate:     due,
	}, nil
}

// PayableUpdate is the partial-update payload shared by Payable and
// Receivable; the paid/received toggle is handler-level, mapped onto
// the right column per table.
type PayableUpdate struct {
	Name        *string         `json:"name"`
	Amount      *LenientDecimal `json:"amount"`
	Description *string         `json:"description"`
	DueDate     *string         `json:"dueDate"`
}

// Fields normalizes the supplied fields into a column map.
func (u PayableUpdate) Fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Amount != nil {
		fields["amount"] = u.Amount.Decimal
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.DueDate != nil {
		due, ok := parseDate(*u.DueDate)
		if !ok {
			return nil, ValidationErrors{{Field: "dueDate", Detail: "invalid date format"}}
		}
		fields["due_date"] = due
	}
	return fields, nil
}
