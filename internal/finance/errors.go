package finance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError reports a single malformed or missing input field.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Detail)
}

// ValidationErrors collects every offending field of one request so the
// caller can fix them all at once.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, v.Error())
	}
	return strings.Join(parts, "; ")
}

// Details returns a field -> message map for the response envelope.
func (e ValidationErrors) Details() map[string]string {
	m := make(map[string]string, len(e))
	for _, v := range e {
		m[v.Field] = v.Detail
	}
	return m
}

// NotFoundError means the entity is absent or not owned by the
// requesting user. The two cases are deliberately indistinguishable.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// PaymentRequiredError rejects completing a project that has not been
// fully paid. Remaining is what the user still has to collect.
type PaymentRequiredError struct {
	Remaining decimal.Decimal
	Budget    decimal.Decimal
}

func (e *PaymentRequiredError) Error() string {
	return fmt.Sprintf("payment required: $%s remaining of $%s total budget", e.Remaining.String(), e.Budget.String())
}

// AggregationError wraps a store failure during multi-entity dashboard
// computation. A partial dashboard is never served.
type AggregationError struct {
	Entity string
	Err    error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregate %s: %v", e.Entity, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

// TransactionFailure means the atomic project-update plus
// payment-history insert failed and both sides were rolled back.
type TransactionFailure struct {
	Err error
}

func (e *TransactionFailure) Error() string {
	return fmt.Sprintf("payment transaction failed: %v", e.Err)
}

func (e *TransactionFailure) Unwrap() error { return e.Err }
