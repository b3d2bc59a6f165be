// Package filterexpr binds a small, AND-only subset of CEL filter
// expressions and comma separated order_by clauses onto query parameter
// structs. Callers whitelist fields and operators per resource.
package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
)

// Msg is a list request exposing raw filter and order_by inputs.
type Msg interface {
	GetFilter() string
	GetOrderBy() string
}

// ValueKind is the literal type a filter field accepts.
type ValueKind string

const (
	KindString    ValueKind = "string"
	KindNumber    ValueKind = "number"
	KindTimestamp ValueKind = "timestamp"
	KindBool      ValueKind = "bool"
)

// Op is a comparison a filter field may allow.
type Op string

const (
	OpEQ  Op = "=="
	OpGTE Op = ">="
	OpLTE Op = "<="
	OpSW  Op = "startsWith"
	OpIN  Op = "in"
)

// SetterFunc assigns a parsed literal to a destination field when the
// default reflection based assignment does not fit.
type SetterFunc func(field reflect.Value, value any) error

// FilterField whitelists one filter identifier. Ops maps each allowed
// operator to the name of the params struct field receiving the literal.
type FilterField struct {
	Kind   ValueKind
	Ops    map[Op]string
	Setter SetterFunc
}

// ResourceSchema aggregates filtering and ordering rules for a resource.
type ResourceSchema struct {
	Filter map[string]FilterField
	Order  OrderSchema
}

// ErrInvalidExpression marks filter and order_by inputs the schema rejects.
var ErrInvalidExpression = errors.New("invalid list expression")

// Bind parses msg's filter and order_by and writes the result into binding.
// The binding struct must expose the fields named by the schema plus the
// Ordering fields (embedding Ordering is the usual way).
func Bind[M Msg, P any](msg M, binding *P, schema ResourceSchema) error {
	if binding == nil {
		return errors.New("binding must not be nil")
	}
	dest := reflect.ValueOf(binding).Elem()
	if dest.Kind() != reflect.Struct {
		return fmt.Errorf("binding must point to a struct, got %s", dest.Kind())
	}

	preds, err := parseFilter(msg.GetFilter(), schema.Filter)
	if err != nil {
		return fmt.Errorf("%w: filter: %w", ErrInvalidExpression, err)
	}
	for _, pred := range preds {
		if err := bindPredicate(dest, pred, schema.Filter[pred.field]); err != nil {
			return fmt.Errorf("%w: filter: %w", ErrInvalidExpression, err)
		}
	}

	ordering, err := parseOrderBy(msg.GetOrderBy(), schema.Order)
	if err != nil {
		return fmt.Errorf("%w: order_by: %w", ErrInvalidExpression, err)
	}
	return ordering.writeTo(dest)
}
