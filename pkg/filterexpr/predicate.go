package filterexpr

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// predicate is one `field op literal` term of a conjunction.
type predicate struct {
	field string
	op    Op
	value any
}

var callOps = map[string]Op{
	"_==_":       OpEQ,
	"_>=_":       OpGTE,
	"_<=_":       OpLTE,
	"@in":        OpIN,
	"_in_":       OpIN,
	"startsWith": OpSW,
}

func parseFilter(filter string, fields map[string]FilterField) ([]predicate, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil, nil
	}
	if len(fields) == 0 {
		return nil, errors.New("resource does not support filtering")
	}

	opts := []cel.EnvOption{cel.CrossTypeNumericComparisons(true)}
	for name, f := range fields {
		typ, err := celType(f.Kind)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		opts = append(opts, cel.Variable(name, typ))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("build cel env: %w", err)
	}

	ast, issues := env.Parse(filter)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("convert filter ast: %w", err)
	}

	var terms []*exprpb.Expr
	if err := flattenAnd(parsed.GetExpr(), &terms); err != nil {
		return nil, err
	}

	preds := make([]predicate, 0, len(terms))
	for _, term := range terms {
		pred, err := toPredicate(term)
		if err != nil {
			return nil, err
		}
		rule, ok := fields[pred.field]
		if !ok {
			return nil, fmt.Errorf("field %q is not allowed", pred.field)
		}
		if _, ok := rule.Ops[pred.op]; !ok {
			return nil, fmt.Errorf("operator %q is not allowed for field %q", pred.op, pred.field)
		}
		if err := checkLiteral(rule.Kind, pred); err != nil {
			return nil, fmt.Errorf("field %q: %w", pred.field, err)
		}
		preds = append(preds, pred)
	}
	return preds, nil
}

func celType(kind ValueKind) (*cel.Type, error) {
	switch kind {
	case KindString:
		return cel.StringType, nil
	case KindNumber:
		return cel.DoubleType, nil
	case KindTimestamp:
		return cel.TimestampType, nil
	case KindBool:
		return cel.BoolType, nil
	default:
		return nil, fmt.Errorf("unsupported field kind %q", kind)
	}
}

// flattenAnd collects the operands of nested && chains. cel-go parses
// a && b && c as a binary tree.
func flattenAnd(expr *exprpb.Expr, out *[]*exprpb.Expr) error {
	if expr == nil {
		return errors.New("empty expression")
	}
	call := expr.GetCallExpr()
	if call == nil {
		*out = append(*out, expr)
		return nil
	}
	switch call.GetFunction() {
	case "_&&_":
		for _, arg := range call.GetArgs() {
			if err := flattenAnd(arg, out); err != nil {
				return err
			}
		}
		return nil
	case "_||_", "!_", "_?_:_":
		return fmt.Errorf("operator %q is not supported; only AND is allowed", call.GetFunction())
	default:
		*out = append(*out, expr)
		return nil
	}
}

func toPredicate(expr *exprpb.Expr) (predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		return predicate{}, errors.New("expected a comparison or startsWith call")
	}
	op, ok := callOps[call.GetFunction()]
	if !ok {
		return predicate{}, fmt.Errorf("function %q is not supported", call.GetFunction())
	}

	// Receiver style calls (name.startsWith('x')) carry the field as target.
	operands := call.GetArgs()
	if call.GetTarget() != nil {
		operands = append([]*exprpb.Expr{call.GetTarget()}, operands...)
	}
	if len(operands) != 2 {
		return predicate{}, fmt.Errorf("operator %q expects two operands", op)
	}

	ident := operands[0].GetIdentExpr()
	if ident == nil {
		return predicate{}, errors.New("left-hand side must be a field name")
	}
	value, err := literal(operands[1])
	if err != nil {
		return predicate{}, err
	}
	return predicate{field: ident.GetName(), op: op, value: value}, nil
}

func literal(expr *exprpb.Expr) (any, error) {
	if c := expr.GetConstExpr(); c != nil {
		switch kind := c.GetConstantKind().(type) {
		case *exprpb.Constant_StringValue:
			return kind.StringValue, nil
		case *exprpb.Constant_BoolValue:
			return kind.BoolValue, nil
		case *exprpb.Constant_Int64Value:
			return float64(kind.Int64Value), nil
		case *exprpb.Constant_Uint64Value:
			return float64(kind.Uint64Value), nil
		case *exprpb.Constant_DoubleValue:
			return kind.DoubleValue, nil
		default:
			return nil, fmt.Errorf("literal %T is not supported", kind)
		}
	}

	if list := expr.GetListExpr(); list != nil {
		values := make([]string, 0, len(list.GetElements()))
		for i, elem := range list.GetElements() {
			v, err := literal(elem)
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", i, err)
			}
			s, ok := v.(string)
			if !ok {
				return nil, errors.New("list literal elements must be strings")
			}
			values = append(values, s)
		}
		return values, nil
	}

	if call := expr.GetCallExpr(); call != nil && call.GetFunction() == "timestamp" {
		if call.GetTarget() != nil || len(call.GetArgs()) != 1 {
			return nil, errors.New("timestamp() expects one string argument")
		}
		raw := call.GetArgs()[0].GetConstExpr().GetStringValue()
		if raw == "" {
			return nil, errors.New("timestamp() argument must be a non-empty string literal")
		}
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("timestamp literal %q is not RFC3339", raw)
		}
		return t, nil
	}

	return nil, errors.New("right-hand side must be a literal, list literal, or timestamp() call")
}

func checkLiteral(kind ValueKind, pred predicate) error {
	if pred.op == OpIN {
		list, ok := pred.value.([]string)
		if kind != KindString || !ok {
			return fmt.Errorf("expected list of %s literals", kind)
		}
		if len(list) == 0 {
			return errors.New("list literal must not be empty")
		}
		return nil
	}

	var ok bool
	switch kind {
	case KindString:
		_, ok = pred.value.(string)
	case KindNumber:
		_, ok = pred.value.(float64)
	case KindTimestamp:
		_, ok = pred.value.(time.Time)
	case KindBool:
		_, ok = pred.value.(bool)
	}
	if !ok {
		return fmt.Errorf("expected %s literal, got %T", kind, pred.value)
	}
	return nil
}
