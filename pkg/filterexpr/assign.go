package filterexpr

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

func bindPredicate(dest reflect.Value, pred predicate, rule FilterField) error {
	name := rule.Ops[pred.op]
	field := dest.FieldByName(name)
	if !field.IsValid() {
		return fmt.Errorf("params struct %s has no field %q", dest.Type(), name)
	}
	if !field.CanSet() {
		return fmt.Errorf("params field %q is not settable", name)
	}

	if field.Kind() == reflect.Pointer && rule.Setter == nil {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		field = field.Elem()
	}
	if rule.Setter != nil {
		if err := rule.Setter(field, pred.value); err != nil {
			return fmt.Errorf("set %q: %w", name, err)
		}
		return nil
	}
	if err := assign(field, pred.value); err != nil {
		return fmt.Errorf("assign %q: %w", name, err)
	}
	return nil
}

func assign(field reflect.Value, value any) error {
	if field.Kind() == reflect.Interface {
		field.Set(reflect.ValueOf(value))
		return nil
	}

	switch v := value.(type) {
	case string:
		if field.Kind() != reflect.String {
			return fmt.Errorf("cannot store string in %s", field.Type())
		}
		field.SetString(v)
	case bool:
		if field.Kind() != reflect.Bool {
			return fmt.Errorf("cannot store bool in %s", field.Type())
		}
		field.SetBool(v)
	case []string:
		if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("cannot store string list in %s", field.Type())
		}
		field.Set(reflect.ValueOf(append([]string(nil), v...)).Convert(field.Type()))
	case time.Time:
		if field.Type() != reflect.TypeOf(time.Time{}) {
			return fmt.Errorf("cannot store timestamp in %s", field.Type())
		}
		field.Set(reflect.ValueOf(v))
	case float64:
		return assignNumber(field, v)
	default:
		return fmt.Errorf("unsupported literal %T", value)
	}
	return nil
}

func assignNumber(field reflect.Value, v float64) error {
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		if field.OverflowFloat(v) {
			return fmt.Errorf("%v overflows %s", v, field.Type())
		}
		field.SetFloat(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v != math.Trunc(v) {
			return fmt.Errorf("%v is not an integer", v)
		}
		if v < math.MinInt64 || v > math.MaxInt64 || field.OverflowInt(int64(v)) {
			return fmt.Errorf("%v overflows %s", v, field.Type())
		}
		field.SetInt(int64(v))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v != math.Trunc(v) || v < 0 {
			return fmt.Errorf("%v is not a non-negative integer", v)
		}
		if v > math.MaxUint64 || field.OverflowUint(uint64(v)) {
			return fmt.Errorf("%v overflows %s", v, field.Type())
		}
		field.SetUint(uint64(v))
	default:
		return fmt.Errorf("cannot store number in %s", field.Type())
	}
	return nil
}
