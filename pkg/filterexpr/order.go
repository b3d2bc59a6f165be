package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// OrderField maps an order key to a column expression. Nulls is "first",
// "last" or empty for the database default.
type OrderField struct {
	Expr  string
	Nulls string
}

// OrderSchema whitelists order keys and supplies the default ordering.
// FallbackKey breaks ties so pagination stays stable.
type OrderSchema struct {
	DefaultPrimary     string
	DefaultPrimaryDesc bool
	FallbackKey        string
	FallbackDesc       bool
	Fields             map[string]OrderField
}

// Ordering is the resolved order_by. Embed it in a params struct to receive
// the result of Bind.
type Ordering struct {
	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

// OrderTerm is one ORDER BY term resolved against a schema.
type OrderTerm struct {
	Expr  string
	Desc  bool
	Nulls string
}

// Terms resolves the ordering keys to column expressions.
func (o Ordering) Terms(schema OrderSchema) []OrderTerm {
	terms := make([]OrderTerm, 0, 2)
	for _, k := range []struct {
		key  string
		desc bool
	}{{o.PrimaryKey, o.PrimaryDesc}, {o.SecondaryKey, o.SecondaryDesc}} {
		f, ok := schema.Fields[k.key]
		if !ok {
			continue
		}
		terms = append(terms, OrderTerm{Expr: f.Expr, Desc: k.desc, Nulls: f.Nulls})
	}
	return terms
}

func parseOrderBy(raw string, schema OrderSchema) (Ordering, error) {
	if _, ok := schema.Fields[schema.DefaultPrimary]; !ok {
		return Ordering{}, fmt.Errorf("default order key %q missing from schema", schema.DefaultPrimary)
	}
	if _, ok := schema.Fields[schema.FallbackKey]; !ok {
		return Ordering{}, fmt.Errorf("fallback order key %q missing from schema", schema.FallbackKey)
	}

	type key struct {
		name string
		desc bool
	}
	var keys []key
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.Fields(seg)
		if len(parts) == 0 {
			continue
		}
		if len(parts) > 2 {
			return Ordering{}, fmt.Errorf("invalid order segment %q", strings.TrimSpace(seg))
		}
		name := parts[0]
		if _, ok := schema.Fields[name]; !ok {
			return Ordering{}, fmt.Errorf("field %q cannot be used for ordering", name)
		}
		desc := false
		if len(parts) == 2 {
			switch strings.ToLower(parts[1]) {
			case "asc":
			case "desc":
				desc = true
			default:
				return Ordering{}, fmt.Errorf("invalid direction %q for field %q", parts[1], name)
			}
		}
		for _, k := range keys {
			if k.name == name {
				return Ordering{}, fmt.Errorf("duplicate order key %q", name)
			}
		}
		keys = append(keys, key{name, desc})
	}
	if len(keys) > 2 {
		return Ordering{}, errors.New("order_by supports at most two keys")
	}

	o := Ordering{
		PrimaryKey:    schema.DefaultPrimary,
		PrimaryDesc:   schema.DefaultPrimaryDesc,
		SecondaryKey:  schema.FallbackKey,
		SecondaryDesc: schema.FallbackDesc,
	}
	if len(keys) > 0 {
		o.PrimaryKey, o.PrimaryDesc = keys[0].name, keys[0].desc
	}
	if len(keys) > 1 {
		o.SecondaryKey, o.SecondaryDesc = keys[1].name, keys[1].desc
	}
	// Ordering by the fallback alone needs no tie breaker.
	if o.SecondaryKey == o.PrimaryKey {
		o.SecondaryKey, o.SecondaryDesc = "", false
	}
	return o, nil
}

func (o Ordering) writeTo(dest reflect.Value) error {
	values := []struct {
		name  string
		value any
	}{
		{"PrimaryKey", o.PrimaryKey},
		{"PrimaryDesc", o.PrimaryDesc},
		{"SecondaryKey", o.SecondaryKey},
		{"SecondaryDesc", o.SecondaryDesc},
	}
	for _, v := range values {
		field := dest.FieldByName(v.name)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("params struct %s has no settable field %q", dest.Type(), v.name)
		}
		if err := assign(field, v.value); err != nil {
			return fmt.Errorf("order_by: %w", err)
		}
	}
	return nil
}
