package repository

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/Swatkovich/cortexex-sub000/internal/repository"
	"github.com/Swatkovich/cortexex-sub000/pkg/filterexpr"
)

var (
	errUniqueViolation     = errors.New("unique constraint violation")
	errForeignKeyViolation = errors.New("foreign key constraint violation")
)

// store wraps the shared ent driver with the small query helpers every
// adapter needs.
type store struct {
	drv dialect.Driver
}

func (s store) builder() *sql.DialectBuilder { return sql.Dialect(s.drv.Dialect()) }

// query runs q and calls scan once per row.
func (s store) query(ctx context.Context, q sql.Querier, scan func(*sql.Rows) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stmt, args := q.Query()
	rows := &sql.Rows{}
	if err := s.drv.Query(ctx, stmt, args, rows); err != nil {
		return translateError(err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return translateError(err)
	}
	return nil
}

// queryOne is query for statements yielding at most one row. It reports
// whether a row was found.
func (s store) queryOne(ctx context.Context, q sql.Querier, scan func(*sql.Rows) error) (bool, error) {
	found := false
	err := s.query(ctx, q, func(rows *sql.Rows) error {
		if found {
			return nil
		}
		found = true
		return scan(rows)
	})
	return found, err
}

// exec runs q and returns the number of affected rows.
func (s store) exec(ctx context.Context, q sql.Querier) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	stmt, args := q.Query()
	var res stdsql.Result
	if err := s.drv.Exec(ctx, stmt, args, &res); err != nil {
		return 0, translateError(err)
	}
	return res.RowsAffected()
}

// count runs a single-column COUNT/SUM style query.
func (s store) count(ctx context.Context, q sql.Querier) (int64, error) {
	var n stdsql.NullInt64
	if _, err := s.queryOne(ctx, q, func(rows *sql.Rows) error {
		return rows.Scan(&n)
	}); err != nil {
		return 0, err
	}
	return n.Int64, nil
}

// page applies ordering and pagination to a list selector on t.
func page(sel *sql.Selector, t *sql.SelectTable, ordering filterexpr.Ordering, schema filterexpr.OrderSchema, p repository.Pagination) *sql.Selector {
	for _, term := range ordering.Terms(schema) {
		expr := t.C(term.Expr) + " ASC"
		if term.Desc {
			expr = t.C(term.Expr) + " DESC"
		}
		if term.Nulls != "" {
			expr += " NULLS " + strings.ToUpper(term.Nulls)
		}
		sel.OrderExpr(sql.Expr(expr))
	}
	if p.PageSize > 0 {
		sel.Limit(int(p.PageSize))
		if p.PageNo > 1 {
			sel.Offset(int(p.Offset()))
		}
	}
	return sel
}

// translateError folds driver specific constraint errors into the package
// sentinels so adapters can map them to domain errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifySQLState(string(pqErr.Code), err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code, err)
	}
	if kind := sqliteConstraint(err); kind != nil {
		return fmt.Errorf("%w: %v", kind, err)
	}
	return err
}

func classifySQLState(code string, err error) error {
	switch code {
	case "23505":
		return fmt.Errorf("%w: %v", errUniqueViolation, err)
	case "23503":
		return fmt.Errorf("%w: %v", errForeignKeyViolation, err)
	default:
		return err
	}
}

func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encode string list: %w", err)
	}
	return string(raw), nil
}

func decodeStrings(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("decode string list: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func stringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
