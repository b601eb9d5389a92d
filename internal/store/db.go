package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Knetic/go-namedParameterQuery"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/tastyhub/dashboard-manager/internal/dependency"
)

// MySQL server error numbers.
const (
	errDupEntry        = 1062
	errLockWaitTimeout = 1205
	errLockDeadlock    = 1213
)

type ltx struct {
	*sqlx.Tx
}

func (t ltx) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return nil, fmt.Errorf("already in transaction")
}

type txDB interface {
	Commit() error
	Rollback() error
}

func (ms *MYSQLStore) DB() dependency.DB {
	return ms.db
}

// Tx runs f inside a serializable transaction. f is retried on deadlock or
// lock wait timeout, so wrap driver errors with %w.
func (ms *MYSQLStore) Tx(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
	return ms.tx(ctx, func(ctx context.Context, st *MYSQLStore) error {
		return f(ctx, st)
	})
}

func (ms *MYSQLStore) tx(ctx context.Context, f func(context.Context, *MYSQLStore) error) error {
	for {
		pst, err := ms.TxBegin(ctx)
		if err != nil {
			return err
		}
		err = f(ctx, pst)
		if err == nil {
			if err = pst.TxCommit(ctx); err == nil {
				return nil
			}
		}
		_ = pst.TxRollback(ctx)
		if ms.IsErrorRepeat(err) {
			continue
		}
		return err
	}
}

func (ms *MYSQLStore) TxBegin(ctx context.Context) (*MYSQLStore, error) {
	tx, err := ms.DB().BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return nil, err
	}

	return &MYSQLStore{
		db:    ltx{Tx: tx},
		txDB:  tx,
		ts:    ms.Now(),
		close: ms.close,
	}, nil
}

// Now returns current time for the store. It is frozen during transactions.
func (ms *MYSQLStore) Now() time.Time {
	if ms.ts.IsZero() {
		return time.Now()
	}
	return ms.ts
}

func (ms *MYSQLStore) TxCommit(ctx context.Context) error {
	if ms.txDB == nil {
		return fmt.Errorf("not in transaction")
	}
	err := ms.txDB.Commit()
	if err == nil {
		ms.db = nil
		ms.txDB = nil
	}
	return err
}

func (ms *MYSQLStore) TxRollback(ctx context.Context) error {
	if ms.txDB == nil {
		return fmt.Errorf("not in transaction")
	}
	err := ms.txDB.Rollback()
	if err == nil {
		ms.db = nil
		ms.txDB = nil
	}
	return err
}

func mysqlErrNumber(err error) uint16 {
	var e *mysql.MySQLError
	if errors.As(err, &e) {
		return e.Number
	}
	return 0
}

func (ms *MYSQLStore) IsErrorRepeat(err error) bool {
	n := mysqlErrNumber(err)
	return n == errLockDeadlock || n == errLockWaitTimeout
}

func (ms *MYSQLStore) IsErrUniqueViolation(err error) bool {
	return mysqlErrNumber(err) == errDupEntry
}

func namedQuery(query string, params map[string]any) (string, []any, error) {
	queryNamed := namedParameterQuery.NewNamedParameterQuery(query)
	queryNamed.SetValuesFromMap(params)
	return sqlx.In(queryNamed.GetParsedQuery(), queryNamed.GetParsedParameters()...)
}

func QueryListNamed[T any](
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) ([]T, error) {
	query, args, err := namedQuery(query, params)
	if err != nil {
		return nil, fmt.Errorf("expand named query: %w", err)
	}

	rows, err := conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	target := []T{}
	for rows.Next() {
		var t T
		if err := rows.StructScan(&t); err != nil {
			return nil, fmt.Errorf("struct scan: %w", err)
		}
		target = append(target, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return target, nil
}

// QueryScalarNamed scans the single column of the first row into a T.
func QueryScalarNamed[T any](ctx context.Context, conn dependency.DB, query string, params map[string]any) (T, error) {
	var v T
	query, args, err := namedQuery(query, params)
	if err != nil {
		return v, fmt.Errorf("expand named query: %w", err)
	}
	if err := conn.QueryRowxContext(ctx, query, args...).Scan(&v); err != nil {
		return v, fmt.Errorf("scan scalar: %w", err)
	}
	return v, nil
}

// ExecNamed runs a write statement with :named parameters.
func ExecNamed(ctx context.Context, conn dependency.DB, query string, params map[string]any) error {
	_, err := execNamed(ctx, conn, query, params)
	return err
}

// ExecNamedLastId runs an INSERT with :named parameters and returns the new row id.
func ExecNamedLastId(ctx context.Context, conn dependency.DB, query string, params map[string]any) (int, error) {
	res, err := execNamed(ctx, conn, query, params)
	if err != nil {
		return 0, err
	}
	lid, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return int(lid), nil
}

func execNamed(ctx context.Context, conn dependency.DB, query string, params map[string]any) (sql.Result, error) {
	query, args, err := namedQuery(query, params)
	if err != nil {
		return nil, fmt.Errorf("expand named query: %w", err)
	}
	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec: %w", err)
	}
	return res, nil
}

// BulkInsert writes every row in one multi-row INSERT. Missing keys insert NULL.
func BulkInsert(ctx context.Context, conn dependency.DB, table string, columns []string, rows []map[string]any) error {
	if len(rows) == 0 {
		return nil
	}
	tuple := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"
	tuples := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		tuples[i] = tuple
		for _, c := range columns {
			args = append(args, row[c])
		}
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, strings.Join(columns, ", "), strings.Join(tuples, ", "))
	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("bulk insert into %s: %w", table, err)
	}
	return nil
}
