package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"exam-admin/internal/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const foreignKeyViolation = "23503"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// ilikeAny matches term as a case-insensitive substring of any of the columns.
func ilikeAny(term string, columns ...string) sq.Or {
	pattern := "%" + escapeLike(term) + "%"
	or := make(sq.Or, 0, len(columns))
	for _, column := range columns {
		or = append(or, sq.ILike{column: pattern})
	}
	return or
}

// containsAll requires every value to be an element of the JSONB array column.
func containsAll(column string, values []string) sq.And {
	and := make(sq.And, 0, len(values))
	for _, v := range values {
		element, _ := json.Marshal([]string{v})
		and = append(and, sq.Expr(column+" @> ?::jsonb", string(element)))
	}
	return and
}

// eqIfSet adds column = value to where when value is non-empty.
func eqIfSet(where sq.And, column, value string) sq.And {
	if value == "" {
		return where
	}
	return append(where, sq.Eq{column: value})
}

var columnPattern = regexp.MustCompile(`^[a-z_]+$`)

// orderBy renders the ORDER BY clause, defaulting to created_at DESC.
// Columns not shaped like identifiers are ignored.
func orderBy(alias string, sort domain.Sort) string {
	column := sort.Column
	if column == "" || !columnPattern.MatchString(column) {
		column = "created_at"
	}
	if alias != "" {
		column = alias + "." + column
	}
	if sort.Order == domain.SortAsc {
		return column + " ASC"
	}
	return column + " DESC"
}

// prefixed qualifies columns with a table alias.
func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func page(builder sq.SelectBuilder, p domain.PageRequest) sq.SelectBuilder {
	return builder.Limit(uint64(p.Limit())).Offset(uint64(p.Offset()))
}

// withUpdatedAt copies columns and stamps updated_at.
func withUpdatedAt(columns domain.Columns) map[string]interface{} {
	out := make(map[string]interface{}, len(columns)+1)
	for k, v := range columns {
		out[k] = v
	}
	out["updated_at"] = sq.Expr("NOW()")
	return out
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

// fetchPage runs the paged query into dest and, in exact mode, the count query
// built from the same filters.
func fetchPage(ctx context.Context, exec DBTX, dest interface{}, query, count sq.SelectBuilder, p domain.PageRequest) (*int64, error) {
	sqlStr, args, err := page(query, p).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}
	if err := exec.SelectContext(ctx, dest, sqlStr, args...); err != nil {
		return nil, err
	}
	if p.Mode == domain.CountEstimate {
		return nil, nil
	}
	countSQL, countArgs, err := count.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int64
	if err := exec.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, err
	}
	return &total, nil
}

// insert writes one row from columns.
func insert(ctx context.Context, exec DBTX, table string, columns domain.Columns) error {
	sqlStr, args, err := psql.Insert(table).SetMap(columns).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert into %s: %w", table, err)
	}
	_, err = exec.ExecContext(ctx, sqlStr, args...)
	return err
}

// update applies columns to the row with id and reports whether it exists.
// An empty column set still touches updated_at.
func update(ctx context.Context, exec DBTX, table, id string, columns domain.Columns) (bool, error) {
	sqlStr, args, err := psql.Update(table).SetMap(withUpdatedAt(columns)).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build update of %s: %w", table, err)
	}
	result, err := exec.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// deleteUnreferenced deletes the row with id unless a row of childTable points at it
// through childColumn. A missing id is not an error.
func deleteUnreferenced(ctx context.Context, exec DBTX, table, id, childTable, childColumn string) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE id = $1 AND NOT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
		table, childTable, childColumn,
	)
	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	var refs int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", childTable, childColumn)
	if err := exec.GetContext(ctx, &refs, countQuery, id); err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrReferenced
	}
	return nil
}

// getOne reads a single row; sql.ErrNoRows becomes found=false.
func getOne(ctx context.Context, exec DBTX, dest interface{}, query sq.SelectBuilder) (bool, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}
	if err := exec.GetContext(ctx, dest, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
