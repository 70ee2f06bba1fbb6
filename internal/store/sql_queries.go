package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`
)

// buildFindUserByIDQuery builds the lookup-by-id SELECT. The column list is
// assembled dynamically so the password hash can be excluded from the query
// itself on read paths that must never see it.
func buildFindUserByIDQuery(id string, includePassword bool) (string, []any, error) {
	columns := []string{"id", "name", "email", "created_at"}
	if includePassword {
		columns = append(columns, "password_hash")
	}

	return sq.Select(columns...).
		From("users").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
