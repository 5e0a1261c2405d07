package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

// IsUniqueViolation は PostgreSQL の unique_violation(23505) かどうかを判定します。
// 一意制約違反をエラーメッセージの文字列照合ではなくエラーコードで検出するため、
// ストレージ層の実装が変わっても契約が壊れません
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// ConstraintName は制約違反エラーから制約名を取り出します。
// 制約違反でない場合は空文字列を返します
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
