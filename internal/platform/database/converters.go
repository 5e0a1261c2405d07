package database

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// UUIDToPg converts uuid.UUID to pgtype.UUID
func UUIDToPg(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// PgToUUID converts pgtype.UUID to uuid.UUID
func PgToUUID(id pgtype.UUID) uuid.UUID {
	return id.Bytes
}

// StringToText converts string to pgtype.Text (non-null)
func StringToText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// StringToNullableText converts string to pgtype.Text, mapping "" to NULL
func StringToNullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

// TextToString converts pgtype.Text to string, mapping NULL to ""
func TextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// Float64ToNumeric converts float64 to pgtype.Numeric.
// pgtype.Numeric.Scan accepts only string input, so the value goes through
// strconv first; a failed scan yields the NULL Numeric
func Float64ToNumeric(f float64) pgtype.Numeric {
	var num pgtype.Numeric
	if err := num.Scan(strconv.FormatFloat(f, 'f', -1, 64)); err != nil {
		return pgtype.Numeric{}
	}
	return num
}

// NumericToFloat64 converts pgtype.Numeric to float64, mapping NULL to 0
func NumericToFloat64(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0.0
	}
	f, _ := n.Float64Value()
	return f.Float64
}
