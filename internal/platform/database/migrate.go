package database

import (
	"context"
	"fmt"
)

// schemaStatements は登録サービスのスキーマ定義です。
// 一意制約はユースケース側のチェック・アンド・アクトの競合に対するバックストップであり、
// 同名プロダクトや同一CPF/メールの同時登録は敗者側がここで弾かれます
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS product (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		category    TEXT NOT NULL,
		status      TEXT NOT NULL,
		image       TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS product_name_key ON product (name)`,

	`CREATE TABLE IF NOT EXISTS attendant (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		cpf        CHAR(11) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS attendant_email_key ON attendant (email)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS attendant_cpf_key ON attendant (cpf)`,

	`CREATE TABLE IF NOT EXISTS customer (
		id         UUID PRIMARY KEY,
		name       TEXT,
		email      TEXT,
		cpf        CHAR(11),
		anonymous  BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	// 匿名顧客は個人情報を持たないため、一意性は非匿名の行だけに適用します
	`CREATE UNIQUE INDEX IF NOT EXISTS customer_email_key ON customer (email) WHERE NOT anonymous`,
	`CREATE UNIQUE INDEX IF NOT EXISTS customer_cpf_key ON customer (cpf) WHERE NOT anonymous`,
}

// Migrate はスキーマをデータベースに適用します（冪等）
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
