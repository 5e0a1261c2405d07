// Package domainerror はモジュール横断で使われるエラー種別を定義します。
// ここの型はユースケース層で発生し、回復されずにそのままHTTP層の
// エラーハンドラに到達することを前提とします
package domainerror

import (
	"fmt"
	"sort"
	"strings"
)

// EntityNotFoundError はIDによる必須参照が空振りした場合のエラーです
type EntityNotFoundError struct {
	Entity string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("Registro não encontrado: %s", e.Entity)
}

// NewEntityNotFound は対象エンティティ名を持つEntityNotFoundErrorを作成します
func NewEntityNotFound(entity string) *EntityNotFoundError {
	return &EntityNotFoundError{Entity: entity}
}

// ValidationError は入力の構造検証エラーを表します。
// フィールド名→メッセージのマップとして集約され、1フィールドにつき1件です
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError は空のValidationErrorを作成します
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add はフィールドのエラーメッセージを追加します
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// HasErrors は1件以上のフィールドエラーを持つかを返します
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("dados inválidos: %s", strings.Join(fields, ", "))
}

// MalformedInputError はパス/クエリの値を期待する型に解釈できない場合のエラーです
type MalformedInputError struct {
	Param    string
	Expected string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("O valor do parâmetro '%s' é inválido. Esperado: %s", e.Param, e.Expected)
}

// NewMalformedInput はパラメータ名と期待される型名を持つエラーを作成します
func NewMalformedInput(param, expected string) *MalformedInputError {
	return &MalformedInputError{Param: param, Expected: expected}
}
