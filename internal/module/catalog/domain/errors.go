package domain

import (
	"errors"
	"fmt"
)

// ErrProductNotAvailable はDISPONIVELを要求する操作で満たされなかった場合のエラー
var ErrProductNotAvailable = errors.New("O produto informado não está disponivel")

// NameAlreadyRegisteredError は同名プロダクトが既に登録済みの場合のエラーです
type NameAlreadyRegisteredError struct {
	Name string
}

func (e *NameAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("O produto %s já foi cadastrado", e.Name)
}

// NewNameAlreadyRegistered は重複した名前を持つエラーを作成します
func NewNameAlreadyRegistered(name string) *NameAlreadyRegisteredError {
	return &NameAlreadyRegisteredError{Name: name}
}
