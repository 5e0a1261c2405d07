package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/soatbr/registration/internal/shared/domainerror"
)

const cpfLength = 11

// CPF は正規化済みの11桁の個人識別子を表す値オブジェクトです。
// 同値性は正規化形（数字のみ）で判定され、整形表現は識別には使われません
type CPF struct {
	number string
}

// NewCPF は入力から数字以外を取り除き、ちょうど11桁であればCPFを構築します。
// それ以外（空文字列を含む）はValidationErrorを返します
func NewCPF(raw string) (CPF, error) {
	digits := StripNonDigits(raw)
	if len(digits) != cpfLength {
		verr := domainerror.NewValidationError()
		verr.Add("cpf", "O CPF deve conter exatamente 11 dígitos")
		return CPF{}, verr
	}
	return CPF{number: digits}, nil
}

// StripNonDigits は文字列から数字以外の文字を取り除きます
func StripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalized は11桁の数字のみの表現を返します
func (c CPF) Normalized() string {
	return c.number
}

// Formatted は句読点付きの表現（XXX.XXX.XXX-XX）を返します
func (c CPF) Formatted() string {
	if len(c.number) != cpfLength {
		return c.number
	}
	return fmt.Sprintf("%s.%s.%s-%s",
		c.number[0:3],
		c.number[3:6],
		c.number[6:9],
		c.number[9:11],
	)
}

// String はNormalizedと同じ表現を返します
func (c CPF) String() string {
	return c.number
}
