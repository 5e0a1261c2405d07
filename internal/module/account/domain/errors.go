package domain

import "errors"

// ErrUserAlreadyExists はemail/cpfの一意性に違反したユーザ登録のエラー
var ErrUserAlreadyExists = errors.New("Este usuário já existe.")
