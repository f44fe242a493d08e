package repository

import "errors"

// ErrNotFound indica que nenhuma linha foi afetada pela operação
var ErrNotFound = errors.New("record not found")
