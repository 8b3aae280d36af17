package domain

import "errors"

var (
	ErrNotFound        = errors.New("no encontrado")
	ErrInvalidQuantity = errors.New("cantidad inválida")
)
