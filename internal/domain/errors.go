package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrProductAlreadyRegistered = errors.New("producto ya registrado en el catálogo")
	ErrProductNotFound          = errors.New("producto no registrado en el catálogo")
	ErrProductHasStock          = errors.New("el producto todavía tiene stock disponible")
	ErrInsufficientStock        = errors.New("stock insuficiente")
	ErrInvalidQuantity          = errors.New("cantidad inválida")
	ErrBatchKindMismatch        = errors.New("el producto ya tiene lotes de otro tipo")
	ErrInvalidInput             = errors.New("entrada inválida")
	ErrUserNotFound             = errors.New("usuario no encontrado")
	ErrUnauthorized             = errors.New("no autorizado")
	ErrForbidden                = errors.New("acceso denegado")
)
