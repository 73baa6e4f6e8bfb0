package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los mapean a HTTP:
// ErrNotFound -> 404, ErrDuplicate -> 409, ErrUnauthorized -> 401,
// ErrForbidden/ErrInactiveUser -> 403, ErrInvalidInput -> 400,
// ErrScopeConfig -> 500 (error de configuración, nunca datos sin alcance).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrCategoryNotFound   = errors.New("la categoria no existe")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInactiveUser       = errors.New("usuario inactivo, contacte con el administrador")
	ErrNoActiveCompany    = errors.New("el usuario no tiene compañía activa")
	ErrScopeConfig        = errors.New("alcance inconsistente: usuario sin administrador asignado")
)
