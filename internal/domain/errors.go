package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los mapean 1:1 a códigos de respuesta (400/404/409).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrBookingNotFound   = errors.New("reserva (LR) no encontrada")
	ErrOgplNotFound      = errors.New("OGPL no encontrado")
	ErrWarehouseNotFound = errors.New("bodega no encontrada")
	ErrLocationNotFound  = errors.New("ubicación no encontrada")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("inventario insuficiente")
	ErrCapacityExceeded  = errors.New("capacidad de la ubicación excedida")
)
