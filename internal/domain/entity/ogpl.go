package entity

import "time"

// Estados de un OGPL. El estado "en tránsito" es implícito: lo marca la
// propia existencia del OGPL con sus LRs cargados.
const (
	OgplStatusCreated  = "created"
	OgplStatusUnloaded = "unloaded"
)

// Ogpl representa una guía de carga (manifiesto de tránsito): el conjunto
// de reservas asignado a un movimiento de vehículo entre dos puntos.
// LrIDs es la lista autoritativa de reservas actualmente "sobre" el OGPL.
type Ogpl struct {
	ID          string
	OgplNo      string
	VehicleNo   string
	DriverName  string
	FromStation string
	ToStation   string
	LrIDs       []string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContainsLr indica si la reserva ya está cargada en el OGPL.
func (o *Ogpl) ContainsLr(lrID string) bool {
	for _, id := range o.LrIDs {
		if id == lrID {
			return true
		}
	}
	return false
}

// RemoveLr quita la reserva de LrIDs. Devuelve false si no estaba.
func (o *Ogpl) RemoveLr(lrID string) bool {
	for i, id := range o.LrIDs {
		if id == lrID {
			o.LrIDs = append(o.LrIDs[:i], o.LrIDs[i+1:]...)
			return true
		}
	}
	return false
}
