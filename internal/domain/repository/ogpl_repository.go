package repository

import "github.com/jhoicas/logistica-api/internal/domain/entity"

// OgplRepository define el puerto de persistencia para OGPL.
// Delete existe para deshacer un registro tentativo cuando la creación
// falla a mitad de camino (contrato todo-o-nada del motor de manifiestos).
type OgplRepository interface {
	Create(ogpl *entity.Ogpl) error
	GetByID(id string) (*entity.Ogpl, error)
	Update(ogpl *entity.Ogpl) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Ogpl, error)
}
