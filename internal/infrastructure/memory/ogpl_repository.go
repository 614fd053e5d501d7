package memory

import (
	"sync"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.OgplRepository = (*OgplRepo)(nil)

// OgplRepo almacén en memoria de OGPLs.
type OgplRepo struct {
	mu    sync.RWMutex
	ogpls map[string]entity.Ogpl
}

// NewOgplRepository construye el almacén vacío.
func NewOgplRepository() *OgplRepo {
	return &OgplRepo{ogpls: make(map[string]entity.Ogpl)}
}

// Create inserta el OGPL.
func (r *OgplRepo) Create(ogpl *entity.Ogpl) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ogpls[ogpl.ID] = copyOgpl(*ogpl)
	return nil
}

// GetByID devuelve una copia del OGPL, o (nil, nil) si no existe.
func (r *OgplRepo) GetByID(id string) (*entity.Ogpl, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.ogpls[id]
	if !ok {
		return nil, nil
	}
	out := copyOgpl(o)
	return &out, nil
}

// Update sobreescribe el OGPL.
func (r *OgplRepo) Update(ogpl *entity.Ogpl) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ogpls[ogpl.ID] = copyOgpl(*ogpl)
	return nil
}

// Delete elimina el OGPL (deshace un registro tentativo fallido).
func (r *OgplRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ogpls, id)
	return nil
}

// List lista OGPLs con paginación.
func (r *OgplRepo) List(limit, offset int) ([]*entity.Ogpl, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Ogpl
	for _, o := range r.ogpls {
		out := copyOgpl(o)
		result = append(result, &out)
	}
	return paginate(result, limit, offset), nil
}

// copyOgpl copia el struct incluyendo la lista de LRs.
func copyOgpl(o entity.Ogpl) entity.Ogpl {
	o.LrIDs = append([]string(nil), o.LrIDs...)
	return o
}
