package journal

// Journal es una mini unidad de trabajo para operaciones multi-entidad
// sobre almacenes sin transacciones: registra una compensación por cada
// mutación aplicada y las reproduce en orden inverso si un paso posterior
// falla. Cumple el papel del Commit/Rollback de una transacción SQL y lo
// comparten el motor de OGPL y el de inventario.
type Journal struct {
	undos []func() error
}

// New crea un journal vacío.
func New() *Journal {
	return &Journal{}
}

// Record registra la compensación de la mutación recién aplicada.
func (j *Journal) Record(undo func() error) {
	j.undos = append(j.undos, undo)
}

// Revert reproduce las compensaciones en orden inverso (LIFO).
// Es mejor esfuerzo: una compensación fallida no detiene las restantes.
func (j *Journal) Revert() {
	for i := len(j.undos) - 1; i >= 0; i-- {
		_ = j.undos[i]()
	}
	j.undos = nil
}
