package journal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/logistica-api/internal/application/journal"
)

func TestRevert_EjecutaEnOrdenInverso(t *testing.T) {
	j := journal.New()

	var order []int
	j.Record(func() error { order = append(order, 1); return nil })
	j.Record(func() error { order = append(order, 2); return nil })
	j.Record(func() error { order = append(order, 3); return nil })

	j.Revert()
	assert.Equal(t, []int{3, 2, 1}, order,
		"las compensaciones deben ejecutarse en orden inverso al registro")
}

func TestRevert_ContinuaAunqueUnaCompensacionFalle(t *testing.T) {
	j := journal.New()

	var ran []string
	j.Record(func() error { ran = append(ran, "a"); return nil })
	j.Record(func() error { return errors.New("compensación fallida") })
	j.Record(func() error { ran = append(ran, "c"); return nil })

	j.Revert()
	assert.Equal(t, []string{"c", "a"}, ran,
		"un fallo en una compensación no debe impedir las demás")
}

func TestRevert_EsIdempotente(t *testing.T) {
	j := journal.New()

	count := 0
	j.Record(func() error { count++; return nil })

	j.Revert()
	j.Revert()
	assert.Equal(t, 1, count, "un segundo Revert no debe repetir compensaciones")
}

func TestRevert_VacioNoHaceNada(t *testing.T) {
	j := journal.New()
	assert.NotPanics(t, func() { j.Revert() })
}
