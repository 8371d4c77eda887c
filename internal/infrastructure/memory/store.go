package memory

import (
	"sync"

	"github.com/stokos/stokos-api/internal/domain/inventory"
)

// Store guarda el estado del sistema en memoria detrás de un único lock
// exclusivo. El motor de liquidación asume que la verificación de
// disponibilidad y el consumo de lotes ocurren sin intercalado; como el
// servidor HTTP atiende peticiones en paralelo, toda mutación del agregado
// pasa por Update y toda lectura por View.
type Store struct {
	mu   sync.RWMutex
	data *inventory.SystemData
}

// NewStore crea el store con el estado inicial (cargado de un snapshot o
// vacío).
func NewStore(data *inventory.SystemData) *Store {
	if data == nil {
		data = inventory.NewSystemData()
	}
	return &Store{data: data}
}

// Update ejecuta fn con acceso exclusivo al agregado.
func (s *Store) Update(fn func(*inventory.SystemData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// View ejecuta fn con acceso de solo lectura al agregado. fn no debe mutar
// el estado ni retener referencias después de retornar.
func (s *Store) View(fn func(*inventory.SystemData) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}
