package snapshot

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stokos/stokos-api/internal/domain/inventory"
)

// FileStore persiste el agregado completo en un archivo binario usando gob.
// El núcleo no sabe nada del formato: recibe y entrega SystemData enteros.
type FileStore struct {
	path string
}

// NewFileStore crea el almacenamiento apuntando al archivo indicado.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save serializa el estado a un archivo temporal y lo renombra, para no
// dejar un snapshot a medio escribir si el proceso muere durante el guardado.
func (f *FileStore) Save(data *inventory.SystemData) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), "stokos-snapshot-*")
	if err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(data); err != nil {
		tmp.Close()
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	return nil
}

// Load reconstruye el estado desde el archivo. Si el archivo no existe
// (primer arranque) devuelve un agregado vacío en lugar de fallar, y en
// cualquier caso resiembra el asignador de ids con el mayor id cargado.
func (f *FileStore) Load() (*inventory.SystemData, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return inventory.NewSystemData(), nil
		}
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}
	defer file.Close()

	data := inventory.NewSystemData()
	if err := gob.NewDecoder(file).Decode(data); err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}
	data.Ledger.ResyncIDs()
	return data, nil
}
