package inventory

// BatchIDAllocator asigna ids enteros monotónicos a los lotes. Pertenece al
// agregado (se serializa con él); después de cargar un snapshot se puede
// resembrar con el mayor id visto para no repetir ids.
type BatchIDAllocator struct {
	LastID int64
}

// Next devuelve el siguiente id, empezando en 1.
func (a *BatchIDAllocator) Next() int64 {
	a.LastID++
	return a.LastID
}

// Resync ajusta el contador al mayor id ya presente, si es mayor que el
// actual. Idempotente.
func (a *BatchIDAllocator) Resync(maxSeen int64) {
	if maxSeen > a.LastID {
		a.LastID = maxSeen
	}
}
