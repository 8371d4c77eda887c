package inventory

// SystemData agrupa los tres agregados del sistema para guardarlos y
// cargarlos en bloque. El núcleo no conoce el formato de almacenamiento;
// eso es asunto de la capa de persistencia.
type SystemData struct {
	Catalog *Catalog
	Ledger  *Ledger
	History *SalesHistory
}

// NewSystemData crea un estado vacío válido.
func NewSystemData() *SystemData {
	return &SystemData{
		Catalog: NewCatalog(),
		Ledger:  NewLedger(),
		History: NewSalesHistory(),
	}
}
