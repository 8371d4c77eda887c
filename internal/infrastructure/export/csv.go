package export

import (
	"encoding/csv"
	"io"
)

// WriteTable escribe un encabezado y filas ya calculadas como CSV. El
// separador es configurable porque los reportes se abren en planillas con
// configuración regional que espera ';'.
func WriteTable(w io.Writer, separator rune, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = separator

	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
