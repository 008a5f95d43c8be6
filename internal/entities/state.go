package entities

// State es la región geográfica/organizativa dueña de los equipos.
// Datos de referencia, casi de solo lectura.
type State struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
