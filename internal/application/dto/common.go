package dto

// ErrorResponse cuerpo de error HTTP.
// Fields detalla los campos rechazados (nombre JSON del campo -> motivo).
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
