package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y tope de 500 filas.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Limit > 500 {
		p.Limit = 500
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
