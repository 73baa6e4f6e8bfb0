package dto

// FieldError detalle de validación por campo, nunca trazas ni identificadores internos.
type FieldError struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Value    interface{} `json:"value,omitempty"`
	Location string      `json:"location,omitempty"`
}

// Response es el sobre uniforme de todas las respuestas de la API.
// Success siempre está presente; el resto según la operación.
type Response struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message,omitempty"`
	Data       interface{}  `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Count      *int         `json:"count,omitempty"`
	Total      *int         `json:"total,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

// OK respuesta exitosa con datos.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMessage respuesta exitosa con datos y mensaje.
func OKMessage(data interface{}, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// OKCount respuesta exitosa de listado con conteo.
func OKCount(data interface{}, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

// OKPage respuesta exitosa de listado paginado.
func OKPage(data interface{}, p Pagination) Response {
	total := p.TotalCount
	return Response{Success: true, Data: data, Total: &total, Pagination: &p}
}

// Fail respuesta de error con mensaje para el cliente.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FailValidation respuesta 400 con errores por campo.
func FailValidation(errs []FieldError) Response {
	return Response{Success: false, Message: "Errores de validación", Errors: errs}
}

// PageRequest paginación de entrada: page empieza en 1.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica valores por defecto y el tope de tamaño de página.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset traduce page/limit a desplazamiento para el repositorio.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination metadatos de página en respuestas.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
}

// NewPagination calcula las páginas a partir del total y el tamaño de página.
func NewPagination(page, limit, totalCount int) Pagination {
	if limit <= 0 {
		limit = 20
	}
	totalPages := (totalCount + limit - 1) / limit
	p := Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
	}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}
