package dto

// ProblemDetails cuerpo de error para fallos devueltos por la cadena de handlers.
type ProblemDetails struct {
	Title     string `json:"title"`
	Type      string `json:"type"`
	Detail    string `json:"detail"`
	Status    int    `json:"status"`
	TraceID   string `json:"traceId"`
	Method    string `json:"method"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
	RequestID string `json:"requestId"`
}

// NotFoundDetails cuerpo para respuestas 404 que llegan sin contenido.
type NotFoundDetails struct {
	Error       string  `json:"error"`
	Status      int     `json:"status"`
	Method      string  `json:"method"`
	Path        string  `json:"path"`
	QueryString *string `json:"queryString"`
	Timestamp   string  `json:"timestamp"`
	Details     string  `json:"details"`
}
