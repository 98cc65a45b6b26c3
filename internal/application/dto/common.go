package dto

// DataResponse envuelve toda respuesta exitosa: { "data": ... }.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// OKResponse respuesta de operaciones idempotentes sin cuerpo: { "ok": true }.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse cuerpo de error HTTP: { "error": "mensaje" }.
type ErrorResponse struct {
	Error string `json:"error"`
}
