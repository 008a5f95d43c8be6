package errors

import "fmt"

var (
	// JWT y tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de firma del token no válido")
	ErrInvalidToken         = fmt.Errorf("token no válido")
	ErrTokenExpired         = fmt.Errorf("el token ha expirado")

	// Autorización
	ErrEmptyAuthHeader   = fmt.Errorf("falta el encabezado de autorización")
	ErrInvalidAuthHeader = fmt.Errorf("formato del encabezado de autorización no válido")
	ErrUnauthorized      = fmt.Errorf("no autorizado")
	ErrForbidden         = fmt.Errorf("no tiene permisos para acceder a este recurso")
	ErrInvalidRole       = fmt.Errorf("rol de usuario no válido")

	// Contexto
	ErrPrincipalNotFoundInContext = fmt.Errorf("usuario autenticado no encontrado en el contexto")

	// Equipos
	ErrDuplicateInventoryNumber = fmt.Errorf("ya existe un equipo con ese número de inventario")

	// Importación
	ErrUnparseableFile = fmt.Errorf("no se pudo leer el archivo, verifique que sea un Excel válido")
	ErrEmptyImportFile = fmt.Errorf("el archivo está vacío o solo contiene encabezados")

	// Generales
	ErrNotFound   = fmt.Errorf("registro no encontrado")
	ErrBadRequest = fmt.Errorf("solicitud no válida")
)

// HttpError asocia un error interno con el código y el mensaje que ve el cliente.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// InvalidInputError señala un dato rechazado por las reglas de negocio.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
