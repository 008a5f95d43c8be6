package contextkeys

type contextKey string

const (
	PrincipalKey contextKey = "Principal"
)
