package usecase

// DomainError: regra de negócio violada (validação, ownership). Vira 4xx.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError: falha de infraestrutura (banco, fila). Vira 5xx.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// ErrOwnership é o DomainError único para "não é seu" e "não existe".
func ErrOwnership() *DomainError {
	return &DomainError{
		Code:    "FORBIDDEN",
		Message: "recurso inexistente ou pertencente a outra conta",
	}
}
