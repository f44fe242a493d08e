package hotel

import (
	"errors"
	"fmt"
)

// Erros específicos para o cadastro de hotéis
var (
	// Erros de validação
	ErrHotelIDRequired   = errors.New("hotel ID is required")
	ErrHotelNotFound     = errors.New("hotel not found")
	ErrHotelRequired     = errors.New("hotel_config or hotel_id is required")
	ErrInvalidHotel      = errors.New("invalid hotel configuration")
	ErrInvalidOTAProfile = errors.New("invalid OTA commission profile")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de agendamento
	ErrScheduleAutoMode = errors.New("error scheduling auto mode")

	ErrGenerateID = errors.New("error generating hotel ID")
)

// HotelError é um erro com contexto adicional para hotéis
type HotelError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	HotelID string // ID do hotel envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *HotelError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *HotelError) Unwrap() error {
	return e.Err
}

// NewHotelError cria um novo HotelError
func NewHotelError(err error, code string, details string) *HotelError {
	return &HotelError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewHotelErrorWithID cria um novo HotelError com ID do hotel
func NewHotelErrorWithID(err error, code string, hotelID string, details string) *HotelError {
	return &HotelError{
		Err:     err,
		Code:    code,
		HotelID: hotelID,
		Details: details,
	}
}
