package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Company) == "" {
		errors = append(errors, ValidationError{"company", "is required"})
	}

	if strings.TrimSpace(input.Problem) == "" {
		errors = append(errors, ValidationError{"problem", "is required"})
	}

	return errors
}

// ValidateCreateProspectInput roda antes de qualquer persistência ou chamada
// externa. PainPoints é o campo que dirige a personalização: sem ele não há
// o que gerar.
func ValidateCreateProspectInput(input CreateProspectInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Company) == "" {
		errors = append(errors, ValidationError{"company", "is required"})
	}

	if strings.TrimSpace(input.ContactName) == "" {
		errors = append(errors, ValidationError{"contact_name", "is required"})
	}

	if strings.TrimSpace(input.PainPoints) == "" {
		errors = append(errors, ValidationError{"pain_points", "is required"})
	}

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	return errors
}

func ValidateCreateQualifyLeadInput(input CreateQualifyLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.CompanyName) == "" {
		errors = append(errors, ValidationError{"company_name", "is required"})
	}

	if strings.TrimSpace(input.ContactName) == "" {
		errors = append(errors, ValidationError{"contact_name", "is required"})
	}

	if strings.TrimSpace(input.MainProblem) == "" {
		errors = append(errors, ValidationError{"main_problem", "is required"})
	}

	if input.Price <= 0 {
		errors = append(errors, ValidationError{"price", "must be greater than zero"})
	}

	return errors
}

func validationDomainError(errs []ValidationError) *DomainError {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{Code: "VALIDATION_ERROR", Message: strings.TrimSuffix(msg, ", ")}
}
