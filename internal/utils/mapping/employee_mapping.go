package mapping

import (
	"strings"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/dto"
)

// ToDomainEmployee converts the backend representation to a domain Employee.
func ToDomainEmployee(r dto.EmployeeResponse) domain.Employee {
	return domain.Employee{
		ID:              r.ID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		MonthlyCosts:    r.MonthlyCosts,
		MonthlyRevenues: r.MonthlyRevenues,
	}
}

// ToDomainEmployees converts a slice of backend employees.
func ToDomainEmployees(rs []dto.EmployeeResponse) []domain.Employee {
	out := make([]domain.Employee, len(rs))
	for i, r := range rs {
		out[i] = ToDomainEmployee(r)
	}
	return out
}

// ToEmployeeRequest builds the write body for an employee.
func ToEmployeeRequest(e domain.Employee) dto.EmployeeRequest {
	return dto.EmployeeRequest{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     e.Phone,
	}
}

// ToEmployeeForm fills the modal from an existing employee.
func ToEmployeeForm(e domain.Employee) dto.EmployeeForm {
	return dto.EmployeeForm{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     e.Phone,
	}
}

// EmployeeFromForm applies a validated form on top of current (nil when creating).
func EmployeeFromForm(f dto.EmployeeForm, current *domain.Employee) domain.Employee {
	var e domain.Employee
	if current != nil {
		e = *current
	}
	e.FirstName = strings.TrimSpace(f.FirstName)
	e.LastName = strings.TrimSpace(f.LastName)
	e.Email = strings.TrimSpace(f.Email)
	e.Phone = strings.TrimSpace(f.Phone)
	return e
}
