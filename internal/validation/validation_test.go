package validation_test

import (
	"testing"

	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestStruct_EmployeeForm(t *testing.T) {
	errs := validation.Struct(&dto.EmployeeForm{Email: "not-an-email"})

	assert.Equal(t, "Imię jest wymagane", errs.Get("firstName"))
	assert.Equal(t, "Nazwisko jest wymagane", errs.Get("lastName"))
	assert.Equal(t, "Nieprawidłowy format email", errs.Get("email"))
	assert.False(t, errs.Has("phone"))

	assert.Nil(t, validation.Struct(&dto.EmployeeForm{FirstName: "Jan", LastName: "Kowalski", Email: "jan@example.pl"}))
}

func TestStruct_FinanceFormTargets(t *testing.T) {
	tests := []struct {
		name      string
		form      dto.FinanceForm
		wantField string
		wantMsg   string
	}{
		{
			name:      "workplace cost without workplace",
			form:      dto.FinanceForm{Type: "workplace", Amount: "10", Date: "2024-05-01"},
			wantField: "workplace_id",
			wantMsg:   "Miejsce pracy jest wymagane",
		},
		{
			name:      "employee cost without employee",
			form:      dto.FinanceForm{Type: "employee", WorkplaceID: "3", Amount: "10", Date: "2024-05-01"},
			wantField: "employee_id",
			wantMsg:   "Pracownik jest wymagany",
		},
		{
			name:      "missing type",
			form:      dto.FinanceForm{Amount: "10", Date: "2024-05-01"},
			wantField: "type",
			wantMsg:   "Typ jest wymagany",
		},
		{
			name:      "missing amount",
			form:      dto.FinanceForm{Type: "workplace", WorkplaceID: "1", Date: "2024-05-01"},
			wantField: "amount",
			wantMsg:   "Kwota jest wymagana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.Struct(&tt.form)
			assert.Equal(t, tt.wantMsg, errs.Get(tt.wantField))
		})
	}
}

func TestStruct_FinanceFormAcceptsDecimalComma(t *testing.T) {
	form := dto.FinanceForm{Type: "employee", EmployeeID: "4", Amount: " 12,50 ", Date: "2024-05-01"}
	assert.Nil(t, validation.Struct(&form))
	assert.Equal(t, "12.50", form.Amount)
}

func TestStruct_ScheduleHoursRange(t *testing.T) {
	tests := []struct {
		hours   string
		wantMsg string
	}{
		{hours: "0.25", wantMsg: "Minimalna liczba godzin to 0.5"},
		{hours: "0", wantMsg: "Minimalna liczba godzin to 0.5"},
		{hours: "24.5", wantMsg: "Maksymalna liczba godzin to 24"},
		{hours: "", wantMsg: "Liczba godzin jest wymagana"},
		{hours: "0.5", wantMsg: ""},
		{hours: "24", wantMsg: ""},
		{hours: "7,5", wantMsg: ""},
	}

	for _, tt := range tests {
		t.Run("hours="+tt.hours, func(t *testing.T) {
			form := dto.ScheduleForm{WorkplaceID: "1", EmployeeID: "2", Date: "2024-05-01", Hours: tt.hours}
			errs := validation.Struct(&form)
			assert.Equal(t, tt.wantMsg, errs.Get("hours"))
		})
	}
}

func TestStruct_ProfilePasswords(t *testing.T) {
	base := dto.ProfileForm{FirstName: "Jan", LastName: "Nowak", Email: "jan@example.pl"}
	assert.Nil(t, validation.Struct(&base))

	partial := base
	partial.NewPassword = "sekret1"
	errs := validation.Struct(&partial)
	assert.Equal(t, "Podaj obecne hasło", errs.Get("currentPassword"))
	assert.Equal(t, "Powtórz nowe hasło", errs.Get("confirmPassword"))

	mismatch := base
	mismatch.CurrentPassword = "stare123"
	mismatch.NewPassword = "nowe1234"
	mismatch.ConfirmPassword = "nowe12345"
	errs = validation.Struct(&mismatch)
	assert.Equal(t, "Hasła muszą być takie same", errs.Get("confirmPassword"))

	short := base
	short.CurrentPassword = "abc"
	short.NewPassword = "nowe1234"
	short.ConfirmPassword = "nowe1234"
	errs = validation.Struct(&short)
	assert.Equal(t, "Minimum 6 znaków", errs.Get("currentPassword"))
}

func TestStruct_LoginForm(t *testing.T) {
	errs := validation.Struct(&dto.LoginForm{Email: "a@b.pl", Password: "123"})
	assert.Equal(t, "Hasło musi mieć co najmniej 6 znaków", errs.Get("password"))
}

func TestStruct_ReportRange(t *testing.T) {
	errs := validation.Struct(&dto.ReportFilterForm{StartDate: "2024-05-10", EndDate: "2024-05-01", Type: "all"})
	assert.Equal(t, "Data końcowa nie może być wcześniejsza niż początkowa", errs.Get("endDate"))

	assert.Nil(t, validation.Struct(&dto.ReportFilterForm{StartDate: "2024-05-01", EndDate: "2024-05-31", Type: "workplace"}))
}
