// Package validation checks form records before anything is sent to the backend.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/go-playground/validator/v10"
)

// DefaultMessage is used when a form has no message for a failed rule.
const DefaultMessage = "Nieprawidłowa wartość"

// FieldErrors maps a form field name to the message shown under it.
type FieldErrors map[string]string

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Get returns the message for field or "".
func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

// Add keeps the first message reported for a field.
func (fe FieldErrors) Add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

// Messenger is implemented by forms that localize their rule failures.
// Keys are "<field>.<tag>".
type Messenger interface {
	ValidationMessages() map[string]string
}

type normalizer interface {
	Normalize()
}

var (
	instance *validator.Validate
	initOnce sync.Once
)

// Validator returns the shared validator with the panel's custom rules.
func Validator() *validator.Validate {
	initOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("minnum", numberAtLeast)
		_ = v.RegisterValidation("maxnum", numberAtMost)
		v.RegisterStructValidation(profilePasswordRules, dto.ProfileForm{})
		v.RegisterStructValidation(reportRangeRules, dto.ReportFilterForm{})
		instance = v
	})
	return instance
}

// Struct normalizes and validates form. It returns nil when the form is valid.
func Struct[F any](form *F) FieldErrors {
	if n, ok := any(form).(normalizer); ok {
		n.Normalize()
	}

	err := Validator().Struct(form)
	if err == nil {
		return nil
	}

	var messages map[string]string
	if m, ok := any(form).(Messenger); ok {
		messages = m.ValidationMessages()
	}

	out := FieldErrors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Add("", DefaultMessage)
		return out
	}
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = DefaultMessage
		}
		out.Add(fe.Field(), msg)
	}
	return out
}

func parseNumber(fl validator.FieldLevel) (value, limit float64, ok bool) {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return 0, 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, 0, false
	}
	limit, err = strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return 0, 0, false
	}
	return value, limit, true
}

// numberAtLeast compares a numeric string with the tag parameter.
func numberAtLeast(fl validator.FieldLevel) bool {
	value, limit, ok := parseNumber(fl)
	return ok && value >= limit
}

func numberAtMost(fl validator.FieldLevel) bool {
	value, limit, ok := parseNumber(fl)
	return ok && value <= limit
}

func profilePasswordRules(sl validator.StructLevel) {
	form := sl.Current().Interface().(dto.ProfileForm)
	if !form.WantsPasswordChange() {
		return
	}
	if form.CurrentPassword == "" {
		sl.ReportError(form.CurrentPassword, "currentPassword", "CurrentPassword", "required", "")
	}
	if form.NewPassword == "" {
		sl.ReportError(form.NewPassword, "newPassword", "NewPassword", "required", "")
	}
	if form.ConfirmPassword == "" {
		sl.ReportError(form.ConfirmPassword, "confirmPassword", "ConfirmPassword", "required", "")
	}
}

func reportRangeRules(sl validator.StructLevel) {
	form := sl.Current().Interface().(dto.ReportFilterForm)
	// both dates already carry the datetime rule, only order is checked here
	if len(form.StartDate) == len("2006-01-02") && len(form.EndDate) == len("2006-01-02") && form.EndDate < form.StartDate {
		sl.ReportError(form.EndDate, "endDate", "EndDate", "daterange", "")
	}
}

// FieldNames lists the form names of a form struct (or pointer to one).
func FieldNames(form any) []string {
	t := reflect.TypeOf(form)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("form"), ",", 2)[0]
		if name != "" && name != "-" {
			names = append(names, name)
		}
	}
	return names
}
