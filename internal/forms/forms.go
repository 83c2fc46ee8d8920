// Package forms drives the create/edit submissions. Each service binds a
// validated value bag to a store mutation: guard the acting user, validate
// explicitly, transform, call the backend, then reset on success or keep
// the user's values and translate the error on failure.
package forms

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/acadpainel/academico-sync/internal/apierror"
)

const msgSemUsuario = "usuário não identificado"

var validate *validator.Validate

func init() {
	validate = validator.New()
	// field names in messages come from the json tags
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateStruct runs the schema and folds field errors into one
// Portuguese message. Validation failures never reach the network.
func validateStruct(s any) *apierror.Error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apierror.New(apierror.KindValidation, 0, err.Error())
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldMessage(fe))
	}
	return apierror.New(apierror.KindValidation, 0, strings.Join(parts, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	return tagMessage(fe.Field(), fe)
}

func tagMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return name + " é obrigatório"
	case "email":
		return name + " deve ser um e-mail válido"
	case "min":
		return name + " deve ter no mínimo " + fe.Param() + " caracteres"
	case "max":
		return name + " deve ter no máximo " + fe.Param() + " caracteres"
	case "len":
		return name + " deve ter " + fe.Param() + " caracteres"
	case "oneof":
		return name + " deve ser um de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "numeric":
		return name + " deve ser numérico"
	case "datetime":
		return name + " deve estar no formato AAAA-MM-DD"
	default:
		return name + " inválido"
	}
}

// validateVar checks one named value against a rule tag, for the map
// based edit flow where there is no struct schema to run.
func validateVar(name, value, rule string) *apierror.Error {
	err := validate.Var(value, rule)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return apierror.New(apierror.KindValidation, 0, name+" inválido")
	}
	return apierror.New(apierror.KindValidation, 0, tagMessage(name, verrs[0]))
}

// status carries the submit lifecycle the screens render.
type status struct {
	mu         sync.Mutex
	loading    bool
	errMsg     string
	successMsg string
}

func (s *status) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *status) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *status) SuccessMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.successMsg
}

func (s *status) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
	s.successMsg = ""
}

func (s *status) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.errMsg = ""
	s.successMsg = ""
}

func (s *status) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.errMsg = msg
}

func (s *status) succeed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.successMsg = msg
}
