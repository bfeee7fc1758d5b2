package handler

import (
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/talenthub-dev/job-board/backend/internal/domain"
)

// registerJSONTagNames makes validation errors report the json field name
// instead of the Go struct field name.
func registerJSONTagNames(validate *validator.Validate) error {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return nil
}

// registerChoiceValidations wires the shared choice lists into validator tags
// so payload fields are checked against the same enumerations the enum
// endpoints serve.
func registerChoiceValidations(validate *validator.Validate, trans ut.Translator) error {
	choices := []struct {
		tag     string
		message string
		valid   func(string) bool
	}{
		{"language", "{0} is not a known language", domain.IsValidLanguage},
		{"language_level", "{0} is not a known language level", domain.IsValidLanguageLevel},
		{"technical_skill", "{0} is not a known technical skill", domain.IsValidTechnicalSkill},
		{"personal_skill", "{0} is not a known personal skill", domain.IsValidPersonalSkill},
	}

	for _, c := range choices {
		valid := c.valid
		if err := validate.RegisterValidation(c.tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		}); err != nil {
			return err
		}

		tag, message := c.tag, c.message
		if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return t
		}); err != nil {
			return err
		}
	}

	return nil
}
