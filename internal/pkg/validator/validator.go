// Package validator runs go-playground struct validation and flattens the
// result into a field→rule map suitable for the error envelope's details.
package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate returns nil when v passes its `validate` tags, otherwise one
// entry per failing field keyed by field name with the violated rule.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
