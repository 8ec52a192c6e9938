package http

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

// RegisterValidators installs the enum validators used by request bindings
// on gin's shared validator engine
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	validators := map[string]validator.Func{
		"property_type": func(fl validator.FieldLevel) bool {
			return domain.ParsePropertyType(fl.Field().String()).Valid()
		},
		"purpose": func(fl validator.FieldLevel) bool {
			return domain.ParsePurpose(fl.Field().String()).Valid()
		},
		"persona": func(fl validator.FieldLevel) bool {
			return domain.ParsePersona(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	return nil
}
