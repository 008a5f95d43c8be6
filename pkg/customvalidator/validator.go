package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"gestion-medios/pkg/constants"
)

// RegisterCustomValidations registra las reglas propias del dominio en el
// validador compartido.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("equipment_type", isEquipmentType); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isEquipmentStatus); err != nil {
		return err
	}
	return nil
}

func isEquipmentType(fl validator.FieldLevel) bool {
	return constants.IsValidEquipmentType(fl.Field().String())
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	return constants.IsValidEquipmentStatus(fl.Field().String())
}
