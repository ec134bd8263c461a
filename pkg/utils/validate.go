package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	err := validate.RegisterValidation("priority", validatePriority)
	if err != nil {
		return
	}
	err = validate.RegisterValidation("shipment_status", validateShipmentStatus)
	if err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePriority(fl validator.FieldLevel) bool {
	priority := fl.Field().String()
	return priority == "" || priority == "NORMAL" || priority == "ALTA"
}

func validateShipmentStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	validStatuses := []string{
		"REPARANDO EN ELECTROMEDICINA",
		"ENVIADO A SERVICIO TECNICO",
		"PRESUPUESTO RECIBIDO",
		"PRESUPUESTO ACEPTADO",
		"RECIBIDO",
	}

	for _, valid := range validStatuses {
		if status == valid {
			return true
		}
	}
	return false
}

func IsValidEmail(email string) bool {
	email = strings.TrimSpace(strings.ToLower(email))
	re := regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	return re.MatchString(email)
}
