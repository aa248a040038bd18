package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator reporta los campos con su nombre JSON, que es el que ve el cliente.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

// bindJSON decodifica el body en out y valida sus tags `validate`.
func bindJSON(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &requestError{message: "corpo da requisição inválido"}
	}
	return validateStruct(out)
}

func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &requestError{message: "dados inválidos", fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "Este campo é obrigatório."
	case "gt":
		return fmt.Sprintf("Certifique-se de que este valor seja maior que %s.", fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("Certifique-se de que este campo tenha no mínimo %s caracteres.", fe.Param())
		}
		return fmt.Sprintf("Certifique-se de que este valor seja maior ou igual a %s.", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("Certifique-se de que este campo não tenha mais de %s caracteres.", fe.Param())
		}
		return fmt.Sprintf("Certifique-se de que este valor seja menor ou igual a %s.", fe.Param())
	}
	return "Valor inválido."
}
