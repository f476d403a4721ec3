package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/pkg/afip"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// decimal.Decimal se valida como número (min=0, gt=0, ...).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Los errores se reportan con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("cuit", func(fl validator.FieldLevel) bool {
		return afip.Validate(afip.DocumentCUIT, strings.TrimSpace(fl.Field().String()))
	})
	_ = v.RegisterValidation("dni", func(fl validator.FieldLevel) bool {
		return afip.ValidateDNI(fl.Field().String())
	})
	// taxdoc=Campo valida el número según el tipo declarado en otro campo del mismo struct.
	_ = v.RegisterValidation("taxdoc", func(fl validator.FieldLevel) bool {
		typeField := fl.Parent().FieldByName(fl.Param())
		if !typeField.IsValid() || typeField.Kind() != reflect.String {
			return false
		}
		t, ok := afip.ParseDocumentType(typeField.String())
		if !ok {
			return false
		}
		return afip.Validate(t, fl.Field().String())
	})
	return v
}

// bindAndValidate parsea el body y aplica los tags de validación.
// Si falla ya escribió la respuesta (400 o 422): el handler debe devolver err tal cual.
func bindAndValidate(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(req); err != nil {
		return false, c.Status(fiber.StatusUnprocessableEntity).JSON(*err)
	}
	return true, nil
}

func validateStruct(req interface{}) *dto.ValidationErrorResponse {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &dto.ValidationErrorResponse{Code: "VALIDATION", Message: err.Error(), Fields: map[string]string{}}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fe.Tag()
	}
	return &dto.ValidationErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields}
}

// fieldPath quita el nombre del struct raíz: "CreatePurchaseRequest.items[0].product_id" -> "items[0].product_id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
