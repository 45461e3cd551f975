package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/44Loqueinor12345/Inventario/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report fields by their form name, so validation errors name the field
	// exactly as the client submitted it.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindAndValidate binds the (multipart or urlencoded) form and runs the
// go-playground/validator tags. Returns false and writes the error response
// if validation fails — the caller must return immediately without writing
// another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		respondError(c, apierror.Validation("", "Error: Formulario inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fe := err.(validator.ValidationErrors)[0]
		campo := fe.Field()
		respondError(c, apierror.Validation(campo,
			fmt.Sprintf(`Error: El campo "%s" es requerido`, campo)))
		return false
	}
	return true
}

// respondError maps a service error to its HTTP status and writes the
// {success:false, message} envelope.
func respondError(c *gin.Context, err error) {
	c.JSON(apierror.Status(err), apierror.New(err.Error()))
}
