package apperror

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Indian mobile number: optional +91 / 91 / 0 prefix, first digit 6-9,
// ten digits total.
var mobilePattern = regexp.MustCompile(`^(\+91|91|0)?[6-9][0-9]{9}$`)

// Init hooks into Gin's built-in validator: field names in validation
// errors come from the json tag, and the custom `inmobile` tag is
// registered for phone fields.
func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("inmobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
}
