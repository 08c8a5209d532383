package validate

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagDomain   = "mailr_domain"
	TagHTTPSURL = "https_url"
)

// RegisterGinValidators adds the mailr_domain and https_url tags to gin's
// validator engine so request DTOs can use them in binding tags.
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

// Register installs the custom tags on v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(TagDomain, func(fl validator.FieldLevel) bool {
		return IsDomain(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagHTTPSURL, func(fl validator.FieldLevel) bool {
		return IsHTTPSURL(fl.Field().String())
	})
}
