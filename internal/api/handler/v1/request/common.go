package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var currencyCode = validation.Match(regexp.MustCompile(`^[A-Za-z]{3}$`)).Error("must be a 3-letter ISO currency code")
