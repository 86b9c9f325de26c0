package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance.  Struct tag validation is
// stateless, so a single instance serves every service.
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkStruct runs tag validation and folds the field errors into a
// single ErrValidation wrap so handlers can report them in one body.
func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return invalid("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("campo %s falhou na regra %s", fe.Field(), fe.Tag()))
	}
	return invalid("%s", strings.Join(msgs, "; "))
}
