package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	gerr "github.com/tastyhub/dashboard-manager/internal/errors"
)

// ValidateStruct runs ozzo field rules and folds every violation into a
// single error wrapping gerr.ErrInvalidRequest.
func ValidateStruct(structPtr interface{}, rules ...*validation.FieldRules) error {
	err := validation.ValidateStruct(structPtr, rules...)
	if err == nil {
		return nil
	}
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for field, fe := range ve {
		msgs = append(msgs, formatErrMsg(field+": "+fe.Error()))
	}
	sort.Strings(msgs)
	return fmt.Errorf("%w: %s", gerr.ErrInvalidRequest, strings.Join(msgs, " "))
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+1:]
	}
	return ""
}
