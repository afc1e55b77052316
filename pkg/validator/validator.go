// Package validator 把gin binding产生的校验错误转换为字段级错误描述
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var once sync.Once

// errorMessages 校验tag → 错误描述模板
var errorMessages = map[string]string{
	"required": "The field '%s' is required.",
	"email":    "The field '%s' must be a valid email address.",
	"min":      "The field '%s' must be at least %s characters long.",
	"max":      "The field '%s' must be no longer than %s characters.",
}

// Init 在gin的校验引擎上注册json字段名
// 注册后FieldError.Field()返回请求体中的字段名（name）而不是结构体字段名（Name）
func Init() {
	once.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonTagName)
		}
	})
}

// jsonTagName 读取json tag中的字段名
func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

// Translate 将ShouldBindJSON返回的错误转换为 字段名 → 错误描述
// 返回nil表示错误与具体字段无关（如请求体不是合法JSON）
func Translate(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fieldErrors := make(map[string]string, len(validationErrs))
		for _, e := range validationErrs {
			fieldErrors[e.Field()] = parseMessage(e)
		}
		return fieldErrors
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string]string{
			typeErr.Field: fmt.Sprintf("The field '%s' must be a %s.", typeErr.Field, typeErr.Type.Kind()),
		}
	}

	return nil
}

// parseMessage 根据校验tag生成错误描述
func parseMessage(e validator.FieldError) string {
	msg, ok := errorMessages[e.Tag()]
	if !ok {
		return fmt.Sprintf("The field '%s' is invalid: %s", e.Field(), e.Tag())
	}
	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, e.Field(), e.Param())
	}
	return fmt.Sprintf(msg, e.Field())
}
