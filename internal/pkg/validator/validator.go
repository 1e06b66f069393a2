// Package validator는 go-playground/validator/v10을 감싸는 싱글턴 Validate
// 인스턴스와, 그 검증 실패를 한국어 문장으로 바꾸는 포맷터를 제공합니다.
package validator

import (
	"fmt"
	"reflect"
	"sync"

	go_validator "github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *go_validator.Validate
)

// Get은 프로세스 전역에서 공유되는 *go_validator.Validate 인스턴스를 반환합니다.
// 필드 이름은 "korean" 구조체 태그가 있으면 그 값을, 없으면 Go 필드 이름을 사용합니다.
func Get() *go_validator.Validate {
	once.Do(func() {
		instance = go_validator.New()
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := fld.Tag.Get("korean")
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return instance
}

// Struct는 v의 validate 태그를 검증합니다.
func Struct(v interface{}) error {
	return Get().Struct(v)
}

// FormatValidationError는 Struct가 반환한 에러를 사용자에게 보여줄 한국어
// 문장 하나로 바꿉니다. 여러 필드가 실패해도 첫 번째 에러만 사용합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(go_validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}

	return formatFieldError(validationErrors[0])
}

func formatFieldError(fe go_validator.FieldError) string {
	label := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", label)
	case "min":
		return formatMin(fe, label)
	case "max":
		return formatMax(fe, label)
	case "len":
		return formatLen(fe, label)
	case "lte":
		return formatLte(fe, label)
	case "gte":
		return formatGte(fe, label)
	case "email":
		return fmt.Sprintf("%s는 올바른 이메일 형식이어야 합니다", label)
	case "url":
		return fmt.Sprintf("%s는 올바른 URL 형식이어야 합니다", label)
	case "uuid":
		return fmt.Sprintf("%s는 올바른 UUID 형식이어야 합니다", label)
	case "alphanum":
		return fmt.Sprintf("%s는 영문자와 숫자만 입력 가능합니다", label)
	case "oneof":
		return fmt.Sprintf("%s는 허용된 값 중 하나여야 합니다 [%s]", label, fe.Param())
	case "boolean":
		return fmt.Sprintf("%s는 true 또는 false 값이어야 합니다", label)
	default:
		return fmt.Sprintf("%s 값 검증 실패 (%s)", label, fe.Tag())
	}
}

func isCollection(kind reflect.Kind) bool {
	return kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map
}

func formatMin(fe go_validator.FieldError, label string) string {
	if fe.Kind() == reflect.String {
		return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", label, fe.Param())
	}
	return fmt.Sprintf("%s는 최소 %s 이상이어야 합니다", label, fe.Param())
}

func formatMax(fe go_validator.FieldError, label string) string {
	if fe.Kind() == reflect.String {
		return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", label, fe.Param())
	}
	return fmt.Sprintf("%s는 최대 %s까지 입력 가능합니다", label, fe.Param())
}

func formatLen(fe go_validator.FieldError, label string) string {
	switch {
	case fe.Kind() == reflect.String:
		return fmt.Sprintf("%s는 %s자여야 합니다", label, fe.Param())
	case isCollection(fe.Kind()):
		return fmt.Sprintf("%s는 갯수가 %s개여야 합니다", label, fe.Param())
	default:
		return fmt.Sprintf("%s는 %s여야 합니다", label, fe.Param())
	}
}

func formatLte(fe go_validator.FieldError, label string) string {
	if fe.Kind() == reflect.String {
		return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", label, fe.Param())
	}
	return fmt.Sprintf("%s는 %s 이하이어야 합니다", label, fe.Param())
}

func formatGte(fe go_validator.FieldError, label string) string {
	if fe.Kind() == reflect.String {
		return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", label, fe.Param())
	}
	return fmt.Sprintf("%s는 %s 이상이어야 합니다", label, fe.Param())
}
