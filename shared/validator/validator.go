package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"linka/shared/constant"
	"linka/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const bytesPerMB = 1 << 20

var (
	instance *val.Validate
	initOnce sync.Once
)

func get() *val.Validate {
	initOnce.Do(func() {
		instance = val.New(val.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(jsonName)

		rules := map[string]val.Func{
			"mimetypes":   mimetypes,
			"maxfilesize": maxFileSize,
		}

		for tag, rule := range rules {
			if err := instance.RegisterValidation(tag, rule); err != nil {
				panic(fmt.Sprintf("register %s validation: %v", tag, err))
			}
		}
	})

	return instance
}

// jsonName reports fields by their JSON key so messages match the request body.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return constant.Empty
	case constant.Empty:
		return field.Name
	default:
		return name
	}
}

func fileHeader(field val.FieldLevel) (multipart.FileHeader, bool) {
	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return file, true
	case *multipart.FileHeader:
		if file == nil {
			return multipart.FileHeader{}, false
		}

		return *file, true
	default:
		return multipart.FileHeader{}, false
	}
}

// mimetypes accepts an uploaded file whose Content-Type is one of the
// space separated parameters.
func mimetypes(field val.FieldLevel) bool {
	file, ok := fileHeader(field)
	if !ok {
		return false
	}

	contentType, _, _ := strings.Cut(file.Header.Get(constant.RequestHeaderContentType), ";")

	return slices.Contains(strings.Fields(field.Param()), strings.TrimSpace(contentType))
}

// maxfilesize caps an uploaded file at the parameter in megabytes.
func maxFileSize(field val.FieldLevel) bool {
	file, ok := fileHeader(field)
	if !ok {
		return false
	}

	limitMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(file.Size) <= limitMB*bytesPerMB
}

// Validate decodes a JSON body into data and checks its validate tags.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := get().Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := get().Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
