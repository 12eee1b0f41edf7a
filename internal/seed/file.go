package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"radar/internal/model"
)

// ErrInvalidFixture is returned when a fixture file decodes but fails validation.
var ErrInvalidFixture = errors.New("invalid fixture")

var defaultValidator = initValidator()

func initValidator() *validator.Validate {
	v := validator.New()
	registerValidation(v, "docstatus", func(fl validator.FieldLevel) bool {
		return model.DocumentStatus(fl.Field().String()).Valid()
	})
	registerValidation(v, "activitykind", func(fl validator.FieldLevel) bool {
		return model.ActivityKind(fl.Field().String()).Valid()
	})
	registerValidation(v, "activitystatus", func(fl validator.FieldLevel) bool {
		return model.ActivityStatus(fl.Field().String()).Valid()
	})
	registerValidation(v, "statvariant", func(fl validator.FieldLevel) bool {
		return model.StatVariant(fl.Field().String()).Valid()
	})
	return v
}

func registerValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks every record in d against the model's field rules.
func Validate(d Data) error {
	if err := defaultValidator.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	return nil
}

// Load returns Default when path is empty, otherwise the fixtures stored at path.
func Load(path string) (Data, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a YAML fixture file.
func LoadFile(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read fixture: %w", err)
	}
	return Decode(bytes.NewReader(b))
}

// Decode parses YAML fixtures from r. Unknown keys and empty input are rejected.
func Decode(r io.Reader) (Data, error) {
	var d Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return Data{}, fmt.Errorf("%w: empty fixture file", ErrInvalidFixture)
		}
		return Data{}, fmt.Errorf("decode fixture: %w", err)
	}
	if err := Validate(d); err != nil {
		return Data{}, err
	}
	return d, nil
}
