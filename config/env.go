package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var ErrInvalidEnv = errors.New("invalid environment variable")

var durationType = reflect.TypeOf(time.Duration(0))

// EnvError names the variable whose value could not be converted to its field type.
type EnvError struct {
	Name  string
	Value string
	Kind  string
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("invalid %s value for %s: %s", e.Kind, e.Name, e.Value)
}

func (e *EnvError) Unwrap() error { return ErrInvalidEnv }

type lookupFunc func(name string) (string, bool)

// loadFromEnvironment fills config from variables named by `env` tags, with `default` tags
// covering unset or empty ones. Every bad variable is reported, not only the first.
func loadFromEnvironment(config *Config) error {
	return loadFrom(config, os.LookupEnv)
}

func loadFrom(config *Config, lookup lookupFunc) error {
	var errs []error
	walkFields(reflect.ValueOf(config).Elem(), func(field reflect.Value, tag reflect.StructTag) {
		name := tag.Get("env")
		if name == "" {
			return
		}
		value, ok := lookup(name)
		if !ok || value == "" {
			value = tag.Get("default")
		}
		if value == "" {
			return
		}
		if err := setField(field, name, value); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

func walkFields(v reflect.Value, visit func(field reflect.Value, tag reflect.StructTag)) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		if field.Kind() == reflect.Struct {
			walkFields(field, visit)
			continue
		}
		visit(field, t.Field(i).Tag)
	}
}

func setField(field reflect.Value, name, value string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return &EnvError{Name: name, Value: value, Kind: "duration"}
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &EnvError{Name: name, Value: value, Kind: "boolean"}
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return &EnvError{Name: name, Value: value, Kind: "integer"}
		}
		field.SetInt(n)
	default:
		return fmt.Errorf("unsupported field type %s for %s", field.Kind(), name)
	}
	return nil
}
