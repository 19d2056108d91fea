package domain

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// errFractional is returned by the decode hook for 2.5 players and the like.
var errFractional = errors.New("expected a whole number")

// idKey is never decoded so clients cannot choose identifiers.
const idKey = "_id"

// Decode converts a submission into the typed record T. It is the single
// boundary between schemaless payloads and typed records. Submission keys
// match T's json names. Fields are decoded one at a time in declaration
// order, and the first value that cannot be represented in T (text for a
// player count, a fractional count, a malformed timestamp) is reported as a
// *ValidationError naming that field and wrapping ErrInvalidFormat. Keys
// with no matching field are ignored.
func Decode[T any](sub Submission) (*T, error) {
	var out T

	for _, name := range jsonFieldNames(reflect.TypeOf(out)) {
		value, ok := sub[name]
		if !ok || name == idKey {
			continue
		}

		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				wholeNumberHook(),
				mapstructure.StringToTimeHookFunc(time.RFC3339),
			),
			TagName: "json",
			Result:  &out,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build decoder: %w", err)
		}

		if err := dec.Decode(map[string]any{name: value}); err != nil {
			return nil, &ValidationError{
				Field:   name,
				Message: "Invalid value for " + name,
				Detail:  err.Error(),
				Err:     fmt.Errorf("%w: %w", ErrInvalidFormat, err),
			}
		}
	}

	return &out, nil
}

// jsonFieldNames lists the json names of t's exported fields in declaration
// order.
func jsonFieldNames(t reflect.Type) []string {
	if t.Kind() != reflect.Struct {
		return nil
	}
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}

// wholeNumberHook rejects JSON numbers with a fractional part bound for an
// integer field; mapstructure would otherwise truncate them silently.
func wholeNumberHook() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data any) (any, error) {
		if from != reflect.Float64 {
			return data, nil
		}
		switch to {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if f, ok := data.(float64); ok && f != math.Trunc(f) {
				return nil, fmt.Errorf("%w, got %v", errFractional, f)
			}
		}
		return data, nil
	}
}
