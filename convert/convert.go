// Package convert implements the value-conversion facade (§4.9): a
// process-wide "active converter" slot, set for the duration of one parse
// via scoped acquisition, that To consults when a value doesn't
// already match the requested type directly.
package convert

import (
	"reflect"
	"sync"

	"github.com/dekarrin/llkrt/rterr"
)

// Converter is the "provides-converter" capability a user-actions object
// may advertise (§6): try_convert attempts to coerce value to targetType,
// reporting whether it succeeded.
type Converter interface {
	TryConvert(value any, targetType reflect.Type) (converted any, ok bool)
}

var (
	mu     sync.Mutex
	active Converter
)

// WithConverter sets the active converter slot to c for the duration of fn,
// restoring whatever was active before on every exit path — including a
// panic propagating out of fn — per §4.9's scoped-acquisition requirement.
// A nil c leaves the slot cleared for the duration of fn.
func WithConverter(c Converter, fn func() error) error {
	mu.Lock()
	previous := active
	active = c
	mu.Unlock()

	defer func() {
		mu.Lock()
		active = previous
		mu.Unlock()
	}()

	return fn()
}

// To attempts to produce a T from value: first by direct type assertion,
// then by delegating to the active converter (if one is set), and finally
// failing with a ValueConversionError naming both types.
func To[T any](value any) (T, error) {
	var zero T

	if direct, ok := value.(T); ok {
		return direct, nil
	}

	mu.Lock()
	c := active
	mu.Unlock()

	targetType := reflect.TypeOf(zero)
	if c != nil {
		if converted, ok := c.TryConvert(value, targetType); ok {
			if typed, ok := converted.(T); ok {
				return typed, nil
			}
		}
	}

	sourceType := reflect.TypeOf(value)
	return zero, rterr.ValueConversion(typeName(sourceType), typeName(targetType))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
