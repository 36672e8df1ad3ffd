// Package assert provides the small set of test assertions used throughout
// this module.  Each assertion stops the test at the first failure.
package assert

import (
	"fmt"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.  Integers of differing
// types are compared by value, so that untyped constants can be compared
// against uint or int64 results directly.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || sameInteger(expected, actual) {
		return
	}
	//
	fail(t, fmt.Sprintf("expected: %v, actual: %v", expected, actual), msg)
}

// True errors if the condition does not hold.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		fail(t, "condition should hold", msg)
	}
}

// False errors if the condition holds.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		fail(t, "condition should not hold", msg)
	}
}

// NoError errors if err is not nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err != nil {
		fail(t, fmt.Sprintf("unexpected error: %v", err), msg)
	}
}

// Error errors if err is nil.
func Error(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err == nil {
		fail(t, "expected an error", msg)
	}
}

func fail(t *testing.T, reason string, msg []any) {
	t.Helper()
	t.Error(reason)
	//
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
	//
	t.FailNow()
}

// sameInteger returns whether expected and actual are both integers holding the
// same mathematical value.
func sameInteger(expected, actual any) bool {
	var (
		x = reflect.ValueOf(expected)
		y = reflect.ValueOf(actual)
	)
	//
	switch {
	case isSigned(x) && isSigned(y):
		return x.Int() == y.Int()
	case isUnsigned(x) && isUnsigned(y):
		return x.Uint() == y.Uint()
	case isSigned(x) && isUnsigned(y):
		return x.Int() >= 0 && uint64(x.Int()) == y.Uint()
	case isUnsigned(x) && isSigned(y):
		return y.Int() >= 0 && uint64(y.Int()) == x.Uint()
	}
	//
	return false
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	//
	return false
}

func isUnsigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	//
	return false
}
