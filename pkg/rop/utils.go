package rop

import "reflect"

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Of turns a (value, error) pair into a Result. A typed nil pointer error counts as no error.
func Of[V any](v V, err error) Result[V, error] {
	if IsNil(err) {
		return Success[V, error](v)
	}
	return Fail[V](err)
}
