// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"reflect"

	"github.com/bureau-foundation/conquer/lib/binding"
	"github.com/bureau-foundation/conquer/lib/value"
)

var (
	contextType = reflect.TypeFor[context.Context]()
	errorType   = reflect.TypeFor[error]()
)

// function is a reflected Go function usable as an [Operation].
type function struct {
	value        reflect.Value
	takesContext bool
	inputs       []reflect.Type
	returnsError bool
}

// Func adapts a plain Go function to an [Operation]. The function may
// take a leading context.Context and may return a single error; its
// remaining parameters receive the bound values positionally.
//
// Accepted parameter types, by declared value type:
//
//   - string, enum: any string kind
//   - integer: any signed integer kind (overflow is an invocation error)
//   - float: float64 or float32
//   - boolean: bool
//   - nullable<T>: pointer to the type accepted for T, nil when null
//   - list<T>: slice of the type accepted for T
//
// Func checks only the shape of fn. [NewFuncDescriptor] also checks fn
// against the parameter list, which is what most callers want.
func Func(fn any) (Operation, error) {
	reflected, err := reflectFunction(fn)
	if err != nil {
		return nil, err
	}
	return reflected.call, nil
}

// NewFuncDescriptor builds a descriptor whose operation is fn, after
// checking that fn's parameters accept the declared types in order.
func NewFuncDescriptor(name, description string, fn any, params ...binding.Parameter) (*Descriptor, error) {
	reflected, err := reflectFunction(fn)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", name, err)
	}
	if err := reflected.check(params); err != nil {
		return nil, fmt.Errorf("command %q: %w", name, err)
	}
	return NewDescriptor(name, description, reflected.call, params...)
}

// MustFuncDescriptor is [NewFuncDescriptor] for statically declared
// commands. Panics on invalid input.
func MustFuncDescriptor(name, description string, fn any, params ...binding.Parameter) *Descriptor {
	descriptor, err := NewFuncDescriptor(name, description, fn, params...)
	if err != nil {
		panic(fmt.Sprintf("command.MustFuncDescriptor(%q): %v", name, err))
	}
	return descriptor
}

func reflectFunction(fn any) (*function, error) {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func || fnValue.IsNil() {
		return nil, fmt.Errorf("operation must be a non-nil function, got %T", fn)
	}
	fnType := fnValue.Type()
	if fnType.IsVariadic() {
		return nil, fmt.Errorf("operation must not be variadic: %s", fnType)
	}

	reflected := &function{value: fnValue}

	for i := range fnType.NumIn() {
		in := fnType.In(i)
		if i == 0 && in == contextType {
			reflected.takesContext = true
			continue
		}
		reflected.inputs = append(reflected.inputs, in)
	}

	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			return nil, fmt.Errorf("operation may only return error, got %s", fnType.Out(0))
		}
		reflected.returnsError = true
	default:
		return nil, fmt.Errorf("operation may only return error, got %d results", fnType.NumOut())
	}
	return reflected, nil
}

func (f *function) check(params []binding.Parameter) error {
	if len(f.inputs) != len(params) {
		return fmt.Errorf("function takes %d arguments, %d parameters declared", len(f.inputs), len(params))
	}
	for i, param := range params {
		if !accepts(param.Type, f.inputs[i]) {
			return fmt.Errorf("parameter %q of type %s cannot be passed as %s", param.Name, param.Type, f.inputs[i])
		}
	}
	return nil
}

func (f *function) call(ctx context.Context, args Arguments) error {
	if args.Len() != len(f.inputs) {
		return fmt.Errorf("function takes %d arguments, received %d", len(f.inputs), args.Len())
	}

	in := make([]reflect.Value, 0, len(f.inputs)+1)
	if f.takesContext {
		in = append(in, reflect.ValueOf(&ctx).Elem())
	}
	for i, target := range f.inputs {
		converted, err := convert(args.At(i), target)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		in = append(in, converted)
	}

	out := f.value.Call(in)
	if f.returnsError && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}

func accepts(t value.Type, target reflect.Type) bool {
	switch t.Kind() {
	case value.KindString, value.KindEnum:
		return target.Kind() == reflect.String
	case value.KindInteger:
		switch target.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return true
		}
	case value.KindFloat:
		return target.Kind() == reflect.Float64 || target.Kind() == reflect.Float32
	case value.KindBoolean:
		return target.Kind() == reflect.Bool
	case value.KindNullable:
		return target.Kind() == reflect.Pointer && accepts(t.Elem(), target.Elem())
	case value.KindList:
		return target.Kind() == reflect.Slice && accepts(t.Elem(), target.Elem())
	}
	return false
}

func convert(v value.Value, target reflect.Type) (reflect.Value, error) {
	result := reflect.New(target).Elem()

	switch target.Kind() {
	case reflect.Pointer:
		if v.IsNull() {
			return result, nil
		}
		inner, err := convert(v.Inner(), target.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		pointer := reflect.New(target.Elem())
		pointer.Elem().Set(inner)
		return pointer, nil

	case reflect.Slice:
		items := v.Items()
		slice := reflect.MakeSlice(target, len(items), len(items))
		for i, item := range items {
			converted, err := convert(item, target.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			slice.Index(i).Set(converted)
		}
		return slice, nil

	case reflect.String:
		s, ok := v.AsString()
		if !ok {
			s, ok = v.AsEnum()
		}
		if !ok {
			return reflect.Value{}, fmt.Errorf("%s cannot be passed as %s", v.Type(), target)
		}
		result.SetString(s)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := v.AsInteger()
		if !ok {
			return reflect.Value{}, fmt.Errorf("%s cannot be passed as %s", v.Type(), target)
		}
		if result.OverflowInt(n) {
			return reflect.Value{}, fmt.Errorf("%d overflows %s", n, target)
		}
		result.SetInt(n)

	case reflect.Float32, reflect.Float64:
		f, ok := v.AsFloat()
		if !ok {
			return reflect.Value{}, fmt.Errorf("%s cannot be passed as %s", v.Type(), target)
		}
		if result.OverflowFloat(f) {
			return reflect.Value{}, fmt.Errorf("%g overflows %s", f, target)
		}
		result.SetFloat(f)

	case reflect.Bool:
		b, ok := v.AsBoolean()
		if !ok {
			return reflect.Value{}, fmt.Errorf("%s cannot be passed as %s", v.Type(), target)
		}
		result.SetBool(b)

	default:
		return reflect.Value{}, fmt.Errorf("unsupported argument type %s", target)
	}
	return result, nil
}
