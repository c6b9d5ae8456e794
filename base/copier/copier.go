// Copyright 2022 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package copier deep copies cell values, rows and tables.
package copier

import (
	"reflect"

	"github.com/juju/errors"
)

// Copy deep copies src into the value dst points to. Slices and maps of dst are replaced,
// never shared with src.
func Copy(dst, src any) error {
	dstPtr := reflect.ValueOf(dst)
	if dstPtr.Kind() != reflect.Ptr {
		return errors.NotValidf("expect dst to be a pointer, but receive %v", dstPtr.Kind())
	}
	return copyValue(dstPtr.Elem(), reflect.ValueOf(src))
}

func copyValue(dst, src reflect.Value) error {
	if !src.IsValid() {
		// nil interface
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	if dst.Kind() != src.Kind() {
		if dst.Kind() != reflect.Interface {
			return errors.NotValidf("different type: %v != %v", dst.Kind(), src.Kind())
		}
		value := reflect.New(src.Type()).Elem()
		if err := copyValue(value, src); err != nil {
			return err
		}
		dst.Set(value)
		return nil
	}

	switch dst.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Uint,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128, reflect.String:
		dst.Set(src)
	case reflect.Slice:
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		slice := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			if err := copyValue(slice.Index(i), src.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(slice)
	case reflect.Map:
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		m := reflect.MakeMapWithSize(src.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			value := reflect.New(iter.Value().Type()).Elem()
			if err := copyValue(value, iter.Value()); err != nil {
				return err
			}
			m.SetMapIndex(iter.Key(), value)
		}
		dst.Set(m)
	case reflect.Ptr:
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		elem := reflect.New(src.Elem().Type())
		if err := copyValue(elem.Elem(), src.Elem()); err != nil {
			return err
		}
		dst.Set(elem)
	case reflect.Interface:
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		value := reflect.New(src.Elem().Type()).Elem()
		if err := copyValue(value, src.Elem()); err != nil {
			return err
		}
		dst.Set(value)
	case reflect.Struct:
		if dst.Type() != src.Type() {
			return errors.NotValidf("different struct: %v != %v", dst.Type(), src.Type())
		}
		for i := 0; i < src.NumField(); i++ {
			if !dst.Field(i).CanSet() {
				continue
			}
			if err := copyValue(dst.Field(i), src.Field(i)); err != nil {
				return err
			}
		}
	default:
		return errors.NotValidf("unsupported type: %v", dst.Kind())
	}
	return nil
}
