/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cxc

import (
	"reflect"

	"github.com/contaplus/cxc/model"
)

// Normalize turns whatever the transaction source returned into canonical
// transactions. It never fails: a non-list input yields an empty slice and
// every element, including nil or non-object ones, yields one record with
// zero values for anything missing or unreadable.
func Normalize(raw interface{}) []model.Transaction {
	list, ok := asList(raw)
	if !ok {
		return []model.Transaction{}
	}

	out := make([]model.Transaction, 0, len(list))
	for _, item := range list {
		m, _ := item.(map[string]interface{})
		out = append(out, model.NewTransactionFromMap(m))
	}
	return out
}

func asList(raw interface{}) ([]interface{}, bool) {
	switch v := raw.(type) {
	case nil, []byte:
		return nil, false
	case []interface{}:
		return v, true
	case []map[string]interface{}:
		list := make([]interface{}, len(v))
		for i := range v {
			list[i] = v[i]
		}
		return list, true
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	list := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		list[i] = rv.Index(i).Interface()
	}
	return list, true
}
