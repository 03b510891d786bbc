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
package database

import (
	"fmt"
	"sort"
	"sync"

	"github.com/contaplus/cxc/config"
	"github.com/contaplus/cxc/internal/apierror"
	"github.com/contaplus/cxc/model"
)

// Declare a package-level variable to hold the singleton instance.
// Ensure the instance is not accessible outside the package.
var instance *Datasource
var once sync.Once

// Datasource keeps the catalog in process memory. Contents are lost on restart.
type Datasource struct {
	clientes        *table[model.Cliente]
	tiposDocumentos *table[model.TipoDocumento]
	asientos        *table[model.AsientoContable]
	transacciones   *table[model.TransaccionContable]
}

func NewDataSource(configuration *config.Configuration) (IDataSource, error) {
	return GetDBConnection(configuration)
}

// GetDBConnection provides a global access point to the instance and initializes it if it's not already.
func GetDBConnection(_ *config.Configuration) (*Datasource, error) {
	once.Do(func() {
		instance = NewMemoryDataSource()
	})
	return instance, nil
}

// NewMemoryDataSource returns an empty, independent store.
func NewMemoryDataSource() *Datasource {
	return &Datasource{
		clientes:        newTable[model.Cliente]("cliente"),
		tiposDocumentos: newTable[model.TipoDocumento]("tipo de documento"),
		asientos:        newTable[model.AsientoContable]("asiento contable"),
		transacciones:   newTable[model.TransaccionContable]("transaccion"),
	}
}

// table is an id-keyed collection with its own sequence.
type table[T any] struct {
	mu     sync.RWMutex
	name   string
	nextID int
	rows   map[int]T
}

func newTable[T any](name string) *table[T] {
	return &table[T]{name: name, nextID: 1, rows: make(map[int]T)}
}

func (t *table[T]) insert(build func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	return row
}

func (t *table[T]) get(id int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, t.notFound(id)
	}
	return row, nil
}

func (t *table[T]) all(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]int, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if keep == nil || keep(t.rows[id]) {
			out = append(out, t.rows[id])
		}
	}
	return out
}

func (t *table[T]) update(id int, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return t.notFound(id)
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) delete(id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return t.notFound(id)
	}
	delete(t.rows, id)
	return nil
}

func (t *table[T]) notFound(id int) error {
	return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("%s with ID '%d' not found", t.name, id), nil)
}
