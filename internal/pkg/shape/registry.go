// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shape

import (
	"fmt"
	"sort"
	"sync"
)

// Factory returns a new zero value of a shape, as a pointer.
type Factory func() interface{}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a shape available by name. It is meant to be called from init
// functions and panics if the name is registered twice or the factory is nil.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if factory == nil {
		panic(fmt.Sprintf("shape: Register factory for %s is nil", name))
	}
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("shape: Register called twice for %s", name))
	}
	registry[name] = factory
}

// New returns a new zero value of the shape registered under name.
func New(name string) (interface{}, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, &ErrUnknownShape{Name: name}
	}
	return factory(), nil
}

// Names returns the sorted names of the registered shapes.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
