// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scalar

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/matrixorigin/motype/pkg/common/moerr"
	"github.com/matrixorigin/motype/pkg/container/types"
	"github.com/matrixorigin/motype/pkg/logutil"
)

// Factory returns a new default valued instance of one type.
type Factory func() Value

var registry = struct {
	sync.RWMutex
	factories map[types.T]Factory
}{
	factories: make(map[types.T]Factory),
}

// Register makes a type available through New. It panics if t is T_any,
// if factory is nil or builds instances of another type, if t is a built
// in identifier whose width the instances do not match, or if t was
// already registered.
func Register(t types.T, factory Factory) {
	if t == types.T_any {
		panic("scalar: register T_any")
	}
	if factory == nil {
		panic(fmt.Sprintf("scalar: register nil factory for %s", t.OidString()))
	}
	proto := factory()
	if proto == nil || proto.TypeID() != t {
		panic(fmt.Sprintf("scalar: factory for %s builds %s", t.OidString(), typeName(proto)))
	}
	if w := t.FixedLength(); w >= 0 && w != proto.EncodedWidth() {
		panic(fmt.Sprintf("scalar: %s encodes %d bytes, want %d", t.OidString(), proto.EncodedWidth(), w))
	}
	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.factories[t]; dup {
		panic(fmt.Sprintf("scalar: register called twice for %s", t.OidString()))
	}
	registry.factories[t] = factory
	logutil.Debugf("scalar type %s registered", t.OidString())
}

// New returns a default valued instance of the type identified by t.
func New(t types.T) (Value, error) {
	registry.RLock()
	factory, ok := registry.factories[t]
	registry.RUnlock()
	if !ok {
		return nil, moerr.NewInvalidInputNoCtx("no scalar type registered for %s", t.OidString())
	}
	return factory(), nil
}

// Registered returns the registered identifiers in ascending order.
func Registered() []types.T {
	registry.RLock()
	ts := make([]types.T, 0, len(registry.factories))
	for t := range registry.factories {
		ts = append(ts, t)
	}
	registry.RUnlock()
	slices.Sort(ts)
	return ts
}

func init() {
	Register(types.T_uint64, func() Value { return &Uint64{} })
	Register(types.T_int64, func() Value { return &Int64{} })
	Register(types.T_uuid, func() Value { return &Uuid{} })
	Register(types.T_varchar, func() Value { return &Varchar{} })
}
