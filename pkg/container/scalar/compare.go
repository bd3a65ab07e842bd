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

// The derived comparisons below assume Equals and LessThan describe a total
// order. A type implementing OrderedComparator answers them itself.

func NotEquals(a, b Value) (bool, error) {
	if oc, ok := a.(OrderedComparator); ok {
		return oc.NotEquals(b)
	}
	eq, err := a.Equals(b)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func LessThanOrEquals(a, b Value) (bool, error) {
	if oc, ok := a.(OrderedComparator); ok {
		return oc.LessThanOrEquals(b)
	}
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c.LessThanOrEquals(), nil
}

func GreaterThan(a, b Value) (bool, error) {
	if oc, ok := a.(OrderedComparator); ok {
		return oc.GreaterThan(b)
	}
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c.GreaterThan(), nil
}

func GreaterThanOrEquals(a, b Value) (bool, error) {
	if oc, ok := a.(OrderedComparator); ok {
		return oc.GreaterThanOrEquals(b)
	}
	lt, err := a.LessThan(b)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

// Comparison holds the outcome of one Compare call.
type Comparison struct {
	eq bool
	lt bool
}

// Compare evaluates Equals and LessThan once each. Every derived relation
// can then be read from the result without calling into a again.
func Compare(a, b Value) (Comparison, error) {
	eq, err := a.Equals(b)
	if err != nil {
		return Comparison{}, err
	}
	lt, err := a.LessThan(b)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{eq: eq, lt: lt}, nil
}

func (c Comparison) Equals() bool { return c.eq }
func (c Comparison) NotEquals() bool { return !c.eq }
func (c Comparison) LessThan() bool { return c.lt }
func (c Comparison) LessThanOrEquals() bool { return c.lt || c.eq }
func (c Comparison) GreaterThan() bool { return !(c.lt || c.eq) }
func (c Comparison) GreaterThanOrEquals() bool { return !c.lt }

// Sign returns -1, 0 or 1.
func (c Comparison) Sign() int {
	switch {
	case c.eq:
		return 0
	case c.lt:
		return -1
	}
	return 1
}
