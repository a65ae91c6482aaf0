package jdom

// Array is the container behind a JSON array value: an ordered, 0-indexed
// sequence of owned child values. Unlike Object removal, RemoveAt shifts
// subsequent elements down and preserves order.
type Array struct {
	wrap   *Value
	values []*Value
}

// Value returns the value wrapping this array.
func (a *Array) Value() *Value {
	if a == nil {
		return nil
	}
	return a.wrap
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// Cap returns the current backing capacity.
func (a *Array) Cap() int {
	if a == nil {
		return 0
	}
	return cap(a.values)
}

// Get returns the element at index i, or nil when out of range.
func (a *Array) Get(i int) *Value {
	if a == nil || i < 0 || i >= len(a.values) {
		return nil
	}
	return a.values[i]
}

// GetString returns the string at index i, or "" on absence or type
// mismatch.
func (a *Array) GetString(i int) string { return a.Get(i).String() }

// GetNumber returns the number at index i, or 0 on absence or type
// mismatch.
func (a *Array) GetNumber(i int) float64 { return a.Get(i).Number() }

// GetBool returns the boolean at index i, or false on absence or type
// mismatch.
func (a *Array) GetBool(i int) bool { return a.Get(i).Bool() }

// GetObject returns the object at index i, or nil on absence or type
// mismatch.
func (a *Array) GetObject(i int) *Object { return a.Get(i).Object() }

// GetArray returns the array at index i, or nil on absence or type
// mismatch.
func (a *Array) GetArray(i int) *Array { return a.Get(i).Array() }

// grow ensures backing capacity for at least n elements, doubling the
// current capacity with a floor of startingCapacity.
func (a *Array) grow(n int) {
	if cap(a.values) >= n {
		return
	}
	newCap := 2 * cap(a.values)
	if newCap < startingCapacity {
		newCap = startingCapacity
	}
	if newCap < n {
		newCap = n
	}
	values := make([]*Value, len(a.values), newCap)
	copy(values, a.values)
	a.values = values
}

// trim shrinks backing capacity to the exact element count.
func (a *Array) trim() {
	if a == nil || cap(a.values) == len(a.values) {
		return
	}
	values := make([]*Value, len(a.values))
	copy(values, a.values)
	a.values = values
}

// Append adds v at the end of the array. It rejects nil values and
// values already owned by a container.
func (a *Array) Append(v *Value) error {
	if a == nil || v == nil {
		return ErrNilValue
	}
	if v.parent != nil {
		return ErrValueAttached
	}
	a.grow(len(a.values) + 1)
	v.parent = a.wrap
	a.values = append(a.values, v)
	return nil
}

// AppendString appends a string element, rejecting invalid UTF-8.
func (a *Array) AppendString(s string) error {
	v, err := String(s)
	if err != nil {
		return err
	}
	return a.Append(v)
}

// AppendNumber appends a number element, rejecting NaN and infinities.
func (a *Array) AppendNumber(n float64) error {
	v, err := Number(n)
	if err != nil {
		return err
	}
	return a.Append(v)
}

// AppendBool appends a boolean element.
func (a *Array) AppendBool(b bool) error {
	return a.Append(Bool(b))
}

// AppendNull appends a null element.
func (a *Array) AppendNull() error {
	return a.Append(Null())
}

// ReplaceAt drops the element at index i and stores v in its place.
// It fails with ErrArrayIndex when i is out of range and rejects nil or
// already-attached values.
func (a *Array) ReplaceAt(i int, v *Value) error {
	if a == nil || v == nil {
		return ErrNilValue
	}
	if v.parent != nil {
		return ErrValueAttached
	}
	if i < 0 || i >= len(a.values) {
		return ErrArrayIndex
	}
	a.values[i].parent = nil
	v.parent = a.wrap
	a.values[i] = v
	return nil
}

// ReplaceStringAt replaces the element at index i with a string,
// rejecting invalid UTF-8.
func (a *Array) ReplaceStringAt(i int, s string) error {
	v, err := String(s)
	if err != nil {
		return err
	}
	return a.ReplaceAt(i, v)
}

// ReplaceNumberAt replaces the element at index i with a number,
// rejecting NaN and infinities.
func (a *Array) ReplaceNumberAt(i int, n float64) error {
	v, err := Number(n)
	if err != nil {
		return err
	}
	return a.ReplaceAt(i, v)
}

// ReplaceBoolAt replaces the element at index i with a boolean.
func (a *Array) ReplaceBoolAt(i int, b bool) error {
	return a.ReplaceAt(i, Bool(b))
}

// ReplaceNullAt replaces the element at index i with a null.
func (a *Array) ReplaceNullAt(i int) error {
	return a.ReplaceAt(i, Null())
}

// RemoveAt drops the element at index i, shifting all subsequent
// elements down by one. O(n), order preserving.
func (a *Array) RemoveAt(i int) error {
	if a == nil {
		return ErrNilValue
	}
	if i < 0 || i >= len(a.values) {
		return ErrArrayIndex
	}
	a.values[i].parent = nil
	copy(a.values[i:], a.values[i+1:])
	last := len(a.values) - 1
	a.values[last] = nil
	a.values = a.values[:last]
	return nil
}

// Clear drops all elements. Capacity is retained.
func (a *Array) Clear() error {
	if a == nil {
		return ErrNilValue
	}
	for i := range a.values {
		a.values[i].parent = nil
		a.values[i] = nil
	}
	a.values = a.values[:0]
	return nil
}
