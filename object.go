package jdom

// Object is the container behind a JSON object value: an ordered mapping
// from unique string keys to owned child values. Insertion order is the
// iteration and serialization order. Removal swaps the last member into
// the removed slot, so removal does not preserve member order; that
// asymmetry with Array.RemoveAt is a documented contract, not a bug.
type Object struct {
	wrap   *Value
	keys   []string
	values []*Value
}

// Value returns the value wrapping this object.
func (o *Object) Value() *Value {
	if o == nil {
		return nil
	}
	return o.wrap
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Cap returns the current backing capacity.
func (o *Object) Cap() int {
	if o == nil {
		return 0
	}
	return cap(o.values)
}

// KeyAt returns the key of the member at index i, or "" when out of
// range. The index is stable only until the next mutation.
func (o *Object) KeyAt(i int) string {
	if o == nil || i < 0 || i >= len(o.keys) {
		return ""
	}
	return o.keys[i]
}

// GetAt returns the value of the member at index i, or nil when out of
// range.
func (o *Object) GetAt(i int) *Value {
	if o == nil || i < 0 || i >= len(o.values) {
		return nil
	}
	return o.values[i]
}

// Get returns the value stored under key, or nil if the key is absent.
// Lookup is a linear scan with exact byte comparison, no case folding.
func (o *Object) Get(key string) *Value {
	if o == nil {
		return nil
	}
	for i, k := range o.keys {
		if len(k) == len(key) && k == key {
			return o.values[i]
		}
	}
	return nil
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	return o.Get(key) != nil
}

// GetString returns the string stored under key, or "" on absence or
// type mismatch.
func (o *Object) GetString(key string) string { return o.Get(key).String() }

// GetNumber returns the number stored under key, or 0 on absence or
// type mismatch.
func (o *Object) GetNumber(key string) float64 { return o.Get(key).Number() }

// GetBool returns the boolean stored under key, or false on absence or
// type mismatch.
func (o *Object) GetBool(key string) bool { return o.Get(key).Bool() }

// GetObject returns the object stored under key, or nil on absence or
// type mismatch.
func (o *Object) GetObject(key string) *Object { return o.Get(key).Object() }

// GetArray returns the array stored under key, or nil on absence or
// type mismatch.
func (o *Object) GetArray(key string) *Array { return o.Get(key).Array() }

// grow ensures backing capacity for at least n members, doubling the
// current capacity with a floor of startingCapacity.
func (o *Object) grow(n int) {
	if cap(o.values) >= n {
		return
	}
	newCap := 2 * cap(o.values)
	if newCap < startingCapacity {
		newCap = startingCapacity
	}
	if newCap < n {
		newCap = n
	}
	keys := make([]string, len(o.keys), newCap)
	values := make([]*Value, len(o.values), newCap)
	copy(keys, o.keys)
	copy(values, o.values)
	o.keys = keys
	o.values = values
}

// trim shrinks backing capacity to the exact member count. The parser
// calls it once a container is complete.
func (o *Object) trim() {
	if o == nil || cap(o.values) == len(o.values) {
		return
	}
	keys := make([]string, len(o.keys))
	values := make([]*Value, len(o.values))
	copy(keys, o.keys)
	copy(values, o.values)
	o.keys = keys
	o.values = values
}

// Add appends a new member. It fails with ErrDuplicateKey if the key is
// already present, ErrNilValue if v is nil, and ErrValueAttached if v is
// already owned by a container.
func (o *Object) Add(key string, v *Value) error {
	if o == nil || v == nil {
		return ErrNilValue
	}
	if v.parent != nil {
		return ErrValueAttached
	}
	if o.Has(key) {
		return ErrDuplicateKey
	}
	o.grow(len(o.values) + 1)
	v.parent = o.wrap
	o.keys = append(o.keys, key)
	o.values = append(o.values, v)
	return nil
}

// Set stores v under key, replacing (and dropping) any existing member
// in place. It rejects nil and already-attached values.
func (o *Object) Set(key string, v *Value) error {
	if o == nil || v == nil {
		return ErrNilValue
	}
	if v.parent != nil {
		return ErrValueAttached
	}
	for i, k := range o.keys {
		if k == key {
			o.values[i].parent = nil
			v.parent = o.wrap
			o.values[i] = v
			return nil
		}
	}
	return o.Add(key, v)
}

// SetString stores a string member, rejecting invalid UTF-8.
func (o *Object) SetString(key, s string) error {
	v, err := String(s)
	if err != nil {
		return err
	}
	return o.Set(key, v)
}

// SetNumber stores a number member, rejecting NaN and infinities.
func (o *Object) SetNumber(key string, n float64) error {
	v, err := Number(n)
	if err != nil {
		return err
	}
	return o.Set(key, v)
}

// SetBool stores a boolean member.
func (o *Object) SetBool(key string, b bool) error {
	return o.Set(key, Bool(b))
}

// SetNull stores a null member.
func (o *Object) SetNull(key string) error {
	return o.Set(key, Null())
}

// Remove drops the member stored under key. The last member is swapped
// into the freed slot, so this is O(1) and does not preserve member
// order. It fails with ErrPathNotFound if the key is absent.
func (o *Object) Remove(key string) error {
	if o == nil {
		return ErrNilValue
	}
	for i, k := range o.keys {
		if k == key {
			o.values[i].parent = nil
			last := len(o.keys) - 1
			o.keys[i] = o.keys[last]
			o.values[i] = o.values[last]
			o.keys = o.keys[:last]
			o.values[last] = nil
			o.values = o.values[:last]
			return nil
		}
	}
	return ErrPathNotFound
}

// Clear drops all members. Capacity is retained.
func (o *Object) Clear() error {
	if o == nil {
		return ErrNilValue
	}
	for i := range o.values {
		o.values[i].parent = nil
		o.values[i] = nil
	}
	o.keys = o.keys[:0]
	o.values = o.values[:0]
	return nil
}

// DotGet resolves a dotted path like "a.b.c" through nested objects and
// returns the addressed value, or nil if any segment is missing or a
// non-terminal segment is not an object. Keys containing '.' cannot be
// addressed through dotted paths.
func (o *Object) DotGet(path string) *Value {
	if o == nil {
		return nil
	}
	head, rest, hasDot := splitPath(path)
	if !hasDot {
		return o.Get(path)
	}
	return o.GetObject(head).DotGet(rest)
}

// DotHas reports whether a dotted path resolves to a value.
func (o *Object) DotHas(path string) bool {
	return o.DotGet(path) != nil
}

// DotGetString returns the string at a dotted path, or "" as sentinel.
func (o *Object) DotGetString(path string) string { return o.DotGet(path).String() }

// DotGetNumber returns the number at a dotted path, or 0 as sentinel.
func (o *Object) DotGetNumber(path string) float64 { return o.DotGet(path).Number() }

// DotGetBool returns the boolean at a dotted path, or false as sentinel.
func (o *Object) DotGetBool(path string) bool { return o.DotGet(path).Bool() }

// DotGetObject returns the object at a dotted path, or nil as sentinel.
func (o *Object) DotGetObject(path string) *Object { return o.DotGet(path).Object() }

// DotGetArray returns the array at a dotted path, or nil as sentinel.
func (o *Object) DotGetArray(path string) *Array { return o.DotGet(path).Array() }

// DotSet stores v at a dotted path, creating intermediate objects as
// needed. An existing non-terminal member that is not an object fails the
// whole operation with ErrTypeMismatch; on any failure nothing is
// attached and the tree is unchanged.
func (o *Object) DotSet(path string, v *Value) error {
	if o == nil || v == nil {
		return ErrNilValue
	}
	head, rest, hasDot := splitPath(path)
	if !hasDot {
		return o.Set(path, v)
	}
	if existing := o.Get(head); existing != nil {
		if existing.typ != TypeObject {
			return ErrTypeMismatch
		}
		return existing.obj.DotSet(rest, v)
	}
	bridge := NewObject()
	if err := bridge.obj.DotSet(rest, v); err != nil {
		return err
	}
	if err := o.Add(head, bridge); err != nil {
		// Detach v so the caller's value is reusable after the failure.
		v.parent = nil
		return err
	}
	return nil
}

// DotSetString stores a string at a dotted path.
func (o *Object) DotSetString(path, s string) error {
	v, err := String(s)
	if err != nil {
		return err
	}
	return o.DotSet(path, v)
}

// DotSetNumber stores a number at a dotted path.
func (o *Object) DotSetNumber(path string, n float64) error {
	v, err := Number(n)
	if err != nil {
		return err
	}
	return o.DotSet(path, v)
}

// DotSetBool stores a boolean at a dotted path.
func (o *Object) DotSetBool(path string, b bool) error {
	return o.DotSet(path, Bool(b))
}

// DotSetNull stores a null at a dotted path.
func (o *Object) DotSetNull(path string) error {
	return o.DotSet(path, Null())
}

// DotRemove drops the member addressed by a dotted path. It fails with
// ErrPathNotFound if the path does not resolve and ErrTypeMismatch if a
// non-terminal segment names a non-object.
func (o *Object) DotRemove(path string) error {
	if o == nil {
		return ErrNilValue
	}
	head, rest, hasDot := splitPath(path)
	if !hasDot {
		return o.Remove(path)
	}
	next := o.Get(head)
	if next == nil {
		return ErrPathNotFound
	}
	if next.typ != TypeObject {
		return ErrTypeMismatch
	}
	return next.obj.DotRemove(rest)
}
