package jdom

// Validate reports whether value conforms to schema, a JSON tree whose
// shape constrains the tested tree:
//
//   - a null schema matches any value;
//   - otherwise the types must match;
//   - an empty schema array or object matches any array or object;
//   - a non-empty schema array validates every element of the value
//     against its first element only;
//   - a schema object requires the value object to carry at least the
//     same keys, each validated recursively;
//   - scalars validate by type alone.
func Validate(schema, value *Value) bool {
	if schema == nil || value == nil {
		return false
	}
	if schema.typ == TypeNull {
		return true
	}
	if schema.typ != value.typ {
		return false
	}
	switch schema.typ {
	case TypeArray:
		if schema.arr.Len() == 0 {
			return true
		}
		template := schema.arr.values[0]
		for _, item := range value.arr.values {
			if !Validate(template, item) {
				return false
			}
		}
		return true
	case TypeObject:
		count := schema.obj.Len()
		if count == 0 {
			return true
		}
		if value.obj.Len() < count {
			return false
		}
		for i, key := range schema.obj.keys {
			member := value.obj.Get(key)
			if member == nil {
				return false
			}
			if !Validate(schema.obj.values[i], member) {
				return false
			}
		}
		return true
	case TypeBool, TypeNumber, TypeString:
		return true
	}
	return false
}
