package document

import "encoding/json"

// Kind identifies which JSON value a [Value] holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a single node of a JSON document.
//
// Only the field that matches Kind is meaningful: Bool for KindBool, Number
// for KindNumber, Str for KindString, Items for KindArray and Members for
// KindObject. KindNull uses none of them.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  json.Number
	Str     string
	Items   []*Value
	Members []Member
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

func NewNull() *Value                 { return &Value{Kind: KindNull} }
func NewBool(b bool) *Value           { return &Value{Kind: KindBool, Bool: b} }
func NewNumber(lit string) *Value     { return &Value{Kind: KindNumber, Number: json.Number(lit)} }
func NewString(s string) *Value       { return &Value{Kind: KindString, Str: s} }
func NewArray(items ...*Value) *Value { return &Value{Kind: KindArray, Items: items} }

// NewObject builds an object from members in the given order.
// Later members replace earlier ones with the same key.
func NewObject(members ...Member) *Value {
	v := &Value{Kind: KindObject}
	for _, m := range members {
		v.Set(m.Key, m.Value)
	}
	return v
}

// Get returns the value stored under key. It reports false when v is not an
// object or has no such member.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != KindObject {
		return nil, false
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Set replaces the value stored under key, or appends a new member when the
// key is absent. Set is a no-op on non-object values.
func (v *Value) Set(key string, val *Value) {
	if v == nil || v.Kind != KindObject {
		return
	}
	for i := range v.Members {
		if v.Members[i].Key == key {
			v.Members[i].Value = val
			return
		}
	}
	v.Members = append(v.Members, Member{Key: key, Value: val})
}

// Equal reports whether v and o hold the same JSON value. Object members are
// compared in order and numbers by their literal text.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindNumber:
		return v.Number == o.Number
	case KindString:
		return v.Str == o.Str
	case KindArray:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(o.Items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.Members) != len(o.Members) {
			return false
		}
		for i := range v.Members {
			if v.Members[i].Key != o.Members[i].Key || !v.Members[i].Value.Equal(o.Members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
