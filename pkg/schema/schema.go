// Package schema computes and caches per-type binding metadata.
//
// A Schema lists the bindable members of a struct type together with the
// hints declared in `inspect` struct tags:
//
//	type Ship struct {
//	    Name     string
//	    Speed    float64 `inspect:"range=0:MaxSpeed"`
//	    MaxSpeed float64 `inspect:"label=Top Speed"`
//	    Notes    string  `inspect:"multiline"`
//	    Crew     []Crew  `inspect:"reorderable"`
//	    cache    []byte  // unexported, never bound
//	    Secret   string  `inspect:"-"`
//	}
//
// Schemas are computed once per type and reused across build passes.
package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-drift/inspector/pkg/errors"
)

// TagName is the struct tag key read by For.
const TagName = "inspect"

// Schema describes the bindable members of a type.
type Schema struct {
	// Type is the described type with pointers removed.
	Type reflect.Type
	// Members lists bindable members in declaration order.
	Members []Member
	// SingleLine reports whether members fit on one row.
	SingleLine bool

	byName map[string]int
}

// Member is one bindable field.
type Member struct {
	// Name is the Go field name.
	Name string
	// Label is the display label.
	Label string
	// Index is the field index sequence for reflect.Value.FieldByIndex.
	Index []int
	// Type is the declared field type.
	Type reflect.Type
	// Range bounds numeric members, or nil.
	Range *Range
	// Multiline renders string members as multi-line text.
	Multiline bool
	// Reorderable enables reordering affordances for sequence members.
	Reorderable bool
	// ReadOnly forbids writes through the member.
	ReadOnly bool
}

// Range holds the bounds declared with `range=min:max`.
type Range struct {
	Min, Max Bound
}

// Bound is either a constant or the name of a sibling member whose value
// is read at each tick.
type Bound struct {
	Value  float64
	Member string
}

// IsComputed reports whether the bound reads a sibling member.
func (b Bound) IsComputed() bool { return b.Member != "" }

// SingleLiner lets a type choose its grouping explicitly.
type SingleLiner interface {
	SingleLine() bool
}

// Defaulter is implemented by pointer types that initialise freshly
// allocated values, e.g. when a null guard instantiates a default.
type Defaulter interface {
	SetDefaults()
}

var (
	cache           sync.Map // reflect.Type -> *Schema
	singleLinerType = reflect.TypeFor[SingleLiner]()
	maxSingleLine   = 4
)

// For returns the cached schema for t. Pointer types are dereferenced;
// non-struct types yield an empty schema.
func For(t reflect.Type) *Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if s, ok := cache.Load(t); ok {
		return s.(*Schema)
	}
	s, _ := cache.LoadOrStore(t, compute(t))
	return s.(*Schema)
}

// Member returns the member with the given Go field name.
func (s *Schema) Member(name string) (*Member, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return &s.Members[i], true
}

// Lookup returns metadata for a member of owner, or nil.
func Lookup(owner reflect.Type, name string) *Member {
	m, _ := For(owner).Member(name)
	return m
}

func compute(t reflect.Type) *Schema {
	s := &Schema{Type: t, byName: map[string]int{}}
	if t.Kind() != reflect.Struct {
		return s
	}

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && indirect(f.Type).Kind() == reflect.Struct {
			// promoted fields are listed individually
			continue
		}
		tag, hasTag := f.Tag.Lookup(TagName)
		if hasTag && strings.TrimSpace(tag) == "-" {
			continue
		}
		m := Member{
			Name:  f.Name,
			Label: Nicify(f.Name),
			Index: f.Index,
			Type:  f.Type,
		}
		if hasTag {
			parseTag(t, &m, tag)
		}
		s.byName[m.Name] = len(s.Members)
		s.Members = append(s.Members, m)
	}

	s.SingleLine = singleLine(t, s.Members)
	return s
}

func parseTag(owner reflect.Type, m *Member, tag string) {
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		key, value, _ := strings.Cut(part, "=")
		switch key {
		case "":
		case "label":
			m.Label = strings.TrimSpace(value)
		case "multiline":
			m.Multiline = true
		case "reorderable":
			m.Reorderable = true
		case "readonly":
			m.ReadOnly = true
		case "range":
			r, ok := parseRange(value)
			if !ok {
				errors.Report(&errors.BindError{
					Op:   "schema.For",
					Kind: errors.KindConfig,
					Type: owner.String(),
					Err:  fmt.Errorf("field %s: invalid range %q", m.Name, value),
				})
				continue
			}
			m.Range = r
		default:
			errors.Report(&errors.BindError{
				Op:   "schema.For",
				Kind: errors.KindConfig,
				Type: owner.String(),
				Err:  fmt.Errorf("field %s: unknown %s tag option %q", m.Name, TagName, key),
			})
		}
	}
}

func parseRange(s string) (*Range, bool) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, false
	}
	minB, ok1 := parseBound(lo)
	maxB, ok2 := parseBound(hi)
	if !ok1 || !ok2 {
		return nil, false
	}
	return &Range{Min: minB, Max: maxB}, true
}

func parseBound(s string) (Bound, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Bound{}, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Bound{Value: v}, true
	}
	if !isIdent(s) {
		return Bound{}, false
	}
	return Bound{Member: s}, true
}

func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return s != ""
}

func singleLine(t reflect.Type, members []Member) bool {
	if t.Implements(singleLinerType) {
		return reflect.Zero(t).Interface().(SingleLiner).SingleLine()
	}
	if len(members) == 0 || len(members) > maxSingleLine {
		return false
	}
	for _, m := range members {
		if m.Range != nil || IsEnum(m.Type) {
			return false
		}
		switch m.Type.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64, reflect.Bool:
		default:
			return false
		}
	}
	return true
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
