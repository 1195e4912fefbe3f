package debugui

import (
	"reflect"
	"strings"
	"sync"
	"time"
)

var durationType = reflect.TypeFor[time.Duration]()

// FieldInfo describes one exported field the struct editor can show.
type FieldInfo struct {
	Name string
	// Label is the yaml key when the field has one, else Name.
	Label      string
	Type       reflect.Type
	Index      int
	IsPointer  bool
	IsStruct   bool
	IsDuration bool
}

// ReflectionCache memoizes the editable fields of struct types.
type ReflectionCache struct {
	fields sync.Map // reflect.Type -> []FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{}
}

// GetFields returns the exported fields of t, or nil when t is not a struct.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	if cached, ok := rc.fields.Load(t); ok {
		return cached.([]FieldInfo)
	}
	cached, _ := rc.fields.LoadOrStore(t, inspectFields(t))
	return cached.([]FieldInfo)
}

func inspectFields(t reflect.Type) []FieldInfo {
	if t.Kind() != reflect.Struct {
		return nil
	}

	var fields []FieldInfo
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		ft := f.Type
		ptr := ft.Kind() == reflect.Pointer
		if ptr {
			ft = ft.Elem()
		}
		fields = append(fields, FieldInfo{
			Name:       f.Name,
			Label:      yamlLabel(f),
			Type:       ft,
			Index:      i,
			IsPointer:  ptr,
			IsStruct:   ft.Kind() == reflect.Struct,
			IsDuration: ft == durationType,
		})
	}
	return fields
}

func yamlLabel(f reflect.StructField) string {
	if tag, _, _ := strings.Cut(f.Tag.Get("yaml"), ","); tag != "" && tag != "-" {
		return tag
	}
	return f.Name
}

var globalReflectionCache = NewReflectionCache()
