package debugui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// EditStruct draws an input for every exported field of the struct ptr
// points to and writes edits back through the pointer. Durations are edited
// in milliseconds and floats, the heuristic weights, are kept non-negative.
// It reports whether any field changed this frame.
func EditStruct(id string, ptr any) bool {
	val := reflect.ValueOf(ptr)
	if val.Kind() != reflect.Ptr || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("%s: not a struct pointer", id))
		return false
	}
	return editFields(id, val.Elem())
}

func editFields(id string, val reflect.Value) bool {
	changed := false
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Label))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		if editField(id+"."+field.Name, fieldVal, field) {
			changed = true
		}
	}
	return changed
}

func editField(id string, val reflect.Value, field FieldInfo) bool {
	if !val.CanSet() {
		imgui.Text(fmt.Sprintf("%s: %v", field.Label, val.Interface()))
		return false
	}

	label := fmt.Sprintf("##%s", id)

	switch {
	case field.IsDuration:
		ms := int32(time.Duration(val.Int()) / time.Millisecond)
		imgui.Text(fmt.Sprintf("%s (ms):", field.Label))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &ms) && ms > 0 {
			val.SetInt(int64(time.Duration(ms) * time.Millisecond))
			return true
		}
		return false

	case field.IsStruct:
		changed := false
		if imgui.TreeNodeStr(field.Label) {
			changed = editFields(id, val)
			imgui.TreePop()
		}
		return changed
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", field.Label))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			val.SetInt(int64(v))
			return true
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", field.Label))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) && v >= 0 {
			val.SetUint(uint64(v))
			return true
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", field.Label))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) {
			setFloat(val, v)
			return true
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(field.Label, &v) {
			val.SetBool(v)
			return true
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", field.Label, val.Interface()))
	}
	return false
}

// setFloat stores v clamped at zero. Negative weights would break the
// ordering of Board.Grade.
func setFloat(val reflect.Value, v float32) {
	val.SetFloat(float64(max(v, 0)))
}
