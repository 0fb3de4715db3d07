package msb

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/joshuapare/msbkit/internal/format"
	"github.com/joshuapare/msbkit/pkg/types"
)

// Field identifies one column of an enemy record.
type Field int

const (
	FieldName Field = iota
	FieldModelName
	FieldThinkParamID
	FieldNPCParamID
	FieldEventEntityID
	FieldTalkID
	FieldCharaInitID
	FieldPosition
	FieldRotation

	fieldCount
)

// Kind is the value type of a field.
type Kind int

const (
	KindText Kind = iota
	KindInt32
	KindVector3
)

var fieldInfo = [fieldCount]struct {
	name string
	kind Kind
	desc string
}{
	FieldName:          {"Name", KindText, "Part name"},
	FieldModelName:     {"ModelName", KindText, "Model asset the part is drawn with"},
	FieldThinkParamID:  {"ThinkParamID", KindInt32, "Controls enemy AI"},
	FieldNPCParamID:    {"NPCParamID", KindInt32, "Controls enemy stats"},
	FieldEventEntityID: {"EventEntityID", KindInt32, "Used to identify the part in event scripts"},
	FieldTalkID:        {"TalkID", KindInt32, "Controls enemy speech"},
	FieldCharaInitID:   {"CharaInitID", KindInt32, "Controls enemy equipment"},
	FieldPosition:      {"Position", KindVector3, "World position <x, y, z>"},
	FieldRotation:      {"Rotation", KindVector3, "Euler rotation in degrees <x, y, z>"},
}

// Fields returns every field in column order.
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// Valid reports whether f is a known field.
func (f Field) Valid() bool { return f >= 0 && f < fieldCount }

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldInfo[f].name
}

// Kind returns the value type of f.
func (f Field) Kind() Kind {
	if !f.Valid() {
		return -1
	}
	return fieldInfo[f].kind
}

// Description returns a short explanation of what f controls.
func (f Field) Description() string {
	if !f.Valid() {
		return ""
	}
	return fieldInfo[f].desc
}

// ParseField resolves a column name case-insensitively, so both
// "ThinkParamID" and "thinkParamId" name FieldThinkParamID.
func ParseField(name string) (Field, error) {
	name = strings.TrimSpace(name)
	for i := range fieldInfo {
		if strings.EqualFold(fieldInfo[i].name, name) {
			return Field(i), nil
		}
	}
	return -1, types.FormatError(fmt.Sprintf("unknown field %q", name), nil)
}

// ValidationError reports a raw value rejected for a field. It matches
// types.ErrFormat under errors.Is.
type ValidationError struct {
	Field Field
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{types.ErrFormat, e.Err}
}

// ParseInt32 parses a base-10 signed 32-bit integer. Surrounding whitespace
// is ignored.
func ParseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, types.FormatError("invalid integer", err)
	}
	return int32(v), nil
}

// ParseVector3 parses exactly three comma-separated numbers. Each component
// may be wrapped in whitespace and '<' / '>', so "<1, 2, 3>" and "1,2,3"
// give the same value.
func ParseVector3(s string) (Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vector3{}, types.FormatError(
			fmt.Sprintf("vector needs 3 components, got %d", len(parts)), nil)
	}
	var v [3]float32
	for i, p := range parts {
		tok := strings.TrimFunc(p, isVectorTrim)
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return Vector3{}, types.FormatError(fmt.Sprintf("vector component %d", i), err)
		}
		v[i] = float32(f)
	}
	return vectorOf(v), nil
}

func isVectorTrim(r rune) bool {
	return r == '<' || r == '>' || unicode.IsSpace(r)
}

// CheckText reports whether s can be stored in a text field.
func CheckText(s string) error {
	if err := format.CheckText(s); err != nil {
		return types.FormatError("invalid text", err)
	}
	return nil
}

// SetField parses raw for f and stores it. On error r is left unchanged.
func (r *EnemyRecord) SetField(f Field, raw string) error {
	if !f.Valid() {
		return &ValidationError{Field: f, Input: raw, Err: fmt.Errorf("unknown field")}
	}
	switch f.Kind() {
	case KindText:
		if err := CheckText(raw); err != nil {
			return &ValidationError{Field: f, Input: raw, Err: err}
		}
		*r.textField(f) = raw
	case KindInt32:
		v, err := ParseInt32(raw)
		if err != nil {
			return &ValidationError{Field: f, Input: raw, Err: err}
		}
		*r.intField(f) = v
	case KindVector3:
		v, err := ParseVector3(raw)
		if err != nil {
			return &ValidationError{Field: f, Input: raw, Err: err}
		}
		*r.vectorField(f) = v
	}
	return nil
}

// FieldString formats the value of f for display. The result is accepted
// by SetField for the same field.
func (r *EnemyRecord) FieldString(f Field) string {
	switch f.Kind() {
	case KindText:
		return *r.textField(f)
	case KindInt32:
		return strconv.FormatInt(int64(*r.intField(f)), 10)
	case KindVector3:
		return r.vectorField(f).String()
	default:
		return ""
	}
}

func (r *EnemyRecord) textField(f Field) *string {
	if f == FieldModelName {
		return &r.ModelName
	}
	return &r.Name
}

func (r *EnemyRecord) intField(f Field) *int32 {
	switch f {
	case FieldNPCParamID:
		return &r.NPCParamID
	case FieldEventEntityID:
		return &r.EventEntityID
	case FieldTalkID:
		return &r.TalkID
	case FieldCharaInitID:
		return &r.CharaInitID
	default:
		return &r.ThinkParamID
	}
}

func (r *EnemyRecord) vectorField(f Field) *Vector3 {
	if f == FieldRotation {
		return &r.Rotation
	}
	return &r.Position
}
