package format

import (
	"fmt"
)

// EnemyEntry is the decoded content of an enemy part entry.
type EnemyEntry struct {
	Name          string
	ModelName     string
	ThinkParamID  int32
	NPCParamID    int32
	EventEntityID int32
	TalkID        int32
	CharaInitID   int32
	Position      [3]float32
	Rotation      [3]float32
}

// DecodeEnemy decodes an enemy part entry. Text offsets must point past the
// fixed block and inside the entry.
func DecodeEnemy(b []byte) (EnemyEntry, error) {
	if len(b) < EnemyFixedSize {
		return EnemyEntry{}, fmt.Errorf("enemy: %w (have %d, need %d)", ErrTruncated, len(b), EnemyFixedSize)
	}
	pt, err := PartTypeOf(b)
	if err != nil {
		return EnemyEntry{}, fmt.Errorf("enemy: %w", err)
	}
	if pt != PartTypeEnemy {
		return EnemyEntry{}, fmt.Errorf("enemy: part type %s: %w", pt, ErrSignatureMismatch)
	}

	name, err := decodeEntryText(b, EnemyNameOffset)
	if err != nil {
		return EnemyEntry{}, fmt.Errorf("enemy name: %w", err)
	}
	model, err := decodeEntryText(b, EnemyModelNameOffset)
	if err != nil {
		return EnemyEntry{}, fmt.Errorf("enemy model name: %w", err)
	}

	return EnemyEntry{
		Name:          name,
		ModelName:     model,
		ThinkParamID:  ReadI32(b, EnemyThinkParamIDOffset),
		NPCParamID:    ReadI32(b, EnemyNPCParamIDOffset),
		EventEntityID: ReadI32(b, EnemyEventEntityIDOffset),
		TalkID:        ReadI32(b, EnemyTalkIDOffset),
		CharaInitID:   ReadI32(b, EnemyCharaInitIDOffset),
		Position:      ReadVector3(b, EnemyPositionOffset),
		Rotation:      ReadVector3(b, EnemyRotationOffset),
	}, nil
}

func decodeEntryText(b []byte, field int) (string, error) {
	off := ReadI64(b, field)
	if off < EnemyFixedSize || off >= int64(len(b)) {
		return "", fmt.Errorf("offset 0x%x outside entry of %d bytes: %w", off, len(b), ErrLayout)
	}
	s, _, err := DecodeText(b, int(off))
	return s, err
}

// EncodeEnemy lays out e in canonical form: name directly after the fixed
// block, model name after it, zero padding to 8 bytes.
func EncodeEnemy(e EnemyEntry) ([]byte, error) {
	name, err := EncodeText(e.Name)
	if err != nil {
		return nil, fmt.Errorf("enemy name: %w", err)
	}
	model, err := EncodeText(e.ModelName)
	if err != nil {
		return nil, fmt.Errorf("enemy model name: %w", err)
	}

	nameOff := EnemyStringsOffset
	modelOff := nameOff + len(name)
	b := make([]byte, Align8(modelOff+len(model)))

	PutI64(b, EnemyNameOffset, int64(nameOff))
	PutI64(b, EnemyModelNameOffset, int64(modelOff))
	PutU32(b, EnemyPartTypeOffset, uint32(PartTypeEnemy))
	PutI32(b, EnemyThinkParamIDOffset, e.ThinkParamID)
	PutI32(b, EnemyNPCParamIDOffset, e.NPCParamID)
	PutI32(b, EnemyEventEntityIDOffset, e.EventEntityID)
	PutI32(b, EnemyTalkIDOffset, e.TalkID)
	PutI32(b, EnemyCharaInitIDOffset, e.CharaInitID)
	PutVector3(b, EnemyPositionOffset, e.Position)
	PutVector3(b, EnemyRotationOffset, e.Rotation)
	copy(b[nameOff:], name)
	copy(b[modelOff:], model)
	return b, nil
}
