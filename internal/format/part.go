package format

import (
	"fmt"

	"github.com/joshuapare/msbkit/internal/buf"
)

// PartTypeOf returns the part type stored in a part entry.
func PartTypeOf(entry []byte) (PartType, error) {
	if len(entry) < PartMinSize {
		return 0, fmt.Errorf("part: %w (have %d, need %d)", ErrTruncated, len(entry), PartMinSize)
	}
	return PartType(buf.U32LE(entry[PartTypeOffset:])), nil
}

func (t PartType) String() string {
	switch t {
	case PartTypeMapPiece:
		return "MapPiece"
	case PartTypeObject:
		return "Object"
	case PartTypeEnemy:
		return "Enemy"
	case PartTypeItem:
		return "Item"
	case PartTypePlayer:
		return "Player"
	case PartTypeCollision:
		return "Collision"
	case PartTypeNPCWander:
		return "NPCWander"
	case PartTypeProtoboss:
		return "Protoboss"
	case PartTypeNavmesh:
		return "Navmesh"
	case PartTypeDummyObject:
		return "DummyObject"
	case PartTypeDummyEnemy:
		return "DummyEnemy"
	case PartTypeConnectCollision:
		return "ConnectCollision"
	default:
		return fmt.Sprintf("PartType(%d)", uint32(t))
	}
}
