// Package format houses low-level decoders and encoders for msbkit map
// containers. The header and parameter section framing follow MSB3, but part
// entries use msbkit's own flat layout: the part type sits at 0x10 and enemy
// fields and names are stored inline. Real MSB3 part entries (type at 0x08,
// model as an index into MODEL_PARAM_ST, IDs in a type-data block) are not
// understood and decode as whatever type code happens to sit at 0x10.
//
// The package knows the byte layout of the container header, parameter
// sections and enemy part entries; higher-level packages assemble those
// pieces into documents.
package format

var (
	// MSBSignature is the four-byte signature at the start of every MSB file.
	MSBSignature = []byte{'M', 'S', 'B', ' '}

	// PartsParamName names the parameter section holding part entries.
	PartsParamName = "PARTS_PARAM_ST"
)

// ============================================================================
// Container header
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  -------------------------------------------
//	 0x00    4    'M' 'S' 'B' ' '
//	 0x04    4    version (1)
//	 0x08    4    header size (0x10)
//	 0x0C    1    big-endian flag (0)
//	 0x0D    1    bit big-endian flag (0)
//	 0x0E    1    unicode flag (1)
//	 0x0F    1    0xFF
const (
	HeaderSize = 0x10

	HeaderSignatureOffset = 0x00
	HeaderVersionOffset   = 0x04
	HeaderSizeOffset      = 0x08
	HeaderBigEndianOffset = 0x0C
	HeaderBitBigOffset    = 0x0D
	HeaderUnicodeOffset   = 0x0E
	HeaderPadOffset       = 0x0F

	HeaderVersion = 1
)

// ============================================================================
// Parameter sections
// ============================================================================
//
// All offsets in a section header are absolute file offsets.
//
//	0x00        i32      version
//	0x04        i32      offset count (entries + 1)
//	0x08        i64      name offset
//	0x10        i64 * n  entry offsets
//	0x10 + 8n   i64      next section offset (0 for the last section)
const (
	ParamVersionOffset     = 0x00
	ParamOffsetCountOffset = 0x04
	ParamNameOffset        = 0x08
	ParamEntriesOffset     = 0x10

	// ParamFixedSize is the header size before the offset table.
	ParamFixedSize = ParamEntriesOffset

	// OffsetFieldSize is the size of every offset in the section header.
	OffsetFieldSize = 8
)

// ParamHeaderSize returns the size of a section header with n entries.
func ParamHeaderSize(n int) int {
	return ParamFixedSize + (n+1)*OffsetFieldSize
}

// ============================================================================
// Parts
// ============================================================================

// PartType mirrors the MSB3 part type codes stored in every part entry.
type PartType uint32

const (
	PartTypeMapPiece         PartType = 0
	PartTypeObject           PartType = 1
	PartTypeEnemy            PartType = 2
	PartTypeItem             PartType = 3
	PartTypePlayer           PartType = 4
	PartTypeCollision        PartType = 5
	PartTypeNPCWander        PartType = 6
	PartTypeProtoboss        PartType = 7
	PartTypeNavmesh          PartType = 8
	PartTypeDummyObject      PartType = 9
	PartTypeDummyEnemy       PartType = 10
	PartTypeConnectCollision PartType = 11
)

const (
	// PartTypeOffset is where every part entry stores its type. MSB3 itself
	// keeps the type at 0x08.
	PartTypeOffset = 0x10

	// PartMinSize is the smallest entry that still carries a type.
	PartMinSize = PartTypeOffset + 4
)

// ============================================================================
// Enemy part entry
// ============================================================================
//
// Offsets are relative to the start of the entry.
//
//	0x00  i64    name offset
//	0x08  i64    model name offset
//	0x10  u32    part type (2)
//	0x14  i32    ThinkParamID
//	0x18  i32    NPCParamID
//	0x1C  i32    EventEntityID
//	0x20  i32    TalkID
//	0x24  i32    CharaInitID
//	0x28  f32*3  Position
//	0x34  f32*3  Rotation
//	0x40  ...    UTF-16LE name and model name, NUL-terminated, zero padded to 8
const (
	EnemyNameOffset          = 0x00
	EnemyModelNameOffset     = 0x08
	EnemyPartTypeOffset      = PartTypeOffset
	EnemyThinkParamIDOffset  = 0x14
	EnemyNPCParamIDOffset    = 0x18
	EnemyEventEntityIDOffset = 0x1C
	EnemyTalkIDOffset        = 0x20
	EnemyCharaInitIDOffset   = 0x24
	EnemyPositionOffset      = 0x28
	EnemyRotationOffset      = 0x34
	EnemyStringsOffset       = 0x40

	// EnemyFixedSize is the size of the fixed-layout portion of an enemy entry.
	EnemyFixedSize = EnemyStringsOffset

	// Vector3Size is three packed float32 values.
	Vector3Size = 12
)

// ============================================================================
// Limits
// ============================================================================
const (
	// MaxParams bounds the number of sections followed in one file.
	MaxParams = 64

	// MaxEntries bounds the number of entries in one section.
	MaxEntries = 0xFFFF

	// MaxTextUnits bounds a text field, in UTF-16 code units without the terminator.
	MaxTextUnits = 1024

	// EntryAlignment is the alignment used when laying out a new entry.
	EntryAlignment = 8
)
