// Package export writes enemy records to formats other tools can read.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joshuapare/msbkit/msb"
)

// Row is one enemy flattened for export. Row numbers start at 1.
type Row struct {
	Row           int     `json:"row" gorm:"column:row_num;primaryKey;autoIncrement:false"`
	Name          string  `json:"name" gorm:"column:name"`
	ModelName     string  `json:"modelName" gorm:"column:model_name;index"`
	ThinkParamID  int32   `json:"thinkParamId" gorm:"column:think_param_id"`
	NPCParamID    int32   `json:"npcParamId" gorm:"column:npc_param_id;index"`
	EventEntityID int32   `json:"eventEntityId" gorm:"column:event_entity_id"`
	TalkID        int32   `json:"talkId" gorm:"column:talk_id"`
	CharaInitID   int32   `json:"charaInitId" gorm:"column:chara_init_id"`
	PosX          float32 `json:"posX" gorm:"column:pos_x"`
	PosY          float32 `json:"posY" gorm:"column:pos_y"`
	PosZ          float32 `json:"posZ" gorm:"column:pos_z"`
	RotX          float32 `json:"rotX" gorm:"column:rot_x"`
	RotY          float32 `json:"rotY" gorm:"column:rot_y"`
	RotZ          float32 `json:"rotZ" gorm:"column:rot_z"`
}

// TableName sets the SQLite table name.
func (Row) TableName() string { return "enemies" }

// Rows flattens records in order.
func Rows(records []msb.EnemyRecord) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{
			Row:           i + 1,
			Name:          r.Name,
			ModelName:     r.ModelName,
			ThinkParamID:  r.ThinkParamID,
			NPCParamID:    r.NPCParamID,
			EventEntityID: r.EventEntityID,
			TalkID:        r.TalkID,
			CharaInitID:   r.CharaInitID,
			PosX:          r.Position.X,
			PosY:          r.Position.Y,
			PosZ:          r.Position.Z,
			RotX:          r.Rotation.X,
			RotY:          r.Rotation.Y,
			RotZ:          r.Rotation.Z,
		}
	}
	return rows
}

// JSON writes records as an indented JSON array.
func JSON(w io.Writer, records []msb.EnemyRecord) error {
	rows := Rows(records)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
