package msb

import (
	"fmt"

	"github.com/joshuapare/msbkit/internal/format"
)

// Document is the decoded container minus its enemy records. It is
// immutable: Encode never modifies it, so one Document can encode any
// number of record lists.
type Document struct {
	header   []byte
	sections []section
	parts    int // index into sections
	enemyAt  int // index into parts entries where enemies are spliced in
	enemies  int // enemy count at decode time
	enemyLen int // enemy bytes at decode time
}

type section struct {
	version int32
	name    string
	nameRaw []byte
	entries [][]byte
}

// SectionInfo summarizes one parameter section.
type SectionInfo struct {
	Name    string
	Version int32
	Entries int
	Size    int
}

// Decode parses a container and extracts its enemy records. b is copied;
// the caller may reuse it.
func Decode(b []byte) (*Document, []EnemyRecord, error) {
	data := append([]byte(nil), b...)
	hdr, err := format.ParseHeader(data)
	if err != nil {
		return nil, nil, formatError("decode", err)
	}

	doc := &Document{header: hdr.Raw, parts: -1}
	off := format.HeaderSize
	for {
		if len(doc.sections) == format.MaxParams {
			return nil, nil, formatError("decode", fmt.Errorf("more than %d sections: %w",
				format.MaxParams, format.ErrSanityLimit))
		}
		p, err := format.DecodeParam(data, off)
		if err != nil {
			return nil, nil, formatError("decode", err)
		}
		if p.Name == format.PartsParamName {
			if doc.parts >= 0 {
				return nil, nil, formatError("decode", fmt.Errorf("duplicate %s section: %w",
					format.PartsParamName, format.ErrLayout))
			}
			doc.parts = len(doc.sections)
		}
		doc.sections = append(doc.sections, section{
			version: p.Version,
			name:    p.Name,
			nameRaw: p.NameRaw,
			entries: p.Entries,
		})
		if p.Next == 0 {
			break
		}
		off = p.Next
	}
	if doc.parts < 0 {
		return nil, nil, formatError("decode", fmt.Errorf("%s section: %w",
			format.PartsParamName, format.ErrNotFound))
	}

	enemies, err := doc.splitParts()
	if err != nil {
		return nil, nil, err
	}
	return doc, enemies, nil
}

// splitParts removes the enemy block from the parts section and decodes it.
func (d *Document) splitParts() ([]EnemyRecord, error) {
	ps := &d.sections[d.parts]
	first, end := -1, -1
	insertAt := len(ps.entries)
	for i, e := range ps.entries {
		t, err := format.PartTypeOf(e)
		if err != nil {
			return nil, formatError(fmt.Sprintf("part %d", i), err)
		}
		switch {
		case t == format.PartTypeEnemy:
			if first >= 0 && end >= 0 {
				return nil, formatError("decode", fmt.Errorf("enemy part %d after block ended at %d: %w",
					i, end, format.ErrLayout))
			}
			if first < 0 {
				first = i
			}
		case first >= 0 && end < 0:
			end = i
		case first < 0 && t > format.PartTypeEnemy && insertAt == len(ps.entries):
			insertAt = i
		}
	}

	if first < 0 {
		d.enemyAt = insertAt
		return nil, nil
	}
	if end < 0 {
		end = len(ps.entries)
	}

	records := make([]EnemyRecord, 0, end-first)
	for i := first; i < end; i++ {
		e, err := format.DecodeEnemy(ps.entries[i])
		if err != nil {
			return nil, formatError(fmt.Sprintf("enemy %d", i-first), err)
		}
		records = append(records, recordOf(e, ps.entries[i]))
		d.enemyLen += len(ps.entries[i])
	}

	rest := make([][]byte, 0, len(ps.entries)-len(records))
	rest = append(rest, ps.entries[:first]...)
	rest = append(rest, ps.entries[end:]...)
	ps.entries = rest
	d.enemyAt = first
	d.enemies = len(records)
	return records, nil
}

// Encode writes the container back with enemies in place of the decoded
// enemy block. Sections and parts other than enemies are emitted verbatim;
// only their header offsets are recomputed.
func (d *Document) Encode(enemies []EnemyRecord) ([]byte, error) {
	ps := d.sections[d.parts]
	if n := len(ps.entries) + len(enemies); n > format.MaxEntries {
		return nil, formatError("encode", fmt.Errorf("%d parts exceeds limit %d: %w",
			n, format.MaxEntries, format.ErrSanityLimit))
	}

	parts := make([][]byte, 0, len(ps.entries)+len(enemies))
	parts = append(parts, ps.entries[:d.enemyAt]...)
	for i := range enemies {
		b, err := enemies[i].encode()
		if err != nil {
			return nil, formatError(fmt.Sprintf("encode enemy %d", i), err)
		}
		parts = append(parts, b)
	}
	parts = append(parts, ps.entries[d.enemyAt:]...)

	out := append([]byte(nil), d.header...)
	for i, s := range d.sections {
		entries := s.entries
		if i == d.parts {
			entries = parts
		}
		out = format.AppendParam(out, s.version, s.nameRaw, entries, i == len(d.sections)-1)
	}
	return out, nil
}

// Sections describes every section in file order. The parts section
// reports the entry count at decode time.
func (d *Document) Sections() []SectionInfo {
	out := make([]SectionInfo, len(d.sections))
	for i, s := range d.sections {
		n := len(s.entries)
		size := format.ParamHeaderSize(n) + len(s.nameRaw)
		for _, e := range s.entries {
			size += len(e)
		}
		if i == d.parts {
			n += d.enemies
			size += d.enemies*format.OffsetFieldSize + d.enemyLen
		}
		out[i] = SectionInfo{Name: s.name, Version: s.version, Entries: n, Size: size}
	}
	return out
}

// PartCounts returns how many parts of each type the document held at
// decode time, keyed by type name.
func (d *Document) PartCounts() map[string]int {
	counts := make(map[string]int)
	for _, e := range d.sections[d.parts].entries {
		t, err := format.PartTypeOf(e)
		if err != nil {
			continue
		}
		counts[t.String()]++
	}
	if d.enemies > 0 {
		counts[format.PartTypeEnemy.String()] += d.enemies
	}
	return counts
}

// DecodeEnemies returns only the enemy records of a container.
func DecodeEnemies(b []byte) ([]EnemyRecord, error) {
	_, enemies, err := Decode(b)
	return enemies, err
}
