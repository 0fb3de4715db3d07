package editor

import (
	"os"

	"github.com/joshuapare/msbkit/msb"
	"github.com/joshuapare/msbkit/pkg/types"
)

// FileInfo describes an MSB file.
type FileInfo struct {
	Path     string
	Size     int64
	Enemies  int
	Sections []msb.SectionInfo
	// Parts counts parts by type name.
	Parts map[string]int
}

// VerifyResult reports whether a file re-encodes to identical bytes.
type VerifyResult struct {
	OK      bool
	Size    int
	Encoded int
	Enemies int
	// FirstDiff is the first differing byte offset, or -1 when OK.
	FirstDiff int
}

// List returns every enemy record of the file in order.
func List(path string) ([]msb.EnemyRecord, error) {
	s, err := open(path, nil)
	if err != nil {
		return nil, err
	}
	return s.Records(), nil
}

// Get returns enemy record i of the file.
func Get(path string, i int) (msb.EnemyRecord, error) {
	s, err := open(path, nil)
	if err != nil {
		return msb.EnemyRecord{}, err
	}
	return s.Get(i)
}

// Info returns the section layout and part counts of the file.
func Info(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, types.IOError("stat "+path, err)
	}
	s, err := open(path, nil)
	if err != nil {
		return FileInfo{}, err
	}
	doc := s.Document()
	return FileInfo{
		Path:     path,
		Size:     st.Size(),
		Enemies:  s.Len(),
		Sections: doc.Sections(),
		Parts:    doc.PartCounts(),
	}, nil
}

// Verify decodes the file, encodes it again without changes and compares
// the result to the original bytes.
func Verify(path string) (VerifyResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return VerifyResult{}, types.IOError("read "+path, err)
	}
	doc, enemies, err := msb.Decode(data)
	if err != nil {
		return VerifyResult{}, err
	}
	out, err := doc.Encode(enemies)
	if err != nil {
		return VerifyResult{}, err
	}

	res := VerifyResult{Size: len(data), Encoded: len(out), Enemies: len(enemies), FirstDiff: -1}
	res.FirstDiff = firstDiff(data, out)
	res.OK = res.FirstDiff < 0
	return res, nil
}

func firstDiff(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
