package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FilePersister stores cart lines as a JSON file. Writes go through a
// temp file and rename so a crash cannot leave a torn cart on disk.
type FilePersister struct {
	path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Save(lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing cart file: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("replacing cart file: %w", err)
	}
	return nil
}

// Load returns the persisted lines, or nil when no cart file exists yet.
func (p *FilePersister) Load() ([]Line, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cart file: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decoding cart file %s: %w", filepath.Base(p.path), err)
	}
	return lines, nil
}
