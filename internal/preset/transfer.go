package preset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const maxTransferSize = 1 * 1024 * 1024 // presets files are tiny; refuse anything larger

// Export writes every user preset to w as YAML, sorted by name.
func (s *Store) Export(w io.Writer) error {
	names := make([]string, 0, len(s.Data.Presets))
	for name := range s.Data.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Preset, 0, len(names))
	for _, name := range names {
		out = append(out, s.Data.Presets[name])
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(out)
}

// Import reads presets from a JSON or YAML file (chosen by extension) and
// merges them into the store, validating each and skipping invalid entries.
// It returns the number of presets imported.
func (s *Store) Import(path string) (int, error) {
	data, err := readTransferFile(path)
	if err != nil {
		return 0, err
	}

	var incoming []Preset
	if err := unmarshal(path, data, &incoming); err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	imported := 0
	for _, p := range incoming {
		if p.Name == "" {
			logrus.Warn("Skipping unnamed preset in import")
			continue
		}
		if err := s.Set(p.Name, p.Config); err != nil {
			logrus.Warnf("Skipping preset %q: %v", p.Name, err)
			continue
		}
		imported++
	}
	return imported, nil
}

// readTransferFile reads a presets file with a size limit.
func readTransferFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() > maxTransferSize {
		return nil, fmt.Errorf("presets file too large: %d bytes (max %d)", info.Size(), maxTransferSize)
	}
	return io.ReadAll(io.LimitReader(file, maxTransferSize))
}

// unmarshal decodes data using path to choose JSON or YAML.
func unmarshal(path string, data []byte, v interface{}) error {
	switch {
	case strings.HasSuffix(path, ".json"):
		return json.Unmarshal(data, v)
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return yaml.Unmarshal(data, v)
	}
	return fmt.Errorf("unknown presets file extension: %s", path)
}
