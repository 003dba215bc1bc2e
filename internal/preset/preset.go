package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/sweep"
	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/validate"
)

// DefaultPath is where user presets live unless overridden by flag.
const DefaultPath = "~/.config/mbesplan/presets.json"

// Preset is a named, saved set of survey parameters. Presets persist inputs
// only; computed sweep results are never stored.
type Preset struct {
	ID     string       `json:"id" yaml:"id" validate:"omitempty,uuid4"`
	Name   string       `json:"name" yaml:"name" validate:"required"`
	Config sweep.Config `json:"config" yaml:"config"`
}

// Data represents the structure of the presets file.
type Data struct {
	Presets map[string]Preset `json:"presets" yaml:"presets"`
}

// Store handles the loading and saving of the presets file.
type Store struct {
	Path string `validate:"required,filepath"`
	Data Data
}

// NewStore creates a new Store instance, loading the file if it exists.
func NewStore(path string) (*Store, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	s := &Store{
		Path: expandedPath,
		Data: Data{Presets: make(map[string]Preset)},
	}

	if err := s.Load(); err != nil {
		// If the file doesn't exist, we can ignore the error.
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return s, nil
}

// NewOrExistingStore returns existing storage if the file exists, or creates
// a new one otherwise. When creating a new store, it writes the initial
// structure to disk immediately.
func NewOrExistingStore(path string) (*Store, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(expandedPath); err == nil {
		return NewStore(path)
	} else if os.IsNotExist(err) {
		s, err := NewStore(path)
		if err != nil {
			return nil, err
		}
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, err
}

// Load reads the presets file and drops or heals invalid entries: a missing
// or malformed ID is regenerated, a preset whose parameters fail validation
// is removed with a warning rather than poisoning later runs.
func (s *Store) Load() error {
	logrus.Debug("Loading presets file from: ", s.Path)
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &s.Data); err != nil {
		return err
	}
	if s.Data.Presets == nil {
		s.Data.Presets = make(map[string]Preset)
	}

	changed := false
	for name, p := range s.Data.Presets {
		if err := validate.Struct(p.Config); err != nil {
			logrus.Warnf("Dropping preset %q with invalid parameters: %v", name, err)
			delete(s.Data.Presets, name)
			changed = true
			continue
		}
		if p.ID == "" || validate.Var(p.ID, "uuid4") != nil {
			p.ID = uuid.NewString()
			p.Name = name
			s.Data.Presets[name] = p
			changed = true
		}
	}
	if changed {
		if err := s.Save(); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the presets to the file.
func (s *Store) Save() error {
	logrus.Debug("Saving presets file to: ", s.Path)
	// Ensure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// Get resolves a preset by name: user presets first, then built-ins.
func (s *Store) Get(name string) (Preset, bool) {
	if p, ok := s.Data.Presets[name]; ok {
		return p, true
	}
	if cfg, ok := Builtins()[name]; ok {
		return Preset{Name: name, Config: cfg}, true
	}
	return Preset{}, false
}

// Set validates and saves a preset under the given name, overwriting any
// user preset with the same name. Built-ins cannot be overwritten.
func (s *Store) Set(name string, cfg sweep.Config) error {
	if _, builtin := Builtins()[name]; builtin {
		return fmt.Errorf("%q is a built-in preset and cannot be overwritten", name)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid preset parameters: %w", err)
	}
	s.Data.Presets[name] = Preset{ID: uuid.NewString(), Name: name, Config: cfg}
	return s.Save()
}

// Delete removes a user preset by name.
func (s *Store) Delete(name string) error {
	if _, ok := s.Data.Presets[name]; !ok {
		if _, builtin := Builtins()[name]; builtin {
			return fmt.Errorf("%q is a built-in preset and cannot be deleted", name)
		}
		return fmt.Errorf("no preset named %q", name)
	}
	delete(s.Data.Presets, name)
	return s.Save()
}

// Names returns all preset names, built-ins included, sorted.
func (s *Store) Names() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(s.Data.Presets)+len(Builtins()))
	for name := range Builtins() {
		names = append(names, name)
		seen[name] = struct{}{}
	}
	for name := range s.Data.Presets {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
