// Package atlasstore keeps the converted atlases the web server exposes.
package atlasstore

import (
	"image"
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/genietools/age_media_browser/config"
	"github.com/genietools/age_media_browser/media/palette"
	"github.com/genietools/age_media_browser/media/texfile"
	"github.com/genietools/age_media_browser/media/texture"
	"github.com/genietools/age_media_browser/status"
	"github.com/genietools/age_media_browser/utils"
)

// Entry is one named atlas. Texture is set for in-process conversions,
// Info for atlases loaded back from .texture documents. Page holds the
// packed image when one exists on disk.
type Entry struct {
	Name    string
	Texture *texture.Texture
	Info    *texfile.TextureInfo
	Page    image.Image
}

type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	order   []string
	nameGen utils.RandomNameGenerator
}

func NewStore() *Store {
	return &Store{entries: make(map[string]*Entry)}
}

// Add registers an entry. Nameless entries get a generated one.
// Returns the final name.
func (s *Store) Add(e *Entry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.Name == "" {
		e.Name = s.nameGen.RandomName()
	}
	if _, exists := s.entries[e.Name]; exists {
		return "", errors.Errorf("Atlas %q already registered", e.Name)
	}

	s.entries[e.Name] = e
	s.order = append(s.order, e.Name)
	return e.Name, nil
}

func (s *Store) Get(name string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[name]
	return e, ok
}

// Names returns registration order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Convert normalizes one source container into a texture and registers
// it. The settings decide the layer and whether oversized sprites get
// cut into strips.
func (s *Store) Convert(name string, src texture.Source, palettes palette.Table, settings *config.Settings) (*Entry, error) {
	var cutter texture.Cutter = texture.IdentityCutter{}
	if settings.MaxSpriteWidth > 0 {
		cutter = texture.StripCutter{MaxWidth: settings.MaxSpriteWidth}
	}

	tex, err := texture.NewTexture(src, palettes, cutter, settings.DefaultLayer)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to convert %q", name)
	}

	e := &Entry{Name: name, Texture: tex}
	if _, err := s.Add(e); err != nil {
		return nil, err
	}

	status.Info("Converted %q (%d frames)", e.Name, tex.FrameCount())
	return e, nil
}

// LoadDirectory registers every .texture document found in dir.
func (s *Store) LoadDirectory(dir string) error {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "Cannot read media directory %q", dir)
	}

	for _, fi := range files {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ".texture") {
			continue
		}

		data, err := ioutil.ReadFile(filepath.Join(dir, fi.Name()))
		if err != nil {
			return errors.Wrapf(err, "Cannot read %q", fi.Name())
		}

		info, err := texfile.Parse(data)
		if err != nil {
			return errors.Wrapf(err, "Failed to parse %q", fi.Name())
		}

		name := strings.TrimSuffix(fi.Name(), ".texture")
		if _, err := s.Add(&Entry{Name: name, Info: info}); err != nil {
			return err
		}
		log.Printf("[store] loaded %q (%d subtextures)", fi.Name(), len(info.Subtextures))
	}

	return nil
}
