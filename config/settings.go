package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Settings struct {
	ListenAddr     string `yaml:"listen_addr"`
	MediaDir       string `yaml:"media_dir"`
	MaxSpriteWidth int    `yaml:"max_sprite_width"`
	DefaultLayer   int    `yaml:"default_layer"`
	Encoding       string `yaml:"encoding"`
}

func DefaultSettings() *Settings {
	return &Settings{
		ListenAddr:     ":8000",
		MaxSpriteWidth: 0, // 0 - do not cut oversized sprites
		DefaultLayer:   0,
	}
}

func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot read settings file %q", path)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrapf(err, "Failed to unmarshal settings file %q", path)
	}

	if s.Encoding != "" {
		if err := SetEncoding(s.Encoding); err != nil {
			return nil, err
		}
	}

	return s, nil
}
