package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	dir, err := ioutil.TempDir("", "settings")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "settings.yaml")
	doc := "listen_addr: \":9000\"\nmedia_dir: /tmp/media\nmax_sprite_width: 512\n"
	if err := ioutil.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	if s.ListenAddr != ":9000" || s.MediaDir != "/tmp/media" || s.MaxSpriteWidth != 512 {
		t.Errorf("settings %+v", s)
	}
	if s.DefaultLayer != 0 {
		t.Errorf("DefaultLayer = %d; expected default 0", s.DefaultLayer)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings("/nonexistent/settings.yaml"); err == nil {
		t.Error("missing file did not fail")
	}
}

func TestSetEncoding(t *testing.T) {
	defer SetEncoding("Windows 1252")

	if err := SetEncoding("Windows 1251"); err != nil {
		t.Fatalf("SetEncoding: %v", err)
	}
	if GetEncoding().String() != "Windows 1251" {
		t.Errorf("encoding %q", GetEncoding().String())
	}

	if err := SetEncoding("No Such Codepage"); err == nil {
		t.Error("unknown encoding did not fail")
	}
}
