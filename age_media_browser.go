package main

import (
	"flag"
	"log"

	"github.com/genietools/age_media_browser/atlasstore"
	"github.com/genietools/age_media_browser/config"
	"github.com/genietools/age_media_browser/status"
	"github.com/genietools/age_media_browser/web"
)

func main() {
	var addr, dir, encoding, settingsFile string
	var gameVersion int
	flag.StringVar(&addr, "i", ":8000", "Address of server")
	flag.StringVar(&dir, "dir", "", "Path to converted media (.texture documents)")
	flag.StringVar(&encoding, "encoding", "", "Legacy codepage name override")
	flag.StringVar(&settingsFile, "settings", "", "Path to yaml settings file")
	flag.IntVar(&gameVersion, "gameversion", 0, "0 - unknown, 1 - aoe1, 2 - ror, 3 - aoc, 4 - swgb, 5 - de1, 6 - de2")
	flag.Parse()

	config.SetGameVersion(config.GameVersion(gameVersion))
	log.Printf("[config] game version: %v", config.GetGameVersion())

	settings := config.DefaultSettings()
	if settingsFile != "" {
		var err error
		if settings, err = config.LoadSettings(settingsFile); err != nil {
			log.Fatal(err)
		}
	}

	if addr != "" {
		settings.ListenAddr = addr
	}
	if dir != "" {
		settings.MediaDir = dir
	}

	if encoding != "" {
		if err := config.SetEncoding(encoding); err != nil {
			log.Fatal(err)
		}
	}

	store := atlasstore.NewStore()
	if settings.MediaDir != "" {
		status.Info("Loading media directory %q", settings.MediaDir)
		if err := store.LoadDirectory(settings.MediaDir); err != nil {
			log.Fatal(err)
		}
	}

	if err := web.StartServer(settings.ListenAddr, store); err != nil {
		log.Fatal(err)
	}
}
