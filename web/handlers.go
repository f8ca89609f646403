package web

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/genietools/age_media_browser/atlasstore"
	"github.com/genietools/age_media_browser/media/texfile"
	"github.com/genietools/age_media_browser/media/texture"
	"github.com/genietools/age_media_browser/status"
	"github.com/genietools/age_media_browser/utils"
	"github.com/genietools/age_media_browser/webutils"
)

type AjaxAtlas struct {
	Name        string
	Packed      bool
	FrameCount  int
	ImageFile   string                   `json:",omitempty"`
	Width       int                      `json:",omitempty"`
	Height      int                      `json:",omitempty"`
	Subtextures []texture.SubtextureInfo `json:",omitempty"`
	Metadata    []texture.SubtextureMeta `json:",omitempty"`
}

func ajaxAtlasFromEntry(e *atlasstore.Entry) *AjaxAtlas {
	a := &AjaxAtlas{Name: e.Name}

	if e.Info != nil {
		a.Packed = true
		a.FrameCount = len(e.Info.Subtextures)
		a.ImageFile = e.Info.ImageFile
		a.Width = e.Info.Width
		a.Height = e.Info.Height
		for i := range e.Info.Subtextures {
			a.Subtextures = append(a.Subtextures, e.Info.SubInfo(i))
		}
	}

	if e.Texture != nil {
		a.FrameCount = e.Texture.FrameCount()
		a.Packed = e.Texture.Packed()
		if a.Packed {
			a.Metadata = e.Texture.Metadata()
		}
	}

	return a
}

func HandlerAjaxAtlasList(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, ServerStore.Names())
}

func getEntry(w http.ResponseWriter, r *http.Request) *atlasstore.Entry {
	name := mux.Vars(r)["name"]
	e, ok := ServerStore.Get(name)
	if !ok {
		webutils.WriteError(w, fmt.Errorf("Unknown atlas %q", name))
		return nil
	}
	return e
}

func HandlerAjaxAtlas(w http.ResponseWriter, r *http.Request) {
	if e := getEntry(w, r); e != nil {
		webutils.WriteJson(w, ajaxAtlasFromEntry(e))
	}
}

func HandlerTextureDocument(w http.ResponseWriter, r *http.Request) {
	e := getEntry(w, r)
	if e == nil {
		return
	}

	info := e.Info
	if info == nil {
		if e.Texture == nil || !e.Texture.Packed() || e.Page == nil {
			webutils.WriteError(w, fmt.Errorf("Atlas %q has no texture document", e.Name))
			return
		}
		bounds := e.Page.Bounds()
		info = texfile.FromTexture(e.Texture, e.Name+".png", bounds.Dx(), bounds.Dy())
	}

	var buf bytes.Buffer
	if err := info.Write(&buf); err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteFile(w, &buf, e.Name+".texture")
}

func HandlerFramePng(w http.ResponseWriter, r *http.Request) {
	e := getEntry(w, r)
	if e == nil {
		return
	}
	if e.Texture == nil {
		webutils.WriteError(w, fmt.Errorf("Atlas %q has no frame images", e.Name))
		return
	}

	param := strings.TrimSuffix(mux.Vars(r)["frame"], ".png")
	iFrame, err := strconv.Atoi(param)
	if err != nil || iFrame < 0 || iFrame >= e.Texture.FrameCount() {
		webutils.WriteError(w, fmt.Errorf("Bad frame index %q", param))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, e.Texture.Frames()[iFrame].Image()); err != nil {
		webutils.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func HandlerDumpAtlas(w http.ResponseWriter, r *http.Request) {
	if e := getEntry(w, r); e != nil {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, utils.SDump(ajaxAtlasFromEntry(e)))
	}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func HandlerWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	status.NewClient(conn)
}
