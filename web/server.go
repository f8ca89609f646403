package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/genietools/age_media_browser/atlasstore"
)

var ServerStore *atlasstore.Store

func StartServer(addr string, store *atlasstore.Store) error {
	ServerStore = store

	r := mux.NewRouter()
	r.HandleFunc("/json/atlas", HandlerAjaxAtlasList)
	r.HandleFunc("/json/atlas/{name}", HandlerAjaxAtlas)
	r.HandleFunc("/texture/{name}", HandlerTextureDocument)
	r.HandleFunc("/png/atlas/{name}/{frame}", HandlerFramePng)
	r.HandleFunc("/dump/atlas/{name}", HandlerDumpAtlas)
	r.HandleFunc("/ws", HandlerWebsocket)

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
