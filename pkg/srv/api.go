/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

// go-pattern API
//
// RESTful APIs to compress/expand resource name patterns and to manage
// the resource inventory
//
// Terms Of Service:
//
//     Schemes: http
//     Host: localhost:8003
//     Version: 1.0.0
//     Contact:
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package srv

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"jinr.ru/greenlab/go-pattern/pkg/config"
	"jinr.ru/greenlab/go-pattern/pkg/inventory"
	"jinr.ru/greenlab/go-pattern/pkg/log"
	"jinr.ru/greenlab/go-pattern/pkg/pattern"
)

// PathList is the request/response body carrying explicit resource paths.
type PathList struct {
	Paths []string `json:"paths"`
}

// PatternBody is the request/response body carrying a pattern string.
type PatternBody struct {
	Pattern string `json:"pattern"`
}

type ApiServer struct {
	context.Context
	*config.Config
	*mux.Router
	inventory *inventory.Inventory
}

func NewApiServer(ctx context.Context, cfg *config.Config, inv *inventory.Inventory) (*ApiServer, error) {
	log.Info("Initializing API server with address: %s port: %d", cfg.Address, cfg.Port)
	s := &ApiServer{
		Context:   ctx,
		Config:    cfg,
		inventory: inv,
	}
	s.configureRouter()
	return s, nil
}

// Start
func (s *ApiServer) Run() error {
	log.Info("Starting API server: address: %s port: %d", s.Config.Address, s.Config.Port)
	httpServer := &http.Server{
		Handler: handlers.CombinedLoggingHandler(os.Stderr, s.Router),
		Addr:    s.Config.ApiAddress(),
	}
	return httpServer.ListenAndServe()
}

func (s *ApiServer) configureRouter() {
	s.Router = mux.NewRouter()
	subRouter := s.Router.PathPrefix("/api").Subrouter()
	// swagger:operation POST /compress pattern compress
	// ---
	// summary: Compress a list of resource paths into pattern notation
	// description: Returns the compact pattern, or the verbatim enumeration when no compact form exists.
	subRouter.HandleFunc("/compress", s.handleCompress()).Methods("POST")
	// swagger:operation POST /expand pattern expand
	// ---
	// summary: Expand pattern notation into explicit resource paths
	subRouter.HandleFunc("/expand", s.handleExpand()).Methods("POST")
	// swagger:operation GET /inventory inventory listGroups
	// ---
	// summary: Return the names of all inventory groups
	subRouter.HandleFunc("/inventory", s.handleGroups()).Methods("GET")
	// swagger:operation PUT /inventory/{group} inventory addPaths
	// ---
	// summary: Merge resource paths into a group
	subRouter.HandleFunc("/inventory/{group}", s.handleAdd()).Methods("PUT")
	// swagger:operation GET /inventory/{group} inventory getPaths
	// ---
	// summary: Return the paths of a group
	subRouter.HandleFunc("/inventory/{group}", s.handlePaths()).Methods("GET")
	// swagger:operation DELETE /inventory/{group} inventory removeGroup
	// ---
	// summary: Delete a group
	subRouter.HandleFunc("/inventory/{group}", s.handleRemove()).Methods("DELETE")
	// swagger:operation GET /inventory/{group}/pattern inventory getPattern
	// ---
	// summary: Return the compressed pattern summary of a group
	subRouter.HandleFunc("/inventory/{group}/pattern", s.handlePattern()).Methods("GET")
	s.Router.PathPrefix("/swagger/").Handler(http.StripPrefix("/swagger/", http.FileServer(http.Dir("./swaggerui/"))))
}

func (s *ApiServer) handleCompress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Handling compress request")
		pathList := &PathList{}
		if err := json.NewDecoder(r.Body).Decode(pathList); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		pat, err := pattern.Compress(pathList.Paths)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(&PatternBody{Pattern: pat})
	}
}

func (s *ApiServer) handleExpand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Handling expand request")
		body := &PatternBody{}
		if err := json.NewDecoder(r.Body).Decode(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		paths, err := pattern.Expand(body.Pattern)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(&PathList{Paths: paths})
	}
}

func (s *ApiServer) handleGroups() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Handling groups request")
		groups, err := s.inventory.Groups()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(groups)
	}
}

func (s *ApiServer) handleAdd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling add request: group: %s", vars["group"])
		pathList := &PathList{}
		if err := json.NewDecoder(r.Body).Decode(pathList); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.inventory.Add(vars["group"], pathList.Paths); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func (s *ApiServer) handlePaths() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling paths request: group: %s", vars["group"])
		paths, err := s.inventory.Paths(vars["group"])
		if err != nil {
			http.Error(w, err.Error(), groupErrStatus(err))
			return
		}
		json.NewEncoder(w).Encode(&PathList{Paths: paths})
	}
}

func (s *ApiServer) handlePattern() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling pattern request: group: %s", vars["group"])
		pat, err := s.inventory.Pattern(vars["group"])
		if err != nil {
			http.Error(w, err.Error(), groupErrStatus(err))
			return
		}
		json.NewEncoder(w).Encode(&PatternBody{Pattern: pat})
	}
}

func (s *ApiServer) handleRemove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling remove request: group: %s", vars["group"])
		if err := s.inventory.Remove(vars["group"]); err != nil {
			http.Error(w, err.Error(), groupErrStatus(err))
			return
		}
	}
}

func groupErrStatus(err error) int {
	var notFound inventory.ErrGroupNotFound
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
