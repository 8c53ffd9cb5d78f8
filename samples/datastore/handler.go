package datastore

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/launchdarkly/spec-contract-tests/framework"
	"github.com/launchdarkly/spec-contract-tests/servicedef"
)

type handler struct {
	store  Store
	status servicedef.StatusResponse
	logger framework.Logger
}

// NewHandler returns an http.Handler that serves the store using the datastore service protocol.
// The keys capability is declared if the store also implements Lister.
func NewHandler(store Store, description string, logger framework.Logger) http.Handler {
	if logger == nil {
		logger = framework.NullLogger()
	}
	h := &handler{
		store:  store,
		status: servicedef.StatusResponse{Description: description, Capabilities: []string{}},
		logger: logger,
	}
	if _, ok := store.(Lister); ok {
		h.status.Capabilities = append(h.status.Capabilities, servicedef.CapabilityKeys)
	}
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path == "" || req.URL.Path == "/" {
		if req.Method != http.MethodGet {
			h.writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
			return
		}
		h.writeJSON(w, http.StatusOK, h.status)
		return
	}

	if !strings.HasPrefix(req.URL.Path, servicedef.ItemsPath) {
		h.logger.Printf("Received request for unrecognized URL path %s", req.URL.Path)
		h.writeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}
	key := strings.TrimPrefix(req.URL.Path, servicedef.ItemsPath)

	if key == "" && req.Method == http.MethodGet {
		h.serveKeys(w)
		return
	}

	switch req.Method {
	case http.MethodGet:
		value, found, err := h.store.Get(key)
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		if !found {
			h.writeError(w, http.StatusNotFound, errors.New("no such key"))
			return
		}
		h.writeJSON(w, http.StatusOK, servicedef.ItemResponse{Value: value})
	case http.MethodPut:
		var params servicedef.ItemParams
		body, err := io.ReadAll(req.Body)
		if err == nil {
			err = json.Unmarshal(body, &params)
		}
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := h.store.Set(key, params.Value); err != nil {
			h.writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		if err := h.store.Delete(key); err != nil {
			h.writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		h.writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	}
}

func (h *handler) serveKeys(w http.ResponseWriter) {
	lister, ok := h.store.(Lister)
	if !ok {
		h.writeError(w, http.StatusNotFound, errors.New("this service cannot list keys"))
		return
	}
	keys, err := lister.Keys()
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, servicedef.KeysResponse{Keys: keys})
}

func (h *handler) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrEmptyKey) {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	h.logger.Printf("Unexpected error from store: %s", err)
	h.writeError(w, http.StatusInternalServerError, err)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		h.logger.Printf("Could not encode response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (h *handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, servicedef.ErrorResponse{Error: err.Error()})
}
