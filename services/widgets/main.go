package widgets

import (
	"errors"
	"sync"

	"igv/api/models/igv"
	"igv/api/services/serialization"
)

var ErrModelNotFound = errors.New("model not found")

// Version of the widget-state embedding format produced by EmbedState
const (
	STATE_VERSION_MAJOR = 2
	STATE_VERSION_MINOR = 0
)

type (
	// Registry resolves model ids (and reference tokens) back to the
	// entities they were issued for.
	Registry struct {
		models     map[string]igv.Entity
		modelsMux  sync.RWMutex
		serializer *serialization.Serializer
	}

	ModelState struct {
		ModelName          string                 `json:"model_name"`
		ModelModule        string                 `json:"model_module"`
		ModelModuleVersion string                 `json:"model_module_version"`
		State              map[string]interface{} `json:"state"`
	}

	EmbedDocument struct {
		VersionMajor int                   `json:"version_major"`
		VersionMinor int                   `json:"version_minor"`
		State        map[string]ModelState `json:"state"`
	}
)

func NewRegistry(serializer *serialization.Serializer) *Registry {
	return &Registry{
		models:     map[string]igv.Entity{},
		serializer: serializer,
	}
}

func (r *Registry) Register(entities ...igv.Entity) {
	r.modelsMux.Lock()
	defer r.modelsMux.Unlock()

	for _, e := range entities {
		if e == nil {
			continue
		}
		r.models[e.GetModelId()] = e
	}
}

func (r *Registry) Unregister(modelIds ...string) {
	r.modelsMux.Lock()
	defer r.modelsMux.Unlock()

	for _, id := range modelIds {
		delete(r.models, id)
	}
}

func (r *Registry) Len() int {
	r.modelsMux.RLock()
	defer r.modelsMux.RUnlock()

	return len(r.models)
}

func (r *Registry) Get(modelId string) (igv.Entity, error) {
	r.modelsMux.RLock()
	defer r.modelsMux.RUnlock()

	if e, ok := r.models[modelId]; ok {
		return e, nil
	}
	return nil, ErrModelNotFound
}

// Resolve accepts either a bare model id or a reference token.
func (r *Registry) Resolve(tokenOrId string) (igv.Entity, error) {
	if id, ok := serialization.ParseToken(tokenOrId); ok {
		return r.Get(id)
	}
	return r.Get(tokenOrId)
}

func (r *Registry) ModelState(e igv.Entity) ModelState {
	state := r.serializer.State(e)

	ms := ModelState{State: state}
	ms.ModelName, _ = state["_model_name"].(string)
	ms.ModelModule, _ = state["_model_module"].(string)
	ms.ModelModuleVersion, _ = state["_model_module_version"].(string)

	return ms
}

// EmbedState builds the widget-state document of the whole tree under
// root, keyed by model id.
func (r *Registry) EmbedState(root *igv.Browser) EmbedDocument {
	doc := EmbedDocument{
		VersionMajor: STATE_VERSION_MAJOR,
		VersionMinor: STATE_VERSION_MINOR,
		State:        map[string]ModelState{},
	}
	for _, e := range root.Entities() {
		doc.State[e.GetModelId()] = r.ModelState(e)
	}
	return doc
}
