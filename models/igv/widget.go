package igv

import (
	"github.com/google/uuid"
)

const (
	// front-end module hosting the track and genome models
	MODULE_NAME = "ipyigv"
	// front-end module hosting the browser view
	BROWSER_MODULE_NAME = "jupyter-igv"

	EXTENSION_VERSION = "0.1.0"
)

// Entity is anything that is synchronized as its own widget model and
// therefore travels as a reference token rather than inline.
type Entity interface {
	GetModelId() string
}

// Widget carries the model identity and the front-end class names
// the view needs to instantiate the matching model.
type Widget struct {
	ModelId string `json:"-"`

	ModelName          string `json:"_model_name"`
	ViewName           string `json:"_view_name"`
	ModelModule        string `json:"_model_module"`
	ViewModule         string `json:"_view_module"`
	ModelModuleVersion string `json:"_model_module_version"`
	ViewModuleVersion  string `json:"_view_module_version"`
}

func newWidget(modelName string, viewName string, module string) Widget {
	return Widget{
		ModelId:            uuid.NewString(),
		ModelName:          modelName,
		ViewName:           viewName,
		ModelModule:        module,
		ViewModule:         module,
		ModelModuleVersion: EXTENSION_VERSION,
		ViewModuleVersion:  EXTENSION_VERSION,
	}
}

func (w *Widget) GetModelId() string {
	return w.ModelId
}
