package servers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	specOnce sync.Once
	spec     *openapi3.T
	specErr  error

	swaggerOnce sync.Once
)

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	specOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			specErr = fmt.Errorf("error loading spec: %w", err)
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			specErr = fmt.Errorf("error validating spec: %w", err)
			return
		}
		spec = doc
	})
	return spec, specErr
}

// swaggerDoc serves the embedded document to the swagger UI.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// RegisterSwagger makes the document available under swag.Name, where
// echo-swagger looks for doc.json. swag panics on a second registration, so
// only the first call registers.
func RegisterSwagger() error {
	doc, err := GetSwagger()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding spec: %w", err)
	}

	swaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return nil
}
