// Package views renders presenter view models into final artifacts.
package views

import "encoding/json"

// JSONView renders any view model as a compact JSON string.
type JSONView struct{}

// NewJSONView creates a JSON view.
func NewJSONView() *JSONView {
	return &JSONView{}
}

// GenerateView marshals the view model.
func (v *JSONView) GenerateView(viewModel any) (string, error) {
	data, err := json.Marshal(viewModel)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
