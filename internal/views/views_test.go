package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpetrov/linkstash/internal/views"
)

func TestJSONView(t *testing.T) {
	v := views.NewJSONView()

	out, err := v.GenerateView(map[string]any{"user_created": true})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"user_created": true}`, out)
}

func TestJSONView_UnmarshalableModel(t *testing.T) {
	v := views.NewJSONView()

	_, err := v.GenerateView(func() {})
	assert.Error(t, err)
}
