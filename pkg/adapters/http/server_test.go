package http_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/vine"
	"github.com/aretw0/vine/pkg/adapters/headless"
	vinehttp "github.com/aretw0/vine/pkg/adapters/http"
	"github.com/aretw0/vine/pkg/binding"
	"github.com/aretw0/vine/pkg/domain"
)

func newInspectedUI(t *testing.T) (*vine.UI, *headless.Runtime) {
	t.Helper()

	def := binding.NewDefinition(domain.Params{"title": "inspected"})
	def.Declare("field", "textbox", nil)
	def.Declare("display", "markdown", nil)
	def.Layout(func(l *binding.Layout) error {
		return l.Row(nil, func() error {
			return l.Place(l.Get("field"))
		})
	})

	rt := headless.New()
	ui, err := vine.New(context.Background(), def, rt)
	require.NoError(t, err)

	ui.MustComponent("display").Source(func() (any, error) { return "x", nil })
	return ui, rt
}

func TestServer(t *testing.T) {
	ui, rt := newInspectedUI(t)
	handler := vinehttp.NewHandler(ui, vinehttp.WithTree(func() any { return rt.Tree() }))
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Run("healthz", func(t *testing.T) {
		res, err := srv.Client().Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer res.Body.Close()

		var body map[string]string
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, vine.Version, body["version"])
	})

	t.Run("state", func(t *testing.T) {
		res, err := srv.Client().Get(srv.URL + "/state")
		require.NoError(t, err)
		defer res.Body.Close()

		var body map[string]string
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.Equal(t, string(domain.StateLaidOut), body["state"])
	})

	t.Run("components", func(t *testing.T) {
		res, err := srv.Client().Get(srv.URL + "/components")
		require.NoError(t, err)
		defer res.Body.Close()

		var body []vinehttp.ComponentInfo
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		require.Len(t, body, 2)

		assert.Equal(t, "field", body[0].Name)
		assert.True(t, body[0].Placed)
		assert.False(t, body[0].HasSource)

		assert.Equal(t, "display", body[1].Name)
		assert.False(t, body[1].Placed)
		assert.True(t, body[1].HasSource)
	})

	t.Run("layout", func(t *testing.T) {
		res, err := srv.Client().Get(srv.URL + "/layout")
		require.NoError(t, err)
		defer res.Body.Close()

		var tree headless.Node
		require.NoError(t, json.NewDecoder(res.Body).Decode(&tree))
		require.Len(t, tree.Children, 1)
		assert.Equal(t, "page", tree.Children[0].Kind)
	})

	t.Run("layout without provider", func(t *testing.T) {
		bare := httptest.NewServer(vinehttp.NewHandler(ui))
		t.Cleanup(bare.Close)

		res, err := bare.Client().Get(bare.URL + "/layout")
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, 404, res.StatusCode)
	})
}
