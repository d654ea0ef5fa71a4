package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, loadStyles(embeddedStyles))

	for _, name := range []string{"Error", "Success", "Header", "Path"} {
		_, ok := registry[name]
		assert.True(t, ok, "style %s must be defined", name)
	}
}

func TestGetStyleUnknownName(t *testing.T) {
	style := GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesBadYAML(t *testing.T) {
	assert.Error(t, loadStyles([]byte("{invalid")))
}
