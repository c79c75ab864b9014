package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Regular, Bold, Small} {
		assert.True(t, Loaded(name))
		assert.NotNil(t, name.Get())
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFont("broken", []byte("not a font"))
	assert.Error(t, err)
	assert.False(t, Loaded("broken"))
	assert.Panics(t, func() { FontName("broken").Get() })
}
