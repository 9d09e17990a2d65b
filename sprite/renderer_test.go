package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEmptyLayerTouchesNoBuffers(t *testing.T) {
	r := &Renderer{}
	layer := NewLayer()

	require.NoError(t, r.Update(nil, layer))
	assert.Equal(t, uint32(0), r.InstanceCount)
	assert.Nil(t, r.InstanceBuffer)
}

func TestUpdateEmptiedLayerClearsTheBatch(t *testing.T) {
	r := &Renderer{}
	layer := NewLayer()
	handle, err := layer.Create(NewInstance())
	require.NoError(t, err)
	require.NoError(t, layer.Destroy(handle))

	require.NoError(t, r.Update(nil, layer))
	assert.Equal(t, uint32(0), r.InstanceCount)
}
