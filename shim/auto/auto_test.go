package auto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-nfallback/host"
	"github.com/hasbyte1/go-nfallback/shim"
	_ "github.com/hasbyte1/go-nfallback/shim/auto"
)

func TestImportInstalls(t *testing.T) {
	assert.True(t, shim.Installed())
	for _, name := range shim.Names() {
		assert.True(t, host.ArrayPrototype.Has(name), name)
	}

	got, err := host.NewArray("a", "b").Invoke("lastIndexOf", "a")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, got)
}
