package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirLister(t *testing.T) {
	fsys := fstest.MapFS{
		"woman/dress/front.jpg":     {},
		"woman/dress/back.png":      {},
		"woman/dress/extra/ign.jpg": {},
	}
	l := NewFS(fsys)

	names, err := l.List("woman/dress")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"front.jpg", "back.png"}, names)

	_, err = l.List("no/existe")
	assert.Error(t, err)
}
