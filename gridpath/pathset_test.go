package gridpath_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/gridpath"
)

func TestPathSet_AddRejectsDuplicates(t *testing.T) {
	s := gridpath.NewPathSet()
	assert.True(t, s.Add(gridpath.MustParsePath("EN")))
	assert.True(t, s.Add(gridpath.MustParsePath("NE")))
	assert.False(t, s.Add(gridpath.MustParsePath("EN")))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"EN", "NE"}, s.Strings())
	assert.True(t, s.Contains(gridpath.MustParsePath("NE")))
	assert.False(t, s.Contains(gridpath.MustParsePath("EE")))
}

func TestPathSet_StoresCopies(t *testing.T) {
	s := gridpath.NewPathSet()
	p := gridpath.MustParsePath("EN")
	s.Add(p)
	p[0] = gridpath.West
	assert.Equal(t, []string{"EN"}, s.Strings())

	out := s.Paths()
	out[0][1] = gridpath.South
	assert.Equal(t, []string{"EN"}, s.Strings())
}

func TestPathSet_Merge(t *testing.T) {
	a := gridpath.NewPathSet()
	a.Add(gridpath.MustParsePath("EN"))

	b := gridpath.NewPathSet()
	b.Add(gridpath.MustParsePath("NE"))
	b.Add(gridpath.MustParsePath("EN"))

	assert.Equal(t, 1, a.Merge(b))
	assert.Equal(t, []string{"EN", "NE"}, a.Strings())
	assert.Zero(t, a.Merge(a))
	assert.Zero(t, a.Merge(nil))
	assert.Equal(t, 2, b.Len(), "source set must be unchanged")
}

func TestPathSet_WriteTo(t *testing.T) {
	s := gridpath.NewPathSet()
	s.Add(gridpath.MustParsePath("EN"))
	s.Add(gridpath.MustParsePath("NE"))

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "EN\nNE\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestPathSet_WriteToEmptyPath(t *testing.T) {
	s := gridpath.NewPathSet()
	s.Add(gridpath.Path{})

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPathSet_WriteToError(t *testing.T) {
	s := gridpath.NewPathSet()
	s.Add(gridpath.MustParsePath("EN"))
	_, err := s.WriteTo(failWriter{})
	assert.Error(t, err)
}
