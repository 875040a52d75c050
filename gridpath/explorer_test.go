package gridpath_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/gridpath"
)

func TestExplorer_NewDoesNotSearch(t *testing.T) {
	e := gridpath.NewExplorer(pos(0, 0), pos(2, 2), 2)
	assert.Zero(t, e.Count())
	assert.True(t, e.Stale())
	assert.Equal(t, pos(0, 0), e.Start())
	assert.Equal(t, pos(2, 2), e.Target())
	assert.Equal(t, 2, e.MaxRun())
}

func TestExplorer_RunTwiceDoesNotAccumulate(t *testing.T) {
	e := gridpath.NewExplorer(pos(0, 0), pos(2, 2), 2)
	_, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, 6, e.Count())
	assert.False(t, e.Stale())

	_, err = e.Run()
	require.NoError(t, err)
	assert.Equal(t, 6, e.Count())
}

func TestExplorer_SettersMarkStale(t *testing.T) {
	e := gridpath.NewExplorer(pos(0, 0), pos(1, 1), 1)
	_, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, 2, e.Count())

	e.SetTarget(pos(2, 2))
	assert.True(t, e.Stale())
	assert.Equal(t, 2, e.Count(), "setters must not re-run the search")

	e.SetMaxRun(2)
	e.SetStart(pos(0, 0))
	_, err = e.Run()
	require.NoError(t, err)
	assert.False(t, e.Stale())
	assert.Equal(t, 6, e.Count())
}

func TestExplorer_ExtendThenMerge(t *testing.T) {
	e := gridpath.NewExplorer(pos(1, 0), pos(2, 1), 1)
	_, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"EN", "NE"}, pathStrings(e.Paths()))

	ext, err := e.Extend(pos(0, 0), gridpath.MustParsePath("W"))
	require.NoError(t, err)
	assert.Equal(t, []string{"WENE"}, ext.Strings())
	for _, p := range ext.Paths() {
		assert.True(t, strings.HasPrefix(p.String(), "W"), "%s lost its prefix", p)
	}
	assert.Equal(t, []string{"EN", "NE"}, pathStrings(e.Paths()), "Extend must not touch the held result")

	added := e.Merge(ext)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"EN", "NE", "WENE"}, pathStrings(e.Paths()))
	assert.Zero(t, e.Merge(ext), "second merge adds nothing")
	assert.Equal(t, []string{"EN", "NE", "WENE"}, pathStrings(e.Paths()))
}

func TestExplorer_RunErrorKeepsPreviousResult(t *testing.T) {
	e := gridpath.NewExplorer(pos(0, 0), pos(1, 1), 1)
	_, err := e.Run()
	require.NoError(t, err)

	e.SetMaxRun(0)
	_, err = e.Run(gridpath.WithStrict())
	assert.ErrorIs(t, err, gridpath.ErrNonPositiveMaxRun)
	assert.Equal(t, 2, e.Count())
	assert.True(t, e.Stale())
}

func TestExplorer_Compare(t *testing.T) {
	small := gridpath.NewExplorer(pos(0, 0), pos(1, 1), 1)
	big := gridpath.NewExplorer(pos(0, 0), pos(2, 2), 2)
	other := gridpath.NewExplorer(pos(5, 5), pos(4, 4), 1)
	for _, e := range []*gridpath.Explorer{small, big, other} {
		_, err := e.Run()
		require.NoError(t, err)
	}

	assert.Equal(t, -1, small.Compare(big))
	assert.Equal(t, 1, big.Compare(small))
	// Different configurations, same count: ordering treats them as equal.
	assert.Equal(t, 0, small.Compare(other))
}

func TestExplorer_WriteTo(t *testing.T) {
	e := gridpath.NewExplorer(pos(0, 0), pos(1, 1), 1)
	_, err := e.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = e.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "EN\nNE\n", buf.String())
}

func pathStrings(ps []gridpath.Path) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}
