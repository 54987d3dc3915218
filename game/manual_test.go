package game

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManual(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o644))
	return dir
}

func TestManualLoad(t *testing.T) {
	dir := writeManual(t, "deal", `
enable: true
cards:
  - "一,一,二"
  - ""
  - "拾"
draws: "壹,贰"
`)
	m := newManual(dir, "deal")
	require.True(t, m.enabled())

	tiles, err := m.load(AllTiles(), paohuzi.NP3, paohuzi.HandCount, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.Len(t, tiles, 80)

	m1, m2, M1, M2, M10 := paohuzi.Minor(1), paohuzi.Minor(2), paohuzi.Major(1), paohuzi.Major(2), paohuzi.Major(10)
	assert.Equal(t, []paohuzi.Tile{m1, m1, m2}, tiles[:3])
	assert.Equal(t, M10, tiles[2*paohuzi.HandCount])
	assert.Equal(t, []paohuzi.Tile{M1, M2}, tiles[60:62])

	counts := make(map[paohuzi.Tile]int)
	for _, tile := range tiles {
		counts[tile]++
	}
	for _, kind := range paohuzi.AllKinds() {
		assert.Equal(t, SameTileCount, counts[kind], "tile %v", kind)
	}
}

func TestManualOverflow(t *testing.T) {
	dir := writeManual(t, "overflow", `
enable: true
cards:
  - "五,五,五,五,五"
`)
	m := newManual(dir, "overflow")
	_, err := m.load(AllTiles(), paohuzi.NP3, paohuzi.HandCount, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrManualOverflow)
}

func TestManualDisabled(t *testing.T) {
	assert.Nil(t, newManual(t.TempDir(), "missing"))
	assert.False(t, (*Manual)(nil).enabled())

	dir := writeManual(t, "off", "enable: false\n")
	assert.False(t, newManual(dir, "off").enabled())
}
