package game

import (
	"math/rand"
	"testing"

	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealerInitialize(t *testing.T) {
	d := NewDealer(rand.New(rand.NewSource(1)))
	d.Initialize()

	require.Equal(t, 80, d.GetRestCount())
	for _, tile := range paohuzi.AllKinds() {
		assert.Equal(t, SameTileCount, d.Count(tile), "tile %v", tile)
	}
}

func TestDealerSeedIsReproducible(t *testing.T) {
	a := NewDealer(rand.New(rand.NewSource(42)))
	b := NewDealer(rand.New(rand.NewSource(42)))
	a.Initialize()
	b.Initialize()

	ta, err := a.Deal(80)
	require.NoError(t, err)
	tb, err := b.Deal(80)
	require.NoError(t, err)
	assert.Equal(t, ta, tb)
}

func TestDealerExhausted(t *testing.T) {
	d := NewDealer(rand.New(rand.NewSource(1)))
	d.InitializeWith([]paohuzi.Tile{paohuzi.Minor(1), paohuzi.Major(2)})

	_, err := d.Deal(3)
	require.ErrorIs(t, err, ErrWallExhausted)

	tile, err := d.DrawTile()
	require.NoError(t, err)
	assert.Equal(t, paohuzi.Minor(1), tile)
	_, err = d.DrawTile()
	require.NoError(t, err)

	_, err = d.DrawTile()
	assert.ErrorIs(t, err, ErrWallExhausted)
	assert.Zero(t, d.GetRestCount())
}
