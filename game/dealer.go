package game

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
)

const SameTileCount = 4 // 每种牌4张，共80张

// Dealer 牌墙，从头部摸牌
type Dealer struct {
	rnd      *rand.Rand
	tileWall []paohuzi.Tile
}

func NewDealer(rnd *rand.Rand) *Dealer {
	return &Dealer{
		rnd:      rnd,
		tileWall: make([]paohuzi.Tile, 0),
	}
}

// AllTiles 一副牌中每种牌的张数
func AllTiles() map[paohuzi.Tile]int {
	tiles := make(map[paohuzi.Tile]int)
	for _, t := range paohuzi.AllKinds() {
		tiles[t] = SameTileCount
	}
	return tiles
}

func (d *Dealer) Initialize() {
	kinds := paohuzi.AllKinds()
	d.tileWall = make([]paohuzi.Tile, len(kinds)*SameTileCount)

	// 填充并同时随机化牌墙
	i := 0
	for _, tile := range kinds {
		for range SameTileCount {
			pos := d.rnd.Intn(i + 1)
			if pos != i {
				d.tileWall[i] = d.tileWall[pos]
			}
			d.tileWall[pos] = tile
			i++
		}
	}
}

// InitializeWith 使用配好的牌墙(配牌)
func (d *Dealer) InitializeWith(tiles []paohuzi.Tile) {
	d.tileWall = slices.Clone(tiles)
}

func (d *Dealer) DrawTile() (paohuzi.Tile, error) {
	if len(d.tileWall) == 0 {
		return paohuzi.TileNull, ErrWallExhausted
	}
	tile := d.tileWall[0]
	d.tileWall = d.tileWall[1:]
	return tile, nil
}

func (d *Dealer) Deal(count int) ([]paohuzi.Tile, error) {
	if count > len(d.tileWall) {
		return nil, fmt.Errorf("%w: deal %d of %d", ErrWallExhausted, count, len(d.tileWall))
	}
	tiles := make([]paohuzi.Tile, count)
	copy(tiles, d.tileWall[:count])
	d.tileWall = d.tileWall[count:]
	return tiles, nil
}

func (d *Dealer) GetRestCount() int {
	return len(d.tileWall)
}

func (d *Dealer) Count(tile paohuzi.Tile) int {
	count := 0
	for _, t := range d.tileWall {
		if t == tile {
			count++
		}
	}
	return count
}
