package game

import (
	"fmt"
	"maps"
	"math/rand"
	"path/filepath"

	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
	"github.com/spf13/viper"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Manual 配牌，从 <dir>/<name>.yaml 读取:
//
//	enable: true
//	cards:          # 每个座位的起手牌，不足的随机补齐
//	  - "一,一,二"
//	  - ""
//	draws: "拾,壹"  # 发完起手牌后牌墙头部的牌
type Manual struct {
	vp *viper.Viper
}

func newManual(dir, name string) *Manual {
	if name == "" {
		return nil
	}
	m := &Manual{
		vp: viper.New(),
	}
	m.vp.SetConfigType("yaml")
	m.vp.SetConfigFile(filepath.Join(dir, name+".yaml"))
	if err := m.vp.ReadInConfig(); err != nil {
		logger.Log.Warnf("manual %s not loaded: %v", name, err)
		return nil
	}
	return m
}

func (m *Manual) enabled() bool {
	if m == nil {
		return false
	}
	return m.vp.GetBool("enable")
}

// load 生成完整牌墙: 各座位起手牌、draws、剩余的牌(洗乱)
func (m *Manual) load(tiles map[paohuzi.Tile]int, playerCount, handCount int, rnd *rand.Rand) ([]paohuzi.Tile, error) {
	cards := m.vp.GetStringSlice("cards")
	if len(cards) > playerCount {
		return nil, fmt.Errorf("%w: %d hands for %d players", ErrManualOverflow, len(cards), playerCount)
	}
	groups := make([][]paohuzi.Tile, playerCount)
	for i := range cards {
		g, err := paohuzi.ParseTiles(cards[i])
		if err != nil {
			return nil, err
		}
		if len(g) > handCount {
			return nil, fmt.Errorf("%w: seat %d has %d tiles", ErrManualOverflow, i, len(g))
		}
		groups[i] = g
	}
	draws, err := paohuzi.ParseTiles(m.vp.GetString("draws"))
	if err != nil {
		return nil, err
	}

	total := 0
	for _, count := range tiles {
		total += count
	}
	if len(draws) > total-playerCount*handCount {
		return nil, fmt.Errorf("%w: %d draws", ErrManualOverflow, len(draws))
	}

	tmp := make(map[paohuzi.Tile]int, len(tiles))
	maps.Copy(tmp, tiles)
	for _, g := range append(groups, draws) {
		for _, t := range g {
			tmp[t]--
			if tmp[t] < 0 {
				return nil, fmt.Errorf("%w: tile %v", ErrManualOverflow, t)
			}
		}
	}

	var rests []paohuzi.Tile
	for _, t := range paohuzi.AllKinds() {
		rests = append(rests, paohuzi.MakeTiles(t, tmp[t])...)
	}
	rnd.Shuffle(len(rests), func(i, j int) {
		rests[i], rests[j] = rests[j], rests[i]
	})

	var out []paohuzi.Tile
	for _, g := range groups {
		out = append(out, g...)
		more := handCount - len(g)
		out = append(out, rests[:more]...)
		rests = rests[more:]
	}
	out = append(out, draws...)
	out = append(out, rests...)
	return out, nil
}
