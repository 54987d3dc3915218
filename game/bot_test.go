package game

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotDecideSelf(t *testing.T) {
	bot := NewBot(rand.New(rand.NewSource(1)), 0.3)
	hand := paohuzi.NewHandState()

	assert.Equal(t, int32(OperateHu), bot.DecideSelf(hand, NewOperates(OperateDiscard, OperateTi, OperateHu)))
	assert.Equal(t, int32(OperateTi), bot.DecideSelf(hand, NewOperates(OperateDiscard, OperateTi, OperateWei)))
	assert.Equal(t, int32(OperateWei), bot.DecideSelf(hand, NewOperates(OperateDiscard, OperateWei)))
	assert.Equal(t, int32(OperateDiscard), bot.DecideSelf(hand, NewOperates(OperateDiscard)))
}

func TestBotDecideWait(t *testing.T) {
	bot := NewBot(rand.New(rand.NewSource(1)), 0)
	hand := paohuzi.NewHandState()

	op, _ := bot.DecideWait(hand, m(5), NewOperates(OperatePass, OperatePeng, OperatePao))
	assert.Equal(t, int32(OperatePao), op)

	opt := NewOperates(OperatePass, OperateChi)
	opt.ChiOptions = [][2]paohuzi.Tile{{m(3), m(4)}, {m(7), m(10)}}
	op, pair := bot.DecideWait(hand, m(2), opt)
	assert.Equal(t, int32(OperateChi), op)
	assert.Equal(t, [2]paohuzi.Tile{m(7), m(10)}, pair, "special sequence first")

	opt.ChiOptions = [][2]paohuzi.Tile{{m(4), m(6)}}
	op, _ = bot.DecideWait(hand, m(5), opt)
	assert.Equal(t, int32(OperatePass), op, "ordinary chi with zero probability")
}

func TestBotChooseDiscard(t *testing.T) {
	bot := NewBot(rand.New(rand.NewSource(1)), 0.3)
	hand := paohuzi.NewHandState()
	require.NoError(t, hand.Deal(m(5), m(5), m(6), M(2), M(7), M(10)))
	require.NoError(t, hand.AcquireDrawnTile(m(1)))

	d := bot.ChooseDiscard(hand)
	assert.True(t, slices.Contains(hand.LegalDiscards(), d))
	assert.Equal(t, m(1), d.Tile, "isolated edge tile goes first")
}

func TestTileValue(t *testing.T) {
	all := []paohuzi.Tile{m(5), m(5), m(6), M(2), M(7), M(10), m(1)}
	assert.Equal(t, 15, tileValue(m(5), all))
	assert.Equal(t, -3, tileValue(m(1), all))
	assert.Equal(t, 12, tileValue(M(10), all))
}
