package paohuzi

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kevin-chtw/tw_paohuzi/utils"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Discard 一种合法的出牌方式
type Discard struct {
	Tile        Tile
	FromPending bool // 打出摸到的牌；否则打出手牌，摸到的牌收入手中
}

// HandState 单个玩家的牌: 手牌、刚摸到还未处理的牌、已成型的牌组。
// 摸到的牌不直接进手牌，必须先决定偎/提/胡或打出。
type HandState struct {
	concealed []Tile
	pending   Tile
	groups    []Group
}

func NewHandState() *HandState {
	return &HandState{
		concealed: make([]Tile, 0, HandCount+1),
		groups:    make([]Group, 0),
	}
}

// Deal 起手发牌，直接进手牌
func (h *HandState) Deal(tiles ...Tile) error {
	for _, t := range tiles {
		if !t.IsValid() {
			return fmt.Errorf("%w: %v", ErrInvalidTileValue, t)
		}
	}
	h.concealed = append(h.concealed, tiles...)
	return nil
}

func (h *HandState) Clear() {
	h.concealed = h.concealed[:0]
	h.pending = TileNull
	h.groups = h.groups[:0]
}

// Concealed 按显示顺序排好的手牌副本
func (h *HandState) Concealed() []Tile {
	return sortedClone(h.concealed)
}

func (h *HandState) ConcealedCount() int {
	return len(h.concealed)
}

func (h *HandState) Pending() (Tile, bool) {
	return h.pending, h.HasPending()
}

func (h *HandState) HasPending() bool {
	return h.pending != TileNull
}

func (h *HandState) Groups() []Group {
	return slices.Clone(h.groups)
}

func (h *HandState) TotalCount() int {
	n := len(h.concealed) + groupTileCount(h.groups)
	if h.HasPending() {
		n++
	}
	return n
}

// CountExact 手牌中与t完全相同的张数，不含摸到的牌
func (h *HandState) CountExact(t Tile) int {
	return utils.CountElement(h.concealed, t)
}

func (h *HandState) HasTile(t Tile) bool {
	return slices.Contains(h.concealed, t)
}

func (h *HandState) Snapshot() *HandState {
	return &HandState{
		concealed: slices.Clone(h.concealed),
		pending:   h.pending,
		groups:    slices.Clone(h.groups),
	}
}

// handTiles 手牌加摸到的牌
func (h *HandState) handTiles() []Tile {
	tiles := slices.Clone(h.concealed)
	if h.HasPending() {
		tiles = append(tiles, h.pending)
	}
	return tiles
}

// allTiles 所有属于该玩家的牌，包括牌组中的
func (h *HandState) allTiles() []Tile {
	tiles := h.handTiles()
	for _, g := range h.groups {
		tiles = append(tiles, g.tiles...)
	}
	return tiles
}

func (h *HandState) weiGroupIndex(t Tile) int {
	return slices.IndexFunc(h.groups, func(g Group) bool {
		return g.typ == GroupConcealedTriplet && g.Key() == t
	})
}

func (h *HandState) hasWei(t Tile) bool {
	return h.weiGroupIndex(t) >= 0
}

// removeWei 按牌值移除偎
func (h *HandState) removeWei(t Tile) {
	if idx := h.weiGroupIndex(t); idx >= 0 {
		h.groups = slices.Delete(h.groups, idx, idx+1)
	}
}

func (h *HandState) CanFormConcealedTriplet() bool {
	return h.HasPending() && h.CountExact(h.pending) == 2
}

func (h *HandState) CanFormConcealedQuadruplet() bool {
	if !h.HasPending() {
		return false
	}
	return h.CountExact(h.pending) == 3 || h.hasWei(h.pending)
}

func (h *HandState) CanFormExposedTriplet(discard Tile) bool {
	return discard.IsValid() && h.CountExact(discard) >= 2
}

func (h *HandState) CanFormExposedQuadruplet(discard Tile) bool {
	if !discard.IsValid() {
		return false
	}
	return h.CountExact(discard) == 3 || h.hasWei(discard)
}

// EnumerateSequenceResponses 能与discard组成顺子的两张手牌组合，同样的组合只返回一次
func (h *HandState) EnumerateSequenceResponses(discard Tile) [][2]Tile {
	if !discard.IsValid() {
		return nil
	}
	tiles := h.Concealed()
	seen := make(map[[2]Tile]struct{})
	var res [][2]Tile
	for i := 0; i < len(tiles); i++ {
		if tiles[i].rank != discard.rank {
			continue
		}
		for j := i + 1; j < len(tiles); j++ {
			pair := [2]Tile{tiles[i], tiles[j]}
			if _, ok := seen[pair]; ok {
				continue
			}
			if IsValidSequence([]Tile{discard, pair[0], pair[1]}) {
				seen[pair] = struct{}{}
				res = append(res, pair)
			}
		}
	}
	return res
}

// LegalDiscards 有摸到的牌时，可打出摸到的牌，或打出任意一张手牌
func (h *HandState) LegalDiscards() []Discard {
	var res []Discard
	if h.HasPending() {
		res = append(res, Discard{Tile: h.pending, FromPending: true})
	}
	for _, t := range slices.Compact(h.Concealed()) {
		res = append(res, Discard{Tile: t})
	}
	return res
}

func (h *HandState) AcquireDrawnTile(t Tile) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidTileValue, t)
	}
	if h.HasPending() {
		return fmt.Errorf("%w: holding %v, drew %v", ErrDuplicatePendingDraw, h.pending, t)
	}
	h.pending = t
	return nil
}

// FormConcealedTriplet 偎: 摸到的牌加两张手牌
func (h *HandState) FormConcealedTriplet() error {
	if !h.CanFormConcealedTriplet() {
		return h.illegal("wei", h.pending)
	}
	t := h.pending
	h.concealed = utils.RemoveElements(h.concealed, t, 2)
	h.pending = TileNull
	h.groups = append(h.groups, mustGroup(GroupConcealedTriplet, MakeTiles(t, 3)...))
	logger.Log.Debugf("wei %v, hand: %v", t, h)
	return nil
}

// FormConcealedQuadruplet 提: 已偎的牌优先升级，否则用三张手牌
func (h *HandState) FormConcealedQuadruplet() error {
	if !h.CanFormConcealedQuadruplet() {
		return h.illegal("ti", h.pending)
	}
	t := h.pending
	h.takeTriplet(t)
	h.pending = TileNull
	h.groups = append(h.groups, mustGroup(GroupConcealedQuadruplet, MakeTiles(t, 4)...))
	logger.Log.Debugf("ti %v, hand: %v", t, h)
	return nil
}

func (h *HandState) FormExposedTriplet(discard Tile) error {
	if !h.CanFormExposedTriplet(discard) {
		return h.illegal("peng", discard)
	}
	h.concealed = utils.RemoveElements(h.concealed, discard, 2)
	h.groups = append(h.groups, mustGroup(GroupExposedTriplet, MakeTiles(discard, 3)...))
	logger.Log.Debugf("peng %v, hand: %v", discard, h)
	return nil
}

// FormExposedQuadruplet 跑: 来源同提，但算明牌
func (h *HandState) FormExposedQuadruplet(discard Tile) error {
	if !h.CanFormExposedQuadruplet(discard) {
		return h.illegal("pao", discard)
	}
	h.takeTriplet(discard)
	h.groups = append(h.groups, mustGroup(GroupExposedQuadruplet, MakeTiles(discard, 4)...))
	logger.Log.Debugf("pao %v, hand: %v", discard, h)
	return nil
}

// takeTriplet 拿出三张t: 有偎先拆偎，否则从手牌取
func (h *HandState) takeTriplet(t Tile) {
	if h.hasWei(t) {
		h.removeWei(t)
		return
	}
	h.concealed = utils.RemoveElements(h.concealed, t, 3)
}

// FormSequence 吃: discard加两张手牌组成顺子
func (h *HandState) FormSequence(discard Tile, pair [2]Tile) error {
	if !utils.ContainsAll(h.concealed, pair[:]) {
		return fmt.Errorf("%w: %s", ErrTileNotOwned, TilesName(pair[:]))
	}
	tiles := []Tile{discard, pair[0], pair[1]}
	g, err := NewGroup(GroupSequence, tiles...)
	if err != nil {
		logger.Log.Warnf("chi %s rejected: %v", TilesName(tiles), err)
		return err
	}
	h.concealed = utils.RemoveElements(h.concealed, pair[0], 1)
	h.concealed = utils.RemoveElements(h.concealed, pair[1], 1)
	h.groups = append(h.groups, g)
	logger.Log.Debugf("chi %v, hand: %v", g, h)
	return nil
}

func (h *HandState) DiscardPendingTile() (Tile, error) {
	if !h.HasPending() {
		return TileNull, fmt.Errorf("%w: no drawn tile", ErrTileNotOwned)
	}
	t := h.pending
	h.pending = TileNull
	return t, nil
}

// DiscardConcealedTile 打出一张手牌，摸到的牌(如果有)收入手牌
func (h *HandState) DiscardConcealedTile(t Tile) error {
	if !h.HasTile(t) {
		return fmt.Errorf("%w: %v", ErrTileNotOwned, t)
	}
	h.concealed = utils.RemoveElements(h.concealed, t, 1)
	if h.HasPending() {
		h.concealed = append(h.concealed, h.pending)
		h.pending = TileNull
	}
	return nil
}

func (h *HandState) illegal(op string, t Tile) error {
	logger.Log.Warnf("illegal %s with %v, hand: %v", op, t, h)
	return fmt.Errorf("%w: %s %v", ErrIllegalGroupFormation, op, t)
}

func (h *HandState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "手牌(%d张): %s", len(h.concealed), TilesName(h.Concealed()))
	if h.HasPending() {
		fmt.Fprintf(&b, " | 摸到: [%v]", h.pending)
	}
	if len(h.groups) > 0 {
		names := make([]string, 0, len(h.groups))
		for _, g := range h.groups {
			names = append(names, g.String())
		}
		fmt.Fprintf(&b, " | 牌组: %s", strings.Join(names, " "))
	}
	return b.String()
}
