package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
	"github.com/kevin-chtw/tw_paohuzi/utils"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Table 一桌三人，连续打多局
type Table struct {
	conf         *Config
	rnd          *rand.Rand
	deciders     []Decider
	lastGameData *LastGameData
	scorelator   *Scorelator
	manual       *Manual
	curGameCount int
	results      []*Result
}

func NewTable(conf *Config) *Table {
	rnd := rand.New(rand.NewSource(conf.Seed))
	t := &Table{
		conf:         conf,
		rnd:          rnd,
		deciders:     make([]Decider, paohuzi.NP3),
		lastGameData: NewLastGameData(paohuzi.NP3, rnd),
		scorelator:   NewScorelator(paohuzi.NP3),
		manual:       newManual(conf.ManualDir, conf.ManualName),
		results:      make([]*Result, 0),
	}
	for i := range t.deciders {
		t.deciders[i] = NewBot(rnd, conf.ChiProbability)
	}
	return t
}

func (t *Table) GetPlayerCount() int32 {
	return int32(len(t.deciders))
}

func (t *Table) IsValidSeat(seat int32) bool {
	return seat >= 0 && seat < t.GetPlayerCount()
}

// SetDecider 替换座位上的决策者，默认是机器人
func (t *Table) SetDecider(seat int32, d Decider) error {
	if !t.IsValidSeat(seat) {
		return fmt.Errorf("%w: %d", ErrInvalidSeat, seat)
	}
	t.deciders[seat] = d
	return nil
}

func (t *Table) GetBanker() int32 {
	return t.lastGameData.GetBanker()
}

func (t *Table) GetTotals() []int64 {
	return t.scorelator.GetTotals()
}

func (t *Table) GetResults() []*Result {
	return t.results
}

// Run 按配置的局数连续打
func (t *Table) Run(ctx context.Context) ([]*Result, error) {
	for t.curGameCount < t.conf.Rounds {
		if _, err := t.PlayRound(ctx); err != nil {
			return t.results, err
		}
	}
	return t.results, nil
}

func (t *Table) PlayRound(ctx context.Context) (*Result, error) {
	dealer, err := t.newDealer()
	if err != nil {
		return nil, err
	}

	t.curGameCount++
	banker := t.lastGameData.GetBanker()
	logger.Log.Infof("round %d begin, banker %d", t.curGameCount, banker)

	play := NewPlay(dealer, t.deciders, banker)
	result, err := play.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("round %d: %w", t.curGameCount, err)
	}
	result.Round = t.curGameCount

	t.scorelator.Apply(result)
	t.lastGameData.NextBanker(result.Winner, t.GetPlayerCount())
	t.lastGameData.Set(result.Reason.String(), 1)
	t.results = append(t.results, result)

	if st, err := result.ToStruct(); err == nil {
		logger.Log.Infof("round %d result: %s", result.Round, utils.ToJSON(st))
	} else {
		logger.Log.Errorf("round %d result: %v", result.Round, err)
	}
	logger.Log.Debugf("stats: %s", t.lastGameData)
	return result, nil
}

func (t *Table) newDealer() (*Dealer, error) {
	dealer := NewDealer(t.rnd)
	if !t.manual.enabled() {
		dealer.Initialize()
		return dealer, nil
	}
	tiles, err := t.manual.load(AllTiles(), int(t.GetPlayerCount()), paohuzi.HandCount, t.rnd)
	if err != nil {
		return nil, err
	}
	dealer.InitializeWith(tiles)
	return dealer, nil
}
