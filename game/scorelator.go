package game

import (
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

type ScoreNode struct {
	Round  int
	Winner int32
	Huxi   int
	Scores []int64
}

// Scorelator 积分账本，只给胡牌者加分
type Scorelator struct {
	totals []int64
	scores []*ScoreNode
}

func NewScorelator(playerCount int32) *Scorelator {
	return &Scorelator{
		totals: make([]int64, playerCount),
		scores: make([]*ScoreNode, 0),
	}
}

func (s *Scorelator) Apply(r *Result) *ScoreNode {
	scores := make([]int64, len(s.totals))
	if !r.IsDraw() {
		scores[r.Winner] = int64(r.Points)
	}
	for i, v := range scores {
		s.totals[i] += v
	}
	sn := &ScoreNode{
		Round:  r.Round,
		Winner: r.Winner,
		Huxi:   r.Huxi,
		Scores: scores,
	}
	s.scores = append(s.scores, sn)
	logger.Log.Infof("round %d scores %v, totals %v", r.Round, scores, s.totals)
	return sn
}

func (s *Scorelator) GetTotals() []int64 {
	return slices.Clone(s.totals)
}

func (s *Scorelator) GetScores() []*ScoreNode {
	return slices.Clone(s.scores)
}

func (s *Scorelator) RemoveLastScore() *ScoreNode {
	if len(s.scores) == 0 {
		return nil
	}
	sn := s.scores[len(s.scores)-1]
	s.scores = s.scores[:len(s.scores)-1]
	for i, v := range sn.Scores {
		s.totals[i] -= v
	}
	return sn
}
