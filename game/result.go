package game

import (
	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
	"google.golang.org/protobuf/types/known/structpb"
)

// Result 一局的结果
type Result struct {
	Round       int
	Reason      EndReason
	Banker      int32
	Winner      int32 // 流局为SeatNull
	Huxi        int
	Points      int
	Combination *paohuzi.Combination
	Hands       []string
	RestCount   int
	Actions     int
}

func (r *Result) IsDraw() bool {
	return r.Winner == SeatNull
}

// ToStruct 转成structpb，用于日志输出
func (r *Result) ToStruct() (*structpb.Struct, error) {
	hands := make([]any, 0, len(r.Hands))
	for _, h := range r.Hands {
		hands = append(hands, h)
	}
	fields := map[string]any{
		"round":      r.Round,
		"reason":     r.Reason.String(),
		"banker":     r.Banker,
		"winner":     r.Winner,
		"huxi":       r.Huxi,
		"points":     r.Points,
		"rest_count": r.RestCount,
		"actions":    r.Actions,
		"hands":      hands,
	}
	if r.Combination != nil {
		fields["combination"] = combinationFields(r.Combination)
	}
	return structpb.NewStruct(fields)
}

func combinationFields(c *paohuzi.Combination) map[string]any {
	groups := func(gs []paohuzi.Group) []any {
		res := make([]any, 0, len(gs))
		for _, g := range gs {
			res = append(res, map[string]any{
				"type":  g.Type().String(),
				"tiles": paohuzi.TilesName(g.Tiles()),
				"huxi":  paohuzi.GroupHuxi(g),
			})
		}
		return res
	}
	return map[string]any{
		"committed": groups(c.Committed),
		"forced":    groups(c.Forced),
		"sequences": groups(c.Sequences),
		"pair":      paohuzi.TilesName(c.Pair),
	}
}
