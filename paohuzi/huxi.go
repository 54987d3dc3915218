package paohuzi

// 胡息表: [牌组类型][大小写]
var huxiTable = map[GroupType][2]int{
	GroupConcealedTriplet:    {3, 6},
	GroupExposedTriplet:      {1, 3},
	GroupConcealedQuadruplet: {9, 12},
	GroupExposedQuadruplet:   {6, 9},
}

// 一二三、二七十的胡息，普通顺子为0
var specialSequenceHuxi = [2]int{3, 6}

// GroupHuxi 单个牌组的胡息。
// 坎(牌池中强制成型的三张)按偎计算；跑由偎升级而来时仍按明牌计算。
func GroupHuxi(g Group) int {
	if g.typ.IsSequence() {
		if IsSpecialSequence(g.tiles) {
			return specialSequenceHuxi[g.Rank()]
		}
		return 0
	}
	if scores, ok := huxiTable[g.typ]; ok {
		return scores[g.Rank()]
	}
	return 0
}

func TotalHuxi(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += GroupHuxi(g)
	}
	return total
}
