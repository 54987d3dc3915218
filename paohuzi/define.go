package paohuzi

import "slices"

const (
	NP3 = 3 // 跑胡子固定三人

	HandCount    = 20 // 初始手牌数
	WinTileCount = 21 // 胡牌时的总张数(手牌+摸牌+牌组)

	MinHuxiToWin      = 15 // 起胡胡息
	BasePoint         = 1  // 基础分
	HuxiPerExtraPoint = 3  // 每3胡息加1分
)

const (
	MinValue = 1
	MaxValue = 10
)

// 特殊顺子: 一二三、二七十
var specialSequences = [][3]int{
	{1, 2, 3},
	{2, 7, 10},
}

func isSpecialValues(values [3]int) bool {
	for _, s := range specialSequences {
		if s == values {
			return true
		}
	}
	return false
}

func isRunValues(values [3]int) bool {
	return values[1] == values[0]+1 && values[2] == values[1]+1
}

func SpecialSequences() [][3]int {
	return slices.Clone(specialSequences)
}
