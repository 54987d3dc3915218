package paohuzi

import "fmt"

// Points 胡息换算分数: 不足15胡息为0，否则 1 + (胡息-15)/3
func Points(huxi int) int {
	if huxi < MinHuxiToWin {
		return 0
	}
	return BasePoint + (huxi-MinHuxiToWin)/HuxiPerExtraPoint
}

func ScoreDescription(huxi int) string {
	if huxi < MinHuxiToWin {
		return fmt.Sprintf("%d胡息(不足%d胡息，不能胡牌)", huxi, MinHuxiToWin)
	}
	extra := (huxi - MinHuxiToWin) / HuxiPerExtraPoint
	if extra == 0 {
		return fmt.Sprintf("%d胡息 -> %d分(基础分)", huxi, Points(huxi))
	}
	return fmt.Sprintf("%d胡息 -> %d分(基础%d分 + 额外%d分)", huxi, Points(huxi), BasePoint, extra)
}
