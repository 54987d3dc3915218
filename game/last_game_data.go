package game

import (
	"encoding/json"
	"math/rand"
)

// LastGameData 跨局保存的数据: 庄家和各项计数
type LastGameData struct {
	banker int32
	data   map[string]int32
}

func NewLastGameData(playerCount int, rnd *rand.Rand) *LastGameData {
	return &LastGameData{
		banker: int32(rnd.Intn(playerCount)),
		data:   make(map[string]int32),
	}
}

func (lgd *LastGameData) GetBanker() int32 {
	return lgd.banker
}

// NextBanker 庄家胡牌连庄，闲家胡牌换成胡牌者坐庄，流局轮到下家
func (lgd *LastGameData) NextBanker(winner, playerCount int32) int32 {
	switch {
	case winner == SeatNull:
		lgd.banker = GetNextSeat(lgd.banker, 1, playerCount)
	case winner != lgd.banker:
		lgd.banker = winner
	}
	return lgd.banker
}

func (lgd *LastGameData) Set(key string, value int32) {
	lgd.data[key] += value
}

func (lgd *LastGameData) Get(key string) int32 {
	return lgd.data[key]
}

func (lgd *LastGameData) String() string {
	data, err := json.Marshal(lgd.data)
	if err != nil {
		return ""
	}
	return string(data)
}
