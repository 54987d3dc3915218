package utils

import (
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ToJSON 以单行json输出proto消息，失败时返回空串
func ToJSON(msg proto.Message) string {
	data, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(msg)
	if err != nil {
		logger.Log.Error(err)
		return ""
	}
	return string(data)
}

// RemoveElements 删除最多count个elem，返回新切片，不修改原切片
func RemoveElements[T comparable](s []T, elem T, count int) []T {
	res := make([]T, 0, len(s))
	for _, v := range s {
		if v == elem && count > 0 {
			count--
			continue
		}
		res = append(res, v)
	}
	return res
}

func CountElement[T comparable](s []T, elem T) int {
	count := 0
	for _, v := range s {
		if v == elem {
			count++
		}
	}
	return count
}

// ContainsAll 判断sub(按多重集)是否全部包含在s中
func ContainsAll[T comparable](s, sub []T) bool {
	need := make(map[T]int, len(sub))
	for _, v := range sub {
		need[v]++
	}
	for v, n := range need {
		if CountElement(s, v) < n {
			return false
		}
	}
	return true
}
