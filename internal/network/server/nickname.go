package server

import (
	"math/rand"
)

// 昵称词库
var (
	adjectives = []string{
		"Lucky", "Bold", "Sly", "Calm", "Swift",
		"Sharp", "Quiet", "Brave", "Witty", "Smooth",
		"Golden", "Stormy", "Clever", "Fancy", "Steady",
		"Daring", "Mellow", "Wild", "Cosmic", "Velvet",
	}

	nouns = []string{
		"Ace", "Shark", "Fox", "Panda", "Tiger",
		"Otter", "Raven", "Wolf", "Falcon", "Lynx",
		"Badger", "Cobra", "Heron", "Moose", "Gecko",
		"Puma", "Bison", "Crane", "Viper", "Dealer",
	}
)

// GenerateNickname 生成随机昵称
func GenerateNickname() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return adj + noun
}
