package topic

import "strings"

const (
	UntitledTopic = "Untitled Chat"
	DefaultTopic  = "오늘의 감성 음악"
)

type rule struct {
	Keyword string
	Topic   string
}

// Evaluated top to bottom; the first keyword contained in the input wins.
var fallbackRules = []rule{
	{Keyword: "비", Topic: "비 오는 날 감성"},
	{Keyword: "집중", Topic: "집중용 재즈"},
	{Keyword: "산책", Topic: "산책할 때 듣는 음악"},
	{Keyword: "퇴근", Topic: "퇴근길 플레이리스트"},
	{Keyword: "밤", Topic: "밤 감성 음악"},
	{Keyword: "사랑", Topic: "로맨틱한 분위기 음악"},
}

// Fallback maps text to a preset topic with case-sensitive substring matching.
func Fallback(text string) string {
	if strings.TrimSpace(text) == "" {
		return UntitledTopic
	}
	for _, r := range fallbackRules {
		if strings.Contains(text, r.Keyword) {
			return r.Topic
		}
	}
	return DefaultTopic
}
