package topic

import (
	"fmt"
	"strings"
)

const noInformation = "정보 없음"

// NearbySong is music playing or popular around a spatial session.
type NearbySong struct {
	Title  string
	Artist string
}

// SpaceHint describes where a SPACE session was started.
type SpaceHint struct {
	PlaceName string
	Address   string
	Lat       *float64
	Lng       *float64
	Nearby    []NearbySong
}

func (h SpaceHint) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "장소: %s\n", orNoInformation(h.PlaceName))
	fmt.Fprintf(&b, "주소: %s\n", orNoInformation(h.Address))
	if h.Lat != nil && h.Lng != nil {
		fmt.Fprintf(&b, "좌표: %.6f, %.6f\n", *h.Lat, *h.Lng)
	} else {
		fmt.Fprintf(&b, "좌표: %s\n", noInformation)
	}
	fmt.Fprintf(&b, "주변 음악: %s", NearbySummary(h.Nearby))
	return b.String()
}

// NearbySummary renders "title - artist" pairs joined by commas.
func NearbySummary(songs []NearbySong) string {
	parts := make([]string, 0, len(songs))
	for _, s := range songs {
		if s.Title == "" && s.Artist == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s - %s", s.Title, s.Artist))
	}
	if len(parts) == 0 {
		return noInformation
	}
	return strings.Join(parts, ", ")
}

// ImageHint lists attached image references for the prompt.
func ImageHint(imageUrls []string) string {
	if len(imageUrls) == 0 {
		return ""
	}
	return "첨부 이미지: " + strings.Join(imageUrls, ", ")
}

func BuildPrompt(inputText, auxiliary string) string {
	var b strings.Builder
	b.WriteString("다음 문장의 핵심 주제를 한 문장으로 요약해줘. ")
	b.WriteString("꼭 필요한 문장 기호가 아닌 이상 넣지 마. ")
	b.WriteString("음악 분위기나 상황 중심으로 간결하게 표현해줘. ")
	fmt.Fprintf(&b, "문장: \"%s\"", inputText)
	if aux := strings.TrimSpace(auxiliary); aux != "" {
		b.WriteString("\n참고 정보:\n")
		b.WriteString(aux)
	}
	return b.String()
}

func orNoInformation(s string) string {
	if strings.TrimSpace(s) == "" {
		return noInformation
	}
	return s
}
