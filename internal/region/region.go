// Package region holds the fixed set of supported regions (the 14 시군 of
// 전북특별자치도) and the address helpers used for coarse locality matching.
package region

import (
	"strings"
)

// Region is a supported 시/군 with its 읍/면/동 subdivisions.
type Region struct {
	Name       string
	Subregions []string
}

// Base returns the name without its 시/군 suffix ("김제시" -> "김제").
func (r Region) Base() string {
	return trimAdminSuffix(r.Name, "시", "군")
}

// supported is ordered; lookups that can match several regions resolve to the
// first one listed.
var supported = []Region{
	{"고창군", []string{"고창읍", "고수면", "공음면", "대산면", "무장면", "부안면", "상하면", "성내면", "성송면", "신림면", "심원면", "아산면", "안남면", "해리면", "흥덕면"}},
	{"군산시", []string{"나운동", "나포면", "대야면", "미성동", "옥구읍", "옥산면", "옥서면", "임피면", "회현면", "개정동", "소룡동", "월명동"}},
	{"김제시", []string{"검산동", "교동", "금산면", "만경읍", "백구면", "백산면", "봉남면", "부량면", "성덕면", "신풍동", "용지면", "죽산면", "청하면", "황산면"}},
	{"남원시", []string{"금동", "도통동", "왕정동", "향교동", "운봉읍", "산내면", "주천면", "송동면", "주생면", "이백면", "대산면", "인월면", "아영면", "동충동"}},
	{"무주군", []string{"무주읍", "안성면", "부남면", "설천면", "적상면"}},
	{"부안군", []string{"부안읍", "계화면", "동진면", "변산면", "보안면", "상서면", "위도면", "주산면", "줄포면", "진서면", "하서면", "행안면"}},
	{"순창군", []string{"순창읍", "구림면", "금과면", "동계면", "복흥면", "쌍치면", "유등면", "인계면", "적성면", "팔덕면"}},
	{"완주군", []string{"삼례읍", "봉동읍", "용진읍", "상관면", "구이면", "소양면", "이서면", "고산면", "비봉면", "운주면", "화산면", "경천면"}},
	{"익산시", []string{"중앙동", "남중동", "삼성동", "평화동", "영등동", "팔봉동", "춘포면", "왕궁면", "삼기면", "용동면", "용안면", "망성면", "함열읍", "웅포면", "황등면"}},
	{"임실군", []string{"임실읍", "강진면", "덕치면", "삼계면", "성수면", "오수면", "운암면", "신평면", "청웅면", "지사면"}},
	{"장수군", []string{"장수읍", "산서면", "번암면", "계남면", "계북면", "천천면", "장계면"}},
	{"전주시", []string{"덕진구", "완산구"}},
	{"정읍시", []string{"수성동", "연지동", "농소동", "북면", "산외면", "소성면", "신태인읍", "영원면", "옹동면", "칠보면", "태인면", "흥덕면"}},
	{"진안군", []string{"진안읍", "용담면", "동향면", "상전면", "백운면", "성수면", "안천면", "마령면", "부귀면"}},
}

// Names returns the supported region names in catalog order.
func Names() []string {
	out := make([]string, len(supported))
	for i, r := range supported {
		out[i] = r.Name
	}
	return out
}

// Lookup returns the region with the exact canonical name.
func Lookup(name string) (Region, bool) {
	for _, r := range supported {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// Normalize maps user input to a canonical region name. It tries, in order:
// the exact name, the suffix-less alias ("김제"), a 읍/면/동 name ("부량면"),
// and finally a substring match ("전북 김제", "김제시 금산면").
func Normalize(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	for _, r := range supported {
		if r.Name == input || r.Base() == input {
			return r.Name, true
		}
	}
	for _, r := range supported {
		for _, sub := range r.Subregions {
			if sub == input {
				return r.Name, true
			}
		}
	}
	for _, r := range supported {
		if strings.Contains(input, r.Base()) {
			return r.Name, true
		}
	}
	return "", false
}

// ExtractFromText finds the region mentioned earliest in free text, e.g.
// "10월에 김제에서 사과 수확하고 싶어" -> "김제시". Subregion names are only
// consulted when no region name or alias appears.
func ExtractFromText(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	best, bestPos := "", -1
	for _, r := range supported {
		pos := strings.Index(text, r.Base())
		if pos < 0 {
			continue
		}
		if bestPos < 0 || pos < bestPos {
			best, bestPos = r.Name, pos
		}
	}
	if bestPos >= 0 {
		return best, true
	}
	for _, r := range supported {
		for _, sub := range r.Subregions {
			if strings.Contains(text, sub) {
				return r.Name, true
			}
		}
	}
	return "", false
}

func trimAdminSuffix(name string, suffixes ...string) string {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) && len(name) > len(s) {
			return strings.TrimSuffix(name, s)
		}
	}
	return name
}
