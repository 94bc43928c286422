// Package taxonomy holds the fixed region and category vocabulary shared by
// the catalog, mypage, recommendation, and admin layers. All tables are
// immutable; mutating them is a programming error.
package taxonomy

import (
	"fmt"
	"strings"
)

// Nationwide is the canonical label for policies without a regional scope.
const Nationwide = "전국"

// frontRegions maps front-end map-widget identifiers to canonical two-character
// region labels.
var frontRegions = map[string]string{
	"national":        Nationwide,
	"detail_seoul":    "서울",
	"detail_gyeonggi": "경기",
	"detail_incheon":  "인천",
	"gangwon":         "강원",
	"chungbug":        "충북",
	"chungnam":        "충남",
	"detail_chungnam": "충남",
	"jeonbug":         "전북",
	"jeonnam":         "전남",
	"detail_jeonnam":  "전남",
	"gyeongbug":       "경북",
	"detail_gyeongbug": "경북",
	"gyeongnam":        "경남",
	"detail_gyeongnam": "경남",
	"jeju":            "제주",
	"detail_busan":    "부산",
	"detail_daegu":    "대구",
	"detail_daejun":   "대전",
	"detail_gwangju":  "광주",
	"detail_ulsan":    "울산",
	"detail_saejong":  "세종",
}

// NormalizeRegion maps an arbitrary region input to its canonical label.
// Front-end widget identifiers resolve through the fixed table; long-form
// administrative names ("전라남도") abbreviate to their first two characters.
// Empty input yields the nationwide label. The function is total: every input
// produces a non-empty label.
func NormalizeRegion(input string) string {
	if input == "" {
		return Nationwide
	}
	if label, ok := frontRegions[input]; ok {
		return label
	}
	runes := []rune(input)
	if len(runes) >= 2 {
		return string(runes[:2])
	}
	return input
}

// frontToGenre maps front-end category tokens to the genre labels stored on
// policies.
var frontToGenre = map[string]string{
	"취업": "취업/직무",
	"주거": "주거/자립",
	"금융": "금융/생활비",
	"창업": "창업/사업",
	"복지": "복지/문화",
	"교육": "교육/자격증",
}

// FrontToGenre maps a front-end category token to its database genre label.
// Unknown tokens pass through unchanged.
func FrontToGenre(category string) string {
	if genre, ok := frontToGenre[category]; ok {
		return genre
	}
	return category
}

// GenreToFront is the reverse mapping, used when building deep links.
func GenreToFront(genre string) (string, bool) {
	for front, g := range frontToGenre {
		if g == genre {
			return front, true
		}
	}
	return "", false
}

// genreColors assigns the display color for each genre. Both short and
// long-form labels are present so raw imported data renders correctly.
var genreColors = map[string]string{
	"주거": "#F48245", "주거/자립": "#F48245",
	"취업": "#4A9EA8", "취업/직무": "#4A9EA8",
	"금융": "#D9B36C", "금융/생활비": "#D9B36C",
	"복지": "#9F7AEA", "복지/문화": "#9F7AEA",
	"창업": "#FF5A5F", "창업/사업": "#FF5A5F",
	"교육": "#4299E1", "교육/자격증": "#4299E1",
}

// DefaultColor is returned for genres outside the fixed palette.
const DefaultColor = "#777777"

// GenreColor returns the display color code for a genre label.
func GenreColor(genre string) string {
	if c, ok := genreColors[genre]; ok {
		return c
	}
	return DefaultColor
}

// BaseCategories are the six interest categories used for statistics and
// persona scoring. Order matters: it is the documented tie-break when two
// categories score equally.
var BaseCategories = []string{"취업", "창업", "주거", "금융", "교육", "복지"}

// Fallback bucket for genres outside the six base categories.
const CategoryOther = "기타"

// BaseCategory classifies a genre label into one of the six base categories
// by substring match, or CategoryOther when none matches.
func BaseCategory(genre string) string {
	for _, cat := range BaseCategories {
		if strings.Contains(genre, cat) {
			return cat
		}
	}
	return CategoryOther
}

// ImageSlug picks the card image family for a genre.
func ImageSlug(genre string) string {
	switch {
	case strings.Contains(genre, "주거"):
		return "housing"
	case strings.Contains(genre, "취업"), strings.Contains(genre, "일자리"):
		return "job"
	case strings.Contains(genre, "금융"):
		return "finance"
	case strings.Contains(genre, "창업"):
		return "startup"
	case strings.Contains(genre, "교육"):
		return "growth"
	default:
		return "welfare"
	}
}

// ImageURL builds the deterministic placeholder card image path for a policy.
// The variant index is derived from the policy ID so repeated renders of the
// same card always show the same image.
func ImageURL(genre string, policyID uint) string {
	return fmt.Sprintf("/static/images/card_images/%s_%d.webp", ImageSlug(genre), policyID%5+1)
}
