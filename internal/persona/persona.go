// Package persona derives a fixed descriptive tag from a user's top two liked
// policy categories.
package persona

import (
	"youthpick/internal/taxonomy"
)

// Persona is one entry of the hand-authored tag table.
type Persona struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type pair struct {
	primary   string
	secondary string
}

// pairPersonas maps a (primary, secondary) category pair to its persona.
// Pairs absent from this table fall back to the primary category's default.
var pairPersonas = map[pair]Persona{
	{"취업", "교육"}: {Code: "JOB-EDU", Title: "성장형 커리어 빌더", Description: "배우면서 일자리를 찾는 타입. 자격증과 직무 교육 공고를 가장 먼저 확인해요."},
	{"취업", "금융"}: {Code: "JOB-FIN", Title: "실속파 취준생", Description: "취업 준비와 생활비 지원을 동시에 챙기는 현실 감각의 소유자예요."},
	{"취업", "주거"}: {Code: "JOB-HOME", Title: "자립 준비 끝판왕", Description: "일자리와 보금자리를 한 번에. 독립을 구체적으로 그리고 있는 타입이에요."},
	{"취업", "창업"}: {Code: "JOB-BIZ", Title: "커리어 탐험가", Description: "취업이냐 창업이냐, 양쪽 문을 모두 열어두고 기회를 살피는 타입이에요."},
	{"창업", "금융"}: {Code: "BIZ-FIN", Title: "계산하는 창업가", Description: "자금 조달부터 따져보는 준비된 창업가. 지원금 공고를 놓치지 않아요."},
	{"창업", "취업"}: {Code: "BIZ-JOB", Title: "사이드 프로젝트 장인", Description: "본업과 내 사업 사이, 두 마리 토끼를 쫓는 에너지 넘치는 타입이에요."},
	{"창업", "교육"}: {Code: "BIZ-EDU", Title: "공부하는 사장님", Description: "창업 교육과 멘토링 프로그램을 찾아다니는 학습형 창업가예요."},
	{"주거", "금융"}: {Code: "HOME-FIN", Title: "내 집 마련 플래너", Description: "전월세 지원과 목돈 마련 정책을 꼼꼼히 비교하는 계획형이에요."},
	{"주거", "취업"}: {Code: "HOME-JOB", Title: "정착형 독립러", Description: "살 곳을 먼저, 일은 그 다음. 안정적인 기반을 다지는 중이에요."},
	{"주거", "복지"}: {Code: "HOME-WEL", Title: "동네 생활 전문가", Description: "주거 지원과 생활 복지를 두루 챙기는 알뜰한 생활인이에요."},
	{"금융", "취업"}: {Code: "FIN-JOB", Title: "통장 지키는 취준생", Description: "생활비 부담을 줄이면서 커리어를 준비하는 균형 감각의 소유자예요."},
	{"금융", "주거"}: {Code: "FIN-HOME", Title: "목돈 모으는 중", Description: "청년 적금부터 주거 지원까지, 재테크 정책 레이더가 항상 켜져 있어요."},
	{"교육", "취업"}: {Code: "EDU-JOB", Title: "스펙 업 플래너", Description: "자격증과 교육 과정을 디딤돌 삼아 취업을 향해 달리는 타입이에요."},
	{"교육", "복지"}: {Code: "EDU-WEL", Title: "배움 즐기는 생활러", Description: "교육도 문화생활도 놓칠 수 없는, 삶의 질을 챙기는 타입이에요."},
	{"복지", "금융"}: {Code: "WEL-FIN", Title: "혜택 수집가", Description: "문화 혜택부터 생활비 지원까지, 받을 수 있는 건 다 받아가는 타입이에요."},
	{"복지", "교육"}: {Code: "WEL-EDU", Title: "균형 잡힌 생활인", Description: "복지와 자기계발을 고루 챙기는 여유 있는 생활 설계자예요."},
}

// defaultPersonas covers primaries whose exact pair is not in the table.
var defaultPersonas = map[string]Persona{
	"취업": {Code: "JOB", Title: "커리어 집중형", Description: "지금 가장 큰 관심사는 일자리. 취업 지원 정책이 먼저 눈에 들어와요."},
	"창업": {Code: "BIZ", Title: "도전하는 창업가", Description: "내 사업을 향한 열정이 가득한 타입. 창업 지원 공고를 주시하고 있어요."},
	"주거": {Code: "HOME", Title: "보금자리 우선형", Description: "안정적인 주거가 최우선. 주거 지원 정책을 가장 먼저 찾아봐요."},
	"금융": {Code: "FIN", Title: "재테크 우선형", Description: "생활비와 자산 형성 지원을 중심으로 정책을 살피는 타입이에요."},
	"교육": {Code: "EDU", Title: "배움 우선형", Description: "자기계발이 곧 투자. 교육과 자격증 지원 정책에 관심이 많아요."},
	"복지": {Code: "WEL", Title: "생활 밀착형", Description: "일상의 혜택을 알뜰하게 챙기는 타입. 복지와 문화 정책을 좋아해요."},
}

// FromCounts selects the persona for the given per-category like counts.
// Categories outside the six base categories are ignored. Returns nil when
// every count is zero: a user with no likes has no persona.
//
// Ties break by the declaration order of taxonomy.BaseCategories, so the
// result is deterministic for any input.
func FromCounts(counts map[string]int) *Persona {
	primary, secondary := "", ""
	best, second := 0, 0
	for _, cat := range taxonomy.BaseCategories {
		n := counts[cat]
		if n <= 0 {
			continue
		}
		switch {
		case n > best:
			secondary, second = primary, best
			primary, best = cat, n
		case n > second:
			secondary, second = cat, n
		}
	}
	if primary == "" {
		return nil
	}
	if secondary != "" {
		if p, ok := pairPersonas[pair{primary, secondary}]; ok {
			return &p
		}
	}
	if p, ok := defaultPersonas[primary]; ok {
		return &p
	}
	return nil
}
