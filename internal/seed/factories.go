package seed

import (
	"fmt"
	"math/rand"
	"time"

	"youthpick/internal/models"
	"youthpick/internal/taxonomy"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds demo domain entities and persists them to the database.
// Intended for development and testing only.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		//nolint:gosec // weak randomness is fine for demo data
		r: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var (
	regions = []string{
		taxonomy.Nationwide, "서울", "부산", "대구", "인천", "광주", "대전",
		"울산", "세종", "경기", "강원", "충북", "충남", "전북", "전남",
		"경북", "경남", "제주",
	}

	genres = []string{
		"취업/직무", "주거/자립", "금융/생활비", "창업/사업", "복지/문화", "교육/자격증",
	}

	titleTemplates = []string{
		"%s 청년 %s 지원사업",
		"%s %s 바우처",
		"%s 청년 %s 프로그램",
		"%s %s 지원금",
	}

	titleTopics = map[string][]string{
		"취업/직무":  {"일경험", "면접 정장 대여", "직무 부트캠프", "취업 성공 패키지"},
		"주거/자립":  {"월세", "전세보증금 이자", "주거 안정", "자취방 이사비"},
		"금융/생활비": {"희망적금", "생활비 대출 이자", "교통비", "자산 형성"},
		"창업/사업":  {"창업 공간", "초기 창업 패키지", "소상공인 컨설팅", "시제품 제작"},
		"복지/문화":  {"문화패스", "마음건강 바우처", "생활체육", "심리상담"},
		"교육/자격증": {"자격증 응시료", "어학시험", "직업훈련", "온라인 강의"},
	}
)

// DemoUser creates and persists one demo account. All demo accounts share the
// password "password1".
func (f *Factory) DemoUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:             gofakeit.Email(),
		Name:              gofakeit.FirstName(),
		Password:          string(hashed),
		Region:            regions[f.r.Intn(len(regions))],
		Provider:          models.ProviderLocal,
		SubscriptionLevel: models.SubscriptionFree,
		ProfileIcon:       fmt.Sprintf("avatar_%d", f.r.Intn(6)+1),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DemoPolicy creates and persists one demo policy with a realistic created_at
// spread over the last 90 days. Roughly a third of policies get a deadline.
func (f *Factory) DemoPolicy(overrides ...func(*models.Policy)) (*models.Policy, error) {
	genre := genres[f.r.Intn(len(genres))]
	region := regions[f.r.Intn(len(regions))]
	topics := titleTopics[genre]
	topic := topics[f.r.Intn(len(topics))]

	policy := &models.Policy{
		Title:      fmt.Sprintf(titleTemplates[f.r.Intn(len(titleTemplates))], region, topic),
		Summary:    gofakeit.Sentence(8),
		Link:       gofakeit.URL(),
		Genre:      genre,
		Region:     region,
		OriginalID: gofakeit.UUID(),
		ViewCount:  f.r.Intn(500),
		IsActive:   true,
		CreatedAt:  time.Now().AddDate(0, 0, -f.r.Intn(90)),
	}

	if f.r.Intn(3) == 0 {
		end := time.Now().AddDate(0, 0, f.r.Intn(120)-30)
		day := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
		policy.EndDate = &day
		policy.Period = fmt.Sprintf("~ %s", day.Format("2006.01.02"))
		policy.IsActive = policy.Active(time.Now())
	} else {
		policy.Period = "상시 모집"
	}

	for _, override := range overrides {
		override(policy)
	}

	if err := f.db.Create(policy).Error; err != nil {
		return nil, err
	}
	return policy, nil
}

// DemoActions records a random swipe history for the user over the given
// policies: likes are deduplicated, passes may repeat.
func (f *Factory) DemoActions(user *models.User, policies []models.Policy, count int) error {
	liked := make(map[uint]struct{})
	for i := 0; i < count && len(policies) > 0; i++ {
		p := policies[f.r.Intn(len(policies))]

		actionType := models.ActionPass
		if f.r.Intn(3) != 0 {
			actionType = models.ActionLike
		}
		if actionType == models.ActionLike {
			if _, ok := liked[p.ID]; ok {
				continue
			}
			liked[p.ID] = struct{}{}
		}

		action := models.UserAction{
			UserEmail: user.Email,
			PolicyID:  p.ID,
			Type:      actionType,
			CreatedAt: time.Now().Add(-time.Duration(f.r.Intn(72)) * time.Hour),
		}
		if err := f.db.Create(&action).Error; err != nil {
			return err
		}
	}
	return nil
}
