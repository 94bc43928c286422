package service

import (
	"context"
	"testing"

	"youthpick/internal/models"
	"youthpick/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionService_Record(t *testing.T) {
	tests := []struct {
		name            string
		input           RecordActionInput
		setup           func(*actionRepoStub)
		expectedMessage string
		expectedError   bool
	}{
		{
			name:            "new like",
			input:           RecordActionInput{UserEmail: "kim@example.com", PolicyID: 1, Type: "like"},
			expectedMessage: "Action saved",
		},
		{
			name:  "duplicate like reports already liked",
			input: RecordActionInput{UserEmail: "kim@example.com", PolicyID: 1, Type: "like"},
			setup: func(s *actionRepoStub) {
				s.recordLikeFn = func(context.Context, string, uint) (bool, error) { return false, nil }
			},
			expectedMessage: "Already liked",
		},
		{
			name:            "pass",
			input:           RecordActionInput{UserEmail: "kim@example.com", PolicyID: 1, Type: "pass"},
			expectedMessage: "Action saved",
		},
		{
			name:            "unlike",
			input:           RecordActionInput{UserEmail: "kim@example.com", PolicyID: 1, Type: "unlike"},
			expectedMessage: "Like removed",
		},
		{
			name:          "unknown type rejected",
			input:         RecordActionInput{UserEmail: "kim@example.com", PolicyID: 1, Type: "superlike"},
			expectedError: true,
		},
		{
			name:          "missing email rejected",
			input:         RecordActionInput{PolicyID: 1, Type: "like"},
			expectedError: true,
		},
		{
			name:          "missing policy rejected",
			input:         RecordActionInput{UserEmail: "kim@example.com", Type: "like"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actionRepo := noopActionRepo()
			if tt.setup != nil {
				tt.setup(actionRepo)
			}
			svc := NewActionService(actionRepo, noopPolicyRepo())

			msg, err := svc.Record(context.Background(), tt.input)
			if tt.expectedError {
				require.Error(t, err)
				var appErr *models.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedMessage, msg)
			}
		})
	}
}

func likeActions(policyIDs ...uint) []models.UserAction {
	actions := make([]models.UserAction, 0, len(policyIDs))
	for _, id := range policyIDs {
		actions = append(actions, models.UserAction{UserEmail: "kim@example.com", PolicyID: id, Type: models.ActionLike})
	}
	return actions
}

func likesServiceWith(actions []models.UserAction, policies []models.Policy) *ActionService {
	actionRepo := noopActionRepo()
	actionRepo.listLikesFn = func(context.Context, string, int, int) ([]models.UserAction, error) {
		return actions, nil
	}
	policyRepo := noopPolicyRepo()
	policyRepo.listFn = func(_ context.Context, f repository.PolicyFilter, _ string, _, _ int) ([]models.Policy, error) {
		idSet := make(map[uint]struct{}, len(f.IDs))
		for _, id := range f.IDs {
			idSet[id] = struct{}{}
		}
		var out []models.Policy
		for _, p := range policies {
			if _, ok := idSet[p.ID]; ok {
				out = append(out, p)
			}
		}
		return out, nil
	}
	return NewActionService(actionRepo, policyRepo)
}

func TestActionService_Likes_Pagination(t *testing.T) {
	// 5 liked policies, page size 2 -> 3 pages.
	actions := likeActions(5, 4, 3, 2, 1)
	policies := []models.Policy{
		{ID: 1, Title: "P1"}, {ID: 2, Title: "P2"}, {ID: 3, Title: "P3"},
		{ID: 4, Title: "P4"}, {ID: 5, Title: "P5"},
	}
	svc := likesServiceWith(actions, policies)

	tests := []struct {
		name         string
		page         int
		expectedPage int
		expectedIDs  []uint
	}{
		{"first page", 1, 1, []uint{5, 4}},
		{"zero clamps up", 0, 1, []uint{5, 4}},
		{"middle page", 2, 2, []uint{3, 2}},
		{"last page is short", 3, 3, []uint{1}},
		{"overflow clamps down", 9, 3, []uint{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.Likes(context.Background(), LikesInput{
				UserEmail: "kim@example.com",
				Page:      tt.page,
				Limit:     2,
			})
			require.NoError(t, err)
			assert.Equal(t, int64(5), page.TotalCount)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, tt.expectedPage, page.CurrentPage)

			ids := make([]uint, 0, len(page.Policies))
			for _, p := range page.Policies {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestActionService_Likes_DedupesRepeatedPolicy(t *testing.T) {
	actions := likeActions(3, 1, 3, 2)
	policies := []models.Policy{{ID: 1, Title: "P1"}, {ID: 2, Title: "P2"}, {ID: 3, Title: "P3"}}
	svc := likesServiceWith(actions, policies)

	page, err := svc.Likes(context.Background(), LikesInput{UserEmail: "kim@example.com", Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalCount)

	ids := make([]uint, 0, len(page.Policies))
	for _, p := range page.Policies {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []uint{3, 1, 2}, ids)
}

func TestActionService_Likes_Empty(t *testing.T) {
	svc := likesServiceWith(nil, nil)

	page, err := svc.Likes(context.Background(), LikesInput{UserEmail: "new@example.com", Page: 4})
	require.NoError(t, err)
	assert.Empty(t, page.Policies)
	assert.Zero(t, page.TotalCount)
	assert.Zero(t, page.TotalPages)
	assert.Equal(t, 4, page.CurrentPage)
}

func TestActionService_BulkDelete(t *testing.T) {
	actionRepo := noopActionRepo()
	actionRepo.bulkDeleteLikesFn = func(_ context.Context, email string, ids []uint) (int64, error) {
		assert.Equal(t, "kim@example.com", email)
		assert.Equal(t, []uint{1, 2, 3}, ids)
		return 2, nil
	}
	svc := NewActionService(actionRepo, noopPolicyRepo())

	count, err := svc.BulkDelete(context.Background(), "kim@example.com", []uint{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
