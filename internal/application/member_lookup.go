package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clubpulse/service-membership/internal/domain/member"
	"github.com/clubpulse/service-membership/pkg/domain"
)

// MemberDTO is the API response for a member.
type MemberDTO struct {
	ID              uuid.UUID  `json:"id"`
	DisplayName     string     `json:"display_name"`
	IsActive        bool       `json:"is_active"`
	SubscriptionEnd *time.Time `json:"subscription_end,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// MemberLookupService serves read-only member queries.
type MemberLookupService struct {
	repo   member.MemberRepository
	logger *zap.Logger
}

// NewMemberLookupService creates a MemberLookupService.
func NewMemberLookupService(repo member.MemberRepository, logger *zap.Logger) *MemberLookupService {
	return &MemberLookupService{repo: repo, logger: logger}
}

// GetMember returns the member by ID, passing the store's result through
// unchanged, including its not-found error.
func (s *MemberLookupService) GetMember(ctx context.Context, id uuid.UUID) (*MemberDTO, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toMemberDTO(m)
	return &dto, nil
}

// IsActive returns the member's stored entitlement flag. An unknown member
// is simply inactive, not an error. The flag is reported verbatim: no
// recomputation from the subscription end.
func (s *MemberLookupService) IsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return m.IsActive(), nil
}

// ListMembers returns every member (admin).
func (s *MemberLookupService) ListMembers(ctx context.Context) ([]MemberDTO, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]MemberDTO, len(members))
	for i, m := range members {
		dtos[i] = toMemberDTO(m)
	}
	return dtos, nil
}

func toMemberDTO(m *member.Member) MemberDTO {
	return MemberDTO{
		ID:              m.ID(),
		DisplayName:     m.DisplayName(),
		IsActive:        m.IsActive(),
		SubscriptionEnd: m.SubscriptionEnd(),
		CreatedAt:       m.CreatedAt(),
		UpdatedAt:       m.UpdatedAt(),
	}
}
