package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clubpulse/service-membership/internal/domain/member"
)

// MemberModel is the GORM model for the members table.
type MemberModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DisplayName     string     `gorm:"type:varchar(120);not null"`
	IsActive        bool       `gorm:"not null;default:false"`
	SubscriptionEnd *time.Time `gorm:"index"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

// TableName sets the table name.
func (MemberModel) TableName() string { return "members" }

// GormMemberRepository implements member.MemberRepository using GORM.
type GormMemberRepository struct {
	db *gorm.DB
}

// NewGormMemberRepository creates a new GormMemberRepository.
func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// FindByID returns the member or a not-found domain error.
func (r *GormMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	var model MemberModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.NewNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to load member %s: %w", id, err)
	}
	return toMemberDomain(&model), nil
}

// FindAll returns every member.
func (r *GormMemberRepository) FindAll(ctx context.Context) ([]*member.Member, error) {
	var models []MemberModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]*member.Member, len(models))
	for i := range models {
		members[i] = toMemberDomain(&models[i])
	}
	return members, nil
}

// Update persists the member's current field values.
func (r *GormMemberRepository) Update(ctx context.Context, m *member.Member) error {
	model := toMemberModel(m)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to update member %s: %w", m.ID(), err)
	}
	return nil
}

func toMemberModel(m *member.Member) MemberModel {
	return MemberModel{
		ID:              m.ID(),
		DisplayName:     m.DisplayName(),
		IsActive:        m.IsActive(),
		SubscriptionEnd: m.SubscriptionEnd(),
		CreatedAt:       m.CreatedAt(),
		UpdatedAt:       m.UpdatedAt(),
	}
}

func toMemberDomain(model *MemberModel) *member.Member {
	return member.Reconstruct(
		model.ID, model.DisplayName, model.IsActive, model.SubscriptionEnd,
		model.CreatedAt, model.UpdatedAt,
	)
}
