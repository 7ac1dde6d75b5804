package users

import (
	"context"
	"strings"

	"frota-backend/internal/constants"
	"frota-backend/internal/middleware"
	"frota-backend/internal/models"
	"frota-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service holds DB and Redis for user operations. Redis is needed because
// role changes and removals invalidate the target's sessions.
type Service struct {
	DB  *gorm.DB
	Rdb *redis.Client
}

const userSessionsPrefix = "user_sessions:"

// CreateUserInput for new operator accounts. Role defaults to viewer.
type CreateUserInput struct {
	Fullname  string     `json:"fullname"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Role      string     `json:"role"`
	CompanyID *uuid.UUID `json:"company_id"`
}

func (s *Service) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if strings.TrimSpace(in.Fullname) == "" {
		return nil, ErrFullnameRequired
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !validation.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !validation.IsValidPassword(in.Password) {
		return nil, ErrInvalidPassword
	}
	role := in.Role
	if role == "" {
		role = constants.Viewer
	}
	if !constants.IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	var existing models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Fullname:     strings.TrimSpace(in.Fullname),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CompanyID:    in.CompanyID,
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", id).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateUserInput for profile updates. Role changes go through UpdateRole.
type UpdateUserInput struct {
	Fullname *string `json:"fullname"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*models.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Fullname != nil {
		if strings.TrimSpace(*in.Fullname) == "" {
			return nil, ErrFullnameRequired
		}
		u.Fullname = strings.TrimSpace(*in.Fullname)
	}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if !validation.IsValidEmail(email) {
			return nil, ErrInvalidEmail
		}
		if email != u.Email {
			var existing models.User
			if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
				return nil, ErrEmailTaken
			}
			u.Email = email
		}
	}
	if in.Password != nil {
		if !validation.IsValidPassword(*in.Password) {
			return nil, ErrInvalidPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), 10)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := s.DB.WithContext(ctx).Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// Actor identifies who is performing a governed operation.
type Actor struct {
	UserID    string
	Role      string
	CompanyID *string
}

// UpdateRole changes a user's role under governance rules, then kills the
// target's sessions so the old role cannot linger in an open session.
func (s *Service) UpdateRole(ctx context.Context, actor Actor, targetID uuid.UUID, newRole string) (*models.User, error) {
	if !constants.IsValidRole(newRole) {
		return nil, ErrInvalidRole
	}

	var updated *models.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target models.User
		if err := tx.Where("user_id = ?", targetID).First(&target).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrUserNotFound
			}
			return err
		}
		if err := validateGovernance(tx, actor, &target); err != nil {
			return err
		}
		if actor.UserID == targetID.String() {
			return ErrOwnRole
		}
		if target.Role == constants.Admin && newRole != constants.Admin {
			if err := requireAnotherAdmin(tx, &target); err != nil {
				return err
			}
		}
		target.Role = newRole
		if err := tx.Save(&target).Error; err != nil {
			return err
		}
		updated = &target
		return nil
	})
	if err != nil {
		return nil, err
	}

	DestroyUserSessions(ctx, s.Rdb, targetID.String())
	log.Info().Str("user_id", targetID.String()).Str("role", newRole).Msg("User role updated")
	return updated, nil
}

// Remove deletes a user and kills their sessions.
func (s *Service) Remove(ctx context.Context, actor Actor, targetID uuid.UUID) error {
	if actor.UserID == targetID.String() {
		return ErrSelfRemoval
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target models.User
		if err := tx.Where("user_id = ?", targetID).First(&target).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrUserNotFound
			}
			return err
		}
		if err := validateGovernance(tx, actor, &target); err != nil {
			return err
		}
		if target.Role == constants.Admin {
			if err := requireAnotherAdmin(tx, &target); err != nil {
				return err
			}
		}
		return tx.Delete(&target).Error
	})
	if err != nil {
		return err
	}

	DestroyUserSessions(ctx, s.Rdb, targetID.String())
	log.Info().Str("user_id", targetID.String()).Msg("User removed")
	return nil
}

func validateGovernance(tx *gorm.DB, actor Actor, target *models.User) error {
	if !sameCompany(actor.CompanyID, target.CompanyID) {
		return ErrDifferentCompany
	}
	return nil
}

// requireAnotherAdmin guards against demoting or removing the last admin of
// a company.
func requireAnotherAdmin(tx *gorm.DB, target *models.User) error {
	var count int64
	q := tx.Model(&models.User{}).Where("role = ?", constants.Admin)
	if target.CompanyID == nil {
		q = q.Where("company_id IS NULL")
	} else {
		q = q.Where("company_id = ?", *target.CompanyID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastAdmin
	}
	return nil
}

func sameCompany(actorCompany *string, targetCompany *uuid.UUID) bool {
	if actorCompany == nil && targetCompany == nil {
		return true
	}
	if actorCompany == nil || targetCompany == nil {
		return false
	}
	return *actorCompany == targetCompany.String()
}

// DestroyUserSessions removes every session belonging to a user: each
// session:<sid> key plus the user_sessions:<user_id> tracking set.
func DestroyUserSessions(ctx context.Context, rdb *redis.Client, userID string) {
	if rdb == nil || userID == "" {
		return
	}
	key := userSessionsPrefix + userID
	sessionIDs, err := rdb.SMembers(ctx, key).Result()
	if err != nil || len(sessionIDs) == 0 {
		rdb.Del(ctx, key)
		return
	}
	for _, sid := range sessionIDs {
		rdb.Del(ctx, middleware.SessionRedisPrefix+sid)
	}
	rdb.Del(ctx, key)
}
