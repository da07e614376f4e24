package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"dateplanner/models"
	"dateplanner/utils"
)

// FindPartner resolves the viewer's partner: the first-found user carrying
// the complementary role. Which user wins under multiple candidates is
// deliberately undefined. Lookups are cached briefly per role.
func (s *DefaultUserService) FindPartner(viewerID string) (*models.User, error) {
	viewer, err := s.GetProfile(viewerID)
	if err != nil {
		return nil, err
	}

	partnerRole := models.OppositeRole(viewer.Role)
	if partnerRole == "" {
		return nil, fmt.Errorf("user %s has no valid role", viewerID)
	}

	if cached := s.cachedPartner(partnerRole); cached != nil {
		// The viewer may themselves be a stale cache hit after a role change.
		if cached.ID != viewerID {
			return cached, nil
		}
	}

	partner, err := s.Repo.FindFirstByRole(partnerRole)
	if err != nil {
		return nil, fmt.Errorf("failed to find partner: %w", err)
	}
	if partner == nil {
		return nil, NotFoundError{Resource: "partner"}
	}

	s.cachePartner(partnerRole, partner)
	return partner, nil
}

func (s *DefaultUserService) cachedPartner(role string) *models.User {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(context.Background(), utils.PartnerCachePrefix+role).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("Partner cache read failed", zap.Error(err))
		}
		return nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil
	}
	return &u
}

func (s *DefaultUserService) cachePartner(role string, partner *models.User) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(partner)
	if err != nil {
		return
	}
	if err := s.Cache.Set(context.Background(), utils.PartnerCachePrefix+role, data, utils.PartnerCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Partner cache write failed", zap.Error(err))
	}
}

func (s *DefaultUserService) invalidatePartnerCache(role string) {
	if s.Cache == nil {
		return
	}
	_ = s.Cache.Del(context.Background(), utils.PartnerCachePrefix+role).Err()
}
