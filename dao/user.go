package dao

import (
	"context"

	"gorm.io/gorm"

	"tweeter/models"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByApiKey 按 api-key 查询用户，未命中返回 nil, nil
func (u *Users) FindByApiKey(ctx context.Context, apiKey string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "api_key = ?", apiKey)
}

// FindByID 按ID查询用户
func (u *Users) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "id = ?", id)
}

// FindByIDs 按ID列表批量查询用户
func (u *Users) FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	var users []*models.User
	err := u.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	return users, err
}
