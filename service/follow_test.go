package service

import (
	"context"
	"errors"
	"testing"

	"tweeter/dao"
	"tweeter/models"
	"tweeter/pkg/response"
	"tweeter/pkg/snowflake"
)

func TestFollow_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := &FollowService{FollowDAO: dao.NewFollowDAO(db), UserDAO: dao.NewUsers(db)}

	a := createUser(t, db, "alice", "key-a")
	b := createUser(t, db, "bob", "key-b")

	if err := svc.Follow(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("first follow: %v", err)
	}
	if err := svc.Follow(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("second follow: %v", err)
	}

	var count int64
	db.Model(&models.Follow{}).
		Where("following_user_id = ? AND followed_user_id = ?", a.ID, b.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one follow edge, got %d", count)
	}
}

func TestUnfollow_NoEdgeIsNoop(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := &FollowService{FollowDAO: dao.NewFollowDAO(db), UserDAO: dao.NewUsers(db)}

	a := createUser(t, db, "alice", "key-a")
	b := createUser(t, db, "bob", "key-b")

	if err := svc.Unfollow(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("unfollow without edge should succeed, got %v", err)
	}
}

func TestFollow_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := &FollowService{FollowDAO: dao.NewFollowDAO(db), UserDAO: dao.NewUsers(db)}

	a := createUser(t, db, "alice", "key-a")

	err := svc.Follow(ctx, a.ID, snowflake.GenID())
	var ae *response.APIError
	if !errors.As(err, &ae) || ae.Type != response.TypeNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestFollow_SelfFollowAllowed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := &FollowService{FollowDAO: dao.NewFollowDAO(db), UserDAO: dao.NewUsers(db)}

	a := createUser(t, db, "alice", "key-a")

	if err := svc.Follow(ctx, a.ID, a.ID); err != nil {
		t.Fatalf("self follow: %v", err)
	}

	following, err := svc.IsFollowing(ctx, a.ID, a.ID)
	if err != nil {
		t.Fatalf("IsFollowing: %v", err)
	}
	if !following {
		t.Fatal("expected self follow edge to exist")
	}
}
