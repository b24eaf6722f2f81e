package services

import (
	"context"
	"sort"
	"time"

	"github.com/anonto42/insyd-notify/backend/internal/models"
)

// memoryStore is an in-memory stand-in for the three repositories, used to
// check end-to-end properties of the dispatcher.
type memoryStore struct {
	users         map[string]models.User
	follows       []models.Follow
	notifications []models.Notification
	clock         time.Time
}

func newMemoryStore(users ...models.User) *memoryStore {
	s := &memoryStore{users: make(map[string]models.User), clock: time.Unix(1700000000, 0)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *memoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

func (s *memoryStore) GetUsers(context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *memoryStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memoryStore) FollowUser(_ context.Context, followerID, followingID string) error {
	for _, f := range s.follows {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			return nil
		}
	}
	s.follows = append(s.follows, models.Follow{FollowerID: followerID, FollowingID: followingID, CreatedAt: s.tick()})
	return nil
}

func (s *memoryStore) GetFollowers(_ context.Context, userID string) ([]string, error) {
	ids := []string{}
	for _, f := range s.follows {
		if f.FollowingID == userID {
			ids = append(ids, f.FollowerID)
		}
	}
	return ids, nil
}

func (s *memoryStore) CreateNotification(_ context.Context, n *models.Notification) error {
	n.CreatedAt = s.tick()
	s.notifications = append(s.notifications, *n)
	return nil
}

func (s *memoryStore) GetNotifications(_ context.Context, userID string) ([]models.Notification, error) {
	out := []models.Notification{}
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > 50 {
		out = out[:50]
	}
	return out, nil
}

func (s *memoryStore) MarkAsRead(_ context.Context, id string) error {
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
		}
	}
	return nil
}

func (s *memoryStore) GetUnreadCount(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}
