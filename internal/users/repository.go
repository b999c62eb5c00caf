package users

import (
	"context"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/rs/zerolog/log"
)

type Repository struct {
	users     *store.Collection[[]User]
	publisher messaging.PublisherInterface
}

func NewRepository(kv store.KV, publisher messaging.PublisherInterface) *Repository {
	return &Repository{
		users:     store.NewCollection(kv, store.KeyUsers, Seed),
		publisher: publisher,
	}
}

// List returns every account including passwords.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	return r.users.Load(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	users, err := r.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// Create appends the account. Usernames are unique case-insensitively.
func (r *Repository) Create(ctx context.Context, user *User) error {
	_, err := r.users.Update(ctx, func(users []User) ([]User, error) {
		for _, u := range users {
			if u.SameUsername(user.Username) {
				return nil, ErrUsernameTaken
			}
		}
		return append(users, *user), nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("Created user account")
	r.publish(ctx, messaging.EventUserCreated, user.Sanitized())
	return nil
}

func (r *Repository) Update(ctx context.Context, user *User) error {
	_, err := r.users.Update(ctx, func(users []User) ([]User, error) {
		idx := -1
		for i, u := range users {
			if u.ID == user.ID {
				idx = i
			} else if u.SameUsername(user.Username) {
				return nil, ErrUsernameTaken
			}
		}
		if idx < 0 {
			return nil, ErrUserNotFound
		}
		users[idx] = *user
		return users, nil
	})
	if err != nil {
		return err
	}

	r.publish(ctx, messaging.EventUserUpdated, user.Sanitized())
	return nil
}

// Delete removes the account unless it is the last administrator.
func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.users.Update(ctx, func(users []User) ([]User, error) {
		if IsLastAdmin(users, id) {
			return nil, ErrLastAdmin
		}
		for i := range users {
			if users[i].ID == id {
				return append(users[:i], users[i+1:]...), nil
			}
		}
		return nil, ErrUserNotFound
	})
	if err != nil {
		return err
	}

	log.Info().Str("user_id", id).Msg("Deleted user account")
	r.publish(ctx, messaging.EventUserDeleted, messaging.DeletedData{ID: id, DeletedAt: time.Now().UTC()})
	return nil
}

func (r *Repository) publish(ctx context.Context, key string, data interface{}) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, key, messaging.NewEvent(key, data)); err != nil {
		log.Warn().Err(err).Str("routing_key", key).Msg("failed to publish event")
	}
}
