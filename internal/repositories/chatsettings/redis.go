package chatsettings

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/spellscribe/spells-api/internal/entities"
	"github.com/spellscribe/spells-api/internal/errors"
	redisclient "github.com/spellscribe/spells-api/internal/redis"
)

const settingsKeyPrefix = "chat_settings:"

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed chat settings repository.
// Each chat's filter lives at chat_settings:<chatID> as a JSON blob with
// no TTL; settings are never deleted.
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func settingsKey(chatID int64) string {
	return fmt.Sprintf("%s%d", settingsKeyPrefix, chatID)
}

func (r *redisRepository) GetOrCreate(ctx context.Context, input GetOrCreateInput) (*GetOrCreateOutput, error) {
	settings, err := r.getOrCreate(ctx, input.ChatID, input.DefaultFilter)
	if err != nil {
		return nil, err
	}
	return &GetOrCreateOutput{Settings: settings}, nil
}

func (r *redisRepository) getOrCreate(ctx context.Context, chatID int64, defaultFilter map[string]bool) (*entities.ChatSettings, error) {
	key := settingsKey(chatID)

	result, err := r.client.Get(ctx, key).Result()
	if err == nil {
		var filter map[string]bool
		if err := json.Unmarshal([]byte(result), &filter); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal settings for chat %d", chatID)
		}
		return &entities.ChatSettings{ChatID: chatID, BookFilter: filter}, nil
	}
	if err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get settings for chat %d", chatID)
	}

	if defaultFilter == nil {
		defaultFilter = map[string]bool{}
	}
	if err := r.persist(ctx, chatID, defaultFilter); err != nil {
		return nil, err
	}

	return &entities.ChatSettings{ChatID: chatID, BookFilter: defaultFilter}, nil
}

func (r *redisRepository) ToggleBook(ctx context.Context, input ToggleBookInput) (*ToggleBookOutput, error) {
	if input.Book == "" {
		return nil, errors.InvalidArgument("book cannot be empty")
	}

	settings, err := r.getOrCreate(ctx, input.ChatID, input.DefaultFilter)
	if err != nil {
		return nil, err
	}

	included, ok := settings.BookFilter[input.Book]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown book %q for chat %d", input.Book, input.ChatID)
	}
	settings.BookFilter[input.Book] = !included

	if err := r.persist(ctx, input.ChatID, settings.BookFilter); err != nil {
		return nil, err
	}

	return &ToggleBookOutput{Settings: settings}, nil
}

func (r *redisRepository) persist(ctx context.Context, chatID int64, filter map[string]bool) error {
	data, err := json.Marshal(filter)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal settings for chat %d", chatID)
	}

	if err := r.client.Set(ctx, settingsKey(chatID), data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to persist settings for chat %d", chatID)
	}

	return nil
}
