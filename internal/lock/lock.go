// Package lock предоставляет распределённую блокировку на Redis,
// которая не даёт двум репликам одновременно выплачивать награды по одному проекту.
package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

// ErrLocked возвращается, если блокировка уже удерживается другим владельцем.
var ErrLocked = errors.New("lock is already held")

// releaseScript удаляет ключ, только если он всё ещё принадлежит нам.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker реализует блокировку через SET NX PX.
type RedisLocker struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// NewRedisLocker подключается к Redis и проверяет соединение.
func NewRedisLocker(ctx context.Context, addr, password string, db int, ttl time.Duration, log *slog.Logger) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisLocker{client: client, prefix: "crowdfund:lock:", ttl: ttl, log: log}, nil
}

// Acquire захватывает ключ key. Возвращённую функцию нужно вызвать для освобождения.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := l.prefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrLocked
	}

	release := func() {
		// Контекст запроса может быть уже отменён, освобождаем отдельно.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil {
			l.log.Error("release lock", slog.String("key", redisKey), slog.Any("err", err))
		}
	}
	return release, nil
}

// Close закрывает соединение с Redis.
func (l *RedisLocker) Close() error {
	return l.client.Close()
}

// NopLocker используется, когда Redis не настроен: блокировка всегда успешна.
type NopLocker struct{}

// Acquire ничего не блокирует.
func (NopLocker) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}
