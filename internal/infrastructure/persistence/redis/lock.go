// Package redis 提供 Redis 分布式锁实现
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// 释放脚本：只有持有者令牌匹配才删除键，避免误释放他人的锁
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// Lock 基于 SET NX 的分布式锁
type Lock struct {
	client *Client
}

// NewLock 创建分布式锁服务
func NewLock(client *Client) *Lock {
	return &Lock{client: client}
}

// Acquire 尝试获取锁。返回持有者令牌；锁已被占用时 acquired 为 false。
// TTL 到期后锁自动释放，持有者崩溃不会造成死锁。
func (l *Lock) Acquire(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error) {
	ctx, span := tracer.Start(ctx, "lock.Acquire")
	span.SetAttributes(
		attribute.String("lock.key", key),
		attribute.Int64("lock.ttl_ms", ttl.Milliseconds()),
	)
	defer span.End()

	token = uuid.NewString()
	acquired, err = l.client.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		span.RecordError(err)
		return "", false, fmt.Errorf("failed to acquire lock: %w", err)
	}

	span.SetAttributes(attribute.Bool("lock.acquired", acquired))
	if !acquired {
		return "", false, nil
	}
	return token, true, nil
}

// Release 释放锁；仅当令牌与持有者匹配时生效
func (l *Lock) Release(ctx context.Context, key, token string) error {
	ctx, span := tracer.Start(ctx, "lock.Release")
	span.SetAttributes(attribute.String("lock.key", key))
	defer span.End()

	if err := l.client.rdb.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return nil
}

// BuildSetupLockKey 站点初始化锁键
func BuildSetupLockKey(siteID string) string {
	return fmt.Sprintf("lock:setup:%s", siteID)
}
