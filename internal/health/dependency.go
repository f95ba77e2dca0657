package health

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DatabaseChecker pings the permission store's underlying connection.
type DatabaseChecker struct {
	db *gorm.DB
}

func NewDatabaseChecker(db *gorm.DB) Checker {
	if db == nil {
		return nil
	}
	return &DatabaseChecker{db: db}
}

func (c *DatabaseChecker) Check(ctx context.Context) CheckResult {
	res := CheckResult{Name: "database", Healthy: true}
	sqlDB, err := c.db.DB()
	if err != nil {
		return CheckResult{Name: "database", Error: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return CheckResult{Name: "database", Error: err.Error()}
	}
	return res
}

// RedisChecker pings the refresh-signal broker. Only wired when the
// distributed broadcaster is enabled.
type RedisChecker struct {
	client redis.UniversalClient
}

func NewRedisChecker(client redis.UniversalClient) Checker {
	if client == nil {
		return nil
	}
	return &RedisChecker{client: client}
}

func (c *RedisChecker) Check(ctx context.Context) CheckResult {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return CheckResult{Name: "redis", Error: err.Error()}
	}
	return CheckResult{Name: "redis", Healthy: true}
}
