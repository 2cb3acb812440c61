package redisrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
)

const (
	PrefixSignInLock = "wepay:signin:lock:"
	PrefixSignInRate = "wepay:signin:rate:"
)

// unlockScript удаляет лок, только пока в нём наш токен.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SignInGuard пускает один одновременный чекин на openid и ограничивает число чекинов в минуту.
type SignInGuard struct {
	rdb     *redis.Client
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
	lockTTL time.Duration
}

func NewSignInGuard(rdb *redis.Client, perMinute int, lockTTL time.Duration) *SignInGuard {
	return &SignInGuard{
		rdb:     rdb,
		limiter: redis_rate.NewLimiter(rdb),
		limit:   redis_rate.PerMinute(perMinute),
		lockTTL: lockTTL,
	}
}

// Acquire возвращает domain.ErrSignInInProgress, пока лок держит другой чекин openID, и
// domain.ErrSignInTooFrequent, когда лимит исчерпан. Вызывающий обязан вызвать release.
func (g *SignInGuard) Acquire(ctx context.Context, openID string) (func(context.Context), error) {
	lockKey := PrefixSignInLock + openID
	token := uuid.NewString()

	locked, lockErr := g.rdb.SetNX(ctx, lockKey, token, g.lockTTL).Result()
	if lockErr != nil {
		return nil, fmt.Errorf("acquire sign-in lock: %s", lockErr.Error())
	}
	if !locked {
		return nil, domain.ErrSignInInProgress
	}

	release := func(c context.Context) {
		_ = unlockScript.Run(c, g.rdb, []string{lockKey}, token).Err()
	}

	res, rateErr := g.limiter.Allow(ctx, PrefixSignInRate+openID, g.limit)
	if rateErr != nil {
		release(ctx)
		return nil, fmt.Errorf("sign-in rate limit: %s", rateErr.Error())
	}
	if res.Allowed == 0 {
		release(ctx)
		return nil, domain.ErrSignInTooFrequent
	}
	return release, nil
}
