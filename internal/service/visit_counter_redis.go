package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// VisitCounter registra visitas diarias para el dashboard admin.
type VisitCounter interface {
	Record(ctx context.Context) error
	Stats(ctx context.Context, days int) (map[string]int64, error)
}

const redisVisitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

// los contadores diarios se guardan 90 dias
const visitKeyTTL = 90 * 24 * time.Hour

type redisVisitCounter struct {
	client visitEvaler
	prefix string
	now    func() time.Time
}

type visitEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

func NewRedisVisitCounter(client *redis.Client) VisitCounter {
	if client == nil {
		return nil
	}
	return &redisVisitCounter{
		client: client,
		prefix: "visits:",
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Record incrementa el contador del dia. Es best-effort: un redis caido
// no puede voltear un request.
func (c *redisVisitCounter) Record(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	key := c.prefix + c.now().Format("2006-01-02")
	return c.client.Eval(ctx, redisVisitScript, []string{key}, int(visitKeyTTL.Seconds())).Err()
}

// Stats devuelve el mapa fecha->visitas de los ultimos N dias.
func (c *redisVisitCounter) Stats(ctx context.Context, days int) (map[string]int64, error) {
	if days <= 0 {
		days = 7
	}
	stats := make(map[string]int64, days)
	today := c.now()
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		count, err := c.client.Get(ctx, c.prefix+date).Int64()
		if err != nil && err != redis.Nil {
			return nil, err
		}
		stats[date] = count
	}
	return stats, nil
}
