package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "lending.events"

// RedisPublisher fans events out on a redis pub/sub channel.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{rdb: rdb, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, evs ...Event) error {
	for _, ev := range evs {
		payload, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
			return err
		}
	}
	return nil
}
