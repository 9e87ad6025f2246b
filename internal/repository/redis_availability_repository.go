package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
)

// attendeeKey is the Redis key holding the confirmed RSVP count for an event.
func attendeeKey(eventID string) string {
	return fmt.Sprintf("rsvp:attendees:%s", eventID)
}

// RedisAvailabilityRepository answers RSVP remaining-capacity queries
// from per-event attendee counters in Redis. It is the production
// implementation of the availability oracle consumed by the mode engine.
type RedisAvailabilityRepository struct {
	client *redis.Client
}

// NewRedisAvailabilityRepository creates a new RedisAvailabilityRepository
func NewRedisAvailabilityRepository(client *redis.Client) *RedisAvailabilityRepository {
	return &RedisAvailabilityRepository{client: client}
}

// CountAttendees returns the confirmed RSVP count for an event. A
// missing key means zero attendees.
func (r *RedisAvailabilityRepository) CountAttendees(ctx context.Context, eventID string) (int, error) {
	count, err := r.client.Get(ctx, attendeeKey(eventID)).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

// IncrementAttendees records additional confirmed RSVPs and returns the
// new count.
func (r *RedisAvailabilityRepository) IncrementAttendees(ctx context.Context, eventID string, delta int) (int, error) {
	count, err := r.client.IncrBy(ctx, attendeeKey(eventID), int64(delta)).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// RSVPRemaining reports whether RSVP slots remain for the event.
// Events with zero capacity are treated as unlimited: available, with
// no remaining-count figure.
func (r *RedisAvailabilityRepository) RSVPRemaining(ctx context.Context, event *domain.Event) (*domain.RSVPAvailability, error) {
	if event.Capacity <= 0 {
		return &domain.RSVPAvailability{Available: true}, nil
	}

	count, err := r.CountAttendees(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	remaining := event.Capacity - count
	if remaining <= 0 {
		zero := 0
		return &domain.RSVPAvailability{
			Available:      false,
			Reason:         domain.ReasonCapacityReached,
			SpotsRemaining: &zero,
		}, nil
	}
	return &domain.RSVPAvailability{
		Available:      true,
		SpotsRemaining: &remaining,
	}, nil
}
