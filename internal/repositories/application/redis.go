package application

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
	redisclient "github.com/Arx-Game/arxii-sub002/internal/redis"
)

const (
	applicationKeyPrefix = "chargen:application:"
	playerIndexPrefix    = "chargen:application:player:"

	errApplicationNil     = "application cannot be nil"
	errApplicationIDEmpty = "application ID cannot be empty"
	errPlayerIDEmpty      = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed application repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Application == nil {
		return nil, errors.InvalidArgument(errApplicationNil)
	}
	if input.Application.ID == "" {
		return nil, errors.InvalidArgument(errApplicationIDEmpty)
	}
	if input.Application.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := applicationKeyPrefix + input.Application.ID

	data, err := json.Marshal(input.Application)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal application")
	}

	// Applications are immutable once stored
	ok, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create application")
	}
	if !ok {
		return nil, errors.AlreadyExists("application " + input.Application.ID + " already exists")
	}

	playerKey := playerIndexPrefix + input.Application.PlayerID
	if err := r.client.SAdd(ctx, playerKey, input.Application.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index application")
	}

	return &CreateOutput{Application: input.Application}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errApplicationIDEmpty)
	}

	result, err := r.client.Get(ctx, applicationKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("application with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get application")
	}

	var app chargen.CharacterApplication
	if err := json.Unmarshal([]byte(result), &app); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal application")
	}

	return &GetOutput{Application: &app}, nil
}

func (r *redisRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, playerIndexPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list applications")
	}

	apps := make([]*chargen.CharacterApplication, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Skip index entries whose record is gone
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		apps = append(apps, out.Application)
	}

	return &ListByPlayerIDOutput{Applications: apps}, nil
}
