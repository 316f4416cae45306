package campaigns

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-gm-api/internal/redis"
)

const (
	campaignKeyPrefix      = "campaign:"
	ownerIndexKeyPrefix    = "campaign:owner:"
	sessionKeyPrefix       = "session:"
	campaignSessionsPrefix = "campaign:sessions:"
)

func campaignKey(id string) string { return campaignKeyPrefix + id }

func ownerIndexKey(owner string) string { return ownerIndexKeyPrefix + owner }

func sessionKey(id string) string { return sessionKeyPrefix + id }

func sessionsKey(campaignID string) string { return campaignSessionsPrefix + campaignID }

// RedisConfig configures the Redis repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures the config is usable.
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed campaign repository.
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCampaign(input.Campaign); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Campaign)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal campaign")
	}

	created, err := r.client.SetNX(ctx, campaignKey(input.Campaign.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to save campaign")
	}
	if !created {
		return nil, errors.AlreadyExistsf("campaign %s already exists", input.Campaign.ID)
	}

	if err := r.client.SAdd(ctx, ownerIndexKey(input.Campaign.OwnerID), input.Campaign.ID).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to index campaign")
	}

	return &CreateOutput{Campaign: input.Campaign}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var campaign entities.Campaign
	if err := r.getJSON(ctx, campaignKey(input.ID), &campaign); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("campaign %s not found", input.ID)
		}
		return nil, err
	}

	return &GetOutput{Campaign: &campaign}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, ownerIndexKey(input.OwnerID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read campaign index")
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = campaignKey(id)
	}

	campaigns, err := mgetJSON[entities.Campaign](ctx, r.client, keys)
	if err != nil {
		return nil, err
	}
	sort.Slice(campaigns, func(i, j int) bool {
		if campaigns[i].CreatedAt != campaigns[j].CreatedAt {
			return campaigns[i].CreatedAt < campaigns[j].CreatedAt
		}
		return campaigns[i].ID < campaigns[j].ID
	})

	return &ListOutput{Campaigns: campaigns}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	got, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	sessionIDs, err := r.client.SMembers(ctx, sessionsKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session index")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, campaignKey(input.ID))
		pipe.SRem(ctx, ownerIndexKey(got.Campaign.OwnerID), input.ID)
		for _, id := range sessionIDs {
			pipe.Del(ctx, sessionKey(id))
		}
		pipe.Del(ctx, sessionsKey(input.ID))
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete campaign")
	}

	return &DeleteOutput{DeletedSessionIDs: sessionIDs}, nil
}

func (r *redisRepository) CreateSession(ctx context.Context, input CreateSessionInput) (*CreateSessionOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	if _, err := r.Get(ctx, GetInput{ID: input.Session.CampaignID}); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	created, err := r.client.SetNX(ctx, sessionKey(input.Session.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}
	if !created {
		return nil, errors.AlreadyExistsf("session %s already exists", input.Session.ID)
	}

	if err := r.client.SAdd(ctx, sessionsKey(input.Session.CampaignID), input.Session.ID).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to index session")
	}

	return &CreateSessionOutput{Session: input.Session}, nil
}

func (r *redisRepository) GetSession(ctx context.Context, input GetSessionInput) (*GetSessionOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var session entities.Session
	if err := r.getJSON(ctx, sessionKey(input.ID), &session); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("session %s not found", input.ID)
		}
		return nil, err
	}

	return &GetSessionOutput{Session: &session}, nil
}

func (r *redisRepository) ListSessions(ctx context.Context, input ListSessionsInput) (*ListSessionsOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, sessionsKey(input.CampaignID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session index")
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = sessionKey(id)
	}

	sessions, err := mgetJSON[entities.Session](ctx, r.client, keys)
	if err != nil {
		return nil, err
	}
	sortSessions(sessions)

	return &ListSessionsOutput{Sessions: sessions}, nil
}

func (r *redisRepository) DeleteSession(ctx context.Context, input DeleteSessionInput) error {
	if input.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}

	got, err := r.GetSession(ctx, GetSessionInput{ID: input.ID})
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(input.ID))
		pipe.SRem(ctx, sessionsKey(got.Session.CampaignID), input.ID)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete session")
	}
	return nil
}

func (r *redisRepository) getJSON(ctx context.Context, key string, v any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return errors.NotFoundf("%s not found", key)
		}
		return errors.Wrapf(err, "failed to get %s", key)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s", key)
	}
	return nil
}

// mgetJSON loads keys with one MGET, skipping keys that no longer exist.
func mgetJSON[T any](ctx context.Context, client redisclient.Client, keys []string) ([]*T, error) {
	out := make([]*T, 0, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load records")
	}

	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var item T
		if err := json.Unmarshal([]byte(s), &item); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal record")
		}
		out = append(out, &item)
	}
	return out, nil
}

func sortSessions(sessions []*entities.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Order != sessions[j].Order {
			return sessions[i].Order < sessions[j].Order
		}
		if sessions[i].CreatedAt != sessions[j].CreatedAt {
			return sessions[i].CreatedAt < sessions[j].CreatedAt
		}
		return sessions[i].ID < sessions[j].ID
	})
}
