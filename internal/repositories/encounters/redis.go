package encounters

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/metrics"
	redisclient "github.com/KirkDiggler/rpg-gm-api/internal/redis"
)

const (
	encounterKeyPrefix    = "encounter:"
	ownerIndexKeyPrefix   = "encounter:owner:"
	sessionIndexKeyPrefix = "encounter:session:"
	draftKeyPrefix        = "encounter:draft:"

	// maxWatchRetries bounds optimistic transactions before giving up with Aborted.
	maxWatchRetries = 5
)

func encounterKey(id string) string { return encounterKeyPrefix + id }
func ownerIndexKey(owner string) string { return ownerIndexKeyPrefix + owner }
func sessionIndexKey(session string) string { return sessionIndexKeyPrefix + session }
func draftKey(owner string) string { return draftKeyPrefix + owner }

// RedisConfig configures the Redis repository.
type RedisConfig struct {
	Client redisclient.Client
	// DraftTTL expires idle drafts. Zero keeps them forever.
	DraftTTL time.Duration
}

// Validate ensures the config is usable.
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.DraftTTL < 0 {
		vb.Field("DraftTTL", "cannot be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client   redisclient.Client
	draftTTL time.Duration
}

// NewRedisRepository creates a Redis-backed encounter repository.
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client:   cfg.Client,
		draftTTL: cfg.DraftTTL,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSaved(input.Encounter); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Encounter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal encounter")
	}

	key := encounterKey(input.Encounter.ID)
	err = r.watch(ctx, "create", func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return errors.Wrap(err, "failed to check encounter existence")
		}
		if exists > 0 {
			return errors.AlreadyExistsf("encounter %s already exists", input.Encounter.ID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.SAdd(ctx, ownerIndexKey(input.Encounter.OwnerID), input.Encounter.ID)
			if input.Encounter.SessionID != "" {
				pipe.SAdd(ctx, sessionIndexKey(input.Encounter.SessionID), input.Encounter.ID)
			}
			return nil
		})
		return err
	}, key)
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Encounter: input.Encounter}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	encounter, err := readEncounter(ctx, r.client, encounterKey(input.ID))
	if err != nil {
		return nil, err
	}
	if encounter == nil {
		return nil, errors.NotFoundf("encounter %s not found", input.ID)
	}

	return &GetOutput{Encounter: encounter}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSaved(input.Encounter); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Encounter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal encounter")
	}

	key := encounterKey(input.Encounter.ID)
	err = r.watch(ctx, "update", func(tx *redis.Tx) error {
		current, err := readEncounter(ctx, tx, key)
		if err != nil {
			return err
		}
		if current == nil {
			return errors.NotFoundf("encounter %s not found", input.Encounter.ID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			if current.SessionID != input.Encounter.SessionID {
				if current.SessionID != "" {
					pipe.SRem(ctx, sessionIndexKey(current.SessionID), current.ID)
				}
				if input.Encounter.SessionID != "" {
					pipe.SAdd(ctx, sessionIndexKey(input.Encounter.SessionID), current.ID)
				}
			}
			return nil
		})
		return err
	}, key)
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Encounter: input.Encounter}, nil
}

func (r *redisRepository) SaveDerived(ctx context.Context, input SaveDerivedInput) (*SaveDerivedOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var saved *entities.Encounter
	key := encounterKey(input.ID)
	err := r.watch(ctx, "save_derived", func(tx *redis.Tx) error {
		current, err := readEncounter(ctx, tx, key)
		if err != nil {
			return err
		}
		if current == nil {
			return errors.NotFoundf("encounter %s not found", input.ID)
		}

		applyDerived(current, input)
		data, err := json.Marshal(current)
		if err != nil {
			return errors.Wrap(err, "failed to marshal encounter")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		saved = current
		return err
	}, key)
	if err != nil {
		return nil, err
	}

	return &SaveDerivedOutput{Encounter: saved}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) error {
	if input.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}

	key := encounterKey(input.ID)
	return r.watch(ctx, "delete", func(tx *redis.Tx) error {
		current, err := readEncounter(ctx, tx, key)
		if err != nil {
			return err
		}
		if current == nil {
			return errors.NotFoundf("encounter %s not found", input.ID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.SRem(ctx, ownerIndexKey(current.OwnerID), current.ID)
			if current.SessionID != "" {
				pipe.SRem(ctx, sessionIndexKey(current.SessionID), current.ID)
			}
			return nil
		})
		return err
	}, key)
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	all, err := r.loadIndex(ctx, ownerIndexKey(input.OwnerID))
	if err != nil {
		return nil, err
	}

	out := make([]*entities.Encounter, 0, len(all))
	for _, e := range all {
		if matches(e, input.Filter) {
			out = append(out, e)
		}
	}
	sortEncounters(out)

	return &ListOutput{Encounters: out}, nil
}

func (r *redisRepository) ListBySession(ctx context.Context, input ListBySessionInput) (*ListOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	list, err := r.loadIndex(ctx, sessionIndexKey(input.SessionID))
	if err != nil {
		return nil, err
	}
	sortEncounters(list)

	return &ListOutput{Encounters: list}, nil
}

func (r *redisRepository) DeleteBySession(ctx context.Context, input DeleteBySessionInput) (*DeleteBySessionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	indexKey := sessionIndexKey(input.SessionID)
	var deleted []string
	err := r.watch(ctx, "delete_by_session", func(tx *redis.Tx) error {
		ids, err := tx.SMembers(ctx, indexKey).Result()
		if err != nil {
			return errors.Wrap(err, "failed to read session index")
		}

		list, err := readEncounters(ctx, tx, ids)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, e := range list {
				pipe.Del(ctx, encounterKey(e.ID))
				pipe.SRem(ctx, ownerIndexKey(e.OwnerID), e.ID)
			}
			pipe.Del(ctx, indexKey)
			return nil
		})
		if err != nil {
			return err
		}

		deleted = deleted[:0]
		for _, e := range list {
			deleted = append(deleted, e.ID)
		}
		return nil
	}, indexKey)
	if err != nil {
		return nil, err
	}

	return &DeleteBySessionOutput{DeletedIDs: deleted}, nil
}

func (r *redisRepository) GetDraft(ctx context.Context, input GetDraftInput) (*GetDraftOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	draft, err := readEncounter(ctx, r.client, draftKey(input.OwnerID))
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, errors.NotFoundf("no draft for owner %s", input.OwnerID)
	}

	return &GetDraftOutput{Draft: draft}, nil
}

func (r *redisRepository) GetOrCreateDraft(ctx context.Context, input GetOrCreateDraftInput) (*GetOrCreateDraftOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}
	if input.OwnerID != input.Draft.OwnerID {
		return nil, errors.InvalidArgument("draft belongs to a different owner")
	}

	out := &GetOrCreateDraftOutput{}
	err := r.withDraftSlot(ctx, input.OwnerID, "get_or_create_draft", func(tx *redis.Tx, current *entities.Encounter) error {
		if current != nil {
			out.Draft, out.Created = current, false
			return nil
		}
		if err := r.writeDraft(ctx, tx, input.Draft); err != nil {
			return err
		}
		out.Draft, out.Created = input.Draft, true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *redisRepository) ReplaceDraft(ctx context.Context, input ReplaceDraftInput) (*ReplaceDraftOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	out := &ReplaceDraftOutput{Draft: input.Draft}
	err := r.withDraftSlot(ctx, input.Draft.OwnerID, "replace_draft", func(tx *redis.Tx, current *entities.Encounter) error {
		out.Replaced = current
		return r.writeDraft(ctx, tx, input.Draft)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *redisRepository) UpdateDraft(ctx context.Context, input UpdateDraftInput) (*UpdateDraftOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	err := r.withDraftSlot(ctx, input.Draft.OwnerID, "update_draft", func(tx *redis.Tx, current *entities.Encounter) error {
		if current == nil {
			return errors.NotFoundf("no draft for owner %s", input.Draft.OwnerID)
		}
		if current.ID != input.Draft.ID {
			return errors.FailedPrecondition(errDraftReplaced).WithMeta("current_draft_id", current.ID)
		}
		return r.writeDraft(ctx, tx, input.Draft)
	})
	if err != nil {
		return nil, err
	}

	return &UpdateDraftOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) ClearDraft(ctx context.Context, input ClearDraftInput) error {
	if input.OwnerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}

	if err := r.client.Del(ctx, draftKey(input.OwnerID)).Err(); err != nil {
		return errors.Wrap(err, "failed to clear draft")
	}
	return nil
}

func (r *redisRepository) PromoteDraft(ctx context.Context, input PromoteDraftInput) (*PromoteDraftOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	var promoted *entities.Encounter
	err := r.withDraftSlot(ctx, input.OwnerID, "promote_draft", func(tx *redis.Tx, current *entities.Encounter) error {
		if current == nil {
			return errors.NotFoundf("no draft for owner %s", input.OwnerID)
		}
		if input.ExpectedDraftID != "" && current.ID != input.ExpectedDraftID {
			return errors.FailedPrecondition(errDraftReplaced).WithMeta("current_draft_id", current.ID)
		}

		key := encounterKey(current.ID)
		if err := tx.Watch(ctx, key).Err(); err != nil {
			return errors.Wrap(err, "failed to watch encounter")
		}
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return errors.Wrap(err, "failed to check encounter existence")
		}
		if exists > 0 {
			return errors.AlreadyExistsf("encounter %s already exists", current.ID)
		}

		current.Status = entities.StatusPrepared
		if input.UpdatedAt != 0 {
			current.UpdatedAt = input.UpdatedAt
		}
		data, err := json.Marshal(current)
		if err != nil {
			return errors.Wrap(err, "failed to marshal encounter")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.SAdd(ctx, ownerIndexKey(current.OwnerID), current.ID)
			if current.SessionID != "" {
				pipe.SAdd(ctx, sessionIndexKey(current.SessionID), current.ID)
			}
			pipe.Del(ctx, draftKey(input.OwnerID))
			return nil
		})
		promoted = current
		return err
	})
	if err != nil {
		return nil, err
	}

	return &PromoteDraftOutput{Encounter: promoted}, nil
}

// withDraftSlot runs fn against the owner's current draft (nil when empty)
// inside an optimistic transaction on the slot key. fn must queue its
// writes through tx.TxPipelined so they fail if the slot changed.
func (r *redisRepository) withDraftSlot(
	ctx context.Context,
	ownerID, op string,
	fn func(tx *redis.Tx, current *entities.Encounter) error,
) error {
	key := draftKey(ownerID)
	return r.watch(ctx, op, func(tx *redis.Tx) error {
		current, err := readEncounter(ctx, tx, key)
		if err != nil {
			return err
		}
		return fn(tx, current)
	}, key)
}

func (r *redisRepository) writeDraft(ctx context.Context, tx *redis.Tx, draft *entities.Encounter) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return errors.Wrap(err, "failed to marshal draft")
	}
	_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, draftKey(draft.OwnerID), data, r.draftTTL)
		return nil
	})
	return err
}

// watch runs fn under WATCH keys and retries when another client changed
// a watched key before EXEC. op labels the retries in metrics.TxConflicts.
func (r *redisRepository) watch(ctx context.Context, op string, fn func(tx *redis.Tx) error, keys ...string) error {
	for attempt := 0; attempt < maxWatchRetries; attempt++ {
		err := r.client.Watch(ctx, fn, keys...)
		if errors.Is(err, redisclient.TxFailedErr) {
			metrics.TxConflicts.WithLabelValues(op).Inc()
			continue
		}
		if err != nil {
			var appErr *errors.Error
			if errors.As(err, &appErr) {
				return err
			}
			return errors.Wrap(err, "redis transaction failed")
		}
		return nil
	}
	return errors.Abortedf("concurrent modification of %v, retry the request", keys)
}

func (r *redisRepository) loadIndex(ctx context.Context, indexKey string) ([]*entities.Encounter, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read encounter index")
	}
	return readEncounters(ctx, r.client, ids)
}

// readEncounter returns nil without error when key does not exist.
func readEncounter(ctx context.Context, c redis.Cmdable, key string) (*entities.Encounter, error) {
	data, err := c.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get encounter")
	}

	var encounter entities.Encounter
	if err := json.Unmarshal(data, &encounter); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal encounter")
	}
	return &encounter, nil
}

// readEncounters loads ids with one MGET. Ids whose key vanished are skipped.
func readEncounters(ctx context.Context, c redis.Cmdable, ids []string) ([]*entities.Encounter, error) {
	if len(ids) == 0 {
		return []*entities.Encounter{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = encounterKey(id)
	}

	values, err := c.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load encounters")
	}

	out := make([]*entities.Encounter, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var encounter entities.Encounter
		if err := json.Unmarshal([]byte(s), &encounter); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal encounter")
		}
		out = append(out, &encounter)
	}
	return out, nil
}
