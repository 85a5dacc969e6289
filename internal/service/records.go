package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/pageza/healthlog/backend/internal/database"
	"github.com/pageza/healthlog/backend/internal/events"
	"github.com/pageza/healthlog/backend/internal/observability"
	"github.com/pageza/healthlog/backend/internal/types"
)

// EventPublishTimeout bounds how long a mutation waits for its event to be published
const EventPublishTimeout = 2 * time.Second

// recordStore holds what every record service shares
type recordStore struct {
	db        *gorm.DB
	publisher events.Publisher
	kind      string
	now       func() time.Time
}

func newRecordStore(db *gorm.DB, publisher events.Publisher, kind string) recordStore {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return recordStore{db: db, publisher: publisher, kind: kind, now: time.Now}
}

// checkOwner fetches the owner of record id and compares it with userID
func checkOwner[M any](ctx context.Context, db *gorm.DB, userID uuid.UUID, id int64) (Outcome, error) {
	var owners []uuid.UUID
	err := db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Limit(1).Pluck("user_id", &owners).Error
	if err != nil {
		if database.IsNotFound(err) {
			return OutcomeNotFound, nil
		}
		return OutcomeNotFound, fmt.Errorf("failed to fetch record owner: %w", err)
	}
	if len(owners) == 0 {
		return OutcomeNotFound, nil
	}
	if owners[0] != userID {
		return OutcomeForbidden, nil
	}
	return OutcomeSuccess, nil
}

// listPage runs the count and the range query for one page concurrently
func listPage[M any](ctx context.Context, db *gorm.DB, userID uuid.UUID, p types.Pagination) ([]M, int64, error) {
	var (
		rows  []M
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).Model(new(M)).Where("user_id = ?", userID).Count(&total).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("user_id = ?", userID).
			Order("date DESC").
			Order("id DESC").
			Offset(p.Offset()).
			Limit(p.PageSize).
			Find(&rows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("failed to list records: %w", err)
	}
	return rows, total, nil
}

// deleteOwned removes an owned record after the ownership check
func deleteOwned[M any](ctx context.Context, db *gorm.DB, userID uuid.UUID, id int64) (Outcome, error) {
	outcome, err := checkOwner[M](ctx, db, userID, id)
	if err != nil || outcome != OutcomeSuccess {
		return outcome, err
	}
	if err := db.WithContext(ctx).Where("id = ?", id).Delete(new(M)).Error; err != nil {
		return OutcomeNotFound, fmt.Errorf("failed to delete record: %w", err)
	}
	return OutcomeSuccess, nil
}

// updateOwned applies fields to an owned record and reloads it into dst
func updateOwned[M any](ctx context.Context, db *gorm.DB, userID uuid.UUID, id int64, fields map[string]interface{}, dst *M) (Outcome, error) {
	outcome, err := checkOwner[M](ctx, db, userID, id)
	if err != nil || outcome != OutcomeSuccess {
		return outcome, err
	}
	if err := db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Updates(fields).Error; err != nil {
		return OutcomeNotFound, fmt.Errorf("failed to update record: %w", err)
	}
	// A concurrent delete between the check and the update leaves nothing to reload.
	if err := db.WithContext(ctx).Where("id = ?", id).Take(dst).Error; err != nil {
		if database.IsNotFound(err) {
			return OutcomeNotFound, nil
		}
		return OutcomeNotFound, fmt.Errorf("failed to reload record: %w", err)
	}
	return OutcomeSuccess, nil
}

// recorded counts the mutation and publishes its event. Publishing never fails the request.
func (s recordStore) recorded(ctx context.Context, action events.Action, userID uuid.UUID, id int64) {
	observability.RecordMutation(s.kind, string(action))

	event := events.Event{
		Type:       events.TypeOf(s.kind, action),
		UserID:     userID,
		RecordID:   id,
		OccurredAt: s.now().UTC(),
	}
	pubCtx, cancel := context.WithTimeout(ctx, EventPublishTimeout)
	defer cancel()
	if err := s.publisher.Publish(pubCtx, event); err != nil {
		observability.RecordEventFailure()
		log.Printf("[events] failed to publish %s for record %d: %v", event.Type, id, err)
	}
}
