// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/models"
)

// subscriptionRepository is the PostgreSQL-backed implementation of
// [SubscriptionRepository]. Edge writes are idempotent single statements;
// the profile read runs in a repeatable-read snapshot so its derived
// statistics are mutually consistent.
type subscriptionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSubscriptionRepository constructs a [SubscriptionRepository] backed by
// the provided database connection and logger.
func NewSubscriptionRepository(db *DB, logger *logger.Logger) SubscriptionRepository {
	logger.Debug().Msg("creating subscription repository")
	return &subscriptionRepository{
		db:     db,
		logger: logger,
	}
}

// Subscribe creates the edge subscriberID → channelID. ON CONFLICT DO
// NOTHING makes a repeated subscribe a no-op rather than an error.
func (r *subscriptionRepository) Subscribe(ctx context.Context, subscriberID, channelID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, subscribe, subscriberID, channelID); err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.Subscribe").
			Int64("subscriber_id", subscriberID).Int64("channel_id", channelID).
			Msg("error creating subscription edge")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Unsubscribe removes the edge. Removing an absent edge is a no-op.
func (r *subscriptionRepository) Unsubscribe(ctx context.Context, subscriberID, channelID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, unsubscribe, subscriberID, channelID); err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.Unsubscribe").
			Int64("subscriber_id", subscriberID).Int64("channel_id", channelID).
			Msg("error deleting subscription edge")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetChannelProfile resolves username to an account and computes its derived
// relationship statistics.
//
// The lookup plus the three relationship reads (subscriber count, subscribed
// count, viewer membership) execute inside one read-only REPEATABLE READ
// transaction: a subscription edge written concurrently is either visible to
// all of them or to none, so the counts and IsSubscribed cannot disagree.
func (r *subscriptionRepository) GetChannelProfile(ctx context.Context, username string, viewerID int64) (models.ChannelProfile, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.GetChannelProfile").Msg("failed to begin snapshot transaction")
		return models.ChannelProfile{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	channel, err := scanUser(tx.QueryRowContext(ctx, findUserByUsername, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ChannelProfile{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*subscriptionRepository.GetChannelProfile").Str("username", username).Msg("error finding channel user")
		return models.ChannelProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	profile := models.ChannelProfile{
		PublicProfile: channel.Public(),
		CoverURL:      channel.CoverURL,
		Email:         channel.Email,
	}

	if err := tx.QueryRowContext(ctx, countSubscribers, channel.UserID).Scan(&profile.SubscribersCount); err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.GetChannelProfile").Msg("error counting subscribers")
		return models.ChannelProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.QueryRowContext(ctx, countSubscribedTo, channel.UserID).Scan(&profile.ChannelsSubscribedToCount); err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.GetChannelProfile").Msg("error counting subscribed channels")
		return models.ChannelProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if viewerID > 0 {
		if err := tx.QueryRowContext(ctx, existsSubscription, viewerID, channel.UserID).Scan(&profile.IsSubscribed); err != nil {
			log.Err(err).Str("func", "*subscriptionRepository.GetChannelProfile").Msg("error checking viewer subscription")
			return models.ChannelProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.ChannelProfile{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return profile, nil
}
