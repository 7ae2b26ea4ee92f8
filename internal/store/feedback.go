package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency"
	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

// UpsertFeedback records one vote per (insight, ip). A repeated submission
// from the same ip overwrites the prior vote, so the operation is idempotent
// per requester with the latest vote winning. Concurrent submissions for the
// same pair race last-write-wins inside the serializable transaction.
func (is *insightStore) UpsertFeedback(ctx context.Context, slug, ip string, isHelpful bool) (*entity.FeedbackCounts, error) {
	var counts *entity.FeedbackCounts
	err := is.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		insight, err := rep.Insights().GetInsightBySlug(ctx, slug)
		if err != nil {
			return err
		}

		var feedbackId int
		err = rep.DB().GetContext(ctx, &feedbackId, `
		SELECT id FROM insight_feedback WHERE insight_id = ? AND ip_address = ? LIMIT 1`,
			insight.Id, ip)
		switch {
		case err == nil:
			err = ExecNamed(ctx, rep.DB(), `
			UPDATE insight_feedback SET is_helpful = :isHelpful WHERE id = :id`, map[string]any{
				"id":        feedbackId,
				"isHelpful": isHelpful,
			})
			if err != nil {
				return fmt.Errorf("failed to update feedback: %w", err)
			}
		case errors.Is(err, sql.ErrNoRows):
			err = ExecNamed(ctx, rep.DB(), `
			INSERT INTO insight_feedback (insight_id, ip_address, is_helpful)
			VALUES (:insightId, :ipAddress, :isHelpful)`, map[string]any{
				"insightId": insight.Id,
				"ipAddress": ip,
				"isHelpful": isHelpful,
			})
			if err != nil {
				return fmt.Errorf("failed to add feedback: %w", err)
			}
		default:
			return fmt.Errorf("failed to get existing feedback: %w", err)
		}

		counts, err = feedbackCountsByInsightId(ctx, rep.DB(), insight.Id)
		return err
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("feedback tx failed: %w", err)
	}
	return counts, nil
}

// GetFeedbackCounts returns fresh aggregate counts without recording a vote.
func (is *insightStore) GetFeedbackCounts(ctx context.Context, slug string) (*entity.FeedbackCounts, error) {
	insight, err := is.GetInsightBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return feedbackCountsByInsightId(ctx, is.DB(), insight.Id)
}

func feedbackCountsByInsightId(ctx context.Context, conn dependency.DB, insightId string) (*entity.FeedbackCounts, error) {
	helpful, err := QueryCountNamed(ctx, conn, `
	SELECT COUNT(*) FROM insight_feedback
	WHERE insight_id = :insightId AND is_helpful = TRUE`,
		map[string]any{"insightId": insightId})
	if err != nil {
		return nil, fmt.Errorf("failed to count helpful feedback: %w", err)
	}

	notHelpful, err := QueryCountNamed(ctx, conn, `
	SELECT COUNT(*) FROM insight_feedback
	WHERE insight_id = :insightId AND is_helpful = FALSE`,
		map[string]any{"insightId": insightId})
	if err != nil {
		return nil, fmt.Errorf("failed to count not helpful feedback: %w", err)
	}

	return &entity.FeedbackCounts{
		HelpfulCount:    helpful,
		NotHelpfulCount: notHelpful,
	}, nil
}
