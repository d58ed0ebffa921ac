package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

// sendPrompts DMs every participant the standup questions for the day.
// Each failed delivery is logged and skipped; one unreachable user must
// not block the rest of the team.
func (s *standupService) sendPrompts(standup *entity.Standup, today time.Time) error {
	if len(standup.Participants) == 0 {
		s.log.Info("standup has no participants, nothing to prompt",
			zap.Int64("standup_id", standup.ID))
		return nil
	}

	label := s.lastStandupLabel(standup, today)
	message := s.promptMessage(standup, label)

	var failed int
	for _, userID := range standup.Participants {
		if err := s.messenger.SendDirect(userID, message); err != nil {
			failed++
			s.log.Error("failed to send standup prompt",
				zap.Int64("standup_id", standup.ID),
				zap.String("user_id", userID),
				zap.Error(err))
		}
	}

	s.log.Info("standup prompts sent",
		zap.Int64("standup_id", standup.ID),
		zap.Int("participants", len(standup.Participants)),
		zap.Int("failed", failed))
	if failed == len(standup.Participants) {
		return fmt.Errorf("all %d prompt deliveries failed", failed)
	}
	return nil
}

// promptMessage renders the question list. Questions containing %s get the
// last-standup-day label substituted in.
func (s *standupService) promptMessage(standup *entity.Standup, label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Good morning! It's time for *%s*.\n\n", standup.Name)
	for i, q := range standup.Questions {
		if strings.Contains(q, "%s") {
			q = fmt.Sprintf(q, label)
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	b.WriteString("\nReply with `/standup respond <your update>` in the standup channel.")
	return b.String()
}

// sendReminders nudges only the participants who have not answered yet.
func (s *standupService) sendReminders(standup *entity.Standup, today time.Time) error {
	dateStr := today.Format(dateLayout)

	var pending []string
	for _, userID := range standup.Participants {
		responded, err := s.dm.Response().HasResponded(standup.ID, userID, dateStr)
		if err != nil {
			return fmt.Errorf("failed to check responses for reminder: %w", err)
		}
		if !responded {
			pending = append(pending, userID)
		}
	}

	if len(pending) == 0 {
		s.log.Info("everyone responded, skipping reminder",
			zap.Int64("standup_id", standup.ID))
		return nil
	}

	message := fmt.Sprintf("Reminder: *%s* closes soon and your update hasn't come in yet. "+
		"Send it with `/standup respond <your update>`.", standup.Name)

	var failed int
	for _, userID := range pending {
		if err := s.messenger.SendDirect(userID, message); err != nil {
			failed++
			s.log.Error("failed to send reminder",
				zap.Int64("standup_id", standup.ID),
				zap.String("user_id", userID),
				zap.Error(err))
		}
	}

	s.log.Info("standup reminders sent",
		zap.Int64("standup_id", standup.ID),
		zap.Int("pending", len(pending)),
		zap.Int("failed", failed))
	return nil
}

// postSummary collects the day's responses and posts the summary to the
// standup channel. When the configured generator fails, the deterministic
// fallback formats the raw responses so the summary always lands.
func (s *standupService) postSummary(standup *entity.Standup, today time.Time) error {
	dateStr := today.Format(dateLayout)

	responses, err := s.dm.Response().GetByStandupAndDate(standup.ID, dateStr)
	if err != nil {
		return fmt.Errorf("failed to load responses for summary: %w", err)
	}

	ctx := context.Background()
	text, err := s.summarizer.Summarize(ctx, standup.Name, responses)
	if err != nil {
		s.log.Warn("summary generator failed, using manual fallback",
			zap.Int64("standup_id", standup.ID), zap.Error(err))
		if text, err = s.fallback.Summarize(ctx, standup.Name, responses); err != nil {
			return fmt.Errorf("fallback summary failed: %w", err)
		}
	}

	if err := s.messenger.SendToChannel(standup.SlackChannelID, text); err != nil {
		return fmt.Errorf("failed to post summary: %w", err)
	}

	s.log.Info("standup summary posted",
		zap.Int64("standup_id", standup.ID),
		zap.String("date", dateStr),
		zap.Int("responses", len(responses)))
	return nil
}
