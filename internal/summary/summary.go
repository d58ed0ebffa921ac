// Package summary provides the deterministic fallback summary generator.
// AI-backed generators implement the same contract and are wired in at
// process start when available.
package summary

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/standupbot/slack-standup-bot/internal/domain/contract"
	"github.com/standupbot/slack-standup-bot/internal/domain/entity"
)

type manualGenerator struct{}

// NewManualGenerator returns a SummaryGenerator that formats responses
// verbatim. It never fails, which makes it a safe fallback.
func NewManualGenerator() contract.SummaryGenerator {
	return &manualGenerator{}
}

func (g *manualGenerator) Summarize(_ context.Context, standupName string, responses []*entity.Response) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s — standup summary*\n\n", standupName)

	if len(responses) == 0 {
		b.WriteString("_No responses were submitted today._")
		return b.String(), nil
	}

	// Stable output regardless of submission order.
	sorted := append([]*entity.Response(nil), responses...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].SlackUserID < sorted[j].SlackUserID })

	for _, r := range sorted {
		fmt.Fprintf(&b, "*<@%s>*\n%s\n\n", r.SlackUserID, strings.TrimSpace(r.Content))
	}
	fmt.Fprintf(&b, "_%d of today's updates collected._", len(sorted))
	return b.String(), nil
}
