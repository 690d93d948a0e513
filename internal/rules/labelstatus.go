package rules

import (
	"context"
	"log/slog"
	"time"

	"github.com/aferrand/decisions-collector/constants"
	"github.com/aferrand/decisions-collector/internal/common"
	"github.com/aferrand/decisions-collector/internal/entity"
)

// ZoningResult is the external classifier's opinion on publicness. Nil
// pointers mean "no opinion".
type ZoningResult struct {
	Public      *bool
	DebatPublic *bool
}

// Zoner estimates document publicness from raw text. Its failure must never
// abort classification.
type Zoner interface {
	Classify(ctx context.Context, sourceID int64, text string) (ZoningResult, error)
}

// Classifier decides whether a decision may proceed to treatment.
type Classifier struct {
	Zoner             Zoner
	ZoningTimeout     time.Duration
	CommissioningDate time.Time
	Whitelist         []string
	Logger            *slog.Logger
}

func NewClassifier(zoner Zoner, zoningTimeout time.Duration, commissioningDate time.Time, whitelist []string, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		Zoner:             zoner,
		ZoningTimeout:     zoningTimeout,
		CommissioningDate: commissioningDate,
		Whitelist:         whitelist,
		Logger:            logger,
	}
}

// Classify runs the sequential rule chain; first match wins. The zoning call
// is best-effort: on failure it logs and falls through to the date rules.
func (c *Classifier) Classify(ctx context.Context, d *entity.NormalizedDecision) constants.LabelStatus {
	if !d.DebatPublic && !d.Public {
		return constants.LabelStatusIgnoredDebatNonPublic
	}
	if !d.Public {
		return constants.LabelStatusIgnoredDecisionNonPublique
	}

	if c.Zoner != nil {
		zctx, cancel := context.WithTimeout(ctx, c.ZoningTimeout)
		res, err := c.Zoner.Classify(zctx, d.SourceID, d.OriginalText)
		cancel()
		if err != nil {
			c.Logger.Warn("zoning.call_failed",
				"source_id", d.SourceID,
				"correlation_id", common.CorrelationIDFromContext(ctx),
				"error", err,
			)
		} else {
			if res.Public != nil && !*res.Public {
				return constants.LabelStatusIgnoredDecisionNonPublique
			}
			if res.DebatPublic != nil && !*res.DebatPublic {
				return constants.LabelStatusIgnoredDebatNonPublic
			}
		}
	}

	if d.DateDecision.After(d.DateCreation) {
		return constants.LabelStatusIgnoredDateDecisionIncoherente
	}
	if d.DateDecision.Before(c.CommissioningDate) {
		return constants.LabelStatusIgnoredDateAvantMiseEnService
	}

	if !c.whitelisted(d.JurisdictionID) {
		return constants.LabelStatusIgnoredJuridictionEnPhaseDeTest
	}

	// Pass-through: keep whatever stage the decision is already in.
	return d.LabelStatus
}

func (c *Classifier) whitelisted(jurisdictionID string) bool {
	for _, j := range c.Whitelist {
		if j == jurisdictionID {
			return true
		}
	}
	return false
}
