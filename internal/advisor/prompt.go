// Package advisor turns a user's investment profile into generated
// portfolio advice: building the model prompt and calling the
// text-generation provider.
package advisor

import (
	"fmt"

	"advisor/internal/models"
)

// Profile is the four-field investment preference input submitted by a user.
// It is never mutated after submission.
type Profile struct {
	Age            int
	RiskTolerance  models.RiskTolerance
	InvestmentGoal string
	TimeHorizon    float64 // years
}

// promptTemplate embeds all four profile fields verbatim. Identical
// profiles must always render to byte-identical prompts.
const promptTemplate = `You are an experienced investment advisor. Based on the following information, recommend a suitable asset allocation strategy and briefly explain your reasoning:
- Age: %d
- Risk tolerance: %s
- Investment goal: %s
- Time horizon: %g years`

// BuildPrompt renders a profile into the instruction sent to the
// recommendation model. Pure function: same profile, same prompt.
func BuildPrompt(profile Profile) string {
	return fmt.Sprintf(promptTemplate,
		profile.Age,
		profile.RiskTolerance,
		profile.InvestmentGoal,
		profile.TimeHorizon,
	)
}
