package models

import (
	"time"

	"advisor/internal/uuid"

	"gorm.io/gorm"
)

// RiskTolerance is one of the seven ordered labels a user can pick for
// their appetite for risk.
type RiskTolerance string

const (
	RiskVeryConservative       RiskTolerance = "Very Conservative"
	RiskConservative           RiskTolerance = "Conservative"
	RiskModeratelyConservative RiskTolerance = "Moderately Conservative"
	RiskModerate               RiskTolerance = "Moderate"
	RiskModeratelyAggressive   RiskTolerance = "Moderately Aggressive"
	RiskAggressive             RiskTolerance = "Aggressive"
	RiskVeryAggressive         RiskTolerance = "Very Aggressive"
)

// RiskTolerances lists the valid labels in order from least to most risk.
var RiskTolerances = []RiskTolerance{
	RiskVeryConservative,
	RiskConservative,
	RiskModeratelyConservative,
	RiskModerate,
	RiskModeratelyAggressive,
	RiskAggressive,
	RiskVeryAggressive,
}

// Portfolio is one stored recommendation: the submitted investment profile
// plus the advice generated for it. Records are written whole, exactly once,
// and never updated afterwards, so there is no Base embed and no soft delete.
type Portfolio struct {
	ID             string        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Age            int           `gorm:"not null" json:"age"`
	RiskTolerance  RiskTolerance `gorm:"not null" json:"risk_tolerance"`
	InvestmentGoal string        `gorm:"not null" json:"investment_goal"`
	TimeHorizon    float64       `gorm:"not null" json:"time_horizon"`
	Recommendation string        `gorm:"type:text;not null" json:"recommendation"`
	GeneratedAt    time.Time     `gorm:"not null" json:"generated_at"`
	CreatedAt      time.Time     `json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records.
func (p *Portfolio) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New()
	}
	return nil
}
