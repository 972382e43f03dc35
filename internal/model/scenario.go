package model

import "github.com/google/uuid"

// GlobalScenario is an admin-curated catalog entry shared by all users.
type GlobalScenario struct {
	Base
	ScenarioCode        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"scenarioCode"`
	ScenarioDescription string `gorm:"type:varchar(500);not null" json:"scenarioDescription"`
	SalesType           string `gorm:"type:varchar(255)" json:"salesType"`
}

// Scenario is a user's grant of a GlobalScenario. Code, description and sales type are
// copied at assignment time and do not follow later catalog edits.
type Scenario struct {
	Base
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_scenarios_user_code" json:"userId"`
	ScenarioCode        string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_scenarios_user_code" json:"scenarioCode"`
	ScenarioDescription string    `gorm:"type:varchar(500);not null" json:"scenarioDescription"`
	SalesType           string    `gorm:"type:varchar(255)" json:"salesType"`
}
