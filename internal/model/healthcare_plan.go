package model

const (
	MinPlanAge = 1
	MaxPlanAge = 150
)

// HealthcarePlan is a generated plan for an age and a set of goals
type HealthcarePlan struct {
	Base
	Age   int    `db:"age" json:"age"`
	Goals string `db:"goals" json:"goals"`
	Plan  string `db:"plan" json:"plan"`
}

// PlanInput is the normalized healthcare-plan form
type PlanInput struct {
	Age   int    `form:"age" validate:"gte=1,lte=150"`
	Goals string `form:"goals" validate:"required"`
}

// PlanResponse is the body returned by POST /api/healthcare-plan
type PlanResponse struct {
	Plan  string `json:"plan"`
	Age   int    `json:"age"`
	Goals string `json:"goals"`
}
