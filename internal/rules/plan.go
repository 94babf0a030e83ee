package rules

import (
	"fmt"
	"strings"
)

const (
	WeightLossBlock = "Weight loss:\n" +
		"- Aim for a moderate calorie deficit of 300-500 kcal per day\n" +
		"- Do 150 minutes of moderate cardio each week\n" +
		"- Fill half of each plate with vegetables"

	MuscleGainBlock = "Muscle gain:\n" +
		"- Strength train each major muscle group twice a week\n" +
		"- Eat 1.6 g of protein per kg of body weight daily\n" +
		"- Increase training load gradually"

	SleepBlock = "Better sleep:\n" +
		"- Keep the same bedtime and wake time every day\n" +
		"- Avoid screens and caffeine in the evening\n" +
		"- Keep the bedroom cool, dark and quiet"

	ClosingBlock = "General recommendations:\n" +
		"- Drink 2 litres of water a day\n" +
		"- Schedule a yearly check-up\n" +
		"- Manage stress with regular breaks and physical activity"
)

// PlanRules are independent; every matching block is included in order.
var PlanRules = Table{
	{Name: "weight_loss", Match: ContainsAny("weight loss"), Text: WeightLossBlock},
	{Name: "muscle_gain", Match: ContainsAny("muscle gain"), Text: MuscleGainBlock},
	{Name: "sleep", Match: ContainsAny("sleep"), Text: SleepBlock},
}

// Plan assembles the plan text for an age and a goals description.
func Plan(age int, goals string) string {
	blocks := []string{fmt.Sprintf("Personalized healthcare plan (age %d)", age)}
	blocks = append(blocks, PlanRules.All(strings.ToLower(goals))...)
	blocks = append(blocks, ClosingBlock)
	return strings.Join(blocks, "\n\n")
}
