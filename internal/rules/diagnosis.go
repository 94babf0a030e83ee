package rules

import "strings"

const (
	ColdFluAdvice = "Your symptoms are consistent with a common cold or flu. " +
		"Rest, drink plenty of fluids and monitor your temperature. " +
		"See a doctor if a fever above 39°C lasts more than three days or breathing becomes difficult."

	HeadacheAdvice = "Your symptoms suggest a tension headache or migraine. " +
		"Rest in a quiet, dark room, stay hydrated and limit screen time. " +
		"Seek urgent care for a sudden severe headache, confusion or vision changes."

	DigestiveAdvice = "Your symptoms point to a digestive or gastrointestinal upset. " +
		"Eat bland foods, sip water or oral rehydration solution and avoid alcohol and fatty meals. " +
		"See a doctor if symptoms persist beyond 48 hours or you notice blood."

	GeneralAdvice = "We could not match your symptoms to a common condition. " +
		"Please book a consultation so a healthcare professional can assess you."
)

// DiagnosisRules are checked in order; the first match wins.
var DiagnosisRules = Table{
	{
		Name:  "cold_flu",
		Match: ContainsAny("fever", "cough", "cold", "flu", "sore throat", "runny nose", "congestion", "sneez"),
		Text:  ColdFluAdvice,
	},
	{
		Name:  "headache",
		Match: ContainsAny("headache", "migraine", "head pain", "dizz"),
		Text:  HeadacheAdvice,
	},
	{
		Name:  "gastrointestinal",
		Match: ContainsAny("stomach", "nausea", "vomit", "diarrhea", "abdominal", "indigestion"),
		Text:  DigestiveAdvice,
	},
}

// Diagnosis returns the advisory for a symptom description.
func Diagnosis(symptoms string) string {
	return DiagnosisRules.First(strings.ToLower(symptoms), GeneralAdvice)
}
