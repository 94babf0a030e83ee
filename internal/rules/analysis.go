package rules

const (
	CSVAnalysis = "CSV file received. Tabular health data detected: rows will be treated as " +
		"individual readings and columns as measured metrics."

	JSONAnalysis = "JSON file received. Structured health records detected: nested objects will be " +
		"mapped to patient attributes."

	TextAnalysis = "Text file received. Free-form health notes detected and stored for review."
)

// AnalysisRules branch on file type only; content is never inspected.
var AnalysisRules = Table{
	{Name: "csv", Match: func(ext string) bool { return ext == "csv" }, Text: CSVAnalysis},
	{Name: "json", Match: func(ext string) bool { return ext == "json" }, Text: JSONAnalysis},
}

// Analysis returns the description for a lower-cased file extension.
func Analysis(fileType string) string {
	return AnalysisRules.First(fileType, TextAnalysis)
}
