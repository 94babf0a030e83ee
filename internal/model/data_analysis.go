package model

// AllowedFileTypes is the upload allow-list
var AllowedFileTypes = []string{"csv", "json", "txt"}

// DataAnalysisRecord is the canned analysis produced for an uploaded file
type DataAnalysisRecord struct {
	Base
	Filename       string `db:"filename" json:"filename"`
	FileType       string `db:"file_type" json:"file_type"`
	AnalysisResult string `db:"analysis_result" json:"analysis_result"`
}

// UploadInput is the normalized upload form
type UploadInput struct {
	Filename string `form:"dataUpload" validate:"required,fileext=csv json txt"`
	FileType string `form:"-"`
}

// AnalysisResponse is the body returned by POST /api/data-analysis
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
	Filename string `json:"filename"`
}
