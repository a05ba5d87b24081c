package dto

// ExportReportRequest represents the request body for report export.
type ExportReportRequest struct {
	Recipient string `json:"recipient" binding:"required,email"`
}

// ExportReportResponse represents the response of a report export.
type ExportReportResponse struct {
	MessageID string `json:"message_id"`
}
