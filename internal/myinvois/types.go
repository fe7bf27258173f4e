package myinvois

import "encoding/json"

// SubmissionDocument is one document in a documentsubmissions request.
type SubmissionDocument struct {
	Format       string `json:"format"`
	DocumentHash string `json:"documentHash"`
	CodeNumber   string `json:"codeNumber"`
	Document     string `json:"document"`
}

type submissionRequest struct {
	Documents []SubmissionDocument `json:"documents"`
}

// AcceptedDocument is one accepted entry in a submission response.
type AcceptedDocument struct {
	UUID              string `json:"uuid"`
	InvoiceCodeNumber string `json:"invoiceCodeNumber"`
}

// RejectedDocument is one rejected entry in a submission response.
type RejectedDocument struct {
	InvoiceCodeNumber string          `json:"invoiceCodeNumber"`
	Error             json.RawMessage `json:"error"`
}

// SubmissionResult is the parsed documentsubmissions response.
type SubmissionResult struct {
	SubmissionUID     string             `json:"submissionUid"`
	AcceptedDocuments []AcceptedDocument `json:"acceptedDocuments"`
	RejectedDocuments []RejectedDocument `json:"rejectedDocuments"`
}

// DocumentType is one entry of the documenttypes listing.
type DocumentType struct {
	ID                   int                   `json:"id"`
	InvoiceTypeCode      int                   `json:"invoiceTypeCode"`
	Description          string                `json:"description"`
	ActiveFrom           string                `json:"activeFrom"`
	ActiveTo             string                `json:"activeTo"`
	DocumentTypeVersions []DocumentTypeVersion `json:"documentTypeVersions"`
}

// DocumentTypeVersion is one schema version of a document type.
type DocumentTypeVersion struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	VersionNumber string `json:"versionNumber"`
	Status        string `json:"status"`
}

// Notification is one taxpayer notification entry.
type Notification struct {
	NotificationID string `json:"notificationId"`
	ReceiverName   string `json:"receiverName"`
	Subject        string `json:"subject"`
	DeliveredDate  string `json:"deliveredDateTime"`
	TypeID         string `json:"typeId"`
	TypeName       string `json:"typeName"`
	Status         string `json:"status"`
}

// NotificationQuery filters the taxpayer notifications listing. Zero values
// are omitted from the query string.
type NotificationQuery struct {
	DateFrom string
	DateTo   string
	Type     string
	Language string
	Status   string
	Channel  string
	PageNo   int
	PageSize int
}

type notificationPage struct {
	Result []Notification `json:"result"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}
