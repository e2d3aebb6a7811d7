package entity

// Document is one scanned request PDF tracked in pdf_documents.
type Document struct {
	Name        string `json:"name"`
	IsExtracted bool   `json:"is_extracted"`
}
