package schema

const (
	// MetadataKeyFileName is the key for the source file name.
	MetadataKeyFileName = "file_name"
	// MetadataKeyPageLabel is the key for the page number or label from the source document.
	MetadataKeyPageLabel = "page_label"
)

// Document is the central data structure representing a piece of extracted text.
// It is the primary data carrier between loaders and the ingestion pipeline.
type Document struct {
	// ID is the unique identifier for this document.
	ID string

	// Text is the string content of the document.
	Text string

	// Metadata holds arbitrary data about the document (file_name, page_label, ...).
	Metadata map[string]interface{}
}

// Passage is a contiguous slice of a document's normalized text, produced at
// query time by a splitter. Passages are never persisted.
type Passage struct {
	// Index is the position of the passage in the original chunking order.
	Index int

	// Text is the passage content.
	Text string
}

// ScoredPassage pairs a passage with its similarity score against a query.
type ScoredPassage struct {
	Passage Passage

	// Score is the cosine similarity between the query vector and the passage vector.
	Score float64
}
