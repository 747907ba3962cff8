package backend

// Search types understood by the backend. Hybrid is the backend default.
const (
	SearchSemantic = "semantic"
	SearchKeyword  = "keyword"
	SearchHybrid   = "hybrid"
)

// Document types accepted by the generation endpoint.
const (
	DocSummary      = "summary"
	DocReport       = "report"
	DocPresentation = "presentation"
)

func ValidSearchType(t string) bool {
	switch t {
	case SearchSemantic, SearchKeyword, SearchHybrid:
		return true
	}
	return false
}

func ValidDocumentType(t string) bool {
	switch t {
	case DocSummary, DocReport, DocPresentation:
		return true
	}
	return false
}

type SearchQuery struct {
	Query      string `json:"query"`
	TopK       int    `json:"top_k,omitempty"`
	SearchType string `json:"search_type,omitempty"`
}

// SearchResult is a scored chunk-level match.
type SearchResult struct {
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
	Source     string  `json:"source"`
	Page       int     `json:"page,omitempty"`
	SearchType string  `json:"search_type,omitempty"`
}

// FileSearchResult aggregates chunk matches per source file.
type FileSearchResult struct {
	Source     string  `json:"source"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	AvgScore   float64 `json:"avg_score"`
	ChunkCount int     `json:"chunk_count"`
	BestChunk  string  `json:"best_chunk"`
	Pages      []int   `json:"pages"`
	SearchType string  `json:"search_type"`
}

type UploadResponse struct {
	Message        string `json:"message"`
	ChunksCreated  int    `json:"chunks_created"`
	TotalDocuments int    `json:"total_documents"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type DocumentInfo struct {
	Filename       string `json:"filename"`
	FileExists     bool   `json:"file_exists"`
	FileSize       int64  `json:"file_size"`
	DocumentChunks int    `json:"document_chunks"`
}

type DocumentList struct {
	Documents   []DocumentInfo `json:"documents"`
	TotalFiles  int            `json:"total_files"`
	TotalChunks int            `json:"total_chunks"`
}

type DeleteResponse struct {
	Message            string `json:"message"`
	FileDeleted        bool   `json:"file_deleted"`
	DocumentsRemoved   int    `json:"documents_removed"`
	RemainingDocuments int    `json:"remaining_documents"`
}

type ClearResponse struct {
	Message      string   `json:"message"`
	FilesDeleted []string `json:"files_deleted"`
	Count        int      `json:"count"`
}

type GenerateRequest struct {
	SearchResults []FileSearchResult `json:"search_results"`
	DocumentType  string             `json:"document_type"`
	Query         string             `json:"query"`
	CustomPrompt  string             `json:"custom_prompt,omitempty"`
}

// GeneratedDocument is the AI-produced artifact plus its provenance.
type GeneratedDocument struct {
	Content      string   `json:"content"`
	DocumentType string   `json:"document_type"`
	SourceFiles  []string `json:"source_files"`
	GeneratedAt  string   `json:"generated_at"`
	Query        string   `json:"query"`
}
