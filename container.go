package justext

import (
	"context"
	"io"
)

// QueryResultContainer holds the ranked search results for one query.
type QueryResultContainer struct {
	QID   string `json:"qID"`
	Query string `json:"query"`

	RelevantInformationExamples   []string `json:"relevantInformationExamples,omitempty"`
	IrrelevantInformationExamples []string `json:"irrelevantInformationExamples,omitempty"`

	RankedResults []*RankedResult `json:"rankedResults"`
}

// Validate returns an error if the container contains invalid fields.
func (c *QueryResultContainer) Validate() error {
	if c.QID == "" {
		return Errorf(EINVALID, "container query ID required")
	}
	return nil
}

// NonEmptyResults returns the results that have plain text.
func (c *QueryResultContainer) NonEmptyResults() []*RankedResult {
	var results []*RankedResult
	for _, r := range c.RankedResults {
		if r.PlainText != "" {
			results = append(results, r)
		}
	}
	return results
}

// RankedResult is one retrieved document of a query.
type RankedResult struct {
	Rank      int     `json:"rank"`
	ClueWebID string  `json:"clueWebID"`
	Score     float64 `json:"score"`

	AdditionalInfo string `json:"additionalInfo,omitempty"`

	// PlainText holds the cleaned document once boilerplate is removed.
	PlainText string `json:"plainText,omitempty"`

	// OriginalHTML is the document as crawled.
	OriginalHTML string `json:"originalHtml,omitempty"`

	Relevant           string `json:"relevant,omitempty"`
	OriginalXMI        string `json:"originalXmi,omitempty"`
	GoldAnnotationsXMI string `json:"goldAnnotationsXmi,omitempty"`

	// Crowd annotations are carried through unchanged.
	MTurkRelevanceVotes []*MTurkRelevanceVote   `json:"mTurkRelevanceVotes,omitempty"`
	GoldEstimatedLabels []SentenceRelevanceVote `json:"goldEstimatedLabels,omitempty"`
	ObservedAgreement   *float64                `json:"observedAgreement,omitempty"`
}

// MTurkRelevanceVote is the set of sentence votes one worker submitted for
// a document.
type MTurkRelevanceVote struct {
	TurkID     string `json:"turkID"`
	HITID      string `json:"hitID"`
	AcceptTime string `json:"acceptTime,omitempty"`
	SubmitTime string `json:"submitTime,omitempty"`
	Comment    string `json:"comment,omitempty"`

	SentenceRelevanceVotes []SentenceRelevanceVote `json:"singleSentenceRelevanceVotes,omitempty"`
}

// SentenceRelevanceVote is a relevance label for one sentence.
type SentenceRelevanceVote struct {
	SentenceID string `json:"sentenceID"`
	Relevant   string `json:"relevant"`
}

// ContainerCodec reads and writes the serialized form of containers.
type ContainerCodec interface {
	Decode(r io.Reader) (*QueryResultContainer, error)
	Encode(w io.Writer, c *QueryResultContainer) error
}

// ContainerSource lists and reads containers.
type ContainerSource interface {
	// List returns the names of the available containers in a stable order.
	List(ctx context.Context) ([]string, error)

	// Read returns the named container.
	// Returns ENOTFOUND if the container does not exist.
	Read(ctx context.Context, name string) (*QueryResultContainer, error)
}

// ContainerStore persists containers with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ContainerStore interface {
	Save(ctx context.Context, c *QueryResultContainer) error
	Commit() error
	Abort() error
}
