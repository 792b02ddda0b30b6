// Package etree reads and writes query-result containers as XML using etree.
package etree

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/justext"
)

// Ensure Codec implements justext.ContainerCodec at compile time.
var _ justext.ContainerCodec = (*Codec)(nil)

// Element names of the container format.
const (
	containerTag          = "queryResultContainer"
	rankedResultTag       = "singleRankedResult"
	turkVoteTag           = "mTurkRelevanceVote"
	sentenceVoteTag       = "singleSentenceRelevanceVote"
	stringTag             = "string"
	rankedResultsTag      = "rankedResults"
	turkVotesTag          = "mTurkRelevanceVotes"
	goldLabelsTag         = "goldEstimatedLabels"
	sentenceVotesTag      = "singleSentenceRelevanceVotes"
	relevantExamplesTag   = "relevantInformationExamples"
	irrelevantExamplesTag = "irrelevantInformationExamples"
)

// Codec serializes containers in the XStream layout used by the corpus.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode reads a container from r.
func (c *Codec) Decode(r io.Reader) (*justext.QueryResultContainer, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, justext.Errorf(justext.EINVALID, "failed to parse container XML: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != containerTag {
		return nil, justext.Errorf(justext.EINVALID, "missing %s root element", containerTag)
	}

	qc := &justext.QueryResultContainer{
		QID:                           childText(root, "qID"),
		Query:                         childText(root, "query"),
		RelevantInformationExamples:   stringList(root.SelectElement(relevantExamplesTag)),
		IrrelevantInformationExamples: stringList(root.SelectElement(irrelevantExamplesTag)),
	}

	if list := root.SelectElement(rankedResultsTag); list != nil {
		for _, el := range list.SelectElements(rankedResultTag) {
			result, err := decodeRankedResult(el)
			if err != nil {
				return nil, err
			}
			qc.RankedResults = append(qc.RankedResults, result)
		}
	}

	return qc, nil
}

func decodeRankedResult(el *etree.Element) (*justext.RankedResult, error) {
	r := &justext.RankedResult{
		ClueWebID:          childText(el, "clueWebID"),
		AdditionalInfo:     childText(el, "additionalInfo"),
		PlainText:          childText(el, "plainText"),
		OriginalHTML:       childText(el, "originalHtml"),
		Relevant:           childText(el, "relevant"),
		OriginalXMI:        childText(el, "originalXmi"),
		GoldAnnotationsXMI: childText(el, "goldAnnotationsXmi"),
	}

	if s := strings.TrimSpace(childText(el, "rank")); s != "" {
		rank, err := strconv.Atoi(s)
		if err != nil {
			return nil, justext.Errorf(justext.EINVALID, "invalid rank %q", s)
		}
		r.Rank = rank
	}
	if s := strings.TrimSpace(childText(el, "score")); s != "" {
		score, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, justext.Errorf(justext.EINVALID, "invalid score %q", s)
		}
		r.Score = score
	}
	if s := strings.TrimSpace(childText(el, "observedAgreement")); s != "" {
		agreement, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, justext.Errorf(justext.EINVALID, "invalid observed agreement %q", s)
		}
		r.ObservedAgreement = &agreement
	}

	if list := el.SelectElement(turkVotesTag); list != nil {
		for _, v := range list.SelectElements(turkVoteTag) {
			r.MTurkRelevanceVotes = append(r.MTurkRelevanceVotes, &justext.MTurkRelevanceVote{
				TurkID:                 childText(v, "turkID"),
				HITID:                  childText(v, "hitID"),
				AcceptTime:             childText(v, "acceptTime"),
				SubmitTime:             childText(v, "submitTime"),
				Comment:                childText(v, "comment"),
				SentenceRelevanceVotes: sentenceVotes(v.SelectElement(sentenceVotesTag)),
			})
		}
	}
	r.GoldEstimatedLabels = sentenceVotes(el.SelectElement(goldLabelsTag))

	return r, nil
}

// Encode writes qc to w as an indented XML document.
func (c *Codec) Encode(w io.Writer, qc *justext.QueryResultContainer) error {
	if err := qc.Validate(); err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement(containerTag)
	setChild(root, "qID", qc.QID)
	setChild(root, "query", qc.Query)
	writeStrings(root.CreateElement(relevantExamplesTag), qc.RelevantInformationExamples)
	writeStrings(root.CreateElement(irrelevantExamplesTag), qc.IrrelevantInformationExamples)

	results := root.CreateElement(rankedResultsTag)
	for _, r := range qc.RankedResults {
		encodeRankedResult(results.CreateElement(rankedResultTag), r)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func encodeRankedResult(el *etree.Element, r *justext.RankedResult) {
	el.CreateElement("rank").SetText(strconv.Itoa(r.Rank))
	setChild(el, "clueWebID", r.ClueWebID)
	el.CreateElement("score").SetText(strconv.FormatFloat(r.Score, 'f', -1, 64))
	setChild(el, "additionalInfo", r.AdditionalInfo)
	setChild(el, "plainText", r.PlainText)
	setChild(el, "originalHtml", r.OriginalHTML)
	setChild(el, "relevant", r.Relevant)
	setChild(el, "originalXmi", r.OriginalXMI)
	setChild(el, "goldAnnotationsXmi", r.GoldAnnotationsXMI)

	votes := el.CreateElement(turkVotesTag)
	for _, v := range r.MTurkRelevanceVotes {
		ve := votes.CreateElement(turkVoteTag)
		setChild(ve, "turkID", v.TurkID)
		setChild(ve, "hitID", v.HITID)
		setChild(ve, "acceptTime", v.AcceptTime)
		setChild(ve, "submitTime", v.SubmitTime)
		setChild(ve, "comment", v.Comment)
		writeSentenceVotes(ve.CreateElement(sentenceVotesTag), v.SentenceRelevanceVotes)
	}
	writeSentenceVotes(el.CreateElement(goldLabelsTag), r.GoldEstimatedLabels)

	if r.ObservedAgreement != nil {
		el.CreateElement("observedAgreement").SetText(strconv.FormatFloat(*r.ObservedAgreement, 'f', -1, 64))
	}
}

// setChild adds a child element holding text. Empty values are omitted.
func setChild(parent *etree.Element, tag, text string) {
	if text == "" {
		return
	}
	parent.CreateElement(tag).SetText(text)
}

func childText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return el.Text()
}

func stringList(list *etree.Element) []string {
	if list == nil {
		return nil
	}
	var out []string
	for _, el := range list.SelectElements(stringTag) {
		out = append(out, el.Text())
	}
	return out
}

func writeStrings(list *etree.Element, values []string) {
	for _, v := range values {
		list.CreateElement(stringTag).SetText(v)
	}
}

func sentenceVotes(list *etree.Element) []justext.SentenceRelevanceVote {
	if list == nil {
		return nil
	}
	var out []justext.SentenceRelevanceVote
	for _, el := range list.SelectElements(sentenceVoteTag) {
		out = append(out, justext.SentenceRelevanceVote{
			SentenceID: childText(el, "sentenceID"),
			Relevant:   childText(el, "relevant"),
		})
	}
	return out
}

func writeSentenceVotes(list *etree.Element, votes []justext.SentenceRelevanceVote) {
	for _, v := range votes {
		el := list.CreateElement(sentenceVoteTag)
		setChild(el, "sentenceID", v.SentenceID)
		setChild(el, "relevant", v.Relevant)
	}
}
