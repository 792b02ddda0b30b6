package etree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="utf-8"?>
<queryResultContainer>
  <qID>1004</qID>
  <query>mass transit</query>
  <relevantInformationExamples>
    <string>bus schedules</string>
  </relevantInformationExamples>
  <irrelevantInformationExamples/>
  <rankedResults>
    <singleRankedResult>
      <rank>1</rank>
      <clueWebID>clueweb12-0000tw-00-00001</clueWebID>
      <score>5.25</score>
      <originalHtml>&lt;p&gt;Hello&lt;/p&gt;</originalHtml>
      <mTurkRelevanceVotes>
        <mTurkRelevanceVote>
          <turkID>A1</turkID>
          <hitID>H1</hitID>
          <singleSentenceRelevanceVotes>
            <singleSentenceRelevanceVote>
              <sentenceID>s1</sentenceID>
              <relevant>true</relevant>
            </singleSentenceRelevanceVote>
          </singleSentenceRelevanceVotes>
        </mTurkRelevanceVote>
      </mTurkRelevanceVotes>
      <goldEstimatedLabels/>
      <observedAgreement>0.75</observedAgreement>
    </singleRankedResult>
    <singleRankedResult>
      <rank>2</rank>
      <clueWebID>clueweb12-0000tw-00-00002</clueWebID>
      <score>3.0</score>
      <mTurkRelevanceVotes/>
      <goldEstimatedLabels/>
    </singleRankedResult>
  </rankedResults>
</queryResultContainer>
`

func TestCodec_Decode(t *testing.T) {
	t.Parallel()

	t.Run("reads container fields", func(t *testing.T) {
		t.Parallel()

		qc, err := etree.NewCodec().Decode(strings.NewReader(sampleXML))

		require.NoError(t, err)
		assert.Equal(t, "1004", qc.QID)
		assert.Equal(t, "mass transit", qc.Query)
		assert.Equal(t, []string{"bus schedules"}, qc.RelevantInformationExamples)
		assert.Empty(t, qc.IrrelevantInformationExamples)
		require.Len(t, qc.RankedResults, 2)

		first := qc.RankedResults[0]
		assert.Equal(t, 1, first.Rank)
		assert.Equal(t, "clueweb12-0000tw-00-00001", first.ClueWebID)
		assert.InDelta(t, 5.25, first.Score, 1e-9)
		assert.Equal(t, "<p>Hello</p>", first.OriginalHTML)
		require.Len(t, first.MTurkRelevanceVotes, 1)
		assert.Equal(t, "A1", first.MTurkRelevanceVotes[0].TurkID)
		assert.Equal(t, []justext.SentenceRelevanceVote{{SentenceID: "s1", Relevant: "true"}},
			first.MTurkRelevanceVotes[0].SentenceRelevanceVotes)
		require.NotNil(t, first.ObservedAgreement)
		assert.InDelta(t, 0.75, *first.ObservedAgreement, 1e-9)

		second := qc.RankedResults[1]
		assert.Empty(t, second.OriginalHTML)
		assert.Nil(t, second.ObservedAgreement)
	})

	t.Run("rejects invalid rank", func(t *testing.T) {
		t.Parallel()

		xml := strings.Replace(sampleXML, "<rank>1</rank>", "<rank>first</rank>", 1)

		_, err := etree.NewCodec().Decode(strings.NewReader(xml))

		assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	})

	t.Run("rejects unexpected root element", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewCodec().Decode(strings.NewReader(`<other/>`))

		assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	})

	t.Run("rejects malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewCodec().Decode(strings.NewReader(`<queryResultContainer><<qID>`))

		assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	})
}

func TestCodec_Encode(t *testing.T) {
	t.Parallel()

	t.Run("round trips container with votes", func(t *testing.T) {
		t.Parallel()

		codec := etree.NewCodec()
		in, err := codec.Decode(strings.NewReader(sampleXML))
		require.NoError(t, err)
		in.RankedResults[0].PlainText = "<p>Hello &amp; bye</p>\n"

		var buf bytes.Buffer
		require.NoError(t, codec.Encode(&buf, in))
		out, err := codec.Decode(&buf)

		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("writes XML declaration and omits empty fields", func(t *testing.T) {
		t.Parallel()

		qc := &justext.QueryResultContainer{
			QID:           "7",
			RankedResults: []*justext.RankedResult{{Rank: 1, ClueWebID: "doc-1"}},
		}

		var buf bytes.Buffer
		require.NoError(t, etree.NewCodec().Encode(&buf, qc))

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8"?>`))
		assert.Contains(t, out, "<qID>7</qID>")
		assert.Contains(t, out, "<singleRankedResult>")
		assert.NotContains(t, out, "<plainText>")
		assert.NotContains(t, out, "<observedAgreement>")
	})

	t.Run("requires query ID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := etree.NewCodec().Encode(&buf, &justext.QueryResultContainer{})

		assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	})
}
