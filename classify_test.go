package justext_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/justext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textOfLength returns text of exactly n characters made of the word "word".
func textOfLength(n int) string {
	s := strings.Repeat("word ", n/5+1)
	return s[:n]
}

// prose returns stopword-rich English text of at least n characters.
func prose(n int) string {
	const sentence = "it was the best of times and it was the worst of times. "
	s := strings.Repeat(sentence, n/len(sentence)+1)
	return strings.TrimSpace(s[:n])
}

var testStopwords = justext.NewStopwordSet("it", "was", "the", "of", "and", "a", "to", "in")

func paragraph(text string) *justext.Block {
	return &justext.Block{Text: text, TagPath: []string{"html", "body", "p"}}
}

func heading(text string) *justext.Block {
	return &justext.Block{Text: text, TagPath: []string{"html", "body", "h2"}, Heading: true}
}

func englishConfig() justext.Config {
	cfg := justext.DefaultConfig()
	cfg.Stopwords = testStopwords
	return cfg
}

func TestClassifyContextFree(t *testing.T) {
	t.Parallel()

	t.Run("classifies dense links as bad regardless of length", func(t *testing.T) {
		t.Parallel()

		b := paragraph(prose(400))
		b.LinkLength = 100

		justext.ClassifyContextFree([]*justext.Block{b}, englishConfig())

		assert.Equal(t, justext.ClassBad, b.ContextFreeClass)
	})

	t.Run("classifies copyright notices as bad", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{
			paragraph("© " + prose(300)),
			paragraph("&copy 2009 " + prose(300)),
			paragraph(`\xa9 ` + prose(300)),
		}

		justext.ClassifyContextFree(blocks, englishConfig())

		for _, b := range blocks {
			assert.Equal(t, justext.ClassBad, b.ContextFreeClass, b.Text[:12])
		}
	})

	t.Run("classifies short text without links as short", func(t *testing.T) {
		t.Parallel()

		b := paragraph("Contact us")

		justext.ClassifyContextFree([]*justext.Block{b}, englishConfig())

		assert.Equal(t, justext.ClassShort, b.ContextFreeClass)
	})

	t.Run("classifies short text with links as bad", func(t *testing.T) {
		t.Parallel()

		b := paragraph("Read more about it")
		b.LinkLength = 2

		justext.ClassifyContextFree([]*justext.Block{b}, englishConfig())

		assert.Equal(t, justext.ClassBad, b.ContextFreeClass)
	})

	t.Run("classifies long stopword-rich text as good", func(t *testing.T) {
		t.Parallel()

		b := paragraph(prose(250))

		justext.ClassifyContextFree([]*justext.Block{b}, englishConfig())

		assert.Equal(t, justext.ClassGood, b.ContextFreeClass)
	})

	t.Run("classifies medium stopword-rich text as near-good", func(t *testing.T) {
		t.Parallel()

		b := paragraph(prose(120))

		justext.ClassifyContextFree([]*justext.Block{b}, englishConfig())

		assert.Equal(t, justext.ClassNearGood, b.ContextFreeClass)
	})

	t.Run("classifies density between thresholds as near-good", func(t *testing.T) {
		t.Parallel()

		// 6 of 20 words are stopwords.
		text := strings.Repeat("the alpha beta gamma the delta epsilon zeta the eta ", 2)
		b := paragraph(strings.TrimSpace(text))

		justext.ClassifyContextFree([]*justext.Block{b}, englishConfig())

		assert.Equal(t, justext.ClassNearGood, b.ContextFreeClass)
	})

	t.Run("classifies text without stopwords as bad", func(t *testing.T) {
		t.Parallel()

		b := paragraph(textOfLength(300))

		justext.ClassifyContextFree([]*justext.Block{b}, englishConfig())

		assert.Equal(t, justext.ClassBad, b.ContextFreeClass)
	})

	t.Run("falls back to length in language-independent mode", func(t *testing.T) {
		t.Parallel()

		long := paragraph(textOfLength(250))
		medium := paragraph(textOfLength(100))
		short := paragraph(textOfLength(20))

		justext.ClassifyContextFree([]*justext.Block{long, medium, short}, justext.DefaultConfig())

		// Density 0 meets the zeroed thresholds.
		assert.Equal(t, justext.ClassGood, long.ContextFreeClass)
		assert.Equal(t, justext.ClassNearGood, medium.ContextFreeClass)
		assert.Equal(t, justext.ClassShort, short.ContextFreeClass)
	})

	t.Run("does not depend on block order", func(t *testing.T) {
		t.Parallel()

		a, b := paragraph(prose(250)), paragraph("Menu")
		justext.ClassifyContextFree([]*justext.Block{a, b}, englishConfig())
		c, d := paragraph("Menu"), paragraph(prose(250))
		justext.ClassifyContextFree([]*justext.Block{c, d}, englishConfig())

		assert.Equal(t, a.ContextFreeClass, d.ContextFreeClass)
		assert.Equal(t, b.ContextFreeClass, c.ContextFreeClass)
	})
}

func classes(blocks []*justext.Block) []justext.Class {
	out := make([]justext.Class, len(blocks))
	for i, b := range blocks {
		out[i] = b.Class
	}
	return out
}

// withClass returns a block of the given length whose context-free class is c.
func withClass(c justext.Class, length int) *justext.Block {
	b := paragraph(textOfLength(length))
	b.ContextFreeClass = c
	return b
}

func headingWithClass(c justext.Class, length int) *justext.Block {
	b := heading(textOfLength(length))
	b.ContextFreeClass = c
	return b
}

const (
	good     = justext.ClassGood
	bad      = justext.ClassBad
	short    = justext.ClassShort
	neargood = justext.ClassNearGood
)

func TestReclassifyContextSensitive(t *testing.T) {
	t.Parallel()

	t.Run("resolves a lone short block to bad", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{withClass(short, 10)}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{bad}, classes(blocks))
		assert.Equal(t, short, blocks[0].ContextFreeClass)
	})

	t.Run("resolves a lone near-good block to bad", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{withClass(neargood, 100)}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{bad}, classes(blocks))
	})

	t.Run("resolves short between good blocks to good", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{withClass(good, 300), withClass(short, 10), withClass(short, 10), withClass(good, 300)}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{good, good, good, good}, classes(blocks))
	})

	t.Run("resolves short between bad blocks to bad", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{withClass(bad, 30), withClass(short, 10), withClass(bad, 30)}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{bad, bad, bad}, classes(blocks))
	})

	t.Run("resolves short between good and bad to bad", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{withClass(good, 300), withClass(short, 10), withClass(bad, 30)}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{good, bad, bad}, classes(blocks))
	})

	t.Run("resolves short to good when the bad side is behind near-good", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{
			withClass(good, 300),
			withClass(short, 10),
			withClass(neargood, 100),
			withClass(bad, 30),
		}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{good, good, good, bad}, classes(blocks))
	})

	t.Run("resolves near-good between bad blocks to bad", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{withClass(bad, 30), withClass(neargood, 100), withClass(bad, 30)}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{bad, bad, bad}, classes(blocks))
	})

	t.Run("resolves near-good next to good to good", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{withClass(bad, 30), withClass(neargood, 100), withClass(neargood, 100), withClass(good, 300)}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{bad, good, good, good}, classes(blocks))
	})

	t.Run("keeps a short heading followed by good content", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{headingWithClass(short, 5), withClass(good, 300)}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{good, good}, classes(blocks))
	})

	t.Run("drops a short heading too far from good content", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{headingWithClass(short, 5), withClass(bad, 250), withClass(good, 300)}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{bad, bad, good}, classes(blocks))
	})

	t.Run("restores a demoted heading followed by good content", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{
			withClass(bad, 30),
			headingWithClass(neargood, 80),
			withClass(bad, 50),
			withClass(good, 300),
		}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{bad, good, bad, good}, classes(blocks))
	})

	t.Run("does not restore a heading that was bad from the start", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{headingWithClass(bad, 80), withClass(good, 300)}

		justext.ReclassifyContextSensitive(blocks, 200)

		assert.Equal(t, []justext.Class{bad, good}, classes(blocks))
	})

	t.Run("leaves every block good or bad", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{
			withClass(short, 10), headingWithClass(short, 10), withClass(neargood, 100),
			withClass(short, 10), withClass(bad, 10), withClass(neargood, 100),
			withClass(good, 300), withClass(short, 10), headingWithClass(neargood, 80),
		}

		justext.ReclassifyContextSensitive(blocks, 200)

		for _, c := range classes(blocks) {
			assert.Contains(t, []justext.Class{good, bad}, c)
		}
	})

	t.Run("handles no blocks", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() { justext.ReclassifyContextSensitive(nil, 200) })
	})
}

func TestClassifyBlocks(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid config", func(t *testing.T) {
		t.Parallel()

		cfg := justext.DefaultConfig()
		cfg.LengthLow = 500

		err := justext.ClassifyBlocks([]*justext.Block{paragraph("x")}, cfg)

		assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		build := func() []*justext.Block {
			return []*justext.Block{
				heading("Title"), paragraph(prose(250)), paragraph("Share"),
				paragraph(prose(120)), paragraph(textOfLength(90)),
			}
		}
		first, second := build(), build()

		require.NoError(t, justext.ClassifyBlocks(first, englishConfig()))
		require.NoError(t, justext.ClassifyBlocks(second, englishConfig()))
		require.NoError(t, justext.ClassifyBlocks(second, englishConfig()))

		assert.Equal(t, classes(first), classes(second))
	})

	t.Run("keeps all long blocks in language-independent mode", func(t *testing.T) {
		t.Parallel()

		blocks := []*justext.Block{
			paragraph(textOfLength(80)), paragraph(textOfLength(250)), paragraph(textOfLength(150)),
		}

		require.NoError(t, justext.ClassifyBlocks(blocks, justext.DefaultConfig()))

		assert.Equal(t, []justext.Class{good, good, good}, classes(blocks))
	})
}
