package justext

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// naiveReclassify rescans the document for every neighbour lookup.
func naiveReclassify(blocks []*Block, maxHeadingDistance int) []Class {
	cls := make([]Class, len(blocks))
	for i, b := range blocks {
		cls[i] = b.ContextFreeClass
	}

	neighbour := func(i, step int, ignoreNearGood bool) Class {
		for j := i + step; j >= 0 && j < len(cls); j += step {
			switch cls[j] {
			case ClassGood, ClassBad:
				return cls[j]
			case ClassNearGood:
				if !ignoreNearGood {
					return cls[j]
				}
			}
		}
		return ClassBad
	}
	lookahead := func(i int) bool {
		distance := 0
		for j := i + 1; j < len(blocks) && distance <= maxHeadingDistance; j++ {
			if cls[j] == ClassGood {
				return true
			}
			distance += blocks[j].Length()
		}
		return false
	}

	for i, b := range blocks {
		if b.Heading && cls[i] == ClassShort && lookahead(i) {
			cls[i] = ClassNearGood
		}
	}

	updates := map[int]Class{}
	for i := range cls {
		if cls[i] != ClassShort {
			continue
		}
		prev, next := neighbour(i, -1, true), neighbour(i, 1, true)
		switch {
		case prev == ClassGood && next == ClassGood:
			updates[i] = ClassGood
		case prev == ClassBad && next == ClassBad:
			updates[i] = ClassBad
		case (prev == ClassBad && neighbour(i, -1, false) == ClassNearGood) ||
			(next == ClassBad && neighbour(i, 1, false) == ClassNearGood):
			updates[i] = ClassGood
		default:
			updates[i] = ClassBad
		}
	}
	for i, c := range updates {
		cls[i] = c
	}

	for i := range cls {
		if cls[i] != ClassNearGood {
			continue
		}
		if neighbour(i, -1, true) == ClassBad && neighbour(i, 1, true) == ClassBad {
			cls[i] = ClassBad
		} else {
			cls[i] = ClassGood
		}
	}

	for i, b := range blocks {
		if b.Heading && cls[i] == ClassBad && b.ContextFreeClass != ClassBad && lookahead(i) {
			cls[i] = ClassGood
		}
	}
	return cls
}

func randomBlocks(rng *rand.Rand, n int) []*Block {
	all := []Class{ClassGood, ClassBad, ClassShort, ClassNearGood}
	blocks := make([]*Block, n)
	for i := range blocks {
		blocks[i] = &Block{
			Index:            i,
			Text:             strings.Repeat("x", 1+rng.Intn(150)),
			Heading:          rng.Intn(4) == 0,
			ContextFreeClass: all[rng.Intn(len(all))],
		}
	}
	return blocks
}

func TestReclassifyContextSensitive_MatchesNaiveScan(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 500; iter++ {
		blocks := randomBlocks(rng, rng.Intn(40))
		distance := rng.Intn(400)

		want := naiveReclassify(blocks, distance)
		ReclassifyContextSensitive(blocks, distance)

		got := make([]Class, len(blocks))
		for i, b := range blocks {
			got[i] = b.Class
		}
		if !assert.Equal(t, want, got, "iteration %d", iter) {
			return
		}
	}
}

func TestReclassifier_PromoteShortHeadings(t *testing.T) {
	t.Parallel()

	t.Run("marks heading near-good when good content is close", func(t *testing.T) {
		t.Parallel()

		blocks := []*Block{
			{Text: "Title", Heading: true, ContextFreeClass: ClassShort},
			{Text: strings.Repeat("y", 120), ContextFreeClass: ClassNearGood},
			{Text: strings.Repeat("z", 300), ContextFreeClass: ClassGood},
		}
		r := newReclassifier(blocks, 200)

		r.promoteShortHeadings()

		assert.Equal(t, []Class{ClassNearGood, ClassNearGood, ClassGood}, r.classes)
	})

	t.Run("counts intervening text up to the limit inclusively", func(t *testing.T) {
		t.Parallel()

		blocks := []*Block{
			{Text: "Title", Heading: true, ContextFreeClass: ClassShort},
			{Text: strings.Repeat("y", 200), ContextFreeClass: ClassBad},
			{Text: strings.Repeat("z", 300), ContextFreeClass: ClassGood},
		}
		r := newReclassifier(blocks, 200)

		r.promoteShortHeadings()

		assert.Equal(t, ClassNearGood, r.classes[0])
	})

	t.Run("ignores headings that are not short", func(t *testing.T) {
		t.Parallel()

		blocks := []*Block{
			{Text: "Title", Heading: true, ContextFreeClass: ClassBad},
			{Text: strings.Repeat("z", 300), ContextFreeClass: ClassGood},
		}
		r := newReclassifier(blocks, 200)

		r.promoteShortHeadings()

		assert.Equal(t, ClassBad, r.classes[0])
	})
}

func TestScanNeighbours(t *testing.T) {
	t.Parallel()

	classes := []Class{ClassShort, ClassGood, ClassNearGood, ClassShort, ClassBad}

	decided := scanNeighbours(classes, true)
	all := scanNeighbours(classes, false)

	assert.Equal(t, []Class{ClassBad, ClassBad, ClassGood, ClassGood, ClassGood}, decided.prev)
	assert.Equal(t, []Class{ClassGood, ClassBad, ClassBad, ClassBad, ClassBad}, decided.next)
	assert.Equal(t, []Class{ClassBad, ClassBad, ClassGood, ClassNearGood, ClassNearGood}, all.prev)
	assert.Equal(t, []Class{ClassGood, ClassNearGood, ClassBad, ClassBad, ClassBad}, all.next)
}
