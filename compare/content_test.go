package compare_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/htmlkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentOpts() htmlkit.ComparisonOptions {
	return htmlkit.ComparisonOptions{Mode: htmlkit.ModeContent}
}

func TestContent_TextContent(t *testing.T) {
	t.Parallel()

	a := `<html><body><p>Hello world</p></body></html>`
	b := `<html><body><p>Goodbye</p></body></html>`

	result := mustCompare(t, a, b, contentOpts())

	diffs := diffsOfType(result, htmlkit.DiffTextContent)
	require.Len(t, diffs, 1)
	assert.Equal(t, "11 vs 7 characters", diffs[0].Details)
}

func TestContent_TextContent_WhitespaceInsensitive(t *testing.T) {
	t.Parallel()

	a := `<html><body><p>Hello   world</p></body></html>`
	b := "<html><body><p>Hello\n\tworld</p></body></html>"

	result := mustCompare(t, a, b, contentOpts())

	assert.Empty(t, diffsOfType(result, htmlkit.DiffTextContent))
}

func TestContent_LinkCount(t *testing.T) {
	t.Parallel()

	a := `<html><body>
		<a href="/one">1</a>
		<a href="/two">2</a>
		<a>no href</a>
	</body></html>`
	b := `<html><body><a href="/one">1</a></body></html>`

	result := mustCompare(t, a, b, contentOpts())

	diffs := diffsOfType(result, htmlkit.DiffLinkCount)
	require.Len(t, diffs, 1)
	// Anchors without href do not count.
	assert.Equal(t, "2 vs 1", diffs[0].Details)
}

func TestContent_UniqueLinks_TruncatesExamples(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&sb, `<a href="/page-%d">p</a>`, i)
	}
	sb.WriteString("</body></html>")
	b := `<html><body></body></html>`

	result := mustCompare(t, sb.String(), b, contentOpts())

	diffs := diffsOfType(result, htmlkit.DiffUniqueLinks)
	require.Len(t, diffs, 1)
	assert.Contains(t, diffs[0].Description, "7 links")
	assert.True(t, strings.HasSuffix(diffs[0].Details, ", ..."))
	assert.Equal(t, 5, strings.Count(diffs[0].Details, "/page-"))
}

func TestContent_Images(t *testing.T) {
	t.Parallel()

	a := `<html><body><img src="/x.png"><img src="/shared.png"></body></html>`
	b := `<html><body><img src="/y.png"><img src="/shared.png"></body></html>`

	result := mustCompare(t, a, b, contentOpts())

	assert.Empty(t, diffsOfType(result, htmlkit.DiffImageCount))

	diffs := diffsOfType(result, htmlkit.DiffUniqueImages)
	require.Len(t, diffs, 2)
	assert.Contains(t, diffs[0].Details, "/x.png")
	assert.Contains(t, diffs[1].Details, "/y.png")
}

func TestContent_ImageCount(t *testing.T) {
	t.Parallel()

	a := `<html><body><img src="/x.png"><img src="/x.png"></body></html>`
	b := `<html><body><img src="/x.png"></body></html>`

	result := mustCompare(t, a, b, contentOpts())

	diffs := diffsOfType(result, htmlkit.DiffImageCount)
	require.Len(t, diffs, 1)
	assert.Equal(t, "2 vs 1", diffs[0].Details)
	assert.Empty(t, diffsOfType(result, htmlkit.DiffUniqueImages))
}

func TestContent_PairwiseAttributeDifference(t *testing.T) {
	t.Parallel()

	a := `<html><body><div class="alpha" data-x="1">same</div></body></html>`
	b := `<html><body><div class="alpha" data-x="2" data-y="3">same</div></body></html>`

	result := mustCompare(t, a, b, contentOpts())

	diffs := diffsOfType(result, htmlkit.DiffAttributeDifference)
	require.Len(t, diffs, 1)
	assert.Equal(t, "div.alpha", diffs[0].Location)
	assert.Equal(t, "data-x, data-y", diffs[0].Details)
}

func TestContent_PairwiseTextDifference(t *testing.T) {
	t.Parallel()

	a := `<html><body><div><p>old text</p></div></body></html>`
	b := `<html><body><div><p>new text</p></div></body></html>`

	result := mustCompare(t, a, b, contentOpts())

	// The change is attributed to the paragraph that owns the text, not
	// to its ancestors.
	diffs := diffsOfType(result, htmlkit.DiffTextDifference)
	require.Len(t, diffs, 1)
	assert.Equal(t, "p", diffs[0].Location)
	assert.Equal(t, `"old text" vs "new text"`, diffs[0].Details)
}

func TestContent_MissingAndAddedElements(t *testing.T) {
	t.Parallel()

	a := `<html><body><p>one</p><span id="extra">two</span></body></html>`
	b := `<html><body><p>one</p></body></html>`

	result := mustCompare(t, a, b, contentOpts())

	missing := diffsOfType(result, htmlkit.DiffMissingElement)
	require.Len(t, missing, 1)
	assert.Equal(t, "#extra", missing[0].Location)

	reversed := mustCompare(t, b, a, contentOpts())
	added := diffsOfType(reversed, htmlkit.DiffAddedElement)
	require.Len(t, added, 1)
	assert.Equal(t, "#extra", added[0].Location)
}

func TestContent_TagSelectorPairsMatchedElements(t *testing.T) {
	t.Parallel()

	a := `<html><body>
		<li>first</li>
		<li>second</li>
		<li>third</li>
		<div data-noise="1">unmatched</div>
	</body></html>`
	b := `<html><body>
		<li>first</li>
		<li>changed</li>
		<li>third</li>
		<div data-noise="2">unmatched</div>
	</body></html>`

	opts := contentOpts()
	opts.Selector = "li"
	result := mustCompare(t, a, b, opts)

	diffs := diffsOfType(result, htmlkit.DiffTextDifference)
	require.Len(t, diffs, 1)
	assert.Contains(t, diffs[0].Description, "Element 2")
	assert.Equal(t, "li", diffs[0].Location)

	// The div is outside the matched set, so its attribute change only
	// shows up in the aggregate attribute comparison.
	assert.Empty(t, diffsOfType(result, htmlkit.DiffAttributeDifference))
	assert.Len(t, diffsOfType(result, htmlkit.DiffUniqueAttributes), 2)
}

func TestContent_UniqueAttributes_ShellSelector(t *testing.T) {
	t.Parallel()

	a := `<html><body><div id="box"><input type="text" name="first"></div></body></html>`
	b := `<html><body><div id="box"><input type="text" name="second"></div></body></html>`

	opts := contentOpts()
	opts.Selector = "#box"
	result := mustCompare(t, a, b, opts)

	diffs := diffsOfType(result, htmlkit.DiffUniqueAttributes)
	require.Len(t, diffs, 2)
	assert.Contains(t, diffs[0].Details, "input[name=first]")
	assert.Contains(t, diffs[1].Details, "input[name=second]")

	ignoring := contentOpts()
	ignoring.Selector = "#box"
	ignoring.IgnoreAttributes = []string{"name"}
	result = mustCompare(t, a, b, ignoring)

	assert.Zero(t, result.Summary.TotalDifferences)
}

func TestContent_NoSelectorSkipsUniqueAttributes(t *testing.T) {
	t.Parallel()

	a := `<html><body><div data-x="1">same</div></body></html>`
	b := `<html><body><div data-x="2">same</div></body></html>`

	result := mustCompare(t, a, b, contentOpts())

	assert.Empty(t, diffsOfType(result, htmlkit.DiffUniqueAttributes))
	assert.Len(t, diffsOfType(result, htmlkit.DiffAttributeDifference), 1)
}
