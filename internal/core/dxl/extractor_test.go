package dxl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractItems(t *testing.T) {
	raw := `<item name="Field_Tx_6_1"><text>Hello<break/> World  there</text></item>`

	items := ExtractItems(raw, "Field_Tx_6")

	assert.Equal(t, map[string]string{"Field_Tx_6_1": "Hello World there"}, items)
}

func TestExtractItems_Idempotent(t *testing.T) {
	raw := `<item name="Field_Tx_6_1"><text>Alpha</text></item>
		<item name="Field_Tx_6_2"><text>Beta<break/>Gamma</text></item>`

	first := ExtractItems(raw, "Field_Tx_6")
	second := ExtractItems(raw, "Field_Tx_6")

	assert.Equal(t, first, second)
}

func TestExtractItems_WhitespaceNormalization(t *testing.T) {
	raw := "<item name=\"Field_Tx_6_3\"><text>  line one \t <break/>   line two  </text></item>"

	items := ExtractItems(raw, "Field_Tx_6")

	text := items["Field_Tx_6_3"]
	assert.Equal(t, "line one line two", text)
	assert.NotContains(t, text, "<break")
	assert.NotContains(t, text, "  ")
}

func TestExtractItems_SingleQuotedAttribute(t *testing.T) {
	raw := `<item name='Field_Tx_6_4'><text>quoted</text></item>`

	items := ExtractItems(raw, "Field_Tx_6")

	assert.Equal(t, "quoted", items["Field_Tx_6_4"])
}

func TestExtractItems_SpansLines(t *testing.T) {
	raw := "<item name=\"Field_Tx_6_5\">\n<text>first\nsecond\nthird</text>\n</item>"

	items := ExtractItems(raw, "Field_Tx_6")

	assert.Equal(t, "first second third", items["Field_Tx_6_5"])
}

func TestExtractItems_DuplicateNameKeepsLater(t *testing.T) {
	raw := `<item name="Field_Tx_6_1"><text>earlier</text></item>
		<item name="Field_Tx_6_1"><text>later</text></item>`

	items := ExtractItems(raw, "Field_Tx_6")

	assert.Len(t, items, 1)
	assert.Equal(t, "later", items["Field_Tx_6_1"])
}

func TestExtractItems_SuffixPreservedVerbatim(t *testing.T) {
	raw := `<item name="Field_Tx_6_007"><text>padded</text></item>`

	items := ExtractItems(raw, "Field_Tx_6")

	assert.Contains(t, items, "Field_Tx_6_007")
}

func TestExtractItems_NoItems(t *testing.T) {
	items := ExtractItems("no markup here at all", "Field_Tx_6")

	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestExtractItems_IndependentPrefixes(t *testing.T) {
	raw := `<item name="Field_Tx_6_1"><text>field value</text></item>
		<item name="Deterioration_Tx_1"><text>deterioration value</text></item>`

	fieldItems := ExtractItems(raw, "Field_Tx_6")
	deteriorationItems := ExtractItems(raw, "Deterioration_Tx")

	assert.Equal(t, map[string]string{"Field_Tx_6_1": "field value"}, fieldItems)
	assert.Equal(t, map[string]string{"Deterioration_Tx_1": "deterioration value"}, deteriorationItems)
}

func TestExtractItems_ToleratesMalformedSurroundings(t *testing.T) {
	raw := `<?xml broken <unclosed><< garbage
		<item name="Field_Tx_6_1"><text>still found</text></item>
		more garbage >>>`

	items := ExtractItems(raw, "Field_Tx_6")

	assert.Equal(t, "still found", items["Field_Tx_6_1"])
}

func TestExtractItems_LongCaptureIsSingleSpaced(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<item name="Field_Tx_6_9"><text>`)
	for i := 0; i < 20; i++ {
		b.WriteString("word<break/>  ")
	}
	b.WriteString("end</text></item>")

	items := ExtractItems(b.String(), "Field_Tx_6")

	assert.NotContains(t, items["Field_Tx_6_9"], "  ")
	assert.True(t, strings.HasSuffix(items["Field_Tx_6_9"], "end"))
}
