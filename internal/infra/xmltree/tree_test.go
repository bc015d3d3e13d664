package xmltree

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmeister/py-github/internal/domain"
)

func TestParseBuildsTree(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<commits type="array">
  <commit>
    <parents type="array">
      <parent><id>abc</id></parent>
      <parent><id>def</id></parent>
    </parents>
    <message>Fix &amp; tidy</message>
    <empty></empty>
    <selfclosed/>
    <company nil="true"></company>
  </commit>
</commits>`

	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "commits", root.Name)
	typ, ok := root.Attr("type")
	assert.True(t, ok)
	assert.Equal(t, "array", typ)

	commits := root.ChildrenNamed("commit")
	require.Len(t, commits, 1)
	c := commits[0]

	assert.Equal(t, "Fix & tidy", c.Child("message").Text)

	parents := c.Child("parents").ChildrenNamed("parent")
	require.Len(t, parents, 2)
	assert.Equal(t, "abc", parents[0].Child("id").Text)
	assert.Equal(t, "def", parents[1].Child("id").Text)

	require.NotNil(t, c.Child("empty"))
	assert.Equal(t, "", c.Child("empty").Text)
	require.NotNil(t, c.Child("selfclosed"))
	assert.Equal(t, "", c.Child("selfclosed").Text)

	assert.True(t, c.Child("company").IsNil())
	assert.False(t, c.Child("message").IsNil())
	assert.Nil(t, c.Child("missing"))
}

func TestParseNilReceivers(t *testing.T) {
	var n *Node
	assert.Nil(t, n.Child("x"))
	assert.Nil(t, n.ChildrenNamed("x"))
	_, ok := n.Attr("x")
	assert.False(t, ok)
	assert.False(t, n.IsNil())
}

func TestParseCDATAAndNamespaces(t *testing.T) {
	doc := `<a:root xmlns:a="urn:x"><a:body><![CDATA[<b>bold</b>]]></a:body></a:root>`
	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "root", root.Name)
	assert.Equal(t, "<b>bold</b>", root.Child("body").Text)
}

func TestParseLatin1(t *testing.T) {
	// "Jos\xe9" is "José" in ISO-8859-1.
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><user><name>Jos\xe9</name></user>"
	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "José", root.Child("name").Text)
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"whitespace":    "   \n",
		"not xml":       "this is not xml",
		"truncated":     "<users><user><name>dustin</name>",
		"mismatched":    "<users><user></users></user>",
		"two roots":     "<a></a><b></b>",
		"trailing text": "<a></a>garbage",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindParse), "got %v", err)
			assert.True(t, errors.Is(err, domain.ErrParse))
		})
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestParseReaderFailureIsFetchError(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := Parse(io.MultiReader(strings.NewReader("<users><user>"), failingReader{err: boom}))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindFetch), "got %v", err)
	assert.ErrorIs(t, err, boom)
}
