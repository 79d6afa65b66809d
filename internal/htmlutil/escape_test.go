package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTagsAndTrimIsStable(t *testing.T) {
	for _, in := range []string{"R&amp;D", "a &lt;b&gt; c", "<i>Tom</i> & Jerry", "x < y"} {
		once := StripTagsAndTrim(in)
		assert.Equal(t, once, StripTagsAndTrim(once), in)
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "", Escape(""))
	assert.Equal(t, "plain", Escape("plain"))
	assert.Equal(t,
		"&lt;a href=&#34;x&#34;&gt;Tom &amp; &#39;Jo&#39;&lt;/a&gt;",
		Escape(`<a href="x">Tom & 'Jo'</a>`))
}

func TestStripTagsAndTrim(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "  \n\t ", want: ""},
		{name: "plain", in: "  Breaking Bad  ", want: "Breaking Bad"},
		{name: "bold", in: "<b>x</b>", want: "x"},
		{name: "nested", in: " <p>Hello <em>world</em></p> ", want: "Hello world"},
		{name: "ampersand kept as text", in: "Tom & Jerry", want: "Tom & Jerry"},
		{name: "quotes kept as text", in: `L'"amie"`, want: `L'"amie"`},
		{name: "only tags", in: "<br/><hr>", want: ""},
		{name: "entity kept literally", in: "R&amp;D", want: "R&amp;D"},
		{name: "escaped tag stays text", in: "a &lt;b&gt; c", want: "a &lt;b&gt; c"},
		{name: "script text kept", in: "<script>Lost</script>", want: "Lost"},
		{name: "style text kept", in: " <style>Dark</style> ", want: "Dark"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripTagsAndTrim(tc.in))
		})
	}
}
