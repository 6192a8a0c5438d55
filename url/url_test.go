package url

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/url-core/hostname"
)

func TestURLString(t *testing.T) {
	u := New(
		SchemeHTTPS,
		hostname.MustParseHost("example.com"),
		Port(443),
		Path{Segments: []string{"some", "path"}},
		Query{
			"key with spaces": "val&with&ampersands",
			"key=with=equals": "val#with#hashtag",
		},
		"",
	)

	want := "https://example.com:443/some/path" +
		"?key%20with%20spaces=val%26with%26ampersands&key%3Dwith%3Dequals=val%23with%23hashtag"
	assert.Equal(t, want, u.String())
}

func TestURLStringMinimal(t *testing.T) {
	u := New(SchemeHTTP, hostname.MustParseHost("example.com"), nil, Path{}, nil, "")
	assert.Equal(t, "http://example.com", u.String())
}

func TestURLStringFragment(t *testing.T) {
	u := New(SchemeHTTP, hostname.MustParseHost("example.com"), nil, Path{}, nil, "section 2")
	assert.Equal(t, "http://example.com#section%202", u.String())
}

func TestRoundTrip(t *testing.T) {
	urls := []URL{
		New(SchemeHTTP, hostname.MustParseHost("example.com"), nil, Path{}, Query{}, ""),
		New(SchemeHTTPS, hostname.MustParseHost("www.example.com"), Port(8443),
			Path{Segments: []string{"a", "b c", "d/e"}}, Query{}, ""),
		New(SchemeWSS, hostname.MustParseHost("chat.example.com"), Port(123),
			Path{Segments: []string{"socket"}},
			Query{"space space": "ampersand&ampersand", "equals=equals": "hashtag#hashtag"},
			"inner fragment"),
		New(SchemeWS, hostname.MustParseHost("a.b.c.example.com"), nil,
			Path{Segments: []string{"some", "path?with?questions"}}, Query{"a": ""}, "x"),
	}

	for _, u := range urls {
		parsed, err := Parse(u.String())
		require.NoError(t, err, "parsing %q", u.String())
		assert.True(t, parsed.Equal(u), "round trip of %q parsed to %+v", u.String(), parsed)
	}
}

// A serialized URL must survive being carried as a query parameter of
// another URL and re-parsed from it.
func TestRoundTripNestedURL(t *testing.T) {
	inner := New(
		SchemeHTTPS,
		hostname.MustParseHost("param-host.example.com"),
		Port(123),
		Path{Segments: []string{"some", "path?with?questions"}},
		Query{
			"space space":   "ampersand&ampersand",
			"equals=equals": "hashtag#hashtag",
		},
		"inner-fragment",
	)

	outer := New(
		SchemeHTTPS,
		hostname.MustParseHost("some-host.a.b.c"),
		Port(123),
		Path{Segments: []string{"some", "path"}},
		Query{"some-url": inner.String()},
		"outer-fragment",
	)

	parsedOuter, err := Parse(outer.String())
	require.NoError(t, err)
	require.True(t, parsedOuter.Equal(outer))

	parsedInner, err := Parse(parsedOuter.Query["some-url"])
	require.NoError(t, err)
	assert.True(t, parsedInner.Equal(inner))
}

func TestURLEqual(t *testing.T) {
	base := New(SchemeHTTP, hostname.MustParseHost("example.com"), Port(80),
		Path{Segments: []string{"a"}}, Query{"k": "v"}, "f")

	assert.True(t, base.Equal(base))

	differentPort := base
	differentPort.Port = Port(81)
	assert.False(t, base.Equal(differentPort))

	noPort := base
	noPort.Port = nil
	assert.False(t, base.Equal(noPort))

	nilVersusEmptyQuery := base
	nilVersusEmptyQuery.Query = nil
	withEmptyQuery := base
	withEmptyQuery.Query = Query{}
	assert.True(t, nilVersusEmptyQuery.Equal(withEmptyQuery))
}

func TestURLParent(t *testing.T) {
	u, err := Parse("https://example.com/a/b/c?k=v#f")
	require.NoError(t, err)

	parent := u.Parent()
	assert.Equal(t, "https://example.com/a/b?k=v#f", parent.String())
	assert.Equal(t, "https://example.com/a/b/c?k=v#f", u.String(), "Parent must not mutate the receiver")

	root := parent.Parent().Parent()
	assert.Equal(t, "https://example.com?k=v#f", root.String())
}

func TestURLTextMarshaling(t *testing.T) {
	u, err := Parse("https://example.com:443/some/path?a=123#top")
	require.NoError(t, err)

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `"https://example.com:443/some/path?a=123#top"`, string(data))

	var decoded URL
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(u))

	var invalid URL
	assert.Error(t, json.Unmarshal([]byte(`"not a url"`), &invalid))
}
