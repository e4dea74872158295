package resources

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readText(t *testing.T, uri string) string {
	t.Helper()

	var resource server.ServerResource
	for _, r := range GetResources() {
		if r.Resource.URI == uri {
			resource = r
			break
		}
	}
	require.NotNil(t, resource.Handler, "resource %s not registered", uri)

	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	contents, err := resource.Handler(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok, "resource content should be text")
	assert.Equal(t, uri, text.URI)
	assert.Equal(t, "text/plain", text.MIMEType)
	return text.Text
}

func TestGetResourcesRegistersBothURIs(t *testing.T) {
	resources := GetResources()
	require.Len(t, resources, 2)

	uris := make([]string, 0, len(resources))
	for _, r := range resources {
		uris = append(uris, r.Resource.URI)
	}
	assert.ElementsMatch(t, []string{PopularSeriesURI, PopularReleasesURI}, uris)
}

func TestPopularSeriesContent(t *testing.T) {
	text := readText(t, PopularSeriesURI)

	assert.Contains(t, text, "Popular FRED Economic Data Series:")
	for id, description := range PopularSeries {
		assert.Contains(t, text, id+" - "+description)
	}
}

func TestPopularReleasesContent(t *testing.T) {
	text := readText(t, PopularReleasesURI)

	assert.Contains(t, text, "Popular FRED Economic Data Releases:")
	assert.Contains(t, text, "53 - Gross Domestic Product")
	assert.Contains(t, text, "10 - Employment Situation")
	assert.Contains(t, text, "24 - Consumer Price Index")
}

func TestResourcesAreStableAcrossReads(t *testing.T) {
	first := readText(t, PopularSeriesURI)
	second := readText(t, PopularSeriesURI)
	assert.Equal(t, first, second)

	first = readText(t, PopularReleasesURI)
	second = readText(t, PopularReleasesURI)
	assert.Equal(t, first, second)
}
