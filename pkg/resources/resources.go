// Package resources exposes the static FRED reference lists as MCP
// resources. Both resources are deterministic and never touch the network.
package resources

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs
const (
	PopularSeriesURI   = "fred://popular-series"
	PopularReleasesURI = "fred://popular-releases"
)

// PopularSeries maps well-known FRED series IDs to their descriptions
var PopularSeries = map[string]string{
	"GDP":      "Gross Domestic Product",
	"UNRATE":   "Unemployment Rate",
	"CPIAUCSL": "Consumer Price Index for All Urban Consumers",
	"FEDFUNDS": "Federal Funds Rate",
	"DGS10":    "10-Year Treasury Constant Maturity Rate",
	"DEXUSEU":  "US/Euro Foreign Exchange Rate",
	"PAYEMS":   "All Employees, Total Nonfarm",
	"HOUST":    "Housing Starts",
	"INDPRO":   "Industrial Production Index",
	"CPILFESL": "Core CPI (excluding food and energy)",
}

// PopularReleases maps well-known FRED release IDs to their descriptions
var PopularReleases = map[int]string{
	53: "Gross Domestic Product",
	10: "Employment Situation",
	24: "Consumer Price Index",
	62: "Federal Reserve Economic Data",
	18: "Industrial Production and Capacity Utilization",
	20: "Housing Starts",
	25: "Personal Income and Outlays",
	50: "Flow of Funds",
	13: "G.17 Industrial Production and Capacity Utilization",
	21: "New Residential Construction",
	17: "Productivity and Costs",
	51: "Senior Loan Officer Opinion Survey",
	52: "Survey of Terms of Business Lending",
}

// seriesOrder fixes the rendering order of PopularSeries
var seriesOrder = []string{
	"GDP", "UNRATE", "CPIAUCSL", "FEDFUNDS", "DGS10",
	"DEXUSEU", "PAYEMS", "HOUST", "INDPRO", "CPILFESL",
}

// GetResources returns all MCP resources provided by the server
func GetResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(PopularSeriesURI, "Popular Economic Data Series",
				mcp.WithResourceDescription("List of popular FRED economic data series"),
				mcp.WithMIMEType("text/plain"),
			),
			Handler: handlePopularSeries,
		},
		{
			Resource: mcp.NewResource(PopularReleasesURI, "Popular Economic Data Releases",
				mcp.WithResourceDescription("List of popular FRED economic data releases"),
				mcp.WithMIMEType("text/plain"),
			),
			Handler: handlePopularReleases,
		},
	}
}

func handlePopularSeries(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      PopularSeriesURI,
			MIMEType: "text/plain",
			Text:     PopularSeriesText(),
		},
	}, nil
}

func handlePopularReleases(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      PopularReleasesURI,
			MIMEType: "text/plain",
			Text:     PopularReleasesText(),
		},
	}, nil
}

// PopularSeriesText renders the popular series list as plain text
func PopularSeriesText() string {
	var b strings.Builder
	b.WriteString("Popular FRED Economic Data Series:\n")
	for _, id := range seriesOrder {
		fmt.Fprintf(&b, "\n%s - %s", id, PopularSeries[id])
	}
	return b.String()
}

// PopularReleasesText renders the popular releases list as plain text,
// ordered by release ID
func PopularReleasesText() string {
	ids := make([]int, 0, len(PopularReleases))
	for id := range PopularReleases {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	b.WriteString("Popular FRED Economic Data Releases:\n")
	for _, id := range ids {
		fmt.Fprintf(&b, "\n%s - %s", strconv.Itoa(id), PopularReleases[id])
	}
	return b.String()
}
