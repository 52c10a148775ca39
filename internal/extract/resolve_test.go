package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"canvas_sync/internal/domain"
)

func TestUnwrapRedirect_SingleEncoded(t *testing.T) {
	e := New(testBase)

	l := e.Link(testBase+"/courses/1/external_tools/retrieve?url=https%3A%2F%2Fexample.org%2Fpaper", "", "")

	assert.Equal(t, "https://example.org/paper", l.ResolvedURL)
	assert.Equal(t, domain.LinkCategoryExternal, l.Category)
}

func TestUnwrapRedirect_DoubleEncoded(t *testing.T) {
	e := New(testBase)

	l := e.Link(testBase+"/courses/1/external_tools/retrieve?url=https%253A%252F%252Fexample.org%252Fpaper", "", "")

	assert.Equal(t, "https://example.org/paper", l.ResolvedURL)
}

func TestUnwrapRedirect_HostLocalTargetKeepsOriginal(t *testing.T) {
	e := New(testBase)

	original := testBase + "/login?return_to=" + testBase + "/dashboard"
	l := e.Link(original, "", "")

	assert.Equal(t, original, l.ResolvedURL)
}

func TestUnwrapRedirect_ExternalWrapperUntouched(t *testing.T) {
	e := New(testBase)

	l := e.Link("https://other.example.com/r?url=https%3A%2F%2Fexample.org", "", "")

	assert.Equal(t, "https://other.example.com/r?url=https%3A%2F%2Fexample.org", l.ResolvedURL)
}

func TestCategorize(t *testing.T) {
	e := New(testBase)

	tests := []struct {
		name string
		href string
		want domain.LinkCategory
	}{
		{"file path", testBase + "/courses/1/files/42/download", domain.LinkCategoryFile},
		{"youtube", "https://www.youtube.com/watch?v=x", domain.LinkCategoryVideo},
		{"youtu.be", "https://youtu.be/x", domain.LinkCategoryVideo},
		{"media objects", testBase + "/media_objects/m-123", domain.LinkCategoryVideo},
		{"internal page", testBase + "/courses/1/pages/intro", domain.LinkCategoryInternal},
		{"external", "https://example.org/article", domain.LinkCategoryExternal},
		{"mailto", "mailto:prof@example.edu", domain.LinkCategoryExternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := e.Link(tt.href, "", "")
			assert.Equal(t, tt.want, l.Category)
		})
	}
}

func TestIsZoomRelated(t *testing.T) {
	e := New(testBase)

	byHost := e.Link("https://us02web.zoom.us/j/123456", "", "Join meeting")
	assert.True(t, IsZoomRelated(byHost, ""))

	byText := e.Link(testBase+"/courses/1/external_tools/7", "", "Zoom class link")
	assert.True(t, IsZoomRelated(byText, ""))

	byItemTitle := e.Link(testBase+"/courses/1/external_tools/7", "", "join")
	assert.True(t, IsZoomRelated(byItemTitle, "Weekly Zoom Session"))

	plain := e.Link("https://example.org/reading", "", "reading")
	assert.False(t, IsZoomRelated(plain, "Week 3 Homework"))
}
