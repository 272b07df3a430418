package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `
<html><body>
<div class="job-listing">
  <h3>Principal AI Engineer, Agents</h3>
  <a href="/careers/123">Apply</a>
  <span>Posted 1 day ago</span>
</div>
<li class="opening">
  <a href="https://jobs.example.com/456">Senior Machine Learning Engineer</a>
</li>
<div class="nav-bar"><a href="/about">About us</a></div>
<div class="job-card"><span>Too short</span></div>
</body></html>`

func TestExtractCandidates(t *testing.T) {
	cands := HTMLExtractor{}.Extract(samplePage, "https://example.com/careers")

	require.Len(t, cands, 2)

	assert.Equal(t, "Principal AI Engineer, Agents", cands[0].Title)
	assert.Equal(t, "https://example.com/careers/123", cands[0].URL, "relative links resolve against the page URL")
	assert.Contains(t, cands[0].Raw, "1 day ago", "element text is kept for freshness hints")

	assert.Equal(t, "Senior Machine Learning Engineer", cands[1].Title)
	assert.Equal(t, "https://jobs.example.com/456", cands[1].URL)
}

func TestExtractEmptyAndBroken(t *testing.T) {
	assert.Empty(t, HTMLExtractor{}.Extract("", "https://example.com"))
	assert.Empty(t, HTMLExtractor{}.Extract("<div class='job'><span>x</span></div>", "https://example.com"), "titles under 10 chars are dropped")
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a b\n\tc  "))
}
