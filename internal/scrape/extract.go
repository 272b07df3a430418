package scrape

import (
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Candidate is one {title, url} pair lifted out of page markup. Raw
// carries the element's full text so freshness hints ("3 days ago")
// survive extraction.
type Candidate struct {
	Title string
	URL   string
	Raw   string
}

// Extractor turns raw page content into posting candidates. Markup
// scanning is heuristic by nature, so it sits outside the core pipeline
// behind this interface.
type Extractor interface {
	Extract(html, pageURL string) []Candidate
}

var classHints = []string{"job", "position", "role", "career", "opening"}

// maxElements bounds how much of a page a single run will consider.
const maxElements = 50

// HTMLExtractor does a generic class-name scan over anchors, divs and
// list items. It knows nothing about any particular ATS; it just looks
// for elements whose class smells like a job listing.
type HTMLExtractor struct{}

func (HTMLExtractor) Extract(html, pageURL string) []Candidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("[extract] parse failed for %s: %v", pageURL, err)
		return nil
	}

	var out []Candidate
	seen := 0

	doc.Find("a, div, li").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		class, _ := el.Attr("class")
		if !classLooksLikeJob(class) {
			return true
		}
		seen++
		if seen > maxElements {
			return false
		}

		title := candidateTitle(el)
		if len(title) < 10 || len(title) > 200 {
			return true
		}

		link := candidateLink(el)
		if link != "" && !strings.HasPrefix(link, "http") {
			link = absoluteURL(pageURL, link)
		}
		if link == "" {
			link = pageURL
		}

		out = append(out, Candidate{
			Title: title,
			URL:   link,
			Raw:   CleanText(el.Text()),
		})
		return true
	})

	return out
}

func classLooksLikeJob(class string) bool {
	if class == "" {
		return false
	}
	class = strings.ToLower(class)
	for _, hint := range classHints {
		if strings.Contains(class, hint) {
			return true
		}
	}
	return false
}

func candidateTitle(el *goquery.Selection) string {
	heading := el.Find("h2, h3, h4, span, a").First()
	if heading.Length() > 0 {
		return CleanText(heading.Text())
	}
	return CleanText(el.Text())
}

func candidateLink(el *goquery.Selection) string {
	if goquery.NodeName(el) == "a" {
		href, _ := el.Attr("href")
		return strings.TrimSpace(href)
	}
	href, _ := el.Find("a[href]").First().Attr("href")
	return strings.TrimSpace(href)
}

func absoluteURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// CleanText collapses whitespace and strips non-breaking spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
