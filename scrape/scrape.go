// Package scrape resolves a product-page URL to its primary garment image so
// the try-on page can send a garm_img_url without the user saving the picture
// first.
package scrape

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ResolveShortenedURL follows redirects to find the final URL
func ResolveShortenedURL(client *http.Client, rawURL string) (string, error) {
	req, err := http.NewRequest(http.MethodHead, rawURL, nil)
	if err != nil {
		return rawURL, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := client.Do(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		if resp != nil {
			resp.Body.Close()
		}
		// Some servers block HEAD; retry with GET.
		req, err = http.NewRequest(http.MethodGet, rawURL, nil)
		if err != nil {
			return rawURL, err
		}
		req.Header.Set("User-Agent", browserUserAgent)
		resp, err = client.Do(req)
		if err != nil {
			return rawURL, err
		}
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}

// FetchDocument downloads a page and parses it.
func FetchDocument(client *http.Client, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return goquery.NewDocumentFromReader(io.LimitReader(resp.Body, 10<<20))
}

// ExtractPrimaryImage picks the page's main product image: og:image first,
// then twitter:image, then the first plausible <img>. Relative URLs are
// resolved against the page URL.
func ExtractPrimaryImage(doc *goquery.Document, pageURL string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page url: %w", err)
	}

	if img, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok && img != "" {
		return absoluteURL(base, img)
	}
	if img, ok := doc.Find(`meta[name="twitter:image"]`).Attr("content"); ok && img != "" {
		return absoluteURL(base, img)
	}
	if img, ok := doc.Find(`link[rel="image_src"]`).Attr("href"); ok && img != "" {
		return absoluteURL(base, img)
	}

	var found string
	doc.Find("img").EachWithBreak(func(i int, s *goquery.Selection) bool {
		src, ok := s.Attr("src")
		if !ok || src == "" || strings.HasPrefix(src, "data:") {
			return true
		}
		found = src
		return false
	})
	if found == "" {
		return "", fmt.Errorf("no image found on page")
	}
	return absoluteURL(base, found)
}

func absoluteURL(base *url.URL, ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid image url: %w", err)
	}
	return base.ResolveReference(u).String(), nil
}
