package scrape

import (
	"bytes"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/net/html"

	"github.com/sells-group/appdir-cli/internal/model"
)

// ExtractBrandIndicators parses HTML and pulls the three brand-naming
// signals: the og:site_name meta tag (falling back to application-name), the
// <title> text, and the first <h1> text. Missing elements yield empty
// strings, not errors.
func ExtractBrandIndicators(body []byte) (model.BrandIndicators, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return model.BrandIndicators{}, eris.Wrap(err, "extract: parse html")
	}

	var ind model.BrandIndicators
	var appName string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				prop := attr(n, "property")
				name := attr(n, "name")
				content := strings.TrimSpace(attr(n, "content"))
				if content != "" {
					if ind.SiteName == "" && strings.EqualFold(prop, "og:site_name") {
						ind.SiteName = content
					}
					if appName == "" && strings.EqualFold(name, "application-name") {
						appName = content
					}
				}
			case "title":
				if ind.Title == "" {
					ind.Title = strings.TrimSpace(textContent(n))
				}
			case "h1":
				if ind.H1 == "" {
					ind.H1 = strings.TrimSpace(textContent(n))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if ind.SiteName == "" {
		ind.SiteName = appName
	}
	return ind, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
