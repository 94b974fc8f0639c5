// Package brand infers and compares vendor display names. The domain
// heuristic guesses a brand from a URL's hostname; the normalizer and
// comparator score that guess against brand indicators scraped from the
// live site.
package brand

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCaser   = cases.Title(language.English)
	segmentSplit = regexp.MustCompile(`[-_]+`)
)

// InferVendor guesses a vendor display name from an official URL using
// domain heuristics: subdomain stripping, multi-part TLD handling, generic
// suffix trimming, and the brand-override table.
//
// It is total: malformed, empty, or "N/A" input yields "" and it never
// panics.
func InferVendor(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" || strings.EqualFold(trimmed, "N/A") {
		return ""
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}

	labels := strings.Split(host, ".")

	// Strip non-brand subdomains (www, docs, console, ...) as long as a
	// registrable domain remains.
	for len(labels) > 2 && stopSubdomains[labels[0]] {
		labels = labels[1:]
	}

	// A remaining deep label that is itself a known brand wins outright:
	// console.aws.amazon.com names AWS, not Amazon.
	if len(labels) > 2 {
		if display, ok := brandOverrides[labels[0]]; ok {
			return display
		}
	}

	base := brandLabel(labels)
	if base == "" {
		return ""
	}

	// Trim one trailing generic business token when something is left over.
	for _, suf := range genericSuffixes {
		if strings.HasSuffix(base, suf) && len(base) > len(suf) {
			base = base[:len(base)-len(suf)]
			break
		}
	}

	normalized := strings.Trim(base, "-_")
	if normalized == "" {
		return ""
	}

	if display, ok := brandOverrides[normalized]; ok {
		return display
	}

	return smartTitle(normalized)
}

// brandLabel picks the label that names the brand, accounting for two-label
// public suffixes like co.uk.
func brandLabel(labels []string) string {
	n := len(labels)
	switch {
	case n >= 3 && multiPartTLDs[labels[n-2]+"."+labels[n-1]]:
		return labels[n-3]
	case n >= 2:
		return labels[n-2]
	case n == 1:
		return labels[0]
	default:
		return ""
	}
}

// smartTitle title-cases each dash/underscore-delimited segment and joins
// them with spaces: "palo-alto" -> "Palo Alto".
func smartTitle(s string) string {
	var parts []string
	for _, p := range segmentSplit.Split(s, -1) {
		if p != "" {
			parts = append(parts, titleCaser.String(p))
		}
	}
	if len(parts) == 0 {
		return titleCaser.String(s)
	}
	return strings.Join(parts, " ")
}
