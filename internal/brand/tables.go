package brand

// Hand-curated lookup tables for the vendor heuristics. These are data
// assets, not algorithms: they grow as new hosts show up in the directory.

// stopSubdomains are leading host labels that never name a brand.
var stopSubdomains = map[string]bool{
	"www":        true,
	"docs":       true,
	"developer":  true,
	"developers": true,
	"dev":        true,
	"learn":      true,
	"help":       true,
	"support":    true,
	"business":   true,
	"pages":      true,
	"portal":     true,
	"store":      true,
	"news":       true,
	"about":      true,
	"careers":    true,
	"blog":       true,
	"console":    true,
	"app":        true,
	"my":         true,
	"get":        true,
	"splunkbase": true,
}

// multiPartTLDs are two-label public suffixes the registrable-domain
// heuristic must not treat as brand + TLD.
var multiPartTLDs = map[string]bool{
	"co.uk":  true,
	"org.uk": true,
	"gov.uk": true,
	"ac.uk":  true,
	"com.au": true,
	"net.au": true,
	"com.br": true,
	"com.mx": true,
	"co.jp":  true,
	"com.cn": true,
	"com.hk": true,
	"com.sg": true,
	"co.in":  true,
	"co.za":  true,
}

// genericSuffixes are trailing business tokens stripped from a brand label
// when a non-empty remainder survives. At most one suffix is stripped; the
// first match wins.
var genericSuffixes = []string{
	"software",
	"solutions",
	"systems",
	"labs",
	"cloud",
	"tech",
	"technologies",
	"apps",
	"app",
	"corp",
	"inc",
	"llc",
	"ltd",
	"group",
	"co",
	"data",
	"networks",
}

// brandOverrides maps normalized brand labels to their canonical
// capitalization.
var brandOverrides = map[string]string{
	"aws":               "AWS",
	"ibm":               "IBM",
	"sap":               "SAP",
	"vmware":            "VMware",
	"github":            "GitHub",
	"gitlab":            "GitLab",
	"mailchimp":         "Mailchimp",
	"zoominfo":          "ZoomInfo",
	"xactlycorp":        "Xactly",
	"paloaltonetworks":  "Palo Alto Networks",
	"jetbrains":         "JetBrains",
	"workday":           "Workday",
	"salesforce":        "Salesforce",
	"adobe":             "Adobe",
	"google":            "Google",
	"microsoft":         "Microsoft",
	"apple":             "Apple",
	"amazon":            "Amazon",
	"zoominsoftware":    "Zoomin",
	"zoomin":            "Zoomin",
	"splunk":            "Splunk",
	"cisco":             "Cisco",
	"meraki":            "Meraki",
	"snowflake":         "Snowflake",
	"workfront":         "Workfront",
	"zendesk":           "Zendesk",
	"atlassian":         "Atlassian",
	"thoughtworks":      "Thoughtworks",
	"oracle":            "Oracle",
	"stackoverflow":     "Stack Overflow",
}

// corporateSuffixTokens are whole-word tokens dropped during brand
// normalization. Punctuation is already collapsed to spaces by the time
// these are applied, so only bare forms are needed.
var corporateSuffixTokens = map[string]bool{
	"inc":         true,
	"llc":         true,
	"ltd":         true,
	"limited":     true,
	"corp":        true,
	"corporation": true,
	"company":     true,
	"co":          true,
	"gmbh":        true,
	"plc":         true,
	"srl":         true,
	"bv":          true,
	"sa":          true,
	"pte":         true,
	"pty":         true,
	"ag":          true,
	"nv":          true,
	"oy":          true,
}
