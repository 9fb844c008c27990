package rules

import "strings"

// Taxonomy holds the static lookup tables the rule evaluators match ticket
// fields against. It is built once at startup and never mutated afterwards,
// so concurrent evaluations can share one instance without locking.
type Taxonomy struct {
	// Categories maps a known category to its allowed subcategories.
	Categories map[string][]string
	// CategoryAliases maps common abbreviations to canonical categories.
	CategoryAliases map[string]string
	// LineOfBusinessCodes are the recognized LoB prefixes for the short
	// description format, upper-cased.
	LineOfBusinessCodes []string
	// ApplicationTokens are known application/system names, upper-cased.
	ApplicationTokens map[string]struct{}
}

// DefaultTaxonomy returns the built-in service desk taxonomy.
func DefaultTaxonomy() *Taxonomy {
	apps := []string{
		"VDI", "LAN", "AD", "ACTIVE DIRECTORY", "OUTLOOK", "TEAMS",
		"OFFICE", "O365", "OFFICE365", "SHAREPOINT", "ONEDRIVE", "EMAIL",
		"LAPTOP", "DESKTOP", "MOBILE", "PHONE", "VPN", "CITRIX", "SAP",
		"SERVICENOW", "SNOW", "WORKDAY", "CONCUR", "ZOOM", "WEBEX",
		"NETWORK", "PRINTER", "SOFTWARE", "HARDWARE", "ACCOUNT",
		"PASSWORD", "MFA", "OKTA",
	}
	appSet := make(map[string]struct{}, len(apps))
	for _, a := range apps {
		appSet[a] = struct{}{}
	}

	return &Taxonomy{
		Categories: map[string][]string{
			"software": {
				"reset_restart", "installation", "configuration", "update",
				"error", "performance", "access", "license",
				"compatibility", "functionality",
			},
			"hardware": {
				"laptop", "desktop", "monitor", "keyboard", "mouse",
				"peripherals", "printer", "docking station",
				"mobile device", "headset", "webcam", "replacement",
				"repair",
			},
			"inquiry": {
				"password reset", "account access", "general",
				"information", "how to", "request", "status", "guidance",
			},
			"network": {
				"connectivity", "vpn", "wifi", "wired", "internet", "dns",
				"firewall", "bandwidth", "latency",
			},
			"email": {
				"outlook", "access", "configuration", "calendar",
				"attachments", "sync", "mobile", "rules", "spam",
			},
			"security": {
				"virus", "malware", "phishing", "account lockout", "mfa",
				"encryption", "data loss", "suspicious activity",
			},
			"access": {
				"account", "permissions", "shared drive", "application",
				"vpn", "remote", "new user", "termination",
			},
			"telephony": {
				"desk phone", "softphone", "voicemail", "conference",
				"headset", "mobile",
			},
			"printing": {
				"printer", "scanner", "paper jam", "toner",
				"configuration", "network printer",
			},
			"application": {
				"sap", "workday", "servicenow", "sharepoint", "teams",
				"zoom", "office", "custom", "error", "access",
			},
		},
		CategoryAliases: map[string]string{
			"hw":  "hardware",
			"sw":  "software",
			"net": "network",
			"nw":  "network",
			"sec": "security",
			"app": "application",
		},
		LineOfBusinessCodes: []string{
			"MARSH", "MERCER", "MMC", "MMC-NCL", "GC", "GUY CARPENTER",
			"OW", "OLIVER WYMAN",
		},
		ApplicationTokens: appSet,
	}
}

// Normalize resolves aliases and lowercases a category value.
func (tx *Taxonomy) Normalize(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if canonical, ok := tx.CategoryAliases[c]; ok {
		return canonical
	}
	return c
}

// IsKnownLoB reports whether the upper-cased value is a recognized line of
// business code, allowing prefix matches in either direction.
func (tx *Taxonomy) IsKnownLoB(value string) bool {
	v := strings.ToUpper(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	for _, code := range tx.LineOfBusinessCodes {
		if v == code || strings.HasPrefix(v, code) || strings.HasPrefix(code, v) {
			return true
		}
	}
	return false
}

// IsKnownApp reports whether the value matches a known application token.
func (tx *Taxonomy) IsKnownApp(value string) bool {
	_, ok := tx.ApplicationTokens[strings.ToUpper(strings.TrimSpace(value))]
	return ok
}
