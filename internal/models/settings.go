package models

import "strings"

// MaskPrefix replaces all but the last characters of a token shown to callers.
const MaskPrefix = "****"

// Settings is the persisted Cloudflare connection of the site.
type Settings struct {
	APIToken    string `json:"apiToken" validate:"omitempty,printascii,max=256"`
	ZoneID      string `json:"zoneId" validate:"omitempty,hexadecimal,len=32"`
	Domain      string `json:"domain" validate:"omitempty,fqdn"`
	AccountID   string `json:"accountId" validate:"omitempty,hexadecimal,len=32"`
	ProjectName string `json:"projectName" validate:"omitempty,max=58"`
}

// Merge returns s with empty fields filled from fallback.
func (s Settings) Merge(fallback Settings) Settings {
	if s.APIToken == "" {
		s.APIToken = fallback.APIToken
	}
	if s.ZoneID == "" {
		s.ZoneID = fallback.ZoneID
	}
	if s.Domain == "" {
		s.Domain = fallback.Domain
	}
	if s.AccountID == "" {
		s.AccountID = fallback.AccountID
	}
	if s.ProjectName == "" {
		s.ProjectName = fallback.ProjectName
	}
	return s
}

// Masked returns a copy safe to show: the token is reduced to its last four characters.
func (s Settings) Masked() Settings {
	if s.APIToken == "" {
		return s
	}
	if len(s.APIToken) <= 4 {
		s.APIToken = MaskPrefix
		return s
	}
	s.APIToken = MaskPrefix + s.APIToken[len(s.APIToken)-4:]
	return s
}

// IsMaskedToken reports whether token is a value previously produced by Masked.
func IsMaskedToken(token string) bool {
	return strings.HasPrefix(token, MaskPrefix)
}
