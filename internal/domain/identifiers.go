package domain

import "strings"

// NormalizeFeatureIDs canonicalizes raw feature identifiers: the separator
// between agency code and site number becomes a period, surrounding
// whitespace goes, and blank entries are dropped rather than rejected.
func NormalizeFeatureIDs(ids []string) []string {
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		normalized = append(normalized, strings.ReplaceAll(id, ":", "."))
	}
	return normalized
}

// SiteNumber strips the agency code from a normalized feature identifier,
// returning the bare site number. Identifiers without a separator come back
// unchanged.
func SiteNumber(featureID string) string {
	if _, num, ok := strings.Cut(featureID, "."); ok {
		return num
	}
	return featureID
}
