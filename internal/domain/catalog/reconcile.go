// internal/domain/catalog/reconcile.go
package catalog

import "strings"

// PlaceholderImage is substituted when neither the remote record nor the
// fallback dataset carries a usable image URL.
const PlaceholderImage = "https://placehold.co/600x400?text=Digistore"

// Reconcile merges products fetched from the hosted store with the static
// fallback dataset. An empty remote list means the fetch failed or the store
// is empty, and the fallback wins wholesale. Otherwise the remote list is
// returned with blank images filled from the fallback record carrying the
// same id, or a placeholder when no such record exists.
//
// Running Reconcile on its own output is a no-op.
func Reconcile(remote, fallback []Product) []Product {
	if len(remote) == 0 {
		return fallback
	}

	byID := make(map[string]*Product, len(fallback))
	for i := range fallback {
		byID[coerceID(fallback[i].ID)] = &fallback[i]
	}

	merged := make([]Product, len(remote))
	for i, p := range remote {
		if strings.TrimSpace(p.Image) == "" {
			if fb, ok := byID[coerceID(p.ID)]; ok && strings.TrimSpace(fb.Image) != "" {
				p.Image = fb.Image
			} else {
				p.Image = PlaceholderImage
			}
		}
		merged[i] = p
	}
	return merged
}

// coerceID normalizes an id for cross-source comparison. The hosted store
// serializes ids as bare numbers in some tables and quoted strings in
// others, so "01" and " 1" style variants must compare equal to "1".
func coerceID(id string) string {
	s := strings.TrimSpace(id)
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" && s != "" {
		return "0"
	}
	if trimmed != s && isDigits(trimmed) && isDigits(s) {
		return trimmed
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
