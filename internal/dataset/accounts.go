package dataset

import "strings"

// DefaultProfileMarker separates the profile part of a post URL from the post path.
const DefaultProfileMarker = "/p/"

// ListAccounts returns the distinct non-empty usernames in first-seen order.
func ListAccounts(records []Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		if r.Username == "" {
			continue
		}
		if _, ok := seen[r.Username]; ok {
			continue
		}
		seen[r.Username] = struct{}{}
		out = append(out, r.Username)
	}
	return out
}

// HasAccount reports whether any record belongs to username.
func HasAccount(records []Record, username string) bool {
	for _, r := range records {
		if r.Username == username {
			return true
		}
	}
	return false
}

// ForAccount returns the records of one account in input order.
func ForAccount(records []Record, username string) []Record {
	var out []Record
	for _, r := range records {
		if r.Username == username {
			out = append(out, r)
		}
	}
	return out
}

// ProfileReference derives a display link for an account from its first post
// URL by cutting it at marker and appending "/". It is empty when the account
// has no posts. The result is only for linking, never for lookup.
func ProfileReference(records []Record, account, marker string) string {
	if marker == "" {
		marker = DefaultProfileMarker
	}
	for _, r := range records {
		if r.Username != account || r.URL == "" {
			continue
		}
		if i := strings.Index(r.URL, marker); i >= 0 {
			return r.URL[:i] + "/"
		}
		return strings.TrimSuffix(r.URL, "/") + "/"
	}
	return ""
}
