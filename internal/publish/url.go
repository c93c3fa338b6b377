package publish

import "strings"

// PublicURL joins a configured base URL and a slug into the browsable
// address of a published page, avoiding a doubled slash when the base
// already ends in one. The trailing slash is kept so web servers resolve
// the directory index.
func PublicURL(base, slug string) string {
	if strings.HasSuffix(base, "/") {
		return base + slug + "/"
	}
	return base + "/" + slug + "/"
}
