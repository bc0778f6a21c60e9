package dns

import "strings"

// ToFQDN resolves a zone-relative name against the zone.
//
// Rules for zone = "example.com":
//   - ""  / "@"         -> "example.com"
//   - "www"             -> "www.example.com"
//   - "a.b"             -> "a.b.example.com"
//   - "www.example.com" -> "www.example.com" (already qualified)
//
// Trailing dots and surrounding whitespace are stripped from both inputs.
func ToFQDN(zone, name string) string {
	zone = strings.TrimSuffix(strings.TrimSpace(zone), ".")
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")

	if name == "" || name == "@" {
		return zone
	}
	if name == zone || strings.HasSuffix(name, "."+zone) {
		return name
	}
	return name + "." + zone
}

// RelativeName converts any accepted name form to the zone-relative form the
// provider expects, with "@" for the apex.
//
// Rules for zone = "example.com":
//   - "" / "@" / "example.com" / "example.com." -> "@"
//   - "www.example.com"                         -> "www"
//   - "a.b.example.com."                        -> "a.b"
//   - "www" / "a.b"                             -> unchanged
func RelativeName(zone, name string) string {
	zone = strings.TrimSuffix(strings.TrimSpace(zone), ".")
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")

	if name == "" || name == "@" || name == zone {
		return "@"
	}
	if rel := strings.TrimSuffix(name, "."+zone); rel != name {
		if rel == "" {
			return "@"
		}
		return rel
	}
	return name
}
