package dnstypes

import "fmt"

// RecordType identifies a DNS record set kind (A, CNAME, ...)
type RecordType string

const (
	TypeA     RecordType = "A"
	TypeAAAA  RecordType = "AAAA"
	TypeCNAME RecordType = "CNAME"
	TypeMX    RecordType = "MX"
	TypeTXT   RecordType = "TXT"
	TypeNS    RecordType = "NS"
	TypePTR   RecordType = "PTR"
	TypeSRV   RecordType = "SRV"
)

// DefaultTTL is applied when a create or update request omits the TTL
const DefaultTTL int64 = 3600

// Record is a provider-independent view of one DNS record set.
//
// Name is zone-relative, with "@" standing for the zone apex. Values holds
// one string per record in the set; composite kinds pack their fields into
// a single space-separated string (MX: "preference exchange", SRV:
// "priority weight port target").
type Record struct {
	Name   string     `json:"name"`
	Type   RecordType `json:"type"`
	TTL    int64      `json:"ttl"`
	FQDN   string     `json:"fqdn"`
	Values []string   `json:"values"`
}

// writable lists the kinds the API accepts for create/update/delete.
// NS, PTR and SRV record sets are listed but never written.
var writable = map[RecordType]bool{
	TypeA:     true,
	TypeAAAA:  true,
	TypeCNAME: true,
	TypeMX:    true,
	TypeTXT:   true,
}

// IsWritable reports whether rt can be created, updated or deleted
func IsWritable(rt RecordType) bool {
	return writable[rt]
}

// UnsupportedTypeError is returned when a write names a record kind outside
// the writable set. Its text is the user-facing API message.
type UnsupportedTypeError struct {
	Type RecordType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Unsupported record type: %s", e.Type)
}

// ValidationError is returned for record data that can never be accepted,
// before any provider call is made. Its text is the user-facing API message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
