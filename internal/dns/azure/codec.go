package azure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/dns/armdns"

	"azdns/internal/dnstypes"
)

// encodeRecordSet builds the provider record set body for one writable kind.
//
// CNAME accepts at most one value. MX values must look like
// "<preference> <exchange>"; entries that do not parse are dropped rather
// than rejected. Each TXT value becomes a single-segment record.
func encodeRecordSet(rtype dnstypes.RecordType, ttl int64, values []string) (armdns.RecordSet, error) {
	props := armdns.RecordSetProperties{TTL: to.Ptr(ttl)}

	switch rtype {
	case dnstypes.TypeA:
		records := make([]*armdns.ARecord, 0, len(values))
		for _, v := range values {
			records = append(records, &armdns.ARecord{IPv4Address: to.Ptr(v)})
		}
		props.ARecords = records
	case dnstypes.TypeAAAA:
		records := make([]*armdns.AaaaRecord, 0, len(values))
		for _, v := range values {
			records = append(records, &armdns.AaaaRecord{IPv6Address: to.Ptr(v)})
		}
		props.AaaaRecords = records
	case dnstypes.TypeCNAME:
		if len(values) > 1 {
			return armdns.RecordSet{}, &dnstypes.ValidationError{Message: "CNAME records can only have one value"}
		}
		if len(values) == 1 {
			props.CnameRecord = &armdns.CnameRecord{Cname: to.Ptr(values[0])}
		}
	case dnstypes.TypeMX:
		records := make([]*armdns.MxRecord, 0, len(values))
		for _, v := range values {
			preference, exchange, ok := parseMX(v)
			if !ok {
				continue
			}
			records = append(records, &armdns.MxRecord{
				Preference: to.Ptr(preference),
				Exchange:   to.Ptr(exchange),
			})
		}
		props.MxRecords = records
	case dnstypes.TypeTXT:
		records := make([]*armdns.TxtRecord, 0, len(values))
		for _, v := range values {
			records = append(records, &armdns.TxtRecord{Value: []*string{to.Ptr(v)}})
		}
		props.TxtRecords = records
	default:
		return armdns.RecordSet{}, &dnstypes.UnsupportedTypeError{Type: rtype}
	}

	return armdns.RecordSet{Properties: &props}, nil
}

// parseMX splits "<preference> <exchange>" on the first space.
func parseMX(value string) (int32, string, bool) {
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	preference, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return 0, "", false
	}
	return int32(preference), parts[1], true
}

// decodeRecordSet flattens one provider record set into the generic form.
// The kind comes from the ARM resource type path; the values come from the
// first populated record list.
func decodeRecordSet(rs *armdns.RecordSet) dnstypes.Record {
	record := dnstypes.Record{Values: []string{}}
	if rs == nil {
		return record
	}
	record.Name = strVal(rs.Name)
	record.Type = recordTypeFromPath(strVal(rs.Type))
	if rs.Properties != nil {
		record.TTL = int64Val(rs.Properties.TTL)
		record.FQDN = strVal(rs.Properties.Fqdn)
		record.Values = decodeValues(rs.Properties)
	}
	return record
}

// recordTypeFromPath trims the ARM resource prefix:
// "Microsoft.Network/dnszones/A" -> "A".
func recordTypeFromPath(path string) dnstypes.RecordType {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return dnstypes.RecordType(path[i+1:])
	}
	return dnstypes.RecordType(path)
}

// decodeValues renders the first populated record list as value strings.
// The probe order is fixed: A, AAAA, CNAME, MX, TXT, NS, PTR, SRV. Record
// sets with no recognized list decode to an empty (not nil) slice.
func decodeValues(props *armdns.RecordSetProperties) []string {
	switch {
	case len(props.ARecords) > 0:
		values := make([]string, 0, len(props.ARecords))
		for _, r := range props.ARecords {
			values = append(values, strVal(r.IPv4Address))
		}
		return values
	case len(props.AaaaRecords) > 0:
		values := make([]string, 0, len(props.AaaaRecords))
		for _, r := range props.AaaaRecords {
			values = append(values, strVal(r.IPv6Address))
		}
		return values
	case props.CnameRecord != nil:
		return []string{strVal(props.CnameRecord.Cname)}
	case len(props.MxRecords) > 0:
		values := make([]string, 0, len(props.MxRecords))
		for _, r := range props.MxRecords {
			values = append(values, fmt.Sprintf("%d %s", int32Val(r.Preference), strVal(r.Exchange)))
		}
		return values
	case len(props.TxtRecords) > 0:
		values := make([]string, 0, len(props.TxtRecords))
		for _, r := range props.TxtRecords {
			segments := make([]string, 0, len(r.Value))
			for _, s := range r.Value {
				segments = append(segments, strVal(s))
			}
			values = append(values, strings.Join(segments, " "))
		}
		return values
	case len(props.NsRecords) > 0:
		values := make([]string, 0, len(props.NsRecords))
		for _, r := range props.NsRecords {
			values = append(values, strVal(r.Nsdname))
		}
		return values
	case len(props.PtrRecords) > 0:
		values := make([]string, 0, len(props.PtrRecords))
		for _, r := range props.PtrRecords {
			values = append(values, strVal(r.Ptrdname))
		}
		return values
	case len(props.SrvRecords) > 0:
		values := make([]string, 0, len(props.SrvRecords))
		for _, r := range props.SrvRecords {
			values = append(values, fmt.Sprintf("%d %d %d %s",
				int32Val(r.Priority), int32Val(r.Weight), int32Val(r.Port), strVal(r.Target)))
		}
		return values
	}
	return []string{}
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func int32Val(p *int32) int32 {
	if p == nil {
		return 0
	}
	return *p
}

func int64Val(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
