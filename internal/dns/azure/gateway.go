// Package azure implements the dns.Gateway interface on top of the Azure
// Resource Manager DNS record sets API.
package azure

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/dns/armdns"

	"azdns/internal/credstore"
	"azdns/internal/dns"
	"azdns/internal/dnstypes"
	"azdns/internal/metrics"
)

// requestTimeout bounds every provider call on top of the request context.
const requestTimeout = 30 * time.Second

// Gateway reads and writes one Azure DNS zone through the ARM record sets
// client. Construction is cheap and performs no network I/O, so callers
// build a fresh Gateway per request and always see current credentials.
type Gateway struct {
	client        *armdns.RecordSetsClient
	resourceGroup string
	zone          string
}

// New builds a Gateway from a configuration snapshot, failing fast with
// dns.ErrNotConfigured when fields are missing.
func New(cfg credstore.Config) (*Gateway, error) {
	if !cfg.Complete() {
		return nil, dns.ErrNotConfigured
	}

	cred, err := azidentity.NewClientSecretCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("create service principal credential: %w", err)
	}
	client, err := armdns.NewRecordSetsClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create record sets client: %w", err)
	}

	return &Gateway{
		client:        client,
		resourceGroup: cfg.ResourceGroup,
		zone:          cfg.Zone,
	}, nil
}

// Factory adapts New to the dns.Factory signature.
func Factory(cfg credstore.Config) (dns.Gateway, error) {
	return New(cfg)
}

// List returns every record set in the zone, in provider order.
func (g *Gateway) List(ctx context.Context) ([]dnstypes.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	done := metrics.ObserveZoneOp("list")
	records := make([]dnstypes.Record, 0)
	pager := g.client.NewListByDNSZonePager(g.resourceGroup, g.zone, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			done(err)
			return nil, fmt.Errorf("list record sets in zone %s: %w", g.zone, classify(err))
		}
		for _, rs := range page.Value {
			records = append(records, decodeRecordSet(rs))
		}
	}
	done(nil)
	return records, nil
}

// Upsert creates or replaces the record set identified by (rtype, name) and
// returns the stored result. name may be relative or fully qualified.
func (g *Gateway) Upsert(ctx context.Context, name string, rtype dnstypes.RecordType, ttl int64, values []string) (dnstypes.Record, error) {
	rset, err := encodeRecordSet(rtype, ttl, values)
	if err != nil {
		return dnstypes.Record{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	relName := dns.RelativeName(g.zone, name)
	done := metrics.ObserveZoneOp("upsert")
	resp, err := g.client.CreateOrUpdate(ctx, g.resourceGroup, g.zone, relName, armdns.RecordType(rtype), rset, nil)
	done(err)
	if err != nil {
		return dnstypes.Record{}, fmt.Errorf("create/update %s record set %q: %w", rtype, relName, classify(err))
	}
	return decodeRecordSet(&resp.RecordSet), nil
}

// Delete removes the record set identified by (rtype, name). The provider
// answers 204 for record sets that do not exist, so deletes are idempotent;
// a 404 here means the zone or resource group itself is wrong and surfaces
// as an error.
func (g *Gateway) Delete(ctx context.Context, name string, rtype dnstypes.RecordType) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	relName := dns.RelativeName(g.zone, name)
	done := metrics.ObserveZoneOp("delete")
	_, err := g.client.Delete(ctx, g.resourceGroup, g.zone, relName, armdns.RecordType(rtype), nil)
	done(err)
	if err != nil {
		return fmt.Errorf("delete %s record set %q: %w", rtype, relName, classify(err))
	}
	return nil
}
