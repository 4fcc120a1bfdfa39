package net

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const ServiceType = "_montagsmaler._tcp"

// Advertise announces a feed on port over mDNS. Shut the returned server
// down to withdraw the announcement.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(host, ServiceType, "", "", port, nil, []string{"path=" + FeedPath})
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse looks for an advertised feed and returns the "ip:port" of the
// first one that answers within timeout.
func Browse(timeout time.Duration) (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	found := make(chan string, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			select {
			case found <- fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port):
			default:
			}
		}
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return "", fmt.Errorf("mDNS query: %w", err)
	}

	select {
	case addr := <-found:
		return addr, nil
	default:
		return "", fmt.Errorf("no %s service found within %s", ServiceType, timeout)
	}
}
