package util

import (
	"context"
	"fmt"
	"math/bits"
	"net"
	"strings"
	"time"

	"github.com/projectdiscovery/mapcidr"
)

// ExpandTargets replaces every CIDR block in targets with the addresses it
// contains, leaving all other entries untouched and in place. At most limit
// non-blank entries are returned, a block larger than what remains is
// narrowed to the subnet at its base address before expansion.
func ExpandTargets(targets []string, limit int) ([]string, error) {
	ipList := []string{}
	count := 0

	for _, t := range targets {
		if count >= limit {
			break
		}

		trimmed := strings.TrimSpace(t)

		if trimmed == "" {
			ipList = append(ipList, t)
			continue
		}

		_, ipnet, err := net.ParseCIDR(trimmed)

		if err != nil {
			ipList = append(ipList, t)
			count++
			continue
		}

		ips, err := mapcidr.IPAddresses(narrowCIDR(ipnet, limit-count))

		if err != nil {
			return nil, err
		}

		if len(ips) > limit-count {
			ips = ips[:limit-count]
		}

		ipList = append(ipList, ips...)
		count += len(ips)
	}

	return ipList, nil
}

// narrowCIDR returns the smallest subnet at ipnet's base address holding at
// least n addresses, or ipnet itself when it is already small enough
func narrowCIDR(ipnet *net.IPNet, n int) string {
	ones, size := ipnet.Mask.Size()
	hostBits := size - ones
	needBits := bits.Len(uint(max(n-1, 0)))

	if hostBits > needBits {
		ones = size - needBits
	}

	return fmt.Sprintf("%s/%d", ipnet.IP.String(), ones)
}

// CheckInternet reports whether a tcp connection to address can be
// established within timeout
func CheckInternet(ctx context.Context, address string, timeout time.Duration) bool {
	dialer := net.Dialer{Timeout: timeout}

	conn, err := dialer.DialContext(ctx, "tcp", address)

	if err != nil {
		return false
	}

	conn.Close()

	return true
}
