package utils

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"github.com/atrium-inc/atrium/internal/shared/errors"
)

// ValidatePushEndpointURL validates a browser push subscription URL before it
// is stored. The server later POSTs notification payloads to this URL, so a
// user-supplied endpoint pointing at internal infrastructure is an SSRF
// vector.
func ValidatePushEndpointURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return errors.NewValidationError("endpoint URL is required")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.NewValidationError("endpoint URL is not a valid URL")
	}
	if parsed.Scheme != "https" {
		return errors.NewValidationError("endpoint URL must use https")
	}

	host := parsed.Hostname()
	if host == "" {
		return errors.NewValidationError("endpoint URL must include a host")
	}

	if ip := parseIP(host); ip != nil {
		if isPrivateOrReservedIP(ip) {
			return errors.NewValidationError("endpoint URL cannot point at a private or reserved IP address")
		}
		return nil
	}

	if !isValidDomain(host) {
		return errors.NewValidationError("endpoint URL host must be a valid domain name")
	}

	lowerHost := strings.ToLower(host)
	if lowerHost == "localhost" || strings.HasSuffix(lowerHost, ".localhost") ||
		strings.HasSuffix(lowerHost, ".local") || strings.HasSuffix(lowerHost, ".internal") {
		return errors.NewValidationError("endpoint URL cannot point at localhost or an internal domain")
	}

	return nil
}

// parseIP parses an IP address string, handling IPv4-mapped IPv6 addresses.
func parseIP(address string) net.IP {
	ip := net.ParseIP(address)
	if ip == nil {
		return nil
	}
	// Convert IPv4-mapped IPv6 to IPv4 for consistent checking
	if v4 := ip.To4(); v4 != nil {
		return v4
	}
	return ip
}

// isPrivateOrReservedIP checks if an IP address is private, loopback, or reserved.
func isPrivateOrReservedIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsUnspecified() {
		return true
	}
	for _, network := range reservedNetworks {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// isValidDomain checks if a string is a valid domain name.
var domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)

// reservedNetworks contains pre-parsed reserved CIDR networks for efficient lookup.
var reservedNetworks []*net.IPNet

func init() {
	// Parse reserved CIDR ranges once at startup
	cidrs := []string{
		"100.64.0.0/10",   // Carrier-grade NAT (RFC 6598)
		"192.0.0.0/24",    // IETF Protocol Assignments
		"192.0.2.0/24",    // TEST-NET-1
		"198.51.100.0/24", // TEST-NET-2
		"203.0.113.0/24",  // TEST-NET-3
		"224.0.0.0/4",     // Multicast
		"240.0.0.0/4",     // Reserved for future use
	}
	for _, cidr := range cidrs {
		_, network, err := net.ParseCIDR(cidr)
		if err == nil {
			reservedNetworks = append(reservedNetworks, network)
		}
	}
}

func isValidDomain(domain string) bool {
	if len(domain) > 253 {
		return false
	}
	return domainRegex.MatchString(domain)
}
