package units

import (
	"fmt"
	"strings"
)

// Domain is a measurement category. Units never convert across domains.
type Domain string

const (
	Length      Domain = "length"
	Mass        Domain = "mass"
	Volume      Domain = "volume"
	Temperature Domain = "temperature"
)

// Domains returns every supported domain in a stable order.
func Domains() []Domain {
	return []Domain{Length, Mass, Volume, Temperature}
}

// ParseDomain maps a domain name (case-insensitive) to a Domain.
func ParseDomain(name string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(name)))
	switch d {
	case Length, Mass, Volume, Temperature:
		return d, nil
	}
	return "", unknownDomain(name)
}

func unknownDomain(name string) error {
	return fmt.Errorf("unknown domain %q", name)
}

func (d Domain) String() string {
	return string(d)
}
