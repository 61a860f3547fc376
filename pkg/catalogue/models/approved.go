package models

import "strings"

// ApprovedIDSet is the set of dataset IDs permitted for publication.
type ApprovedIDSet struct {
	labels map[string]string
	order  []string
}

// NewApprovedIDSet creates an empty set.
func NewApprovedIDSet() *ApprovedIDSet {
	return &ApprovedIDSet{labels: make(map[string]string)}
}

// Add records an ID with its label (acronym). Re-adding an ID replaces its label.
func (s *ApprovedIDSet) Add(id Value, label string) {
	key := IDKey(id)
	if key == "" {
		return
	}
	if _, ok := s.labels[key]; !ok {
		s.order = append(s.order, key)
	}
	s.labels[key] = label
}

// Contains reports whether the ID is approved.
func (s *ApprovedIDSet) Contains(id Value) bool {
	if s == nil {
		return false
	}
	_, ok := s.labels[IDKey(id)]
	return ok
}

// Label returns the label recorded for an ID.
func (s *ApprovedIDSet) Label(id Value) string {
	if s == nil {
		return ""
	}
	return s.labels[IDKey(id)]
}

// Len returns the number of approved IDs.
func (s *ApprovedIDSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// IDs returns the approved ID keys in file order.
func (s *ApprovedIDSet) IDs() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// DomainSet is a set of allow-listed hostnames, compared case-insensitively.
type DomainSet map[string]struct{}

// NewDomainSet builds a DomainSet from hostnames.
func NewDomainSet(hosts ...string) DomainSet {
	d := make(DomainSet, len(hosts))
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			d[h] = struct{}{}
		}
	}
	return d
}

// Contains reports whether host is allow-listed.
func (d DomainSet) Contains(host string) bool {
	_, ok := d[strings.ToLower(host)]
	return ok
}

// DefaultAllowedDomains are the hosts permitted in rendered hyperlinks.
var DefaultAllowedDomains = []string{
	"www.canada.ca",
	"canada.ca",
	"open.canada.ca",
	"ouvert.canada.ca",
	"health-infobase.canada.ca",
	"sante-infobase.canada.ca",
	"www150.statcan.gc.ca",
	"www.statcan.gc.ca",
}
