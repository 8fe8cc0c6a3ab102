package region

import "strings"

// Locality is the administrative prefix of an address: the 시/군/구 segment
// and, when present, the 읍/면/동 segment beneath it.
type Locality struct {
	City     string
	District string
}

// ParseLocality extracts the locality of a Korean street or lot address.
// Province tokens (…도) are skipped. An address with no recognizable city
// segment yields the zero Locality.
func ParseLocality(address string) Locality {
	var loc Locality
	for _, tok := range strings.Fields(address) {
		switch {
		case loc.City == "" && hasAnySuffix(tok, "시", "군"):
			loc.City = tok
		case loc.City != "" && hasAnySuffix(tok, "읍", "면", "동", "구"):
			loc.District = tok
			return loc
		case loc.City != "":
			// Road names follow the city directly; no district segment.
			return loc
		}
	}
	return loc
}

func (l Locality) IsZero() bool { return l.City == "" }

// SameCity reports whether both localities share a non-empty city segment.
func (l Locality) SameCity(o Locality) bool {
	return l.City != "" && l.City == o.City
}

// SameDistrict reports whether both localities share city and district.
func (l Locality) SameDistrict(o Locality) bool {
	return l.SameCity(o) && l.District != "" && l.District == o.District
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
