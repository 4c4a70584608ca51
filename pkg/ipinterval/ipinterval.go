package ipinterval

import (
	"fmt"
	"net/netip"

	"github.com/henderiw/interval/pkg/interval"
	"go4.org/netipx"
)

// Interval is a closed interval in the IP address space.
type Interval = interval.Interval[netip.Addr]

// New builds an interval between two addresses, given in either order.
func New(a, b netip.Addr) Interval {
	return interval.NewFunc(a, b, netip.Addr.Compare)
}

// FromRange converts an IP range to an interval.
func FromRange(r netipx.IPRange) Interval {
	return New(r.From(), r.To())
}

// Range converts x back to an IP range.
func Range(x Interval) netipx.IPRange {
	return netipx.IPRangeFrom(x.Lesser(), x.Greater())
}

// Parse parses an interval in from-to form, e.g. "10.0.0.10-10.0.0.100".
func Parse(s string) (Interval, error) {
	r, err := netipx.ParseIPRange(s)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid ip range %q: %v", s, err)
	}
	return FromRange(r), nil
}
