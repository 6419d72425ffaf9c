// Copyright 2025 Netsock Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sock

import (
	"fmt"
	"net/netip"

	"github.com/netsock/netsock/pkg/private/serrors"
)

// Addr pairs a textual IP address with a port. It is the address value type
// of the socket layer API; the engine deals in parsed addresses only.
type Addr struct {
	// Host is the textual dotted-decimal IP address. Name resolution is
	// not performed here; it is the engine's concern.
	Host string
	// Port is the transport port.
	Port uint16
}

// ParseAddr parses "host:port" into an Addr. The host part is validated to
// be a literal IP address.
func ParseAddr(s string) (Addr, error) {
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return Addr{}, serrors.Join(InvalidParameter, err, "addr", s)
	}
	return Addr{Host: ap.Addr().String(), Port: ap.Port()}, nil
}

// AddrFrom converts a parsed address into the textual value type.
func AddrFrom(ap netip.AddrPort) Addr {
	return Addr{Host: ap.Addr().String(), Port: ap.Port()}
}

func (a Addr) String() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// resolve parses the textual host into an engine address. A malformed host
// is a caller error.
func (a Addr) resolve() (netip.AddrPort, error) {
	ip, err := netip.ParseAddr(a.Host)
	if err != nil {
		return netip.AddrPort{}, serrors.Join(InvalidParameter, err, "host", a.Host)
	}
	return netip.AddrPortFrom(ip, a.Port), nil
}
