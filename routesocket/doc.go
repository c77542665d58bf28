// Package routesocket decodes the binary message stream produced by a
// BSD routing socket (PF_ROUTE/AF_ROUTE) and builds the request messages
// netawait sends to query it.
//
// The wire format is a common header (length, version, type, interface
// index) followed, depending on type, by route/link/address-specific
// fields and a packed, self-delimiting sequence of socket-address
// records. See message.go for the dispatch table and sockaddr.go/addrset.go
// for the address-record grammar.
package routesocket
