// Package domain contains the value types returned by the GitHub v2 XML API client.
//
// The domain is transport- and format-agnostic: it does not depend on XML decoding,
// net/http, or the filesystem. The mapper and the infra adapters map into these types.
// Values are built once from a parsed document and never mutated afterwards.
package domain
