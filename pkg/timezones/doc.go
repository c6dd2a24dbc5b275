// Package timezones provides a curated list of IANA time zone identifiers,
// search helpers, and a net/http handler that returns them as Picker options.
//
// The handler responds to GET and HEAD with {"data": [{"label", "value"}]}
// and accepts q and limit query parameters. The backing list is embedded from
// data/zones.txt.
package timezones
