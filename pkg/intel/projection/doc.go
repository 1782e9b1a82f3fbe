/*
Package projection narrows competitor records to the field set a target
team is allowed to see in exports.

Each team (sales, product, gtm) has a fixed allowlist of fields layered
on a shared base of company facts. An export with no team uses the
complete-database allowlist. Projection happens once, before encoding;
all export encoders consume the same projected records, so a field
absent from the allowlist can never leak through any format.

Projected records are ordered maps in spirit: Fields returns the
canonical field order for a team and encoders iterate it, never the map.
*/
package projection
