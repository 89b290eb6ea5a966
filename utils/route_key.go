// ════════════════════════════════════════════════════════════
// Path: utils/route_key.go
// Canonical route name used by the permission tables
// ════════════════════════════════════════════════════════════

package utils

import "strings"

// RouteKey converts a route path into the canonical name stored in
// project_routes.route_name: lowercased, with every slash replaced by
// an underscore. "/admin/product/:id" becomes "_admin_product_:id".
func RouteKey(path string) string {
	return strings.ReplaceAll(strings.ToLower(path), "/", "_")
}
