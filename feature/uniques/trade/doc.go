// Package trade talks to the trade website API.
//
// Every call is a single attempt: throttling and retries belong to the
// sync pipeline. Responses are decoded with gjson so unknown fields and
// delisted (null) entries are tolerated.
//
// # Endpoints
//
//   - POST {base_url}/search/{league} : listing ids of a player's uniques in a category.
//   - GET {base_url}/fetch/{id,id,...} : item details for up to ten ids.
//
// # Categories
//
// Categories lists the synced item categories in order; LookupCategory
// resolves a label ("Body Armour") or key ("armour.chest").
package trade
