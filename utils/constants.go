// File: utils/constants.go
package utils

// LocaleKey is the Redis key holding the persisted active language tag.
const LocaleKey = "locale:active"

// ListingsChannel is the Redis pub/sub channel carrying listings change events.
const ListingsChannel = "listings:changes"
