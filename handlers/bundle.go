// File: servigo/handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	CatalogHandler  *CatalogHandler
	ProviderHandler *ProviderHandler
	LocaleHandler   *LocaleHandler
	StorageHandler  *StorageHandler
}
