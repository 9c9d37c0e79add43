// Package storage is the injected key-value persistence capability. State
// blobs are JSON-serialized under namespaced keys; writes are last-write-wins
// and failures are surfaced as errors the session logs and ignores, so a
// broken store can never block gameplay.
package storage

// Namespaced keys for the persisted state blobs.
const (
	KeyEconomy      = "lounge:economy"
	KeyProgression  = "lounge:progression"
	KeyEvents       = "lounge:events"
	KeyShop         = "lounge:shop"
	KeyOutfits      = "lounge:outfits"
	KeyAchievements = "lounge:achievements"
)

// Store is the minimal persistence contract. Get reports whether the key
// existed; a missing key is not an error.
type Store interface {
	Get(key string, dest any) (bool, error)
	Set(key string, value any) error
	Delete(key string) error
}
