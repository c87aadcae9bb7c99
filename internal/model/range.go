package model

import (
	"strconv"
	"time"
)

// DateRange is an inclusive [From, To] window.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Valid reports whether the range is non-empty and ordered.
func (r DateRange) Valid() bool {
	return !r.From.IsZero() && !r.To.IsZero() && !r.To.Before(r.From)
}

// StoreScope selects the stores a query may read. The zero value matches
// nothing; use AllStores to read across every store.
type StoreScope struct {
	StoreID uint
	All     bool
}

// ForStore scopes a query to a single store.
func ForStore(id uint) StoreScope {
	return StoreScope{StoreID: id}
}

// AllStores scopes a query to every store.
func AllStores() StoreScope {
	return StoreScope{All: true}
}

// Key is a stable cache-key fragment.
func (s StoreScope) Key() string {
	if s.All {
		return "all"
	}
	return strconv.FormatUint(uint64(s.StoreID), 10)
}

