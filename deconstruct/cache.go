package deconstruct

import (
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/teranos/autodeconstruct/decl"
	"github.com/teranos/autodeconstruct/errors"
)

// DefaultCacheSize bounds the number of types remembered across passes.
const DefaultCacheSize = 4096

// cacheEntry is the memoized outcome of resolving, checking, naming and emitting one type.
// Entries are replaced whole, never mutated.
type cacheEntry struct {
	fingerprint uint64
	unit        *Unit
	block       string
	skip        SkipReason
}

// Cache memoizes per-type outcomes across passes, keyed by type identity and
// validated by a structural fingerprint.
type Cache struct {
	mu      sync.Mutex
	entries *lru.Cache[string, cacheEntry]
}

// NewCache creates a cache holding at most size types.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		return nil, errors.Newf("cache size must be greater than zero, got %d", size)
	}
	entries, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cache")
	}
	return &Cache{entries: entries}, nil
}

// lookup returns the entry for identity if its fingerprint still matches.
func (c *Cache) lookup(identity string, fingerprint uint64) (cacheEntry, bool) {
	if c == nil {
		return cacheEntry{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries.Get(identity)
	if !ok || entry.fingerprint != fingerprint {
		return cacheEntry{}, false
	}
	return entry, true
}

// commit stores the entries computed by a completed pass and forgets
// identities that are no longer part of the program.
func (c *Cache) commit(updates map[string]cacheEntry, live map[string]bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for identity, entry := range updates {
		c.entries.Add(identity, entry)
	}
	for _, identity := range c.entries.Keys() {
		if !live[identity] {
			c.entries.Remove(identity)
		}
	}
}

// Len returns the number of remembered types.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Purge forgets everything.
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
}

// fingerprint hashes the structural snapshot that determines a type's outcome:
// its merged fragments, its effective accessibility, its resolved property list
// and its existing Deconstruct signatures.
func fingerprint(t *decl.TypeDeclaration, access decl.Accessibility, properties []PropertyInfo, existing []Signature) uint64 {
	d := xxhash.New()
	write := func(parts ...string) {
		for _, part := range parts {
			_, _ = d.WriteString(part)
			_, _ = d.WriteString("\x1f")
		}
		_, _ = d.WriteString("\x1e")
	}

	write("type", t.Identity, t.Name, t.Namespace, string(t.Kind), string(t.Accessibility), string(access))
	for _, fragment := range t.Fragments {
		write("fragment", strconv.Itoa(len(fragment.Members)))
		for _, m := range fragment.Members {
			write("member", string(m.Kind), m.Name, strconv.FormatBool(m.Static), string(m.Accessibility),
				m.Type.String(), accessorKey(m.Getter), accessorKey(m.Setter), m.ReturnType.String())
			for _, p := range m.Parameters {
				write("param", p.Name, p.Type.String(), string(p.Modifier))
			}
		}
	}
	for _, p := range properties {
		write("property", p.Name, p.Type.String(), string(p.Accessibility), p.DeclaringType)
	}
	for _, sig := range existing {
		write("signature", sig.String())
	}

	return d.Sum64()
}

func accessorKey(a *decl.Accessor) string {
	if a == nil {
		return "-"
	}
	return "+" + string(a.Accessibility)
}
