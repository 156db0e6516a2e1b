package cache

import (
	"sync"
	"time"
)

// Item representa um valor cacheado com expiração
type Item struct {
	Value      interface{}
	Expiration int64
}

// Cache é um cache em memória com TTL. É sempre reconstruído a partir do
// banco em caso de miss; mutações invalidam a chave em vez de remendar o
// valor cacheado, evitando divergência com escritas de outras sessões.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
}

// New cria o cache e inicia a limpeza periódica de itens expirados
func New() *Cache {
	cache := &Cache{
		items: make(map[string]Item),
	}

	go func() {
		for {
			time.Sleep(time.Minute)
			cache.DeleteExpired()
		}
	}()

	return cache
}

// Set grava um item com a duração informada
func (c *Cache) Set(key string, value interface{}, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get retorna o item e um booleano indicando se foi encontrado (e não expirou)
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}

	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}

	return item.Value, true
}

// Delete invalida uma chave
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired remove todos os itens expirados
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
		}
	}
}
