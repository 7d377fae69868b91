package adminauth

import "sync"

// Context holds the admin secret for the lifetime of the process. The
// secret is never persisted; closing the client forgets it.
type Context struct {
	mu     sync.RWMutex
	secret string
}

func New() *Context {
	return &Context{}
}

func (c *Context) Set(secret string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.secret = secret
}

func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.secret = ""
}

func (c *Context) Secret() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.secret, c.secret != ""
}

func (c *Context) IsAuthenticated() bool {
	_, ok := c.Secret()
	return ok
}
