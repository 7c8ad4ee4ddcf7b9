package game

// Bullet represents a player projectile.
type Bullet struct {
	Rect
	PoolIndex int // Index in pool for swap-and-pop
}

// BulletPool manages reusable bullet objects. The pool grows on demand;
// released bullets are kept for reuse.
type BulletPool struct {
	Pool        []*Bullet
	ActiveCount int
}

// NewBulletPool creates a new bullet pool with capacity pre-allocated objects.
func NewBulletPool(capacity int) *BulletPool {
	pool := &BulletPool{
		Pool: make([]*Bullet, capacity),
	}
	for i := 0; i < capacity; i++ {
		pool.Pool[i] = &Bullet{PoolIndex: i}
	}
	return pool
}

// Acquire gets an available bullet from the pool, growing it when full.
func (p *BulletPool) Acquire() *Bullet {
	if p.ActiveCount == len(p.Pool) {
		p.Pool = append(p.Pool, &Bullet{})
	}
	b := p.Pool[p.ActiveCount]
	b.PoolIndex = p.ActiveCount
	p.ActiveCount++
	return b
}

// Release returns a bullet to the pool using swap-and-pop.
func (p *BulletPool) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	lastIndex := p.ActiveCount - 1
	if index != lastIndex {
		p.Pool[index], p.Pool[lastIndex] = p.Pool[lastIndex], p.Pool[index]
		p.Pool[index].PoolIndex = index
	}
	p.ActiveCount--
}

// Clear resets the pool, marking all objects as inactive.
func (p *BulletPool) Clear() {
	p.ActiveCount = 0
}

// Active returns the live bullets. The slice aliases the pool and is only
// valid until the next Acquire or Release.
func (p *BulletPool) Active() []*Bullet {
	return p.Pool[:p.ActiveCount]
}

// ForEachReverse iterates over active objects in reverse order. fn may
// release the bullet it is given.
func (p *BulletPool) ForEachReverse(fn func(*Bullet, int)) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		fn(p.Pool[i], i)
	}
}
