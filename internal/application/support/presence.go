package support

// Presence records which top-level keys an update body carried. Until keys
// are recorded every key counts as sent, so requests built in code behave
// like complete bodies.
type Presence struct {
	recorded bool
	keys     map[string]struct{}
}

// SetKeys records the keys present in the body
func (p *Presence) SetKeys(keys []string) {
	p.recorded = true
	p.keys = make(map[string]struct{}, len(keys))
	for _, k := range keys {
		p.keys[k] = struct{}{}
	}
}

// Sent reports whether key was present in the body
func (p Presence) Sent(key string) bool {
	if !p.recorded {
		return true
	}
	_, ok := p.keys[key]
	return ok
}
