package models

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type Pagination struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// Normalize clamps the limit into (0, 100] and the offset to >= 0.
func (p *Pagination) Normalize() {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
