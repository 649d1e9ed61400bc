// Package domain holds the core model shared across the service.
package domain

// Team is the editable branding record for one fantasy franchise.
// Primary and Secondary are normalized to a leading "#" before any
// provider sees them.
type Team struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Owner     string  `json:"owner" validate:"required"`
	Mascot    string  `json:"mascot"`
	Primary   string  `json:"primary" validate:"hexcolor6"`
	Secondary string  `json:"secondary" validate:"hexcolor6"`
	Seed      int     `json:"seed"`
	LogoURL   *string `json:"logoUrl,omitempty"`
}

// TeamPatch is a partial update; nil fields are left untouched.
type TeamPatch struct {
	Name      *string `json:"name,omitempty"`
	Owner     *string `json:"owner,omitempty"`
	Mascot    *string `json:"mascot,omitempty"`
	Primary   *string `json:"primary,omitempty"`
	Secondary *string `json:"secondary,omitempty"`
	Seed      *int    `json:"seed,omitempty"`
	LogoURL   *string `json:"logoUrl,omitempty"`
}

// Apply returns a copy of the team with the patch's non-nil fields applied.
func (p TeamPatch) Apply(t Team) Team {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Owner != nil {
		t.Owner = *p.Owner
	}
	if p.Mascot != nil {
		t.Mascot = *p.Mascot
	}
	if p.Primary != nil {
		t.Primary = *p.Primary
	}
	if p.Secondary != nil {
		t.Secondary = *p.Secondary
	}
	if p.Seed != nil {
		t.Seed = *p.Seed
	}
	if p.LogoURL != nil {
		t.LogoURL = p.LogoURL
	}
	return t
}
