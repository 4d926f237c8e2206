package session

import "socialboot/pkg/email"

// Record is the authenticated user's session. At most one exists at a time.
type Record struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Username string  `json:"username,omitempty"`
	Bio      string  `json:"bio,omitempty"`
	Website  string  `json:"website,omitempty"`
	Avatar   *string `json:"avatar"`
}

func (r Record) clone() *Record {
	out := r
	if r.Avatar != nil {
		avatar := *r.Avatar
		out.Avatar = &avatar
	}
	return &out
}

// Identity is what an Authenticator resolves: the record to install and the
// bearer token that goes with it.
type Identity struct {
	Record Record
	Token  string
}

// ProfileUpdate carries the fields to merge into the current record. Nil
// fields are left unchanged; ClearAvatar removes the avatar.
type ProfileUpdate struct {
	Name        *string
	Email       *string
	Username    *string
	Bio         *string
	Website     *string
	Avatar      *string
	ClearAvatar bool
}

func (u ProfileUpdate) applyTo(rec Record) Record {
	if u.Name != nil {
		rec.Name = *u.Name
	}
	if u.Email != nil {
		rec.Email = email.Normalize(*u.Email)
	}
	if u.Username != nil {
		rec.Username = *u.Username
	}
	if u.Bio != nil {
		rec.Bio = *u.Bio
	}
	if u.Website != nil {
		rec.Website = *u.Website
	}
	switch {
	case u.ClearAvatar:
		rec.Avatar = nil
	case u.Avatar != nil:
		avatar := *u.Avatar
		rec.Avatar = &avatar
	}
	return rec
}
